package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// CleanupInterval is how often the background cleanup for idle sessions runs.
const CleanupInterval = time.Minute

// ErrInvalidItem is returned when an add is missing its product id or a
// positive quantity. The store is left unchanged.
var ErrInvalidItem = errors.New("product id and quantity are required")

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Item struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl,omitempty"`
}

// Subtotal is UnitPrice × Quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type session struct {
	items   []Item
	theme   string
	touched time.Time
}

// Store keeps one cart per session id. Adds never merge by product id:
// adding the same product twice yields two line items.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// NewStore creates a session-keyed cart store. Sessions idle for longer than
// ttl are dropped by a background cleanup goroutine; Close stops it.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions:    make(map[string]*session),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

func (s *Store) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.expireIdle()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *Store) expireIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if time.Since(sess.touched) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

// Close stops the cleanup goroutine and waits for it to exit.
func (s *Store) Close() {
	close(s.stopCleanup)
	s.wg.Wait()
}

// touch returns the session for id, creating it if needed. Caller must hold
// the write lock.
func (s *Store) touch(id string) *session {
	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{theme: ThemeLight}
		s.sessions[id] = sess
	}
	sess.touched = time.Now()
	return sess
}

// Items returns a copy of the session's cart lines.
func (s *Store) Items(sessionID string) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}

	items := make([]Item, len(sess.items))
	copy(items, sess.items)
	return items
}

// AddItem appends a new line item unconditionally (no merge/dedup).
func (s *Store) AddItem(sessionID string, item Item) error {
	if item.ProductID == "" || item.Quantity < 1 {
		return ErrInvalidItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.touch(sessionID)
	sess.items = append(sess.items, item)
	return nil
}

// Clear empties the session's cart. Clearing an empty or unknown session is
// a no-op, so the operation is idempotent.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	sess.items = nil
	sess.touched = time.Now()
}

// Count returns the number of line items in the session's cart.
func (s *Store) Count(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return 0
	}
	return len(sess.items)
}

// Total sums UnitPrice × Quantity over the session's cart.
func (s *Store) Total(sessionID string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	sess, ok := s.sessions[sessionID]
	if !ok {
		return total
	}
	for _, item := range sess.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Theme returns the session's theme, defaulting to light.
func (s *Store) Theme(sessionID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ThemeLight
	}
	return sess.theme
}

func (s *Store) SetTheme(sessionID, theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.touch(sessionID)
	sess.theme = theme
}
