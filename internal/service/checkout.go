package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"storefront-checkout-demo/internal/cart"
	"storefront-checkout-demo/internal/client"
	"storefront-checkout-demo/internal/config"
	"storefront-checkout-demo/internal/dto"
	"storefront-checkout-demo/internal/model"
	"storefront-checkout-demo/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Checkout session states. Failure and cancel inside the hosted widget land
// on PAYMENT_FAILED via FailPayment; the next Begin resets to EDITING.
const (
	StatusEditing        = "EDITING"
	StatusSubmitting     = "SUBMITTING"
	StatusPaymentPending = "PAYMENT_PENDING"
	StatusPaymentFailed  = "PAYMENT_FAILED"
	StatusCompleted      = "COMPLETED"
)

// bareIntentAmount is the fixed placeholder amount (minor units) used by the
// legacy create-order flag, which never reads the cart.
const bareIntentAmount = 100 * 100

type CheckoutService interface {
	// Begin reports the checkout view for a session: current items, total,
	// and whether the client should bounce back to the cart page.
	Begin(ctx context.Context, sessionID string) (*dto.CheckoutState, error)
	// Submit validates the form and creates a gateway order intent for the
	// cart total. No gateway call is made when validation fails.
	Submit(ctx context.Context, sessionID string, form *dto.CheckoutForm) (*dto.IntentResponse, error)
	// CreateBareIntent creates a gateway order with the fixed placeholder
	// amount. The cart is never touched.
	CreateBareIntent(ctx context.Context) (string, error)
	// CompletePayment handles the widget success callback: verifies the
	// signature, marks the order paid, and schedules the cart clear.
	CompletePayment(ctx context.Context, sessionID string, req *dto.PaymentSuccessRequest) (string, error)
	// FailPayment handles the widget failure/cancel callback. The cart is
	// retained so the shopper can try again.
	FailPayment(ctx context.Context, sessionID, gatewayOrderID, reason string) error
	// Confirmation returns the order view for the confirmation page.
	Confirmation(ctx context.Context, sessionID, orderID string) (*dto.OrderView, error)
}

type checkoutSession struct {
	status         string
	orderID        string
	gatewayOrderID string
	prefill        dto.Prefill
	// pendingOrder guards the empty-cart redirect between payment success
	// and the confirmation view reading the order.
	pendingOrder bool
}

type checkoutServiceImpl struct {
	db         *gorm.DB
	gateway    client.RazorpayClient
	carts      *cart.Store
	orderRepo  repository.OrderRepository
	currency   string
	clearDelay time.Duration

	mu       sync.Mutex
	sessions map[string]*checkoutSession
}

func NewCheckoutService(
	db *gorm.DB,
	gateway client.RazorpayClient,
	carts *cart.Store,
	orderRepo repository.OrderRepository,
	checkoutCfg *config.Checkout,
) CheckoutService {
	return &checkoutServiceImpl{
		db:         db,
		gateway:    gateway,
		carts:      carts,
		orderRepo:  orderRepo,
		currency:   checkoutCfg.Currency,
		clearDelay: checkoutCfg.ClearDelay,
		sessions:   make(map[string]*checkoutSession),
	}
}

// session returns the checkout session, creating it in EDITING if needed.
// Caller must hold s.mu.
func (s *checkoutServiceImpl) session(sessionID string) *checkoutSession {
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &checkoutSession{status: StatusEditing}
		s.sessions[sessionID] = sess
	}
	return sess
}

func (s *checkoutServiceImpl) Begin(ctx context.Context, sessionID string) (*dto.CheckoutState, error) {
	s.mu.Lock()
	sess := s.session(sessionID)
	if sess.status == StatusPaymentFailed {
		sess.status = StatusEditing
	}
	status := sess.status
	pending := sess.pendingOrder
	s.mu.Unlock()

	items := s.carts.Items(sessionID)

	return &dto.CheckoutState{
		Status:   status,
		Redirect: len(items) == 0 && !pending,
		Items:    itemViews(items),
		Total:    s.carts.Total(sessionID),
	}, nil
}

func (s *checkoutServiceImpl) Submit(ctx context.Context, sessionID string, form *dto.CheckoutForm) (*dto.IntentResponse, error) {
	s.mu.Lock()
	sess := s.session(sessionID)
	if sess.status == StatusSubmitting || sess.status == StatusPaymentPending {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: payment already in progress", ErrConflict)
	}
	sess.status = StatusSubmitting
	s.mu.Unlock()

	// Validation runs before anything reaches the gateway; on failure the
	// session drops back to EDITING with field messages.
	if fields := form.Validate(); len(fields) > 0 {
		s.setStatus(sessionID, StatusEditing)
		return nil, &ValidationError{Fields: fields}
	}

	items := s.carts.Items(sessionID)
	if len(items) == 0 {
		s.setStatus(sessionID, StatusEditing)
		return nil, ErrEmptyCart
	}

	amount := minorUnits(s.carts.Total(sessionID))

	gatewayOrderID, err := s.gateway.CreateOrder(ctx, amount, s.currency, newReceipt())
	if err != nil {
		s.setStatus(sessionID, StatusPaymentFailed)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	orderID := uuid.NewString()
	addr, city, state, pincode := form.ShippingIdentity()

	order := &model.Order{
		OrderID:         orderID,
		GatewayOrderID:  gatewayOrderID,
		Status:          model.OrderStatusCreated,
		CustomerName:    form.CustomerName(),
		Email:           form.BillingEmail,
		Phone:           form.BillingPhone,
		ShippingAddress: addr,
		ShippingCity:    city,
		ShippingState:   state,
		ShippingPincode: pincode,
		Amount:          amount,
		Currency:        s.currency,
	}

	orderItems := make([]*model.OrderItem, len(items))
	for i, item := range items {
		orderItems[i] = &model.OrderItem{
			OrderID:   orderID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: minorUnits(item.UnitPrice),
			ImageURL:  item.ImageURL,
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.Create(ctx, tx, order, orderItems)
	})
	if err != nil {
		s.setStatus(sessionID, StatusPaymentFailed)
		return nil, fmt.Errorf("store order in db: %w", err)
	}

	prefill := dto.Prefill{
		Name:    form.CustomerName(),
		Email:   form.BillingEmail,
		Contact: form.BillingPhone,
	}

	s.mu.Lock()
	sess = s.session(sessionID)
	sess.status = StatusPaymentPending
	sess.orderID = orderID
	sess.gatewayOrderID = gatewayOrderID
	sess.prefill = prefill
	s.mu.Unlock()

	return &dto.IntentResponse{
		OrderID:  gatewayOrderID,
		Amount:   amount,
		Currency: s.currency,
		Prefill:  prefill,
	}, nil
}

func (s *checkoutServiceImpl) CreateBareIntent(ctx context.Context) (string, error) {
	gatewayOrderID, err := s.gateway.CreateOrder(ctx, bareIntentAmount, s.currency, newReceipt())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return gatewayOrderID, nil
}

func (s *checkoutServiceImpl) CompletePayment(ctx context.Context, sessionID string, req *dto.PaymentSuccessRequest) (string, error) {
	s.mu.Lock()
	sess := s.session(sessionID)
	if sess.status != StatusPaymentPending || sess.gatewayOrderID != req.OrderID {
		s.mu.Unlock()
		return "", fmt.Errorf("%w: no pending payment for this order", ErrConflict)
	}
	orderID := sess.orderID
	s.mu.Unlock()

	if err := s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadSignature, err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.orderRepo.MarkPaid(ctx, tx, req.OrderID, req.PaymentID)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("mark order paid: %w", err)
	}

	s.mu.Lock()
	sess = s.session(sessionID)
	sess.status = StatusCompleted
	sess.pendingOrder = true
	s.mu.Unlock()

	// Clear after a fixed delay so the confirmation view never races the
	// cart going empty.
	time.AfterFunc(s.clearDelay, func() {
		s.carts.Clear(sessionID)
	})

	return orderID, nil
}

func (s *checkoutServiceImpl) FailPayment(ctx context.Context, sessionID, gatewayOrderID, reason string) error {
	s.mu.Lock()
	sess := s.session(sessionID)
	if sess.status != StatusPaymentPending && sess.status != StatusSubmitting {
		s.mu.Unlock()
		return fmt.Errorf("%w: no payment in progress", ErrConflict)
	}
	sess.status = StatusPaymentFailed
	known := sess.gatewayOrderID
	s.mu.Unlock()

	if reason != "" {
		log.Println("payment failed:", reason)
	}

	if gatewayOrderID == "" || gatewayOrderID != known {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.MarkFailed(ctx, tx, gatewayOrderID)
	})
}

func (s *checkoutServiceImpl) Confirmation(ctx context.Context, sessionID, orderID string) (*dto.OrderView, error) {
	order, err := s.orderRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	items, err := s.orderRepo.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}

	// The confirmation page reads the pending record once; afterwards an
	// empty cart redirects back to the cart page again.
	s.mu.Lock()
	if sess, ok := s.sessions[sessionID]; ok && sess.orderID == orderID {
		sess.pendingOrder = false
		if sess.status == StatusCompleted {
			delete(s.sessions, sessionID)
		}
	}
	s.mu.Unlock()

	views := make([]dto.CartItemView, len(items))
	for i, item := range items {
		views[i] = dto.CartItemView{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Name:      item.Name,
			Price:     majorUnits(item.UnitPrice),
			ImageURL:  item.ImageURL,
		}
	}

	return &dto.OrderView{
		OrderID:      order.OrderID,
		CustomerName: order.CustomerName,
		Email:        order.Email,
		Phone:        order.Phone,
		Items:        views,
		Total:        majorUnits(order.Amount),
		Date:         order.CreatedAt.Format("January 2, 2006"),
	}, nil
}

func (s *checkoutServiceImpl) setStatus(sessionID, status string) {
	s.mu.Lock()
	s.session(sessionID).status = status
	s.mu.Unlock()
}

func itemViews(items []cart.Item) []dto.CartItemView {
	views := make([]dto.CartItemView, len(items))
	for i, item := range items {
		views[i] = dto.CartItemView{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Name:      item.Name,
			Price:     item.UnitPrice,
			ImageURL:  item.ImageURL,
		}
	}
	return views
}

func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func majorUnits(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount).Div(decimal.NewFromInt(100))
}

func newReceipt() string {
	return "receipt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
}
