package service

import (
	"errors"
	"fmt"
)

var (
	// ErrGateway covers any failure talking to the payment gateway. Not
	// retried; the caller surfaces a generic failure.
	ErrGateway = errors.New("payment gateway request failed")

	// ErrConflict is returned for an operation that does not match the
	// checkout session's current state.
	ErrConflict = errors.New("checkout not in a valid state for this operation")

	ErrNotFound = errors.New("order not found")

	// ErrBadSignature means the success callback carried a signature that
	// does not match the gateway order and payment ids.
	ErrBadSignature = errors.New("payment signature verification failed")

	ErrEmptyCart = errors.New("cart is empty")
)

// ValidationError carries per-field messages for a rejected checkout form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout form validation failed: %d invalid fields", len(e.Fields))
}
