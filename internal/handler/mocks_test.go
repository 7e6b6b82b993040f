package handler_test

import (
	"context"
	"errors"

	"storefront-checkout-demo/internal/dto"
	"storefront-checkout-demo/internal/model"
)

type checkoutServiceMock struct {
	BeginFunc            func(ctx context.Context, sessionID string) (*dto.CheckoutState, error)
	SubmitFunc           func(ctx context.Context, sessionID string, form *dto.CheckoutForm) (*dto.IntentResponse, error)
	CreateBareIntentFunc func(ctx context.Context) (string, error)
	CompletePaymentFunc  func(ctx context.Context, sessionID string, req *dto.PaymentSuccessRequest) (string, error)
	FailPaymentFunc      func(ctx context.Context, sessionID, gatewayOrderID, reason string) error
	ConfirmationFunc     func(ctx context.Context, sessionID, orderID string) (*dto.OrderView, error)
}

func (m *checkoutServiceMock) Begin(ctx context.Context, sessionID string) (*dto.CheckoutState, error) {
	return m.BeginFunc(ctx, sessionID)
}

func (m *checkoutServiceMock) Submit(ctx context.Context, sessionID string, form *dto.CheckoutForm) (*dto.IntentResponse, error) {
	return m.SubmitFunc(ctx, sessionID, form)
}

func (m *checkoutServiceMock) CreateBareIntent(ctx context.Context) (string, error) {
	return m.CreateBareIntentFunc(ctx)
}

func (m *checkoutServiceMock) CompletePayment(ctx context.Context, sessionID string, req *dto.PaymentSuccessRequest) (string, error) {
	return m.CompletePaymentFunc(ctx, sessionID, req)
}

func (m *checkoutServiceMock) FailPayment(ctx context.Context, sessionID, gatewayOrderID, reason string) error {
	return m.FailPaymentFunc(ctx, sessionID, gatewayOrderID, reason)
}

func (m *checkoutServiceMock) Confirmation(ctx context.Context, sessionID, orderID string) (*dto.OrderView, error) {
	return m.ConfirmationFunc(ctx, sessionID, orderID)
}

type productRepoMock struct {
	FindByIDFunc func(ctx context.Context, productID string) (*model.Product, error)
	ListFunc     func(ctx context.Context) ([]*model.Product, error)
}

func (m *productRepoMock) Seed(ctx context.Context) error { return nil }

func (m *productRepoMock) FindByID(ctx context.Context, productID string) (*model.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, productID)
	}
	return nil, errors.New("not found")
}

func (m *productRepoMock) List(ctx context.Context) ([]*model.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}
