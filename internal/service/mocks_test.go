package service

import (
	"context"
	"sync"
)

type gatewayMock struct {
	CreateOrderFunc     func(ctx context.Context, amount int64, currency, receipt string) (string, error)
	VerifySignatureFunc func(gatewayOrderID, paymentID, signature string) error

	mu          sync.Mutex
	createCalls int
	lastAmount  int64
	lastReceipt string
}

func (m *gatewayMock) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	m.mu.Lock()
	m.createCalls++
	m.lastAmount = amount
	m.lastReceipt = receipt
	m.mu.Unlock()

	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, amount, currency, receipt)
	}
	return "order_gw1", nil
}

func (m *gatewayMock) VerifySignature(gatewayOrderID, paymentID, signature string) error {
	if m.VerifySignatureFunc != nil {
		return m.VerifySignatureFunc(gatewayOrderID, paymentID, signature)
	}
	return nil
}

func (m *gatewayMock) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *gatewayMock) amount() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastAmount
}

func (m *gatewayMock) receipt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastReceipt
}
