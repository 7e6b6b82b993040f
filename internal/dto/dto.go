package dto

import "github.com/shopspring/decimal"

type AddItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl"`

	// Legacy flag from the original single-endpoint contract: when set the
	// request creates a bare gateway order and never touches the cart.
	CreateOrder bool `json:"createOrder"`
}

type CheckoutState struct {
	Status   string          `json:"status"`
	Redirect bool            `json:"redirect"`
	Items    []CartItemView  `json:"items"`
	Total    decimal.Decimal `json:"total"`
}

type CartItemView struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl,omitempty"`
}

type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

type IntentResponse struct {
	OrderID  string  `json:"orderId"` // gateway order id for the hosted widget
	Amount   int64   `json:"amount"`  // minor currency units
	Currency string  `json:"currency"`
	Prefill  Prefill `json:"prefill"`
}

type PaymentSuccessRequest struct {
	OrderID   string `json:"orderId" validate:"required"` // gateway order id
	PaymentID string `json:"paymentId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

type PaymentFailureRequest struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason"`
}

type OrderView struct {
	OrderID      string          `json:"orderId"`
	CustomerName string          `json:"customerName"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Items        []CartItemView  `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Date         string          `json:"date"`
}

type SessionView struct {
	CartCount int    `json:"cartCount"`
	Theme     string `json:"theme"`
}

type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}
