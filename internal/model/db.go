package model

import "time"

const (
	OrderStatusCreated = "CREATED"
	OrderStatusPaid    = "PAID"
	OrderStatusFailed  = "FAILED"
)

type Product struct {
	ID          string `gorm:"primaryKey;size:64;not null"` // product sku
	Name        string `gorm:"size:128;not null"`
	Description string `gorm:"size:256"`
	Price       int64  `gorm:"not null"` // minor currency units
	Currency    string `gorm:"size:8;not null"`
	ImageURL    string `gorm:"size:256"`
}

type Order struct {
	OrderID        string `gorm:"primaryKey;size:64;not null"` // server-assigned uuid
	GatewayOrderID string `gorm:"size:64;uniqueIndex;not null"`
	PaymentID      string `gorm:"size:64;index"`
	Status         string `gorm:"size:32;index;not null"` // CREATED, PAID, FAILED

	CustomerName string `gorm:"size:128;not null"`
	Email        string `gorm:"size:128;not null"`
	Phone        string `gorm:"size:32;not null"`

	ShippingAddress string `gorm:"size:256;not null"`
	ShippingCity    string `gorm:"size:64;not null"`
	ShippingState   string `gorm:"size:64;not null"`
	ShippingPincode string `gorm:"size:16;not null"`

	Amount   int64  `gorm:"not null"` // total in minor units (sum of items)
	Currency string `gorm:"size:8;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID uint `gorm:"primaryKey"`
	// FK → order.order_id
	OrderID   string `gorm:"size:64;index;not null"`
	ProductID string `gorm:"size:64;not null"`
	Name      string `gorm:"size:128;not null"`
	Quantity  int    `gorm:"not null"`
	UnitPrice int64  `gorm:"not null"` // minor currency units
	ImageURL  string `gorm:"size:256"`

	CreatedAt time.Time
}
