package repository

import (
	"context"
	"storefront-checkout-demo/internal/model"
	"time"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *model.Order, items []*model.OrderItem) error
	FindByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*model.Order, error)
	GetOrderItems(ctx context.Context, orderID string) ([]*model.OrderItem, error)
	MarkPaid(ctx context.Context, tx *gorm.DB, gatewayOrderID, paymentID string) (*model.Order, error)
	MarkFailed(ctx context.Context, tx *gorm.DB, gatewayOrderID string) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, tx *gorm.DB, order *model.Order, items []*model.OrderItem) error {
	if err := tx.WithContext(ctx).Create(order).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&items).Error
}

func (r *orderRepoImpl) FindByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("gateway_order_id = ?", gatewayOrderID).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) GetOrderItems(ctx context.Context, orderID string) ([]*model.OrderItem, error) {
	var items []*model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *orderRepoImpl) MarkPaid(ctx context.Context, tx *gorm.DB, gatewayOrderID, paymentID string) (*model.Order, error) {
	var order model.Order
	err := tx.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Order{}).
			Where("gateway_order_id = ? AND status = ?", gatewayOrderID, model.OrderStatusCreated).
			Updates(map[string]interface{}{
				"status":     model.OrderStatusPaid,
				"payment_id": paymentID,
				"updated_at": time.Now(),
			})

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Where("gateway_order_id = ?", gatewayOrderID).First(&order).Error
	})

	return &order, err
}

func (r *orderRepoImpl) MarkFailed(ctx context.Context, tx *gorm.DB, gatewayOrderID string) error {
	return tx.WithContext(ctx).Model(&model.Order{}).
		Where("gateway_order_id = ? AND status = ?", gatewayOrderID, model.OrderStatusCreated).
		Updates(map[string]interface{}{
			"status":     model.OrderStatusFailed,
			"updated_at": time.Now(),
		}).Error
}
