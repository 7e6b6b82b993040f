package repository

import (
	"context"
	"storefront-checkout-demo/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Seed(ctx context.Context) error
	FindByID(ctx context.Context, productID string) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) Seed(ctx context.Context) error {
	products := []model.Product{
		{ID: "steel_cups_6", Name: "Stainless Steel Cups (Set of 6)", Description: "Rust-free steel cups for everyday use", Price: 5000, Currency: "INR", ImageURL: "/images/steel-cups.jpg"},
		{ID: "copper_jug", Name: "Copper Water Jug", Description: "Hand-hammered copper jug, 1.5L", Price: 129900, Currency: "INR", ImageURL: "/images/copper-jug.jpg"},
		{ID: "brass_thali", Name: "Brass Thali Set", Description: "Five-piece brass dinner thali", Price: 249900, Currency: "INR", ImageURL: "/images/brass-thali.jpg"},
		{ID: "clay_pot", Name: "Earthen Clay Pot", Description: "Unglazed clay pot for cooking", Price: 39900, Currency: "INR", ImageURL: "/images/clay-pot.jpg"},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) List(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&products).
		Error

	if err != nil {
		return nil, err
	}

	return products, nil
}
