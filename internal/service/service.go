package service

import (
	"context"

	"inventory-tracker/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	// Create validates and stores a new product, returning its ID.
	Create(ctx context.Context, req *model.ProductCreateRequest) (int64, error)

	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Update applies a partial update to a product.
	Update(ctx context.Context, id int64, patch *model.ProductPatch) (*model.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id int64) error
}

// StockService defines operations for stock intake records.
type StockService interface {
	// Create validates and stores a new stock intake, returning its ID.
	Create(ctx context.Context, req *model.StockCreateRequest) (int64, error)

	// GetAll retrieves all stock records.
	GetAll(ctx context.Context) ([]model.Stock, error)

	// GetByID retrieves a single stock record by ID.
	GetByID(ctx context.Context, id int64) (*model.Stock, error)

	// Update applies a partial update to a stock record.
	Update(ctx context.Context, id int64, patch *model.StockPatch) (*model.Stock, error)

	// Delete removes a stock record.
	Delete(ctx context.Context, id int64) error
}

// SaleService defines operations for sale records.
type SaleService interface {
	// Create validates and stores a new sale, returning its ID.
	Create(ctx context.Context, req *model.SaleCreateRequest) (int64, error)

	// GetAll retrieves all sales.
	GetAll(ctx context.Context) ([]model.Sale, error)

	// GetByID retrieves a single sale by ID.
	GetByID(ctx context.Context, id int64) (*model.Sale, error)

	// Update applies a partial update to a sale.
	Update(ctx context.Context, id int64, patch *model.SalePatch) (*model.Sale, error)

	// Delete removes a sale.
	Delete(ctx context.Context, id int64) error
}
