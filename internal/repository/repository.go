package repository

import (
	"context"

	"inventory-tracker/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a product and sets its generated ID.
	Create(ctx context.Context, product *model.Product) error

	// GetAll retrieves every product in storage order.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Update applies the fields present in patch. Returns nil when absent.
	Update(ctx context.Context, id int64, patch *model.ProductPatch) (*model.Product, error)

	// Delete removes a product. Returns false when absent.
	Delete(ctx context.Context, id int64) (bool, error)
}

// StockRepository defines the interface for stock intake data access operations.
type StockRepository interface {
	// Create inserts a stock record and sets its generated ID.
	Create(ctx context.Context, stock *model.Stock) error

	// GetAll retrieves every stock record in storage order.
	GetAll(ctx context.Context) ([]model.Stock, error)

	// GetByID retrieves a single stock record by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Stock, error)

	// Update applies the fields present in patch. Returns nil when absent.
	Update(ctx context.Context, id int64, patch *model.StockPatch) (*model.Stock, error)

	// Delete removes a stock record. Returns false when absent.
	Delete(ctx context.Context, id int64) (bool, error)
}

// SaleRepository defines the interface for sale data access operations.
type SaleRepository interface {
	// Create inserts a sale and sets its generated ID.
	Create(ctx context.Context, sale *model.Sale) error

	// GetAll retrieves every sale in storage order.
	GetAll(ctx context.Context) ([]model.Sale, error)

	// GetByID retrieves a single sale by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Sale, error)

	// Update applies the fields present in patch. Returns nil when absent.
	Update(ctx context.Context, id int64, patch *model.SalePatch) (*model.Sale, error)

	// Delete removes a sale. Returns false when absent.
	Delete(ctx context.Context, id int64) (bool, error)
}
