package service

import (
	"context"
	"fmt"

	"inventory-tracker/internal/model"
	"inventory-tracker/internal/repository"
	"inventory-tracker/internal/validator"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Create validates and stores a new product.
func (s *productService) Create(ctx context.Context, req *model.ProductCreateRequest) (int64, error) {
	if err := validator.Validate(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid product payload")
		return 0, err
	}

	product := req.ToProduct()
	if err := s.productRepo.Create(ctx, product); err != nil {
		if _, ok := model.AsDomainError(err); ok {
			return 0, err
		}
		s.logger.Error().Err(err).Msg("failed to create product")
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Int64("product_id", product.ID).Msg("product created")

	return product.ID, nil
}

// GetAll retrieves all products.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Update applies a partial update to a product.
func (s *productService) Update(ctx context.Context, id int64, patch *model.ProductPatch) (*model.Product, error) {
	if err := patch.Validate(); err != nil {
		s.logger.Warn().Err(err).Int64("product_id", id).Msg("invalid product patch")
		return nil, err
	}

	product, err := s.productRepo.Update(ctx, id, patch)
	if err != nil {
		if _, ok := model.AsDomainError(err); ok {
			return nil, err
		}
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if product == nil {
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated")

	return product, nil
}

// Delete removes a product.
func (s *productService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		if _, ok := model.AsDomainError(err); ok {
			return err
		}
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		return model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")

	return nil
}
