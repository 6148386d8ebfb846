package service

import (
	"context"
	"fmt"

	"inventory-tracker/internal/model"
	"inventory-tracker/internal/repository"
	"inventory-tracker/internal/validator"

	"github.com/rs/zerolog"
)

// saleService implements SaleService.
type saleService struct {
	saleRepo repository.SaleRepository
	logger   zerolog.Logger
}

// NewSaleService creates a new sale service.
func NewSaleService(saleRepo repository.SaleRepository, logger zerolog.Logger) SaleService {
	return &saleService{
		saleRepo: saleRepo,
		logger:   logger.With().Str("service", "sale").Logger(),
	}
}

// Create validates and stores a new sale.
func (s *saleService) Create(ctx context.Context, req *model.SaleCreateRequest) (int64, error) {
	if err := validator.Validate(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid sale payload")
		return 0, err
	}

	sale := req.ToSale()
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		if _, ok := model.AsDomainError(err); ok {
			return 0, err
		}
		s.logger.Error().Err(err).Msg("failed to create sale")
		return 0, fmt.Errorf("failed to create sale: %w", err)
	}

	s.logger.Info().Int64("sale_id", sale.ID).Msg("sale created")

	return sale.ID, nil
}

// GetAll retrieves all sales.
func (s *saleService) GetAll(ctx context.Context) ([]model.Sale, error) {
	sales, err := s.saleRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all sales")
		return nil, fmt.Errorf("failed to get sales: %w", err)
	}

	s.logger.Debug().Int("count", len(sales)).Msg("retrieved sales")

	return sales, nil
}

// GetByID retrieves a single sale by ID.
func (s *saleService) GetByID(ctx context.Context, id int64) (*model.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("sale_id", id).Msg("failed to get sale by ID")
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}

	if sale == nil {
		s.logger.Debug().Int64("sale_id", id).Msg("sale not found")
		return nil, model.ErrSaleNotFound
	}

	return sale, nil
}

// Update applies a partial update to a sale.
func (s *saleService) Update(ctx context.Context, id int64, patch *model.SalePatch) (*model.Sale, error) {
	if err := patch.Validate(); err != nil {
		s.logger.Warn().Err(err).Int64("sale_id", id).Msg("invalid sale patch")
		return nil, err
	}

	sale, err := s.saleRepo.Update(ctx, id, patch)
	if err != nil {
		if _, ok := model.AsDomainError(err); ok {
			return nil, err
		}
		s.logger.Error().Err(err).Int64("sale_id", id).Msg("failed to update sale")
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	if sale == nil {
		return nil, model.ErrSaleNotFound
	}

	s.logger.Info().Int64("sale_id", id).Msg("sale updated")

	return sale, nil
}

// Delete removes a sale.
func (s *saleService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.saleRepo.Delete(ctx, id)
	if err != nil {
		if _, ok := model.AsDomainError(err); ok {
			return err
		}
		s.logger.Error().Err(err).Int64("sale_id", id).Msg("failed to delete sale")
		return fmt.Errorf("failed to delete sale: %w", err)
	}

	if !deleted {
		return model.ErrSaleNotFound
	}

	s.logger.Info().Int64("sale_id", id).Msg("sale deleted")

	return nil
}
