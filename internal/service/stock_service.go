package service

import (
	"context"
	"fmt"

	"inventory-tracker/internal/model"
	"inventory-tracker/internal/repository"
	"inventory-tracker/internal/validator"

	"github.com/rs/zerolog"
)

// stockService implements StockService.
type stockService struct {
	stockRepo repository.StockRepository
	logger    zerolog.Logger
}

// NewStockService creates a new stock intake service.
func NewStockService(stockRepo repository.StockRepository, logger zerolog.Logger) StockService {
	return &stockService{
		stockRepo: stockRepo,
		logger:    logger.With().Str("service", "stock").Logger(),
	}
}

// Create validates and stores a new stock intake.
func (s *stockService) Create(ctx context.Context, req *model.StockCreateRequest) (int64, error) {
	if err := validator.Validate(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid stock payload")
		return 0, err
	}

	stock := req.ToStock()
	if err := s.stockRepo.Create(ctx, stock); err != nil {
		if _, ok := model.AsDomainError(err); ok {
			return 0, err
		}
		s.logger.Error().Err(err).Msg("failed to create stock")
		return 0, fmt.Errorf("failed to create stock: %w", err)
	}

	s.logger.Info().Int64("stock_id", stock.ID).Msg("stock created")

	return stock.ID, nil
}

// GetAll retrieves all stocks.
func (s *stockService) GetAll(ctx context.Context) ([]model.Stock, error) {
	stocks, err := s.stockRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all stocks")
		return nil, fmt.Errorf("failed to get stocks: %w", err)
	}

	s.logger.Debug().Int("count", len(stocks)).Msg("retrieved stocks")

	return stocks, nil
}

// GetByID retrieves a single stock record by ID.
func (s *stockService) GetByID(ctx context.Context, id int64) (*model.Stock, error) {
	stock, err := s.stockRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("stock_id", id).Msg("failed to get stock by ID")
		return nil, fmt.Errorf("failed to get stock: %w", err)
	}

	if stock == nil {
		s.logger.Debug().Int64("stock_id", id).Msg("stock not found")
		return nil, model.ErrStockNotFound
	}

	return stock, nil
}

// Update applies a partial update to a stock record.
func (s *stockService) Update(ctx context.Context, id int64, patch *model.StockPatch) (*model.Stock, error) {
	if err := patch.Validate(); err != nil {
		s.logger.Warn().Err(err).Int64("stock_id", id).Msg("invalid stock patch")
		return nil, err
	}

	stock, err := s.stockRepo.Update(ctx, id, patch)
	if err != nil {
		if _, ok := model.AsDomainError(err); ok {
			return nil, err
		}
		s.logger.Error().Err(err).Int64("stock_id", id).Msg("failed to update stock")
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	if stock == nil {
		return nil, model.ErrStockNotFound
	}

	s.logger.Info().Int64("stock_id", id).Msg("stock updated")

	return stock, nil
}

// Delete removes a stock record.
func (s *stockService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.stockRepo.Delete(ctx, id)
	if err != nil {
		if _, ok := model.AsDomainError(err); ok {
			return err
		}
		s.logger.Error().Err(err).Int64("stock_id", id).Msg("failed to delete stock")
		return fmt.Errorf("failed to delete stock: %w", err)
	}

	if !deleted {
		return model.ErrStockNotFound
	}

	s.logger.Info().Int64("stock_id", id).Msg("stock deleted")

	return nil
}
