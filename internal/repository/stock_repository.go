package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory-tracker/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const stockColumns = `id, product_id, quantity_added, intake_date, supplier_name, purchase_price,
	notes, expiry_date, large_packing, small_packing, individual_pieces`

// stockRepository implements the StockRepository interface using PostgreSQL.
type stockRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewStockRepository creates a new PostgreSQL-backed stock repository.
func NewStockRepository(pool *pgxpool.Pool, logger zerolog.Logger) StockRepository {
	return &stockRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "stock").Logger(),
	}
}

func scanStock(row pgx.Row) (*model.Stock, error) {
	var (
		s          model.Stock
		intakeDate time.Time
		expiryDate *time.Time
	)
	err := row.Scan(
		&s.ID,
		&s.ProductID,
		&s.QuantityAdded,
		&intakeDate,
		&s.SupplierName,
		&s.PurchasePrice,
		&s.Notes,
		&expiryDate,
		&s.LargePacking,
		&s.SmallPacking,
		&s.IndividualPieces,
	)
	if err != nil {
		return nil, err
	}
	s.IntakeDate = model.Timestamp{Time: intakeDate}
	s.ExpiryDate = dateOrNil(expiryDate)
	return &s, nil
}

// Create inserts a stock record and sets its generated ID.
func (r *stockRepository) Create(ctx context.Context, stock *model.Stock) error {
	query := `
		INSERT INTO stocks (product_id, quantity_added, intake_date, supplier_name, purchase_price,
			notes, expiry_date, large_packing, small_packing, individual_pieces)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		stock.ProductID,
		stock.QuantityAdded,
		stock.IntakeDate.Std(),
		stock.SupplierName,
		stock.PurchasePrice,
		stock.Notes,
		timeOrNil(stock.ExpiryDate),
		stock.LargePacking,
		stock.SmallPacking,
		stock.IndividualPieces,
	).Scan(&stock.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			r.logger.Warn().Int64("product_id", stock.ProductID).Msg("stock references unknown product")
			return model.ErrInvalidProductReference
		}
		r.logger.Error().Err(err).Int64("product_id", stock.ProductID).Msg("failed to create stock")
		return fmt.Errorf("failed to create stock: %w", err)
	}

	r.logger.Debug().
		Int64("stock_id", stock.ID).
		Int64("product_id", stock.ProductID).
		Msg("stock created successfully")

	return nil
}

// GetAll retrieves every stock record in storage order.
func (r *stockRepository) GetAll(ctx context.Context) ([]model.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query stocks")
		return nil, fmt.Errorf("failed to query stocks: %w", err)
	}
	defer rows.Close()

	stocks := []model.Stock{}
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan stock row")
			return nil, fmt.Errorf("failed to scan stock: %w", err)
		}
		stocks = append(stocks, *s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating stock rows")
		return nil, fmt.Errorf("error iterating stocks: %w", err)
	}

	return stocks, nil
}

// GetByID retrieves a single stock record by its ID.
func (r *stockRepository) GetByID(ctx context.Context, id int64) (*model.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1`

	s, err := scanStock(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("stock_id", id).Msg("stock not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("stock_id", id).Msg("failed to query stock")
		return nil, fmt.Errorf("failed to query stock: %w", err)
	}

	return s, nil
}

// Update applies the fields present in patch.
func (r *stockRepository) Update(ctx context.Context, id int64, patch *model.StockPatch) (*model.Stock, error) {
	b := &updateBuilder{}
	setField(b, "product_id", patch.ProductID)
	setField(b, "quantity_added", patch.QuantityAdded)
	setTimeField(b, "intake_date", patch.IntakeDate)
	setField(b, "supplier_name", patch.SupplierName)
	setField(b, "purchase_price", patch.PurchasePrice)
	setField(b, "notes", patch.Notes)
	setTimeField(b, "expiry_date", patch.ExpiryDate)
	setField(b, "large_packing", patch.LargePacking)
	setField(b, "small_packing", patch.SmallPacking)
	setField(b, "individual_pieces", patch.IndividualPieces)

	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.build("stocks", id, stockColumns)

	s, err := scanStock(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("stock_id", id).Msg("stock not found for update")
			return nil, nil
		}
		if isForeignKeyViolation(err) {
			r.logger.Warn().Int64("stock_id", id).Msg("stock update references unknown product")
			return nil, model.ErrInvalidProductReference
		}
		r.logger.Error().Err(err).Int64("stock_id", id).Msg("failed to update stock")
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	r.logger.Debug().Int64("stock_id", id).Int("fields", len(args)-1).Msg("stock updated successfully")

	return s, nil
}

// Delete removes a stock record.
func (r *stockRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM stocks WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("stock_id", id).Msg("failed to delete stock")
		return false, fmt.Errorf("failed to delete stock: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
