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

const saleColumns = `id, product_id, quantity_sold, sale_date, total_price,
	customer_name, payment_method, notes`

// saleRepository implements the SaleRepository interface using PostgreSQL.
type saleRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSaleRepository creates a new PostgreSQL-backed sale repository.
func NewSaleRepository(pool *pgxpool.Pool, logger zerolog.Logger) SaleRepository {
	return &saleRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "sale").Logger(),
	}
}

func scanSale(row pgx.Row) (*model.Sale, error) {
	var (
		s        model.Sale
		saleDate time.Time
	)
	err := row.Scan(
		&s.ID,
		&s.ProductID,
		&s.QuantitySold,
		&saleDate,
		&s.TotalPrice,
		&s.CustomerName,
		&s.PaymentMethod,
		&s.Notes,
	)
	if err != nil {
		return nil, err
	}
	s.SaleDate = model.Timestamp{Time: saleDate}
	return &s, nil
}

// Create inserts a sale and sets its generated ID.
func (r *saleRepository) Create(ctx context.Context, sale *model.Sale) error {
	query := `
		INSERT INTO sales (product_id, quantity_sold, sale_date, total_price,
			customer_name, payment_method, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		sale.ProductID,
		sale.QuantitySold,
		sale.SaleDate.Std(),
		sale.TotalPrice,
		sale.CustomerName,
		sale.PaymentMethod,
		sale.Notes,
	).Scan(&sale.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			r.logger.Warn().Int64("product_id", sale.ProductID).Msg("sale references unknown product")
			return model.ErrInvalidProductReference
		}
		r.logger.Error().Err(err).Int64("product_id", sale.ProductID).Msg("failed to create sale")
		return fmt.Errorf("failed to create sale: %w", err)
	}

	r.logger.Debug().
		Int64("sale_id", sale.ID).
		Int64("product_id", sale.ProductID).
		Msg("sale created successfully")

	return nil
}

// GetAll retrieves every sale in storage order.
func (r *saleRepository) GetAll(ctx context.Context) ([]model.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query sales")
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []model.Sale{}
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan sale row")
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, *s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating sale rows")
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	return sales, nil
}

// GetByID retrieves a single sale by its ID.
func (r *saleRepository) GetByID(ctx context.Context, id int64) (*model.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`

	s, err := scanSale(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("sale_id", id).Msg("sale not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("sale_id", id).Msg("failed to query sale")
		return nil, fmt.Errorf("failed to query sale: %w", err)
	}

	return s, nil
}

// Update applies the fields present in patch.
func (r *saleRepository) Update(ctx context.Context, id int64, patch *model.SalePatch) (*model.Sale, error) {
	b := &updateBuilder{}
	setField(b, "product_id", patch.ProductID)
	setField(b, "quantity_sold", patch.QuantitySold)
	setTimeField(b, "sale_date", patch.SaleDate)
	setField(b, "total_price", patch.TotalPrice)
	setField(b, "customer_name", patch.CustomerName)
	setField(b, "payment_method", patch.PaymentMethod)
	setField(b, "notes", patch.Notes)

	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.build("sales", id, saleColumns)

	s, err := scanSale(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("sale_id", id).Msg("sale not found for update")
			return nil, nil
		}
		if isForeignKeyViolation(err) {
			r.logger.Warn().Int64("sale_id", id).Msg("sale update references unknown product")
			return nil, model.ErrInvalidProductReference
		}
		r.logger.Error().Err(err).Int64("sale_id", id).Msg("failed to update sale")
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	r.logger.Debug().Int64("sale_id", id).Int("fields", len(args)-1).Msg("sale updated successfully")

	return s, nil
}

// Delete removes a sale.
func (r *saleRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("sale_id", id).Msg("failed to delete sale")
		return false, fmt.Errorf("failed to delete sale: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
