package model

// Sale records a product sold to a customer.
type Sale struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"product_id"`
	QuantitySold  int       `json:"quantity_sold"`
	SaleDate      Timestamp `json:"sale_date"`
	TotalPrice    float64   `json:"total_price"`
	CustomerName  *string   `json:"customer_name"`
	PaymentMethod *string   `json:"payment_method"`
	Notes         *string   `json:"notes"`
}

// SaleCreateRequest represents the request payload for recording a sale.
type SaleCreateRequest struct {
	ProductID     *int64     `json:"product_id" validate:"required"`
	QuantitySold  *int       `json:"quantity_sold" validate:"required"`
	SaleDate      *Timestamp `json:"sale_date" validate:"required"`
	TotalPrice    *float64   `json:"total_price" validate:"required"`
	CustomerName  *string    `json:"customer_name"`
	PaymentMethod *string    `json:"payment_method"`
	Notes         *string    `json:"notes"`
}

// ToSale builds the entity to insert. Call only after validation.
func (r *SaleCreateRequest) ToSale() *Sale {
	return &Sale{
		ProductID:     *r.ProductID,
		QuantitySold:  *r.QuantitySold,
		SaleDate:      *r.SaleDate,
		TotalPrice:    *r.TotalPrice,
		CustomerName:  r.CustomerName,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
	}
}

// SalePatch lists the sale fields an update may touch.
type SalePatch struct {
	ProductID     Optional[int64]     `json:"product_id"`
	QuantitySold  Optional[int]       `json:"quantity_sold"`
	SaleDate      Optional[Timestamp] `json:"sale_date"`
	TotalPrice    Optional[float64]   `json:"total_price"`
	CustomerName  Optional[string]    `json:"customer_name"`
	PaymentMethod Optional[string]    `json:"payment_method"`
	Notes         Optional[string]    `json:"notes"`
}

// Validate rejects explicit nulls on NOT NULL columns.
func (p *SalePatch) Validate() error {
	return checkNotNull(
		nullCheck{"product_id", p.ProductID.IsNull()},
		nullCheck{"quantity_sold", p.QuantitySold.IsNull()},
		nullCheck{"sale_date", p.SaleDate.IsNull()},
		nullCheck{"total_price", p.TotalPrice.IsNull()},
	)
}

// Empty reports whether no field was present in the payload.
func (p *SalePatch) Empty() bool {
	return !p.ProductID.Set && !p.QuantitySold.Set && !p.SaleDate.Set &&
		!p.TotalPrice.Set && !p.CustomerName.Set && !p.PaymentMethod.Set &&
		!p.Notes.Set
}
