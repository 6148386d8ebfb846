package model

// Stock records inventory received from a supplier for a product.
// The packing fields are informational and not reconciled with QuantityAdded.
type Stock struct {
	ID               int64     `json:"id"`
	ProductID        int64     `json:"product_id"`
	QuantityAdded    int       `json:"quantity_added"`
	IntakeDate       Timestamp `json:"intake_date"`
	SupplierName     *string   `json:"supplier_name"`
	PurchasePrice    float64   `json:"purchase_price"`
	Notes            *string   `json:"notes"`
	ExpiryDate       *Date     `json:"expiry_date"`
	LargePacking     *int      `json:"large_packing"`
	SmallPacking     *int      `json:"small_packing"`
	IndividualPieces *int      `json:"individual_pieces"`
}

// StockCreateRequest represents the request payload for recording a stock intake.
type StockCreateRequest struct {
	ProductID        *int64     `json:"product_id" validate:"required"`
	QuantityAdded    *int       `json:"quantity_added" validate:"required"`
	IntakeDate       *Timestamp `json:"intake_date" validate:"required"`
	SupplierName     *string    `json:"supplier_name"`
	PurchasePrice    *float64   `json:"purchase_price" validate:"required"`
	Notes            *string    `json:"notes"`
	ExpiryDate       *Date      `json:"expiry_date"`
	LargePacking     *int       `json:"large_packing"`
	SmallPacking     *int       `json:"small_packing"`
	IndividualPieces *int       `json:"individual_pieces"`
}

// ToStock builds the entity to insert. Call only after validation.
func (r *StockCreateRequest) ToStock() *Stock {
	return &Stock{
		ProductID:        *r.ProductID,
		QuantityAdded:    *r.QuantityAdded,
		IntakeDate:       *r.IntakeDate,
		SupplierName:     r.SupplierName,
		PurchasePrice:    *r.PurchasePrice,
		Notes:            r.Notes,
		ExpiryDate:       r.ExpiryDate,
		LargePacking:     r.LargePacking,
		SmallPacking:     r.SmallPacking,
		IndividualPieces: r.IndividualPieces,
	}
}

// StockPatch lists the stock fields an update may touch.
type StockPatch struct {
	ProductID        Optional[int64]     `json:"product_id"`
	QuantityAdded    Optional[int]       `json:"quantity_added"`
	IntakeDate       Optional[Timestamp] `json:"intake_date"`
	SupplierName     Optional[string]    `json:"supplier_name"`
	PurchasePrice    Optional[float64]   `json:"purchase_price"`
	Notes            Optional[string]    `json:"notes"`
	ExpiryDate       Optional[Date]      `json:"expiry_date"`
	LargePacking     Optional[int]       `json:"large_packing"`
	SmallPacking     Optional[int]       `json:"small_packing"`
	IndividualPieces Optional[int]       `json:"individual_pieces"`
}

// Validate rejects explicit nulls on NOT NULL columns.
func (p *StockPatch) Validate() error {
	return checkNotNull(
		nullCheck{"product_id", p.ProductID.IsNull()},
		nullCheck{"quantity_added", p.QuantityAdded.IsNull()},
		nullCheck{"intake_date", p.IntakeDate.IsNull()},
		nullCheck{"purchase_price", p.PurchasePrice.IsNull()},
	)
}

// Empty reports whether no field was present in the payload.
func (p *StockPatch) Empty() bool {
	return !p.ProductID.Set && !p.QuantityAdded.Set && !p.IntakeDate.Set &&
		!p.SupplierName.Set && !p.PurchasePrice.Set && !p.Notes.Set &&
		!p.ExpiryDate.Set && !p.LargePacking.Set && !p.SmallPacking.Set &&
		!p.IndividualPieces.Set
}
