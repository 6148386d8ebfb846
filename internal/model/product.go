package model

import (
	"fmt"
	"strings"
)

// Product is a sellable item definition.
type Product struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"product_name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	UnitPrice   float64 `json:"unit_price"`
	UnitsPerBox *int    `json:"units_per_box"`
}

// ProductCreateRequest represents the request payload for creating a product.
type ProductCreateRequest struct {
	ProductName *string  `json:"product_name" validate:"required"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	UnitPrice   *float64 `json:"unit_price" validate:"required"`
	UnitsPerBox *int     `json:"units_per_box"`
}

// ToProduct builds the entity to insert. Call only after validation.
func (r *ProductCreateRequest) ToProduct() *Product {
	return &Product{
		ProductName: *r.ProductName,
		Description: r.Description,
		Category:    r.Category,
		UnitPrice:   *r.UnitPrice,
		UnitsPerBox: r.UnitsPerBox,
	}
}

// ProductPatch lists the product fields an update may touch.
type ProductPatch struct {
	ProductName Optional[string]  `json:"product_name"`
	Description Optional[string]  `json:"description"`
	Category    Optional[string]  `json:"category"`
	UnitPrice   Optional[float64] `json:"unit_price"`
	UnitsPerBox Optional[int]     `json:"units_per_box"`
}

// Validate rejects explicit nulls on NOT NULL columns.
func (p *ProductPatch) Validate() error {
	return checkNotNull(
		nullCheck{"product_name", p.ProductName.IsNull()},
		nullCheck{"unit_price", p.UnitPrice.IsNull()},
	)
}

// Empty reports whether no field was present in the payload.
func (p *ProductPatch) Empty() bool {
	return !p.ProductName.Set && !p.Description.Set && !p.Category.Set &&
		!p.UnitPrice.Set && !p.UnitsPerBox.Set
}

type nullCheck struct {
	field  string
	isNull bool
}

func checkNotNull(checks ...nullCheck) error {
	var fields []string
	for _, c := range checks {
		if c.isNull {
			fields = append(fields, c.field)
		}
	}
	if len(fields) > 0 {
		return NewDomainError(ErrCodeMissingField,
			fmt.Sprintf("required field(s) cannot be null: %s", strings.Join(fields, ", ")))
	}
	return nil
}
