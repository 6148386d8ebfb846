package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeUnknownField     = "UNKNOWN_FIELD"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeInvalidDate      = "INVALID_DATE"
	ErrCodeInvalidID        = "INVALID_ID"
	ErrCodeInvalidReference = "INVALID_REFERENCE"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// AsDomainError reports whether err wraps a *DomainError and returns it.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Common domain errors
var (
	ErrProductNotFound         = NewDomainError(ErrCodeNotFound, "Product not found")
	ErrStockNotFound           = NewDomainError(ErrCodeNotFound, "Stock not found")
	ErrSaleNotFound            = NewDomainError(ErrCodeNotFound, "Sale not found")
	ErrInvalidProductReference = NewDomainError(ErrCodeInvalidReference, "product_id does not reference an existing product")
	ErrProductInUse            = NewDomainError(ErrCodeConflict, "Product is referenced by stock or sale records")
)
