package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeInvalidPrice      = "INVALID_PRICE"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeInvalidStatus     = "INVALID_STATUS"
	ErrCodeEmailTaken        = "EMAIL_TAKEN"
	ErrCodeCustomerNotFound  = "CUSTOMER_NOT_FOUND"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeCustomerHasOrders = "CUSTOMER_HAS_ORDERS"
	ErrCodeProductInUse      = "PRODUCT_IN_USE"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure carrying a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmailTaken        = NewDomainError(ErrCodeEmailTaken, "email already registered")
	ErrCustomerNotFound  = NewDomainError(ErrCodeCustomerNotFound, "customer not found")
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "order not found")
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidQuantity, "each item requires a product and an integer quantity greater than zero")
	ErrInvalidPrice      = NewDomainError(ErrCodeInvalidPrice, "price must be a non-negative number")
	ErrCustomerHasOrders = NewDomainError(ErrCodeCustomerHasOrders, "cannot delete customer with existing orders")
	ErrProductInUse      = NewDomainError(ErrCodeProductInUse, "cannot delete product referenced by orders")
)

// ErrProductMissing builds the not-found error for one product id.
func ErrProductMissing(id int) *DomainError {
	return NewDomainError(ErrCodeProductNotFound, fmt.Sprintf("product %d not found", id))
}

// ErrInvalidStatusValue builds the error for a status outside the three
// known values.
func ErrInvalidStatusValue(s string) *DomainError {
	return NewDomainError(ErrCodeInvalidStatus, fmt.Sprintf("invalid status: %s", s))
}
