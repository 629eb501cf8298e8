// Package engine implements the order pricing and inventory adjustment core:
// line-item assembly, order total breakdowns and bounded stock arithmetic.
// It is pure computation; persistence happens in the service layer.
package engine

import "fmt"

// Validation error codes.
const (
	CodeMissingBuyer    = "missing_buyer"
	CodeEmptyOrder      = "empty_order"
	CodeInvalidQuantity = "invalid_quantity"
	CodeInactiveProduct = "inactive_product"
	CodeInvalidProduct  = "invalid_product"
	CodeInvalidDiscount = "invalid_discount"
	CodeInvalidAmount   = "invalid_amount"
)

// ValidationError is returned when caller input violates a precondition.
// It is always raised before any persistence call is attempted.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: code=%s, field=%s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: code=%s: %s", e.Code, e.Message)
}

// Is allows matching with errors.Is() regardless of field and message.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// PersistenceError wraps a collaborator failure. The backend message is kept
// intact and reachable via Unwrap; no translation happens on the way up.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is allows matching any PersistenceError with errors.Is().
func (e *PersistenceError) Is(target error) bool {
	_, ok := target.(*PersistenceError)
	return ok
}
