package engine

import (
	"strconv"
	"strings"
)

// StockLevel classifies an inventory record from its current quantity and
// reorder level. Levels are derived on every read and never persisted.
type StockLevel string

const (
	StockIn  StockLevel = "in_stock"
	StockLow StockLevel = "low_stock"
	StockOut StockLevel = "out_of_stock"
)

// ClampAdjust applies a delta to the current quantity, clamping the result at
// zero. The clamped flag reports that an over-decrement was absorbed; callers
// log it as a consistency warning rather than failing the operation.
func ClampAdjust(current, delta int) (newQuantity int, clamped bool) {
	newQuantity = current + delta
	if newQuantity < 0 {
		return 0, true
	}
	return newQuantity, false
}

// ParseAbsoluteQuantity parses a manual stock-correction entry. Non-numeric
// and negative input is rejected with ValidationError(invalid_quantity).
func ParseAbsoluteQuantity(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return 0, &ValidationError{
			Code:    CodeInvalidQuantity,
			Field:   "quantity",
			Message: "quantity must be a non-negative integer",
		}
	}
	return value, nil
}

// ClassifyStock derives the stock level: out of stock at zero regardless of
// the reorder level, low stock at or below the reorder level, in stock above.
func ClassifyStock(quantityInStock, reorderLevel int) StockLevel {
	switch {
	case quantityInStock == 0:
		return StockOut
	case quantityInStock <= reorderLevel:
		return StockLow
	default:
		return StockIn
	}
}
