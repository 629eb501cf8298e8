package engine

import (
	"distribution_manager/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the platform-wide rate used when no per-product or
// configured rate applies.
var DefaultTaxRate = decimal.NewFromFloat(0.10)

var oneHundred = decimal.NewFromInt(100)

// LineItem is the transient in-memory form of one (product, quantity) pair
// within an order being assembled. UnitPrice is a snapshot taken when the
// item is added; later product price changes do not affect it.
type LineItem struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// Totals is the derived pricing breakdown for a set of line items. All fields
// carry full precision; rounding to 2 decimals happens only at serialization.
type Totals struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

// AddLineItem appends a new line item for the given product and quantity.
// Adding the same product twice yields two distinct items; lines are never
// merged by product. The caller is expected to have validated quantity > 0
// and that the product is active with a positive price.
func AddLineItem(product models.Product, quantity int, existing []LineItem) (LineItem, []LineItem) {
	item := LineItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   product.UnitPrice,
		LineTotal:   product.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
	return item, append(existing, item)
}

// ComputeTotals derives the full pricing breakdown. Tax is computed on the
// pre-discount subtotal, never on the discounted amount:
//
//	total = subtotal + subtotal*taxRate - subtotal*discountPercent/100
//
// An empty item list yields all-zero totals; rejecting empty orders is the
// submission path's job, not this function's.
func ComputeTotals(items []LineItem, discountPercent, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		// line_total is always recomputed from quantity and unit price
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	taxAmount := subtotal.Mul(taxRate)
	discountAmount := subtotal.Mul(discountPercent).Div(oneHundred)

	return Totals{
		Subtotal:        subtotal,
		TaxRate:         taxRate,
		TaxAmount:       taxAmount,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		TotalAmount:     subtotal.Add(taxAmount).Sub(discountAmount),
	}
}

// ValidateSubmission checks the order submission preconditions: exactly one
// buyer identity set and a non-empty item list. It performs no I/O, so a
// failure leaves no side effects anywhere.
func ValidateSubmission(retailerID, customerID *uint, items []LineItem) error {
	if (retailerID == nil) == (customerID == nil) {
		return &ValidationError{
			Code:    CodeMissingBuyer,
			Field:   "buyer",
			Message: "exactly one of retailer or customer must be set",
		}
	}
	if len(items) == 0 {
		return &ValidationError{
			Code:    CodeEmptyOrder,
			Field:   "items",
			Message: "order must contain at least one line item",
		}
	}
	return nil
}
