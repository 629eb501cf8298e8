package engine

import (
	"errors"
	"testing"

	"distribution_manager/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func product(id uint, name, price string) models.Product {
	return models.Product{ID: id, Name: name, UnitPrice: dec(price), IsActive: true}
}

func TestAddLineItem(t *testing.T) {
	item, items := AddLineItem(product(1, "Ceramic Vase", "100.00"), 2, nil)

	require.Len(t, items, 1)
	assert.Equal(t, uint(1), item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.LineTotal.Equal(dec("200.00")), "line_total = quantity * unit_price")
}

func TestAddLineItemNoMergeForDuplicateProduct(t *testing.T) {
	p := product(1, "Ceramic Vase", "100.00")

	_, items := AddLineItem(p, 2, nil)
	_, items = AddLineItem(p, 3, items)

	// same product added twice stays two distinct lines
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 3, items[1].Quantity)
}

func TestAddLineItemSnapshotsUnitPrice(t *testing.T) {
	p := product(1, "Ceramic Vase", "100.00")
	item, _ := AddLineItem(p, 1, nil)

	p.UnitPrice = dec("150.00")

	assert.True(t, item.UnitPrice.Equal(dec("100.00")), "captured price must not track later product changes")
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name            string
		items           []LineItem
		discountPercent string
		taxRate         string
		subtotal        string
		taxAmount       string
		discountAmount  string
		totalAmount     string
	}{
		{
			name: "two item cart with ten percent discount",
			items: []LineItem{
				{ProductID: 1, Quantity: 2, UnitPrice: dec("100.00")},
				{ProductID: 2, Quantity: 1, UnitPrice: dec("50.00")},
			},
			discountPercent: "10",
			taxRate:         "0.10",
			subtotal:        "250.00",
			taxAmount:       "25.00",
			discountAmount:  "25.00",
			totalAmount:     "250.00",
		},
		{
			name: "no discount",
			items: []LineItem{
				{ProductID: 1, Quantity: 3, UnitPrice: dec("19.99")},
			},
			discountPercent: "0",
			taxRate:         "0.10",
			subtotal:        "59.97",
			taxAmount:       "5.997",
			discountAmount:  "0",
			totalAmount:     "65.967",
		},
		{
			name:            "empty item list yields zeros",
			items:           nil,
			discountPercent: "10",
			taxRate:         "0.10",
			subtotal:        "0",
			taxAmount:       "0",
			discountAmount:  "0",
			totalAmount:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(tt.items, dec(tt.discountPercent), dec(tt.taxRate))

			assert.True(t, totals.Subtotal.Equal(dec(tt.subtotal)), "subtotal: got %s", totals.Subtotal)
			assert.True(t, totals.TaxAmount.Equal(dec(tt.taxAmount)), "tax_amount: got %s", totals.TaxAmount)
			assert.True(t, totals.DiscountAmount.Equal(dec(tt.discountAmount)), "discount_amount: got %s", totals.DiscountAmount)
			assert.True(t, totals.TotalAmount.Equal(dec(tt.totalAmount)), "total_amount: got %s", totals.TotalAmount)
		})
	}
}

func TestComputeTotalsIdentity(t *testing.T) {
	items := []LineItem{
		{ProductID: 1, Quantity: 7, UnitPrice: dec("13.37")},
		{ProductID: 2, Quantity: 2, UnitPrice: dec("0.99")},
		{ProductID: 1, Quantity: 1, UnitPrice: dec("13.37")},
	}

	totals := ComputeTotals(items, dec("12.5"), dec("0.10"))

	// total_amount == subtotal + tax_amount - discount_amount, exactly
	expect := totals.Subtotal.Add(totals.TaxAmount).Sub(totals.DiscountAmount)
	assert.True(t, totals.TotalAmount.Equal(expect))

	// subtotal == sum of quantity * unit price
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	assert.True(t, totals.Subtotal.Equal(sum))
}

func TestComputeTotalsTaxOnPreDiscountSubtotal(t *testing.T) {
	items := []LineItem{{ProductID: 1, Quantity: 1, UnitPrice: dec("100.00")}}

	totals := ComputeTotals(items, dec("50"), dec("0.10"))

	// tax is 10% of 100, not 10% of the discounted 50
	assert.True(t, totals.TaxAmount.Equal(dec("10.00")), "got %s", totals.TaxAmount)
	assert.True(t, totals.TotalAmount.Equal(dec("60.00")), "got %s", totals.TotalAmount)
}

func TestValidateSubmission(t *testing.T) {
	retailerID := uint(1)
	customerID := uint(2)
	items := []LineItem{{ProductID: 1, Quantity: 1, UnitPrice: dec("10.00")}}

	tests := []struct {
		name       string
		retailerID *uint
		customerID *uint
		items      []LineItem
		wantCode   string
	}{
		{"retailer order ok", &retailerID, nil, items, ""},
		{"customer order ok", nil, &customerID, items, ""},
		{"no buyer set", nil, nil, items, CodeMissingBuyer},
		{"both buyers set", &retailerID, &customerID, items, CodeMissingBuyer},
		{"empty items", &retailerID, nil, nil, CodeEmptyOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubmission(tt.retailerID, tt.customerID, tt.items)
			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, &ValidationError{Code: tt.wantCode}), "got %v", err)
		})
	}
}
