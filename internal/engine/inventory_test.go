package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampAdjust(t *testing.T) {
	tests := []struct {
		name        string
		current     int
		delta       int
		wantQty     int
		wantClamped bool
	}{
		{"increment", 10, 1, 11, false},
		{"decrement", 10, -1, 9, false},
		{"decrement to zero", 5, -5, 0, false},
		{"over-decrement clamps to zero", 3, -5, 0, true},
		{"huge over-decrement clamps to zero", 3, -103, 0, true},
		{"zero delta", 7, 0, 7, false},
		{"restock", 0, 25, 25, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qty, clamped := ClampAdjust(tt.current, tt.delta)
			assert.Equal(t, tt.wantQty, qty)
			assert.Equal(t, tt.wantClamped, clamped)
			assert.GreaterOrEqual(t, qty, 0, "stock must never go negative")
		})
	}
}

func TestParseAbsoluteQuantity(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"plain integer", "42", 42, false},
		{"zero", "0", 0, false},
		{"surrounding whitespace", " 15 ", 15, false},
		{"negative", "-3", 0, true},
		{"non-numeric", "abc", 0, true},
		{"decimal", "4.5", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAbsoluteQuantity(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, &ValidationError{Code: CodeInvalidQuantity}))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		reorderLevel int
		want         StockLevel
	}{
		{"above reorder level", 10, 5, StockIn},
		{"at reorder level", 5, 5, StockLow},
		{"below reorder level", 3, 5, StockLow},
		{"zero is out of stock", 0, 5, StockOut},
		{"zero with zero reorder level", 0, 0, StockOut},
		{"positive with zero reorder level", 1, 0, StockIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStock(tt.quantity, tt.reorderLevel))
		})
	}
}
