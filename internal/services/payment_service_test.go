package services

import (
	"errors"
	"testing"
	"time"

	"distribution_manager/internal/engine"
	"distribution_manager/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentRepo struct {
	payments []*models.Payment
}

func (f *fakePaymentRepo) Create(payment *models.Payment) error {
	payment.ID = uint(len(f.payments) + 1)
	f.payments = append(f.payments, payment)
	return nil
}

func (f *fakePaymentRepo) GetByID(id uint) (*models.Payment, error) { return nil, nil }

func (f *fakePaymentRepo) GetByOrderID(orderID uint) ([]models.Payment, error) {
	var out []models.Payment
	for _, payment := range f.payments {
		if payment.OrderID == orderID {
			out = append(out, *payment)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) SumByOrderID(orderID uint) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, payment := range f.payments {
		if payment.OrderID == orderID {
			total = total.Add(payment.Amount)
		}
	}
	return total, nil
}

func (f *fakePaymentRepo) Delete(id uint) error { return nil }

func orderFixture(id uint, total string) *models.Order {
	return &models.Order{
		ID:          id,
		OrderNumber: "ORD-TEST",
		OrderDate:   time.Now(),
		TotalAmount: decimal.RequireFromString(total),
	}
}

func TestRecordPaymentAndBalance(t *testing.T) {
	orderRepo := &fakeOrderRepo{orders: []*models.Order{orderFixture(1, "275.00")}}
	paymentRepo := &fakePaymentRepo{}
	svc := NewPaymentService(paymentRepo, orderRepo)

	_, err := svc.RecordPayment(1, dec("100.00"), string(models.PaymentBankTransfer), "TRX-1", 1)
	require.NoError(t, err)
	_, err = svc.RecordPayment(1, dec("75.00"), string(models.PaymentCash), "", 1)
	require.NoError(t, err)

	balance, err := svc.GetOrderBalance(1)
	require.NoError(t, err)
	assert.True(t, balance.Paid.Equal(dec("175.00")), "paid: %s", balance.Paid)
	assert.True(t, balance.Outstanding.Equal(dec("100.00")), "outstanding: %s", balance.Outstanding)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	orderRepo := &fakeOrderRepo{orders: []*models.Order{orderFixture(1, "50.00")}}
	paymentRepo := &fakePaymentRepo{}
	svc := NewPaymentService(paymentRepo, orderRepo)

	for _, amount := range []string{"0", "-10"} {
		_, err := svc.RecordPayment(1, dec(amount), string(models.PaymentCard), "", 1)
		require.Error(t, err, "amount %s", amount)
		assert.True(t, errors.Is(err, &engine.ValidationError{Code: engine.CodeInvalidAmount}))
	}
	assert.Empty(t, paymentRepo.payments)
}

func TestRecordPaymentRequiresExistingOrder(t *testing.T) {
	svc := NewPaymentService(&fakePaymentRepo{}, &fakeOrderRepo{})

	_, err := svc.RecordPayment(42, dec("10.00"), string(models.PaymentCard), "", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &engine.PersistenceError{}))
}
