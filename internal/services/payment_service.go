package services

import (
	"time"

	"distribution_manager/internal/engine"
	"distribution_manager/internal/models"
	"distribution_manager/internal/repository"

	"github.com/shopspring/decimal"
)

// OrderBalance summarizes what has been paid against an order so far.
type OrderBalance struct {
	OrderID     uint            `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

type PaymentService interface {
	RecordPayment(orderID uint, amount decimal.Decimal, method, reference string, actorID uint) (*models.Payment, error)
	GetPaymentsByOrder(orderID uint) ([]models.Payment, error)
	GetOrderBalance(orderID uint) (*OrderBalance, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, orderRepo: orderRepo}
}

func (s *paymentService) RecordPayment(orderID uint, amount decimal.Decimal, method, reference string, actorID uint) (*models.Payment, error) {
	if !amount.IsPositive() {
		return nil, &engine.ValidationError{
			Code:    engine.CodeInvalidAmount,
			Field:   "amount",
			Message: "payment amount must be positive",
		}
	}

	if _, err := s.orderRepo.GetByID(orderID); err != nil {
		return nil, &engine.PersistenceError{Op: "get order", Err: err}
	}

	payment := &models.Payment{
		OrderID:    orderID,
		Amount:     amount,
		Method:     method,
		Reference:  reference,
		Status:     "received",
		ReceivedAt: time.Now(),
		CreatedBy:  actorID,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, &engine.PersistenceError{Op: "create payment", Err: err}
	}
	return payment, nil
}

func (s *paymentService) GetPaymentsByOrder(orderID uint) ([]models.Payment, error) {
	return s.paymentRepo.GetByOrderID(orderID)
}

// GetOrderBalance derives the outstanding amount; it is never stored.
func (s *paymentService) GetOrderBalance(orderID uint) (*OrderBalance, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, &engine.PersistenceError{Op: "get order", Err: err}
	}

	paid, err := s.paymentRepo.SumByOrderID(orderID)
	if err != nil {
		return nil, &engine.PersistenceError{Op: "sum payments", Err: err}
	}

	return &OrderBalance{
		OrderID:     orderID,
		TotalAmount: order.TotalAmount,
		Paid:        paid,
		Outstanding: order.TotalAmount.Sub(paid),
	}, nil
}
