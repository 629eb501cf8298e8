package repository

import (
	"distribution_manager/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id uint) (*models.Payment, error)
	GetByOrderID(orderID uint) ([]models.Payment, error)
	SumByOrderID(orderID uint) (decimal.Decimal, error)
	Delete(id uint) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *paymentRepository) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) GetByOrderID(orderID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("order_id = ?", orderID).Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) SumByOrderID(orderID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&models.Payment{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *paymentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Payment{}, id).Error
}
