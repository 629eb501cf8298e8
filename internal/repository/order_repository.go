package repository

import (
	"time"

	"distribution_manager/internal/engine"
	"distribution_manager/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StockDecrement is one inventory reservation applied during order submission.
type StockDecrement struct {
	ProductID uint
	Quantity  int
}

type OrderRepository interface {
	// CreateWithItems persists the order header, its items and the
	// inventory decrements in one transaction. A failure at any step rolls
	// back everything, so no orphaned header can remain. Returns the
	// product IDs whose decrement was clamped at zero.
	CreateWithItems(order *models.Order, items []*models.OrderItem, decrements []StockDecrement) (clampedProductIDs []uint, err error)
	GetByID(id uint) (*models.Order, error)
	GetByRetailerID(retailerID uint) ([]models.Order, error)
	GetByCustomerID(customerID uint) ([]models.Order, error)
	GetByDateRange(startDate, endDate time.Time) ([]models.Order, error)
	Update(order *models.Order) error
	Delete(id uint) error
	GetAll() ([]models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateWithItems(order *models.Order, items []*models.OrderItem, decrements []StockDecrement) ([]uint, error) {
	var clampedIDs []uint

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, item := range items {
			item.OrderID = order.ID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}

		for _, d := range decrements {
			var record models.InventoryRecord
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("product_id = ?", d.ProductID).First(&record).Error; err != nil {
				return err
			}

			newQuantity, clamped := engine.ClampAdjust(record.QuantityInStock, -d.Quantity)
			if clamped {
				clampedIDs = append(clampedIDs, d.ProductID)
			}

			if err := tx.Model(&models.InventoryRecord{}).
				Where("product_id = ?", d.ProductID).
				Update("quantity_in_stock", gorm.Expr("GREATEST(quantity_in_stock - ?, 0)", d.Quantity)).Error; err != nil {
				return err
			}

			if err := tx.Create(&models.InventoryMovement{
				ProductID:     d.ProductID,
				Delta:         -d.Quantity,
				QuantityAfter: newQuantity,
				Reason:        models.MovementOrderSubmission,
				Clamped:       clamped,
				CreatedBy:     order.CreatedBy,
			}).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return clampedIDs, nil
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByRetailerID(retailerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("retailer_id = ?", retailerID).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByCustomerID(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("customer_id = ?", customerID).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByDateRange(startDate, endDate time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("order_date BETWEEN ? AND ?", startDate, endDate).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) Delete(id uint) error {
	return r.db.Delete(&models.Order{}, id).Error
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Find(&orders).Error
	return orders, err
}
