package repository

import (
	"distribution_manager/internal/engine"
	"distribution_manager/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepository interface {
	Create(record *models.InventoryRecord) error
	GetByProductID(productID uint) (*models.InventoryRecord, error)
	// AdjustByDelta applies a clamped delta atomically and records a
	// movement row. The returned record carries the post-adjustment
	// quantity; clamped reports an absorbed over-decrement.
	AdjustByDelta(productID uint, delta int, reason string, actorID uint) (record *models.InventoryRecord, clamped bool, err error)
	SetQuantity(productID uint, quantity int, actorID uint) (*models.InventoryRecord, error)
	GetLowStock() ([]models.InventoryRecord, error)
	GetMovements(productID uint) ([]models.InventoryMovement, error)
	GetAll() ([]models.InventoryRecord, error)
	Update(record *models.InventoryRecord) error
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(record *models.InventoryRecord) error {
	return r.db.Create(record).Error
}

func (r *inventoryRepository) GetByProductID(productID uint) (*models.InventoryRecord, error) {
	var record models.InventoryRecord
	err := r.db.Where("product_id = ?", productID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *inventoryRepository) AdjustByDelta(productID uint, delta int, reason string, actorID uint) (*models.InventoryRecord, bool, error) {
	var record models.InventoryRecord
	var clamped bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("product_id = ?", productID).First(&record).Error; err != nil {
			return err
		}

		newQuantity, wasClamped := engine.ClampAdjust(record.QuantityInStock, delta)
		clamped = wasClamped

		// GREATEST keeps the update correct even if another writer slips
		// in between the lock release and a retried statement
		if err := tx.Model(&models.InventoryRecord{}).
			Where("product_id = ?", productID).
			Update("quantity_in_stock", gorm.Expr("GREATEST(quantity_in_stock + ?, 0)", delta)).Error; err != nil {
			return err
		}

		record.QuantityInStock = newQuantity
		return tx.Create(&models.InventoryMovement{
			ProductID:     productID,
			Delta:         delta,
			QuantityAfter: newQuantity,
			Reason:        reason,
			Clamped:       wasClamped,
			CreatedBy:     actorID,
		}).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &record, clamped, nil
}

func (r *inventoryRepository) SetQuantity(productID uint, quantity int, actorID uint) (*models.InventoryRecord, error) {
	var record models.InventoryRecord

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("product_id = ?", productID).First(&record).Error; err != nil {
			return err
		}

		delta := quantity - record.QuantityInStock
		if err := tx.Model(&models.InventoryRecord{}).
			Where("product_id = ?", productID).
			Update("quantity_in_stock", quantity).Error; err != nil {
			return err
		}

		record.QuantityInStock = quantity
		return tx.Create(&models.InventoryMovement{
			ProductID:     productID,
			Delta:         delta,
			QuantityAfter: quantity,
			Reason:        models.MovementAbsoluteSet,
			CreatedBy:     actorID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetLowStock derives the low-stock predicate in the query itself; there is
// no stored status column to drift out of sync.
func (r *inventoryRepository) GetLowStock() ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	err := r.db.Where("quantity_in_stock <= reorder_level AND quantity_in_stock > 0").Find(&records).Error
	return records, err
}

func (r *inventoryRepository) GetMovements(productID uint) ([]models.InventoryMovement, error) {
	var movements []models.InventoryMovement
	err := r.db.Where("product_id = ?", productID).Order("created_at DESC").Find(&movements).Error
	return movements, err
}

func (r *inventoryRepository) GetAll() ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	err := r.db.Find(&records).Error
	return records, err
}

func (r *inventoryRepository) Update(record *models.InventoryRecord) error {
	return r.db.Save(record).Error
}
