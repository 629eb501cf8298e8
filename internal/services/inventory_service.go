package services

import (
	"log"

	"distribution_manager/internal/engine"
	"distribution_manager/internal/models"
	"distribution_manager/internal/repository"
)

// StockView is an inventory record with its derived stock level attached.
// The level is recomputed on every read and never stored.
type StockView struct {
	models.InventoryRecord
	Level engine.StockLevel `json:"stock_level"`
}

type InventoryService interface {
	CreateRecord(record *models.InventoryRecord) error
	GetRecord(productID uint) (*StockView, error)
	IncrementStock(productID uint, actorID uint) (*StockView, error)
	DecrementStock(productID uint, actorID uint) (*StockView, error)
	AdjustByDelta(productID uint, delta int, actorID uint) (*StockView, error)
	// SetAbsoluteQuantity takes the raw manual entry; non-numeric or
	// negative input is rejected before any write.
	SetAbsoluteQuantity(productID uint, raw string, actorID uint) (*StockView, error)
	GetLowStock() ([]StockView, error)
	GetMovements(productID uint) ([]models.InventoryMovement, error)
	GetAll() ([]StockView, error)
	UpdateThresholds(productID uint, reorderLevel, reorderQuantity int) (*StockView, error)
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
}

func NewInventoryService(inventoryRepo repository.InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

func view(record *models.InventoryRecord) *StockView {
	return &StockView{
		InventoryRecord: *record,
		Level:           engine.ClassifyStock(record.QuantityInStock, record.ReorderLevel),
	}
}

func (s *inventoryService) CreateRecord(record *models.InventoryRecord) error {
	if err := s.inventoryRepo.Create(record); err != nil {
		return &engine.PersistenceError{Op: "create inventory record", Err: err}
	}
	return nil
}

func (s *inventoryService) GetRecord(productID uint) (*StockView, error) {
	record, err := s.inventoryRepo.GetByProductID(productID)
	if err != nil {
		return nil, &engine.PersistenceError{Op: "get inventory record", Err: err}
	}
	return view(record), nil
}

func (s *inventoryService) IncrementStock(productID uint, actorID uint) (*StockView, error) {
	return s.AdjustByDelta(productID, 1, actorID)
}

func (s *inventoryService) DecrementStock(productID uint, actorID uint) (*StockView, error) {
	return s.AdjustByDelta(productID, -1, actorID)
}

func (s *inventoryService) AdjustByDelta(productID uint, delta int, actorID uint) (*StockView, error) {
	record, clamped, err := s.inventoryRepo.AdjustByDelta(productID, delta, models.MovementManualAdjustment, actorID)
	if err != nil {
		return nil, &engine.PersistenceError{Op: "adjust inventory", Err: err}
	}
	if clamped {
		log.Printf("consistency warning: stock for product %d clamped at zero (delta %d)", productID, delta)
	}
	return view(record), nil
}

func (s *inventoryService) SetAbsoluteQuantity(productID uint, raw string, actorID uint) (*StockView, error) {
	quantity, err := engine.ParseAbsoluteQuantity(raw)
	if err != nil {
		return nil, err
	}

	record, err := s.inventoryRepo.SetQuantity(productID, quantity, actorID)
	if err != nil {
		return nil, &engine.PersistenceError{Op: "set inventory quantity", Err: err}
	}
	return view(record), nil
}

func (s *inventoryService) GetLowStock() ([]StockView, error) {
	records, err := s.inventoryRepo.GetLowStock()
	if err != nil {
		return nil, &engine.PersistenceError{Op: "get low stock", Err: err}
	}

	views := make([]StockView, 0, len(records))
	for i := range records {
		views = append(views, *view(&records[i]))
	}
	return views, nil
}

func (s *inventoryService) GetMovements(productID uint) ([]models.InventoryMovement, error) {
	return s.inventoryRepo.GetMovements(productID)
}

func (s *inventoryService) GetAll() ([]StockView, error) {
	records, err := s.inventoryRepo.GetAll()
	if err != nil {
		return nil, &engine.PersistenceError{Op: "list inventory", Err: err}
	}

	views := make([]StockView, 0, len(records))
	for i := range records {
		views = append(views, *view(&records[i]))
	}
	return views, nil
}

func (s *inventoryService) UpdateThresholds(productID uint, reorderLevel, reorderQuantity int) (*StockView, error) {
	if reorderLevel < 0 || reorderQuantity < 0 {
		return nil, &engine.ValidationError{
			Code:    engine.CodeInvalidQuantity,
			Field:   "reorder_level",
			Message: "reorder thresholds must be non-negative",
		}
	}

	record, err := s.inventoryRepo.GetByProductID(productID)
	if err != nil {
		return nil, &engine.PersistenceError{Op: "get inventory record", Err: err}
	}

	record.ReorderLevel = reorderLevel
	record.ReorderQuantity = reorderQuantity
	if err := s.inventoryRepo.Update(record); err != nil {
		return nil, &engine.PersistenceError{Op: "update inventory record", Err: err}
	}
	return view(record), nil
}
