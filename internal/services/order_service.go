package services

import (
	"log"
	"strings"
	"time"

	"distribution_manager/internal/engine"
	"distribution_manager/internal/models"
	"distribution_manager/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubmitOrderInput carries everything needed to turn an assembled cart into
// a persisted order.
type SubmitOrderInput struct {
	RetailerID      *uint
	CustomerID      *uint
	Items           []engine.LineItem
	DiscountPercent decimal.Decimal
	Status          string
	Notes           string
	DeliveryDate    *time.Time
	CreatedBy       uint
}

type OrderService interface {
	// BuildLineItem validates the product and quantity, then appends a new
	// line item. Duplicate products produce distinct lines.
	BuildLineItem(productID uint, quantity int, existing []engine.LineItem) (engine.LineItem, []engine.LineItem, error)
	PreviewTotals(items []engine.LineItem, discountPercent decimal.Decimal) engine.Totals
	SubmitOrder(input SubmitOrderInput) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetOrderItems(orderID uint) ([]*models.OrderItem, error)
	GetOrdersByRetailer(retailerID uint) ([]models.Order, error)
	GetOrdersByCustomer(customerID uint) ([]models.Order, error)
	GetOrdersByDateRange(startDate, endDate time.Time) ([]models.Order, error)
	UpdateOrderStatus(orderID uint, status string) error
	GetAllOrders() ([]models.Order, error)
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	productRepo   repository.ProductRepository
	taxRate       decimal.Decimal
}

func NewOrderService(orderRepo repository.OrderRepository, orderItemRepo repository.OrderItemRepository, productRepo repository.ProductRepository, taxRate decimal.Decimal) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
		taxRate:       taxRate,
	}
}

func (s *orderService) BuildLineItem(productID uint, quantity int, existing []engine.LineItem) (engine.LineItem, []engine.LineItem, error) {
	if quantity <= 0 {
		return engine.LineItem{}, existing, &engine.ValidationError{
			Code:    engine.CodeInvalidQuantity,
			Field:   "quantity",
			Message: "quantity must be a positive integer",
		}
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return engine.LineItem{}, existing, &engine.PersistenceError{Op: "get product", Err: err}
	}
	if !product.IsActive || !product.UnitPrice.IsPositive() {
		return engine.LineItem{}, existing, &engine.ValidationError{
			Code:    engine.CodeInactiveProduct,
			Field:   "product_id",
			Message: "product is inactive or has no sale price",
		}
	}

	item, items := engine.AddLineItem(*product, quantity, existing)
	return item, items, nil
}

func (s *orderService) PreviewTotals(items []engine.LineItem, discountPercent decimal.Decimal) engine.Totals {
	return engine.ComputeTotals(items, discountPercent, s.taxRate)
}

func (s *orderService) SubmitOrder(input SubmitOrderInput) (*models.Order, error) {
	// All validation happens before any persistence call
	if err := engine.ValidateSubmission(input.RetailerID, input.CustomerID, input.Items); err != nil {
		return nil, err
	}

	totals := engine.ComputeTotals(input.Items, input.DiscountPercent, s.taxRate)

	status := input.Status
	if status == "" {
		status = string(models.OrderPending)
	}

	order := &models.Order{
		OrderNumber:     newOrderNumber(),
		RetailerID:      input.RetailerID,
		CustomerID:      input.CustomerID,
		OrderDate:       time.Now(),
		DeliveryDate:    input.DeliveryDate,
		Status:          status,
		Subtotal:        totals.Subtotal,
		TaxRate:         totals.TaxRate,
		TaxAmount:       totals.TaxAmount,
		DiscountPercent: totals.DiscountPercent,
		DiscountAmount:  totals.DiscountAmount,
		TotalAmount:     totals.TotalAmount,
		Notes:           input.Notes,
		CreatedBy:       input.CreatedBy,
	}

	items := make([]*models.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		items = append(items, &models.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
			TaxRate:     s.taxRate,
			// discount is tracked only at the order aggregate, never per line
			DiscountAmount: decimal.Zero,
		})
	}

	// duplicate lines for the same product decrement stock once, summed
	totalsByProduct := make(map[uint]int)
	productOrder := make([]uint, 0, len(input.Items))
	for _, line := range input.Items {
		if _, seen := totalsByProduct[line.ProductID]; !seen {
			productOrder = append(productOrder, line.ProductID)
		}
		totalsByProduct[line.ProductID] += line.Quantity
	}
	decrements := make([]repository.StockDecrement, 0, len(productOrder))
	for _, productID := range productOrder {
		decrements = append(decrements, repository.StockDecrement{
			ProductID: productID,
			Quantity:  totalsByProduct[productID],
		})
	}

	clampedIDs, err := s.orderRepo.CreateWithItems(order, items, decrements)
	if err != nil {
		return nil, &engine.PersistenceError{Op: "create order", Err: err}
	}

	for _, productID := range clampedIDs {
		log.Printf("consistency warning: stock for product %d clamped at zero during order %s", productID, order.OrderNumber)
	}

	return order, nil
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetOrderItems(orderID uint) ([]*models.OrderItem, error) {
	return s.orderItemRepo.GetByOrderID(orderID)
}

func (s *orderService) GetOrdersByRetailer(retailerID uint) ([]models.Order, error) {
	return s.orderRepo.GetByRetailerID(retailerID)
}

func (s *orderService) GetOrdersByCustomer(customerID uint) ([]models.Order, error) {
	return s.orderRepo.GetByCustomerID(customerID)
}

func (s *orderService) GetOrdersByDateRange(startDate, endDate time.Time) ([]models.Order, error) {
	return s.orderRepo.GetByDateRange(startDate, endDate)
}

func (s *orderService) UpdateOrderStatus(orderID uint, status string) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}

	// status is a flat field; no transition guards exist
	order.Status = status
	return s.orderRepo.Update(order)
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}
