package services

import (
	"errors"
	"testing"
	"time"

	"distribution_manager/internal/engine"
	"distribution_manager/internal/models"
	"distribution_manager/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeOrderRepo struct {
	orders     []*models.Order
	items      []*models.OrderItem
	decrements []repository.StockDecrement
	clampedIDs []uint
	createErr  error
}

func (f *fakeOrderRepo) CreateWithItems(order *models.Order, items []*models.OrderItem, decrements []repository.StockDecrement) ([]uint, error) {
	if f.createErr != nil {
		// transactional: nothing is recorded on failure
		return nil, f.createErr
	}
	order.ID = uint(len(f.orders) + 1)
	f.orders = append(f.orders, order)
	for _, item := range items {
		item.OrderID = order.ID
		f.items = append(f.items, item)
	}
	f.decrements = append(f.decrements, decrements...)
	return f.clampedIDs, nil
}

func (f *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	for _, order := range f.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeOrderRepo) GetByRetailerID(retailerID uint) ([]models.Order, error) { return nil, nil }
func (f *fakeOrderRepo) GetByCustomerID(customerID uint) ([]models.Order, error) { return nil, nil }
func (f *fakeOrderRepo) GetByDateRange(startDate, endDate time.Time) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}
func (f *fakeOrderRepo) Update(order *models.Order) error { return nil }
func (f *fakeOrderRepo) Delete(id uint) error             { return nil }
func (f *fakeOrderRepo) GetAll() ([]models.Order, error)  { return nil, nil }

type fakeOrderItemRepo struct{}

func (f *fakeOrderItemRepo) GetByID(id uint) (*models.OrderItem, error)              { return nil, nil }
func (f *fakeOrderItemRepo) GetByOrderID(orderID uint) ([]*models.OrderItem, error)  { return nil, nil }
func (f *fakeOrderItemRepo) Update(orderItem *models.OrderItem) error                { return nil }
func (f *fakeOrderItemRepo) Delete(id uint) error                                    { return nil }
func (f *fakeOrderItemRepo) GetByProductID(productID uint) ([]*models.OrderItem, error) { return nil, nil }

type fakeProductRepo struct {
	products map[uint]*models.Product
}

func (f *fakeProductRepo) Create(product *models.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}
func (f *fakeProductRepo) GetBySKU(sku string) (*models.Product, error)              { return nil, nil }
func (f *fakeProductRepo) GetActive() ([]models.Product, error)                      { return nil, nil }
func (f *fakeProductRepo) GetByCategory(category string) ([]models.Product, error)   { return nil, nil }
func (f *fakeProductRepo) Update(product *models.Product) error                      { return nil }
func (f *fakeProductRepo) Delete(id uint) error                                      { return nil }
func (f *fakeProductRepo) GetAll() ([]models.Product, error)                         { return nil, nil }

func newTestOrderService(orderRepo *fakeOrderRepo, products map[uint]*models.Product) OrderService {
	return NewOrderService(orderRepo, &fakeOrderItemRepo{}, &fakeProductRepo{products: products}, dec("0.10"))
}

func ptrUint(v uint) *uint { return &v }

func cartItems() []engine.LineItem {
	return []engine.LineItem{
		{ProductID: 1, ProductName: "Ceramic Vase", Quantity: 2, UnitPrice: dec("100.00"), LineTotal: dec("200.00")},
		{ProductID: 2, ProductName: "Woven Basket", Quantity: 1, UnitPrice: dec("50.00"), LineTotal: dec("50.00")},
	}
}

func TestSubmitOrderPersistsConsistentTotals(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := newTestOrderService(repo, nil)

	order, err := svc.SubmitOrder(SubmitOrderInput{
		RetailerID:      ptrUint(7),
		Items:           cartItems(),
		DiscountPercent: dec("10"),
		CreatedBy:       1,
	})
	require.NoError(t, err)

	assert.True(t, order.Subtotal.Equal(dec("250.00")), "subtotal: %s", order.Subtotal)
	assert.True(t, order.TaxAmount.Equal(dec("25.00")), "tax: %s", order.TaxAmount)
	assert.True(t, order.DiscountAmount.Equal(dec("25.00")), "discount: %s", order.DiscountAmount)
	assert.True(t, order.TotalAmount.Equal(dec("250.00")), "total: %s", order.TotalAmount)
	assert.Equal(t, string(models.OrderPending), order.Status)
	assert.NotEmpty(t, order.OrderNumber)

	require.Len(t, repo.items, 2)
	for _, item := range repo.items {
		assert.True(t, item.TaxRate.Equal(dec("0.10")), "per-line tax rate snapshot")
		assert.True(t, item.DiscountAmount.IsZero(), "per-line discount is always zero")
	}

	require.Len(t, repo.decrements, 2)
	assert.Equal(t, repository.StockDecrement{ProductID: 1, Quantity: 2}, repo.decrements[0])
	assert.Equal(t, repository.StockDecrement{ProductID: 2, Quantity: 1}, repo.decrements[1])
}

func TestSubmitOrderMergesDecrementsForDuplicateLines(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := newTestOrderService(repo, nil)

	items := []engine.LineItem{
		{ProductID: 1, Quantity: 2, UnitPrice: dec("10.00")},
		{ProductID: 1, Quantity: 3, UnitPrice: dec("10.00")},
	}

	_, err := svc.SubmitOrder(SubmitOrderInput{CustomerID: ptrUint(3), Items: items, CreatedBy: 1})
	require.NoError(t, err)

	// two lines persisted, one summed decrement
	assert.Len(t, repo.items, 2)
	require.Len(t, repo.decrements, 1)
	assert.Equal(t, 5, repo.decrements[0].Quantity)
}

func TestSubmitOrderRejectsMissingBuyer(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := newTestOrderService(repo, nil)

	_, err := svc.SubmitOrder(SubmitOrderInput{Items: cartItems(), CreatedBy: 1})

	require.Error(t, err)
	assert.True(t, errors.Is(err, &engine.ValidationError{Code: engine.CodeMissingBuyer}))
	assert.Empty(t, repo.orders, "no header row may be written")
	assert.Empty(t, repo.items)
	assert.Empty(t, repo.decrements)
}

func TestSubmitOrderRejectsBothBuyersSet(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := newTestOrderService(repo, nil)

	_, err := svc.SubmitOrder(SubmitOrderInput{
		RetailerID: ptrUint(1),
		CustomerID: ptrUint(2),
		Items:      cartItems(),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, &engine.ValidationError{Code: engine.CodeMissingBuyer}))
	assert.Empty(t, repo.orders)
}

func TestSubmitOrderRejectsEmptyItems(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := newTestOrderService(repo, nil)

	_, err := svc.SubmitOrder(SubmitOrderInput{RetailerID: ptrUint(1)})

	require.Error(t, err)
	assert.True(t, errors.Is(err, &engine.ValidationError{Code: engine.CodeEmptyOrder}))
	assert.Empty(t, repo.orders)
}

func TestSubmitOrderSurfacesPersistenceError(t *testing.T) {
	repo := &fakeOrderRepo{createErr: errors.New("connection refused")}
	svc := newTestOrderService(repo, nil)

	_, err := svc.SubmitOrder(SubmitOrderInput{RetailerID: ptrUint(1), Items: cartItems()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, &engine.PersistenceError{}))
	// the backend message stays reachable, untranslated
	assert.Contains(t, err.Error(), "connection refused")
	assert.Empty(t, repo.orders, "rolled back transaction leaves nothing behind")
}

func TestBuildLineItem(t *testing.T) {
	products := map[uint]*models.Product{
		1: {ID: 1, Name: "Ceramic Vase", UnitPrice: dec("100.00"), IsActive: true},
		2: {ID: 2, Name: "Retired Lamp", UnitPrice: dec("80.00"), IsActive: false},
		3: {ID: 3, Name: "Free Sample", UnitPrice: dec("0"), IsActive: true},
	}
	svc := newTestOrderService(&fakeOrderRepo{}, products)

	item, items, err := svc.BuildLineItem(1, 2, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, item.LineTotal.Equal(dec("200.00")))

	_, _, err = svc.BuildLineItem(1, 0, nil)
	assert.True(t, errors.Is(err, &engine.ValidationError{Code: engine.CodeInvalidQuantity}))

	_, _, err = svc.BuildLineItem(2, 1, nil)
	assert.True(t, errors.Is(err, &engine.ValidationError{Code: engine.CodeInactiveProduct}))

	_, _, err = svc.BuildLineItem(3, 1, nil)
	assert.True(t, errors.Is(err, &engine.ValidationError{Code: engine.CodeInactiveProduct}))

	_, _, err = svc.BuildLineItem(99, 1, nil)
	assert.True(t, errors.Is(err, &engine.PersistenceError{}))
}

func TestPreviewTotalsUsesConfiguredTaxRate(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{}, &fakeOrderItemRepo{}, &fakeProductRepo{}, dec("0.19"))

	totals := svc.PreviewTotals(cartItems(), dec("0"))

	assert.True(t, totals.TaxAmount.Equal(dec("47.50")), "got %s", totals.TaxAmount)
}
