package handlers

import (
	"net/http"
	"time"

	"distribution_manager/internal/engine"
	"distribution_manager/internal/models"
	"distribution_manager/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type orderLineRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type createOrderRequest struct {
	RetailerID      *uint              `json:"retailer_id"`
	CustomerID      *uint              `json:"customer_id"`
	Items           []orderLineRequest `json:"items"`
	DiscountPercent decimal.Decimal    `json:"discount_percent"`
	Status          string             `json:"status"`
	Notes           string             `json:"notes"`
	DeliveryDate    *time.Time         `json:"delivery_date"`
}

// orderView rounds monetary amounts to 2 decimals for display; stored values
// keep full precision.
func orderView(order *models.Order) gin.H {
	return gin.H{
		"id":               order.ID,
		"order_number":     order.OrderNumber,
		"retailer_id":      order.RetailerID,
		"customer_id":      order.CustomerID,
		"order_date":       order.OrderDate,
		"delivery_date":    order.DeliveryDate,
		"status":           order.Status,
		"subtotal":         order.Subtotal.Round(2),
		"tax_rate":         order.TaxRate,
		"tax_amount":       order.TaxAmount.Round(2),
		"discount_percent": order.DiscountPercent,
		"discount_amount":  order.DiscountAmount.Round(2),
		"total_amount":     order.TotalAmount.Round(2),
		"notes":            order.Notes,
		"created_by":       order.CreatedBy,
	}
}

func (h *APIHandler) CreateOrder(c *gin.Context) {
	session, ok := h.currentSession(c)
	if !ok {
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// the engine does not validate discount range; the boundary does
	if req.DiscountPercent.IsNegative() || req.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		respondError(c, &engine.ValidationError{
			Code:    engine.CodeInvalidDiscount,
			Field:   "discount_percent",
			Message: "discount percent must be between 0 and 100",
		})
		return
	}

	var items []engine.LineItem
	for _, line := range req.Items {
		var err error
		_, items, err = h.orderService.BuildLineItem(line.ProductID, line.Quantity, items)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	order, err := h.orderService.SubmitOrder(services.SubmitOrderInput{
		RetailerID:      req.RetailerID,
		CustomerID:      req.CustomerID,
		Items:           items,
		DiscountPercent: req.DiscountPercent,
		Status:          req.Status,
		Notes:           req.Notes,
		DeliveryDate:    req.DeliveryDate,
		CreatedBy:       session.UserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, orderView(order))
}

func (h *APIHandler) PreviewOrderTotals(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var items []engine.LineItem
	for _, line := range req.Items {
		var err error
		_, items, err = h.orderService.BuildLineItem(line.ProductID, line.Quantity, items)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	totals := h.orderService.PreviewTotals(items, req.DiscountPercent)
	c.JSON(http.StatusOK, gin.H{
		"subtotal":        totals.Subtotal.Round(2),
		"tax_amount":      totals.TaxAmount.Round(2),
		"discount_amount": totals.DiscountAmount.Round(2),
		"total_amount":    totals.TotalAmount.Round(2),
		"items":           items,
	})
}

func (h *APIHandler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	items, err := h.orderService.GetOrderItems(id)
	if err != nil {
		respondError(c, err)
		return
	}

	view := orderView(order)
	view["items"] = items
	c.JSON(http.StatusOK, view)
}

func (h *APIHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *APIHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.orderService.UpdateOrderStatus(id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// Payment endpoints

func (h *APIHandler) RecordPayment(c *gin.Context) {
	session, ok := h.currentSession(c)
	if !ok {
		return
	}

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Amount    decimal.Decimal `json:"amount"`
		Method    string          `json:"method" binding:"required"`
		Reference string          `json:"reference"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	payment, err := h.paymentService.RecordPayment(orderID, req.Amount, req.Method, req.Reference, session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *APIHandler) GetOrderBalance(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	balance, err := h.paymentService.GetOrderBalance(orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order_id":     balance.OrderID,
		"total_amount": balance.TotalAmount.Round(2),
		"paid":         balance.Paid.Round(2),
		"outstanding":  balance.Outstanding.Round(2),
	})
}

// Report endpoints

func (h *APIHandler) SalesSummary(c *gin.Context) {
	session, ok := h.currentSession(c)
	if !ok {
		return
	}

	startDate, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, expected YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date, expected YYYY-MM-DD"})
		return
	}

	summary, err := h.reportService.SalesSummary(startDate, endDate, session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *APIHandler) LowStockReport(c *gin.Context) {
	views, err := h.reportService.LowStockReport()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
