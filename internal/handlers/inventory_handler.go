package handlers

import (
	"net/http"

	"distribution_manager/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *APIHandler) CreateInventoryRecord(c *gin.Context) {
	if _, ok := h.currentSession(c); !ok {
		return
	}

	var record models.InventoryRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.inventoryService.CreateRecord(&record); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *APIHandler) GetInventoryRecord(c *gin.Context) {
	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	stock, err := h.inventoryService.GetRecord(productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stock)
}

func (h *APIHandler) ListInventory(c *gin.Context) {
	views, err := h.inventoryService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// AdjustInventory applies a signed delta; the stored quantity clamps at zero.
func (h *APIHandler) AdjustInventory(c *gin.Context) {
	session, ok := h.currentSession(c)
	if !ok {
		return
	}

	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	stock, err := h.inventoryService.AdjustByDelta(productID, req.Delta, session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stock)
}

// SetInventoryQuantity takes the raw manual entry as a string so that
// non-numeric input is rejected by the engine, not silently coerced.
func (h *APIHandler) SetInventoryQuantity(c *gin.Context) {
	session, ok := h.currentSession(c)
	if !ok {
		return
	}

	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	var req struct {
		Quantity string `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	stock, err := h.inventoryService.SetAbsoluteQuantity(productID, req.Quantity, session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stock)
}

func (h *APIHandler) UpdateInventoryThresholds(c *gin.Context) {
	if _, ok := h.currentSession(c); !ok {
		return
	}

	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	var req struct {
		ReorderLevel    int `json:"reorder_level"`
		ReorderQuantity int `json:"reorder_quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	stock, err := h.inventoryService.UpdateThresholds(productID, req.ReorderLevel, req.ReorderQuantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stock)
}

func (h *APIHandler) GetInventoryMovements(c *gin.Context) {
	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	movements, err := h.inventoryService.GetMovements(productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movements)
}
