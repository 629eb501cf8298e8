package handlers

import (
	"net/http"

	"distribution_manager/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *APIHandler) CreateRetailer(c *gin.Context) {
	if _, ok := h.currentSession(c); !ok {
		return
	}

	var retailer models.Retailer
	if err := c.ShouldBindJSON(&retailer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.partnerService.CreateRetailer(&retailer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, retailer)
}

func (h *APIHandler) GetRetailer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	retailer, err := h.partnerService.GetRetailerByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, retailer)
}

func (h *APIHandler) ListRetailers(c *gin.Context) {
	retailers, err := h.partnerService.GetAllRetailers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, retailers)
}

func (h *APIHandler) GetRetailerOrders(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	orders, err := h.orderService.GetOrdersByRetailer(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *APIHandler) CreateCustomer(c *gin.Context) {
	if _, ok := h.currentSession(c); !ok {
		return
	}

	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.partnerService.CreateCustomer(&customer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *APIHandler) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.partnerService.GetCustomerByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *APIHandler) ListCustomers(c *gin.Context) {
	customers, err := h.partnerService.GetAllCustomers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *APIHandler) GetCustomerOrders(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	orders, err := h.orderService.GetOrdersByCustomer(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *APIHandler) CreateWholesaler(c *gin.Context) {
	if _, ok := h.currentSession(c); !ok {
		return
	}

	var wholesaler models.Wholesaler
	if err := c.ShouldBindJSON(&wholesaler); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.partnerService.CreateWholesaler(&wholesaler); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wholesaler)
}

func (h *APIHandler) ListWholesalers(c *gin.Context) {
	wholesalers, err := h.partnerService.GetAllWholesalers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wholesalers)
}

func (h *APIHandler) CreateDesigner(c *gin.Context) {
	if _, ok := h.currentSession(c); !ok {
		return
	}

	var designer models.Designer
	if err := c.ShouldBindJSON(&designer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.partnerService.CreateDesigner(&designer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, designer)
}

func (h *APIHandler) ListDesigners(c *gin.Context) {
	designers, err := h.partnerService.GetAllDesigners()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, designers)
}
