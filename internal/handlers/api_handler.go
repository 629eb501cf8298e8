package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"distribution_manager/internal/engine"
	"distribution_manager/internal/models"
	"distribution_manager/internal/redis"
	"distribution_manager/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type APIHandler struct {
	userService      services.UserService
	productService   services.ProductService
	inventoryService services.InventoryService
	orderService     services.OrderService
	paymentService   services.PaymentService
	reportService    services.ReportService
	partnerService   services.PartnerService
	cache            *redis.Client
	sessionTimeout   time.Duration
}

func NewAPIHandler(
	userService services.UserService,
	productService services.ProductService,
	inventoryService services.InventoryService,
	orderService services.OrderService,
	paymentService services.PaymentService,
	reportService services.ReportService,
	partnerService services.PartnerService,
	cache *redis.Client,
	sessionTimeout time.Duration,
) *APIHandler {
	return &APIHandler{
		userService:      userService,
		productService:   productService,
		inventoryService: inventoryService,
		orderService:     orderService,
		paymentService:   paymentService,
		reportService:    reportService,
		partnerService:   partnerService,
		cache:            cache,
		sessionTimeout:   sessionTimeout,
	}
}

// respondError maps the engine's error taxonomy onto HTTP statuses. The
// backend message is passed through untranslated.
func respondError(c *gin.Context, err error) {
	var validationErr *engine.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "code": validationErr.Code, "field": validationErr.Field})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// currentSession resolves the acting user from the X-Session-ID header.
func (h *APIHandler) currentSession(c *gin.Context) (*redis.SessionData, bool) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return nil, false
	}

	session, err := h.cache.GetSession(sessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return nil, false
	}
	return session, true
}

// Auth endpoints

func (h *APIHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.userService.Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	sessionID := uuid.New().String()
	session := &redis.SessionData{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := h.cache.SetSession(sessionID, session, h.sessionTimeout); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "user": user})
}

func (h *APIHandler) Logout(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID != "" {
		h.cache.DeleteSession(sessionID)
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

func (h *APIHandler) CreateUser(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	role := req.Role
	if role == "" {
		role = string(models.Users)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     role,
		IsActive: true,
	}
	if err := h.userService.CreateUser(user, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Product endpoints

func (h *APIHandler) CreateProduct(c *gin.Context) {
	session, ok := h.currentSession(c)
	if !ok {
		return
	}

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product.CreatedBy = session.UserID
	if err := h.productService.CreateProduct(&product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *APIHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProductByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *APIHandler) ListProducts(c *gin.Context) {
	var (
		products []models.Product
		err      error
	)
	if c.Query("active") == "true" {
		products, err = h.productService.GetActiveProducts()
	} else {
		products, err = h.productService.GetAllProducts()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *APIHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product.ID = id
	if err := h.productService.UpdateProduct(&product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *APIHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
