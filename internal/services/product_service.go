package services

import (
	"errors"
	"time"

	"distribution_manager/internal/engine"
	"distribution_manager/internal/models"
	"distribution_manager/internal/redis"
	"distribution_manager/internal/repository"
)

type ProductService interface {
	CreateProduct(product *models.Product) error
	GetProductByID(id uint) (*models.Product, error)
	GetProductBySKU(sku string) (*models.Product, error)
	GetActiveProducts() ([]models.Product, error)
	UpdateProduct(product *models.Product) error
	DeleteProduct(id uint) error
	GetAllProducts() ([]models.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	cache       *redis.Client
	cacheTTL    time.Duration
}

func NewProductService(productRepo repository.ProductRepository, cache *redis.Client, cacheTTL time.Duration) ProductService {
	return &productService{productRepo: productRepo, cache: cache, cacheTTL: cacheTTL}
}

func (s *productService) CreateProduct(product *models.Product) error {
	if product.SKU == "" {
		return &engine.ValidationError{Code: engine.CodeInvalidProduct, Field: "sku", Message: "sku is required"}
	}
	if product.UnitPrice.IsNegative() {
		return &engine.ValidationError{Code: engine.CodeInvalidProduct, Field: "unit_price", Message: "unit price must not be negative"}
	}
	return s.productRepo.Create(product)
}

// GetProductByID reads through the Redis cache; cache failures fall back to
// the database silently.
func (s *productService) GetProductByID(id uint) (*models.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetProduct(id); err == nil {
			return cached, nil
		}
	}

	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetProduct(product, s.cacheTTL)
	}
	return product, nil
}

func (s *productService) GetProductBySKU(sku string) (*models.Product, error) {
	return s.productRepo.GetBySKU(sku)
}

func (s *productService) GetActiveProducts() ([]models.Product, error) {
	return s.productRepo.GetActive()
}

func (s *productService) UpdateProduct(product *models.Product) error {
	if product.ID == 0 {
		return errors.New("product id is required")
	}
	if err := s.productRepo.Update(product); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.InvalidateProduct(product.ID)
	}
	return nil
}

func (s *productService) DeleteProduct(id uint) error {
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.InvalidateProduct(id)
	}
	return nil
}

func (s *productService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}
