package repository

import (
	"distribution_manager/internal/models"

	"gorm.io/gorm"
)

type RetailerRepository interface {
	Create(retailer *models.Retailer) error
	GetByID(id uint) (*models.Retailer, error)
	GetByEmail(email string) (*models.Retailer, error)
	Update(retailer *models.Retailer) error
	Delete(id uint) error
	GetAll() ([]models.Retailer, error)
}

type retailerRepository struct {
	db *gorm.DB
}

func NewRetailerRepository(db *gorm.DB) RetailerRepository {
	return &retailerRepository{db: db}
}

func (r *retailerRepository) Create(retailer *models.Retailer) error {
	return r.db.Create(retailer).Error
}

func (r *retailerRepository) GetByID(id uint) (*models.Retailer, error) {
	var retailer models.Retailer
	err := r.db.First(&retailer, id).Error
	if err != nil {
		return nil, err
	}
	return &retailer, nil
}

func (r *retailerRepository) GetByEmail(email string) (*models.Retailer, error) {
	var retailer models.Retailer
	err := r.db.Where("email = ?", email).First(&retailer).Error
	if err != nil {
		return nil, err
	}
	return &retailer, nil
}

func (r *retailerRepository) Update(retailer *models.Retailer) error {
	return r.db.Save(retailer).Error
}

func (r *retailerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Retailer{}, id).Error
}

func (r *retailerRepository) GetAll() ([]models.Retailer, error) {
	var retailers []models.Retailer
	err := r.db.Find(&retailers).Error
	return retailers, err
}

type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id uint) error
	GetAll() ([]models.Customer, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("email = ?", email).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Customer{}, id).Error
}

func (r *customerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Find(&customers).Error
	return customers, err
}
