package services

import (
	"distribution_manager/internal/models"
	"distribution_manager/internal/repository"
)

// PartnerService covers the people and businesses around an order: buyers
// (retailers and customers) and supply-side partners (wholesalers and
// designers). Plain CRUD, no invariants beyond what the database enforces.
type PartnerService interface {
	CreateRetailer(retailer *models.Retailer) error
	GetRetailerByID(id uint) (*models.Retailer, error)
	GetAllRetailers() ([]models.Retailer, error)
	UpdateRetailer(retailer *models.Retailer) error
	DeleteRetailer(id uint) error

	CreateCustomer(customer *models.Customer) error
	GetCustomerByID(id uint) (*models.Customer, error)
	GetAllCustomers() ([]models.Customer, error)
	UpdateCustomer(customer *models.Customer) error
	DeleteCustomer(id uint) error

	CreateWholesaler(wholesaler *models.Wholesaler) error
	GetAllWholesalers() ([]models.Wholesaler, error)
	CreateDesigner(designer *models.Designer) error
	GetAllDesigners() ([]models.Designer, error)
}

type partnerService struct {
	retailerRepo   repository.RetailerRepository
	customerRepo   repository.CustomerRepository
	wholesalerRepo repository.WholesalerRepository
	designerRepo   repository.DesignerRepository
}

func NewPartnerService(
	retailerRepo repository.RetailerRepository,
	customerRepo repository.CustomerRepository,
	wholesalerRepo repository.WholesalerRepository,
	designerRepo repository.DesignerRepository,
) PartnerService {
	return &partnerService{
		retailerRepo:   retailerRepo,
		customerRepo:   customerRepo,
		wholesalerRepo: wholesalerRepo,
		designerRepo:   designerRepo,
	}
}

func (s *partnerService) CreateRetailer(retailer *models.Retailer) error {
	return s.retailerRepo.Create(retailer)
}

func (s *partnerService) GetRetailerByID(id uint) (*models.Retailer, error) {
	return s.retailerRepo.GetByID(id)
}

func (s *partnerService) GetAllRetailers() ([]models.Retailer, error) {
	return s.retailerRepo.GetAll()
}

func (s *partnerService) UpdateRetailer(retailer *models.Retailer) error {
	return s.retailerRepo.Update(retailer)
}

func (s *partnerService) DeleteRetailer(id uint) error {
	return s.retailerRepo.Delete(id)
}

func (s *partnerService) CreateCustomer(customer *models.Customer) error {
	return s.customerRepo.Create(customer)
}

func (s *partnerService) GetCustomerByID(id uint) (*models.Customer, error) {
	return s.customerRepo.GetByID(id)
}

func (s *partnerService) GetAllCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

func (s *partnerService) UpdateCustomer(customer *models.Customer) error {
	return s.customerRepo.Update(customer)
}

func (s *partnerService) DeleteCustomer(id uint) error {
	return s.customerRepo.Delete(id)
}

func (s *partnerService) CreateWholesaler(wholesaler *models.Wholesaler) error {
	return s.wholesalerRepo.Create(wholesaler)
}

func (s *partnerService) GetAllWholesalers() ([]models.Wholesaler, error) {
	return s.wholesalerRepo.GetAll()
}

func (s *partnerService) CreateDesigner(designer *models.Designer) error {
	return s.designerRepo.Create(designer)
}

func (s *partnerService) GetAllDesigners() ([]models.Designer, error) {
	return s.designerRepo.GetAll()
}
