package repository

import (
	"distribution_manager/internal/models"

	"gorm.io/gorm"
)

type WholesalerRepository interface {
	Create(wholesaler *models.Wholesaler) error
	GetByID(id uint) (*models.Wholesaler, error)
	Update(wholesaler *models.Wholesaler) error
	Delete(id uint) error
	GetAll() ([]models.Wholesaler, error)
}

type wholesalerRepository struct {
	db *gorm.DB
}

func NewWholesalerRepository(db *gorm.DB) WholesalerRepository {
	return &wholesalerRepository{db: db}
}

func (r *wholesalerRepository) Create(wholesaler *models.Wholesaler) error {
	return r.db.Create(wholesaler).Error
}

func (r *wholesalerRepository) GetByID(id uint) (*models.Wholesaler, error) {
	var wholesaler models.Wholesaler
	err := r.db.First(&wholesaler, id).Error
	if err != nil {
		return nil, err
	}
	return &wholesaler, nil
}

func (r *wholesalerRepository) Update(wholesaler *models.Wholesaler) error {
	return r.db.Save(wholesaler).Error
}

func (r *wholesalerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Wholesaler{}, id).Error
}

func (r *wholesalerRepository) GetAll() ([]models.Wholesaler, error) {
	var wholesalers []models.Wholesaler
	err := r.db.Find(&wholesalers).Error
	return wholesalers, err
}

type DesignerRepository interface {
	Create(designer *models.Designer) error
	GetByID(id uint) (*models.Designer, error)
	Update(designer *models.Designer) error
	Delete(id uint) error
	GetAll() ([]models.Designer, error)
}

type designerRepository struct {
	db *gorm.DB
}

func NewDesignerRepository(db *gorm.DB) DesignerRepository {
	return &designerRepository{db: db}
}

func (r *designerRepository) Create(designer *models.Designer) error {
	return r.db.Create(designer).Error
}

func (r *designerRepository) GetByID(id uint) (*models.Designer, error) {
	var designer models.Designer
	err := r.db.First(&designer, id).Error
	if err != nil {
		return nil, err
	}
	return &designer, nil
}

func (r *designerRepository) Update(designer *models.Designer) error {
	return r.db.Save(designer).Error
}

func (r *designerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Designer{}, id).Error
}

func (r *designerRepository) GetAll() ([]models.Designer, error) {
	var designers []models.Designer
	err := r.db.Find(&designers).Error
	return designers, err
}
