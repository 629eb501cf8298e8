package repository

import (
	"distribution_manager/internal/models"

	"gorm.io/gorm"
)

type ReportRepository interface {
	CreateReportQuery(query *models.ReportQuery) error
	GetReportQuery(id uint) (*models.ReportQuery, error)
	GetReportQueriesByUser(userID uint) ([]models.ReportQuery, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CreateReportQuery(query *models.ReportQuery) error {
	return r.db.Create(query).Error
}

func (r *reportRepository) GetReportQuery(id uint) (*models.ReportQuery, error) {
	var query models.ReportQuery
	err := r.db.First(&query, id).Error
	if err != nil {
		return nil, err
	}
	return &query, nil
}

func (r *reportRepository) GetReportQueriesByUser(userID uint) ([]models.ReportQuery, error) {
	var queries []models.ReportQuery
	err := r.db.Where("user_id = ?", userID).Find(&queries).Error
	return queries, err
}
