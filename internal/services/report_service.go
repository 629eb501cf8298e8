package services

import (
	"encoding/json"
	"time"

	"distribution_manager/internal/engine"
	"distribution_manager/internal/models"
	"distribution_manager/internal/repository"

	"github.com/shopspring/decimal"
)

// SalesSummary aggregates order totals over a date range. Monetary values are
// rounded to 2 decimals here, at the presentation boundary.
type SalesSummary struct {
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	OrderCount     int             `json:"order_count"`
	Revenue        decimal.Decimal `json:"revenue"`
	TaxCollected   decimal.Decimal `json:"tax_collected"`
	DiscountsGiven decimal.Decimal `json:"discounts_given"`
}

type ReportService interface {
	SalesSummary(startDate, endDate time.Time, userID uint) (*SalesSummary, error)
	LowStockReport() ([]StockView, error)
	GetReportQuery(id uint) (*models.ReportQuery, error)
}

type reportService struct {
	orderRepo        repository.OrderRepository
	reportRepo       repository.ReportRepository
	inventoryService InventoryService
}

func NewReportService(orderRepo repository.OrderRepository, reportRepo repository.ReportRepository, inventoryService InventoryService) ReportService {
	return &reportService{
		orderRepo:        orderRepo,
		reportRepo:       reportRepo,
		inventoryService: inventoryService,
	}
}

func (s *reportService) SalesSummary(startDate, endDate time.Time, userID uint) (*SalesSummary, error) {
	orders, err := s.orderRepo.GetByDateRange(startDate, endDate)
	if err != nil {
		return nil, &engine.PersistenceError{Op: "get orders by date range", Err: err}
	}

	revenue := decimal.Zero
	tax := decimal.Zero
	discounts := decimal.Zero
	for _, order := range orders {
		revenue = revenue.Add(order.TotalAmount)
		tax = tax.Add(order.TaxAmount)
		discounts = discounts.Add(order.DiscountAmount)
	}

	summary := &SalesSummary{
		StartDate:      startDate,
		EndDate:        endDate,
		OrderCount:     len(orders),
		Revenue:        revenue.Round(2),
		TaxCollected:   tax.Round(2),
		DiscountsGiven: discounts.Round(2),
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	query := &models.ReportQuery{
		UserID:      userID,
		QueryType:   "custom_range",
		StartDate:   &startDate,
		EndDate:     &endDate,
		ReportData:  string(payload),
		GeneratedAt: time.Now(),
	}
	if err := s.reportRepo.CreateReportQuery(query); err != nil {
		return nil, &engine.PersistenceError{Op: "save report query", Err: err}
	}

	return summary, nil
}

func (s *reportService) LowStockReport() ([]StockView, error) {
	return s.inventoryService.GetLowStock()
}

func (s *reportService) GetReportQuery(id uint) (*models.ReportQuery, error) {
	return s.reportRepo.GetReportQuery(id)
}
