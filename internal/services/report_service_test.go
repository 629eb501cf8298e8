package services

import (
	"testing"
	"time"

	"distribution_manager/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	queries []*models.ReportQuery
}

func (f *fakeReportRepo) CreateReportQuery(query *models.ReportQuery) error {
	query.ID = uint(len(f.queries) + 1)
	f.queries = append(f.queries, query)
	return nil
}

func (f *fakeReportRepo) GetReportQuery(id uint) (*models.ReportQuery, error) {
	return f.queries[id-1], nil
}

func (f *fakeReportRepo) GetReportQueriesByUser(userID uint) ([]models.ReportQuery, error) {
	return nil, nil
}

func TestSalesSummary(t *testing.T) {
	orderRepo := &fakeOrderRepo{orders: []*models.Order{
		{ID: 1, TotalAmount: decimal.RequireFromString("250.00"), TaxAmount: decimal.RequireFromString("25.00"), DiscountAmount: decimal.RequireFromString("25.00")},
		{ID: 2, TotalAmount: decimal.RequireFromString("110.00"), TaxAmount: decimal.RequireFromString("10.00"), DiscountAmount: decimal.Zero},
	}}
	reportRepo := &fakeReportRepo{}
	inventorySvc := NewInventoryService(newFakeInventoryRepo())
	svc := NewReportService(orderRepo, reportRepo, inventorySvc)

	start := time.Now().AddDate(0, -1, 0)
	end := time.Now()

	summary, err := svc.SalesSummary(start, end, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.OrderCount)
	assert.True(t, summary.Revenue.Equal(decimal.RequireFromString("360.00")))
	assert.True(t, summary.TaxCollected.Equal(decimal.RequireFromString("35.00")))
	assert.True(t, summary.DiscountsGiven.Equal(decimal.RequireFromString("25.00")))

	// the generated report is persisted for later retrieval
	require.Len(t, reportRepo.queries, 1)
	saved, err := svc.GetReportQuery(1)
	require.NoError(t, err)
	assert.Equal(t, "custom_range", saved.QueryType)
	assert.Contains(t, saved.ReportData, "\"order_count\":2")
}
