package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tifo_back_end/internal/models"
)

func TestComputeDashboardStats_Empty(t *testing.T) {
	stats := ComputeDashboardStats(nil)
	assert.Equal(t, int64(0), stats.TotalRevenue)
	assert.Equal(t, int64(0), stats.TotalOrders)
	assert.Equal(t, int64(0), stats.ActiveOrders)
	assert.Equal(t, float64(0), stats.AvgOrderValue)
}

func TestComputeDashboardStats(t *testing.T) {
	orders := []models.Order{
		{Status: models.OrderStatusPending, Total: 50},    // active, pas de revenu
		{Status: models.OrderStatusPaid, Total: 100},      // active + revenu
		{Status: models.OrderStatusShipped, Total: 200},   // active + revenu
		{Status: models.OrderStatusDelivered, Total: 60},  // revenu, plus active
		{Status: models.OrderStatusCancelled, Total: 999}, // ni l'un ni l'autre
	}

	stats := ComputeDashboardStats(orders)
	assert.Equal(t, int64(5), stats.TotalOrders)
	assert.Equal(t, int64(360), stats.TotalRevenue)
	assert.Equal(t, int64(3), stats.ActiveOrders)
	assert.Equal(t, float64(120), stats.AvgOrderValue)
}

func TestBuildAnalytics_DenseBuckets(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	orders := []models.Order{
		{Status: models.OrderStatusPaid, Total: 100, CreatedAt: now},
		{Status: models.OrderStatusPaid, Total: 50, CreatedAt: now.AddDate(0, 0, -2)},
		{Status: models.OrderStatusPending, Total: 999, CreatedAt: now}, // ignorée
		{Status: models.OrderStatusPaid, Total: 77, CreatedAt: now.AddDate(0, 0, -30)}, // hors fenêtre
	}

	points := BuildAnalytics(orders, 7, now)
	require.Len(t, points, 8) // 7 jours en arrière + aujourd'hui

	// dates denses et croissantes
	assert.Equal(t, "2026-08-23", points[0].Date)
	assert.Equal(t, "2026-08-30", points[7].Date)
	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].Date, points[i-1].Date)
	}

	// seaux vides à zéro
	assert.Equal(t, int64(0), points[0].Revenue)
	assert.Equal(t, 0, points[0].Orders)

	assert.Equal(t, int64(50), points[5].Revenue) // 2026-08-28
	assert.Equal(t, int64(100), points[7].Revenue)
	assert.Equal(t, 1, points[7].Orders)
}
