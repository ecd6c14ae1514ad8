package services

import (
	"context"
	"time"

	"tifo_back_end/internal/apperrors"
	"tifo_back_end/internal/models"
)

type DashboardStats struct {
	TotalRevenue  int64   `json:"total_revenue"`
	TotalOrders   int64   `json:"total_orders"`
	ActiveOrders  int64   `json:"active_orders"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

type DailyPoint struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
	Orders  int    `json:"orders"`
}

func isRevenueStatus(s models.OrderStatus) bool {
	switch s {
	case models.OrderStatusPaid, models.OrderStatusProcessing, models.OrderStatusShipped, models.OrderStatusDelivered:
		return true
	}
	return false
}

func isActiveStatus(s models.OrderStatus) bool {
	switch s {
	case models.OrderStatusPending, models.OrderStatusPaid, models.OrderStatusProcessing, models.OrderStatusShipped:
		return true
	}
	return false
}

// ComputeDashboardStats agrège les commandes en mémoire. Le panier moyen ne
// compte que les commandes génératrices de revenu, division par zéro gardée.
func ComputeDashboardStats(orders []models.Order) DashboardStats {
	stats := DashboardStats{TotalOrders: int64(len(orders))}

	var revenueCount int64
	for _, o := range orders {
		if isRevenueStatus(o.Status) {
			stats.TotalRevenue += o.Total
			revenueCount++
		}
		if isActiveStatus(o.Status) {
			stats.ActiveOrders++
		}
	}
	if revenueCount > 0 {
		stats.AvgOrderValue = float64(stats.TotalRevenue) / float64(revenueCount)
	}

	return stats
}

// BuildAnalytics construit une série temporelle dense : un seau par jour
// calendaire UTC de now-days à now inclus, initialisé à zéro même sans
// commande ce jour-là
func BuildAnalytics(orders []models.Order, days int, now time.Time) []DailyPoint {
	now = now.UTC()
	start := now.AddDate(0, 0, -days)

	points := make([]DailyPoint, 0, days+1)
	index := make(map[string]int, days+1)
	for i := 0; i <= days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		index[date] = len(points)
		points = append(points, DailyPoint{Date: date})
	}

	for _, o := range orders {
		if !isRevenueStatus(o.Status) {
			continue
		}
		date := o.CreatedAt.UTC().Format("2006-01-02")
		if i, ok := index[date]; ok {
			points[i].Revenue += o.Total
			points[i].Orders++
		}
	}

	return points
}

func (s *OrderService) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var orders []models.Order
	if err := s.DB.WithContext(ctx).Select("id", "status", "total").Find(&orders).Error; err != nil {
		return DashboardStats{}, apperrors.FromDB(err, "Commande introuvable")
	}
	return ComputeDashboardStats(orders), nil
}

func (s *OrderService) Analytics(ctx context.Context, days int) ([]DailyPoint, error) {
	if days < 1 {
		days = 7
	}
	if days > 365 {
		days = 365
	}

	now := time.Now().UTC()
	windowStart := now.AddDate(0, 0, -days).Truncate(24 * time.Hour)

	var orders []models.Order
	if err := s.DB.WithContext(ctx).
		Select("id", "status", "total", "created_at").
		Where("created_at >= ?", windowStart).
		Find(&orders).Error; err != nil {
		return nil, apperrors.FromDB(err, "Commande introuvable")
	}

	return BuildAnalytics(orders, days, now), nil
}
