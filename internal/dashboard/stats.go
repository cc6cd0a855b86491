package dashboard

import (
	"storefront-be/internal/catalog"
	"storefront-be/internal/order"

	"github.com/samber/lo"
)

// Stock thresholds for the restock alert.
const (
	LowStockThreshold     = 10
	VeryLowStockThreshold = 5
)

type StockLevel string

const (
	StockLow     StockLevel = "Low"
	StockVeryLow StockLevel = "Very Low"
)

type LowStockProduct struct {
	Product catalog.Product `json:"product"`
	Level   StockLevel      `json:"level"`
}

type Stats struct {
	TotalRevenue   float64           `json:"totalRevenue"`
	PendingCount   int               `json:"pendingCount"`
	CompletedCount int               `json:"completedCount"`
	CustomerCount  int               `json:"customerCount"`
	RecentOrders   []order.Order     `json:"recentOrders"`
	LowStock       []LowStockProduct `json:"lowStock"`
}

// Summarize recomputes the dashboard from scratch on every call. Revenue
// deliberately sums all orders regardless of status, matching the storefront's
// observed behavior (cancelled orders included).
func Summarize(orders []order.Order, products []catalog.Product) Stats {
	revenue := lo.SumBy(orders, func(o order.Order) float64 {
		return o.Total
	})

	pending := lo.CountBy(orders, func(o order.Order) bool {
		return o.Status == order.StatusPending
	})

	completed := lo.CountBy(orders, func(o order.Order) bool {
		return o.Status == order.StatusDelivered
	})

	customers := lo.Uniq(lo.Map(orders, func(o order.Order, _ int) string {
		return o.CustomerEmail
	}))

	lowStock := lo.FilterMap(products, func(p catalog.Product, _ int) (LowStockProduct, bool) {
		if p.Stock >= LowStockThreshold {
			return LowStockProduct{}, false
		}
		level := StockLow
		if p.Stock < VeryLowStockThreshold {
			level = StockVeryLow
		}
		return LowStockProduct{Product: p, Level: level}, true
	})

	return Stats{
		TotalRevenue:   revenue,
		PendingCount:   pending,
		CompletedCount: completed,
		CustomerCount:  len(customers),
		RecentOrders:   recentOrders(orders, 5),
		LowStock:       lowStock,
	}
}

// recentOrders returns the last n orders in insertion order, most recent first.
func recentOrders(orders []order.Order, n int) []order.Order {
	if len(orders) < n {
		n = len(orders)
	}

	recent := make([]order.Order, 0, n)
	for i := len(orders) - 1; i >= len(orders)-n; i-- {
		recent = append(recent, orders[i])
	}
	return recent
}
