package derive

import (
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
)

// ProductSales accumulates per-product sales statistics across all combined
// orders: total quantity, distinct order count, average quantity per order
// and share of the grand total. Output order is first-encounter order of the
// product code; sorting is left to the caller as a view parameter. Ratios
// with a zero denominator yield 0.
func ProductSales(orders []domain.CombinedOrder) []domain.ProductSale {
	type stats struct {
		name     string
		quantity int
		orders   map[string]struct{}
	}

	byCode := make(map[string]*stats)
	var codes []string

	for _, order := range orders {
		for _, product := range order.Products {
			entry, ok := byCode[product.ProductCode]
			if !ok {
				entry = &stats{name: product.ProductName, orders: make(map[string]struct{})}
				byCode[product.ProductCode] = entry
				codes = append(codes, product.ProductCode)
			}
			entry.quantity += product.Quantity
			entry.orders[order.OrderNo] = struct{}{}
		}
	}

	grandTotal := 0
	for _, entry := range byCode {
		grandTotal += entry.quantity
	}

	sales := make([]domain.ProductSale, 0, len(codes))
	for _, code := range codes {
		entry := byCode[code]
		sale := domain.ProductSale{
			ProductCode:   code,
			ProductName:   entry.name,
			TotalQuantity: entry.quantity,
			OrderCount:    len(entry.orders),
		}
		if sale.OrderCount > 0 {
			sale.AvgQuantityPerOrder = float64(sale.TotalQuantity) / float64(sale.OrderCount)
		}
		if grandTotal > 0 {
			sale.PercentageOfTotal = float64(sale.TotalQuantity) / float64(grandTotal) * 100
		}
		sales = append(sales, sale)
	}
	return sales
}
