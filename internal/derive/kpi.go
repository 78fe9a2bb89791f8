package derive

import (
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
)

// OrderKPIs totals the order-analysis headline cards.
func OrderKPIs(orders []domain.CombinedOrder) domain.OrderKPIs {
	kpis := domain.OrderKPIs{OrderCount: len(orders)}
	for _, order := range orders {
		kpis.TotalAmount += order.Amount
		for _, product := range order.Products {
			kpis.TotalQuantity += product.Quantity
		}
	}
	return kpis
}

// ReserveKPIs totals the reserve dashboard headline cards.
func ReserveKPIs(orders []domain.ReserveOrder) domain.ReserveKPIs {
	kpis := domain.ReserveKPIs{OrderCount: len(orders)}
	for _, order := range orders {
		kpis.TotalAmount += order.Amount
		kpis.TotalReserve += order.Reserve
	}
	return kpis
}
