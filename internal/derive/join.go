// Package derive computes the dashboard's derived views. Every function is a
// pure computation over in-memory collections: inputs are never mutated,
// outputs are rebuilt wholesale on each call, and nothing here can fail.
package derive

import (
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
)

// CombineOrders enriches each order header with the line items sharing its
// order number, in the items' source order. Headers without items get an
// empty product list; items without a matching header are dropped. Runs in
// O(headers + items) off a transient index.
func CombineOrders(headers []domain.OrderHeader, items []domain.OrderLineItem) []domain.CombinedOrder {
	if len(headers) == 0 {
		return []domain.CombinedOrder{}
	}

	byOrder := make(map[string][]domain.OrderLineItem, len(headers))
	for _, item := range items {
		byOrder[item.OrderNo] = append(byOrder[item.OrderNo], item)
	}

	combined := make([]domain.CombinedOrder, 0, len(headers))
	for _, header := range headers {
		products := byOrder[header.OrderNo]
		if products == nil {
			products = []domain.OrderLineItem{}
		}
		combined = append(combined, domain.CombinedOrder{
			OrderHeader:  header,
			Products:     products,
			ProductCount: len(products),
		})
	}
	return combined
}
