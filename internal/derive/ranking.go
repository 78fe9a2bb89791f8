package derive

import (
	"sort"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/sheets"
)

// TopN is the ranking depth used by the dashboard charts.
const TopN = 10

// TopSegmentsByGP sums gross profit per segment and returns the n highest.
// Records with an unset segment are excluded before ranking. The sort is
// stable: segments with equal totals keep their first-encounter order.
func TopSegmentsByGP(records []domain.GPRecord, n int) []domain.SegmentGP {
	totals := make(map[string]float64)
	var segments []string

	for _, rec := range records {
		if rec.Segment == "" || rec.Segment == sheets.Sentinel {
			continue
		}
		if _, ok := totals[rec.Segment]; !ok {
			segments = append(segments, rec.Segment)
		}
		totals[rec.Segment] += rec.GP
	}

	ranked := make([]domain.SegmentGP, 0, len(segments))
	for _, segment := range segments {
		ranked = append(ranked, domain.SegmentGP{Segment: segment, GP: totals[segment]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].GP > ranked[j].GP })

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopProductsByQuantity sums quantities per product across all combined
// orders and returns the n highest, stable on ties.
func TopProductsByQuantity(orders []domain.CombinedOrder, n int) []domain.ProductQuantity {
	type entry struct {
		name     string
		quantity int
	}

	totals := make(map[string]*entry)
	var codes []string

	for _, order := range orders {
		for _, product := range order.Products {
			e, ok := totals[product.ProductCode]
			if !ok {
				e = &entry{name: product.ProductName}
				totals[product.ProductCode] = e
				codes = append(codes, product.ProductCode)
			}
			e.quantity += product.Quantity
		}
	}

	ranked := make([]domain.ProductQuantity, 0, len(codes))
	for _, code := range codes {
		ranked = append(ranked, domain.ProductQuantity{
			ProductCode: code,
			ProductName: totals[code].name,
			Quantity:    totals[code].quantity,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Quantity > ranked[j].Quantity })

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
