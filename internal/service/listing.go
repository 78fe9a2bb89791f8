package service

import (
	"sort"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
)

const defaultPageSize = 10

// ListParams carries the caller-chosen sort key and page window. An empty
// SortField keeps the snapshot's source order. Sorts are stable, so ties
// preserve input order.
type ListParams struct {
	SortField string
	SortDesc  bool
	Page      int
	PageSize  int
}

// window clamps the page window to [0, total].
func (p ListParams) window(total int) (int, int) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	size := p.PageSize
	if size < 1 {
		size = defaultPageSize
	}

	lo := (page - 1) * size
	if lo > total {
		lo = total
	}
	hi := lo + size
	if hi > total {
		hi = total
	}
	return lo, hi
}

// orderBy applies direction to a strict ascending comparison.
func orderBy(less bool, desc bool) bool {
	if desc {
		return !less
	}
	return less
}

func sortReserveOrders(in []domain.ReserveOrder, p ListParams) []domain.ReserveOrder {
	out := make([]domain.ReserveOrder, len(in))
	copy(out, in)
	if p.SortField == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch p.SortField {
		case "date":
			if a.Date.Equal(b.Date) {
				return false
			}
			return orderBy(a.Date.Before(b.Date), p.SortDesc)
		case "order_fy":
			return cmpString(a.OrderFY, b.OrderFY, p.SortDesc)
		case "party_name":
			return cmpString(a.PartyName, b.PartyName, p.SortDesc)
		case "amount":
			return cmpFloat(a.Amount, b.Amount, p.SortDesc)
		case "reserve":
			return cmpFloat(a.Reserve, b.Reserve, p.SortDesc)
		case "total":
			return cmpFloat(a.Total, b.Total, p.SortDesc)
		case "order_no":
			return cmpString(a.OrderNo, b.OrderNo, p.SortDesc)
		case "segment":
			return cmpString(a.Segment, b.Segment, p.SortDesc)
		case "req_reserve_12":
			return cmpFloat(a.ReqReserve12, b.ReqReserve12, p.SortDesc)
		}
		return false
	})
	return out
}

func sortGPRecords(in []domain.GPRecord, p ListParams) []domain.GPRecord {
	out := make([]domain.GPRecord, len(in))
	copy(out, in)
	if p.SortField == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch p.SortField {
		case "country":
			return cmpString(a.Country, b.Country, p.SortDesc)
		case "segment":
			return cmpString(a.Segment, b.Segment, p.SortDesc)
		case "bonhorffer_code":
			return cmpString(a.BonhorfferCode, b.BonhorfferCode, p.SortDesc)
		case "export_value":
			return cmpFloat(a.ExportValue, b.ExportValue, p.SortDesc)
		case "import_value":
			return cmpFloat(a.ImportValue, b.ImportValue, p.SortDesc)
		case "gp":
			return cmpFloat(a.GP, b.GP, p.SortDesc)
		}
		return false
	})
	return out
}

func sortCombinedOrders(in []domain.CombinedOrder, p ListParams) []domain.CombinedOrder {
	out := make([]domain.CombinedOrder, len(in))
	copy(out, in)
	if p.SortField == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch p.SortField {
		case "date":
			if a.Date.Equal(b.Date) {
				return false
			}
			return orderBy(a.Date.Before(b.Date), p.SortDesc)
		case "order_no":
			return cmpString(a.OrderNo, b.OrderNo, p.SortDesc)
		case "sales_person":
			return cmpString(a.SalesPerson, b.SalesPerson, p.SortDesc)
		case "country":
			return cmpString(a.Country, b.Country, p.SortDesc)
		case "segment":
			return cmpString(a.Segment, b.Segment, p.SortDesc)
		case "product_count":
			return cmpInt(a.ProductCount, b.ProductCount, p.SortDesc)
		case "amount":
			return cmpFloat(a.Amount, b.Amount, p.SortDesc)
		}
		return false
	})
	return out
}

func sortProductSales(in []domain.ProductSale, p ListParams) []domain.ProductSale {
	if p.SortField == "" {
		return in
	}

	sort.SliceStable(in, func(i, j int) bool {
		a, b := in[i], in[j]
		switch p.SortField {
		case "product_code":
			return cmpString(a.ProductCode, b.ProductCode, p.SortDesc)
		case "product_name":
			return cmpString(a.ProductName, b.ProductName, p.SortDesc)
		case "total_quantity":
			return cmpInt(a.TotalQuantity, b.TotalQuantity, p.SortDesc)
		case "order_count":
			return cmpInt(a.OrderCount, b.OrderCount, p.SortDesc)
		case "avg_quantity_per_order":
			return cmpFloat(a.AvgQuantityPerOrder, b.AvgQuantityPerOrder, p.SortDesc)
		case "percentage_of_total":
			return cmpFloat(a.PercentageOfTotal, b.PercentageOfTotal, p.SortDesc)
		}
		return false
	})
	return in
}

func cmpString(a, b string, desc bool) bool {
	if a == b {
		return false
	}
	return orderBy(a < b, desc)
}

func cmpFloat(a, b float64, desc bool) bool {
	if a == b {
		return false
	}
	return orderBy(a < b, desc)
}

func cmpInt(a, b int, desc bool) bool {
	if a == b {
		return false
	}
	return orderBy(a < b, desc)
}
