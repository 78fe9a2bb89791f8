// internal/service/dashboard_service.go
package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/cache"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/derive"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/refresh"
)

// DashboardService serves read views over the current snapshot. Sorting and
// pagination are pure view parameters: every call re-derives from the
// immutable snapshot, nothing is retained between calls.
type DashboardService struct {
	store     *refresh.Store
	refresher *refresh.Refresher
	cache     cache.DashboardSummaryCache
}

func NewDashboardService(store *refresh.Store, refresher *refresh.Refresher, summaryCache cache.DashboardSummaryCache) *DashboardService {
	if summaryCache == nil {
		summaryCache = cache.NewNoopDashboardCache()
	}
	return &DashboardService{store: store, refresher: refresher, cache: summaryCache}
}

// Status returns the loading/error/last-updated tuple for the snapshot.
func (s *DashboardService) Status() domain.StatusInfo {
	return s.store.Status()
}

// TriggerRefresh requests a manual refresh cycle; false means one is already
// in flight.
func (s *DashboardService) TriggerRefresh(ctx context.Context) bool {
	return s.refresher.TryRefresh(ctx)
}

// ReserveOrders returns one page of reserve orders plus the unpaged total.
func (s *DashboardService) ReserveOrders(params ListParams) ([]domain.ReserveOrder, int) {
	snap := s.store.Current()
	if snap == nil {
		return []domain.ReserveOrder{}, 0
	}

	orders := sortReserveOrders(snap.ReserveOrders, params)
	total := len(orders)
	lo, hi := params.window(total)
	return orders[lo:hi], total
}

// GPRecords returns one page of gross-profit records plus the unpaged total.
func (s *DashboardService) GPRecords(params ListParams) ([]domain.GPRecord, int) {
	snap := s.store.Current()
	if snap == nil {
		return []domain.GPRecord{}, 0
	}

	records := sortGPRecords(snap.GPRecords, params)
	total := len(records)
	lo, hi := params.window(total)
	return records[lo:hi], total
}

// CombinedOrders returns one page of combined orders plus the unpaged total.
func (s *DashboardService) CombinedOrders(params ListParams) ([]domain.CombinedOrder, int) {
	snap := s.store.Current()
	if snap == nil {
		return []domain.CombinedOrder{}, 0
	}

	orders := sortCombinedOrders(snap.Orders, params)
	total := len(orders)
	lo, hi := params.window(total)
	return orders[lo:hi], total
}

// ProductSales derives the per-product summary and returns one page of it.
func (s *DashboardService) ProductSales(params ListParams) ([]domain.ProductSale, int) {
	snap := s.store.Current()
	if snap == nil {
		return []domain.ProductSale{}, 0
	}

	sales := sortProductSales(derive.ProductSales(snap.Orders), params)
	total := len(sales)
	lo, hi := params.window(total)
	return sales[lo:hi], total
}

// TopSegments ranks segments by summed gross profit.
func (s *DashboardService) TopSegments() []domain.SegmentGP {
	snap := s.store.Current()
	if snap == nil {
		return []domain.SegmentGP{}
	}
	return derive.TopSegmentsByGP(snap.GPRecords, derive.TopN)
}

// TopProducts ranks products by total quantity sold.
func (s *DashboardService) TopProducts() []domain.ProductQuantity {
	snap := s.store.Current()
	if snap == nil {
		return []domain.ProductQuantity{}
	}
	return derive.TopProductsByQuantity(snap.Orders, derive.TopN)
}

// CountrySegmentPivot builds the stacked country x segment GP breakdown.
func (s *DashboardService) CountrySegmentPivot() domain.CountrySegmentPivot {
	snap := s.store.Current()
	if snap == nil {
		return derive.CountrySegmentGP(nil)
	}
	return derive.CountrySegmentGP(snap.GPRecords)
}

// OrderKPIs totals the order-analysis cards.
func (s *DashboardService) OrderKPIs() domain.OrderKPIs {
	snap := s.store.Current()
	if snap == nil {
		return domain.OrderKPIs{}
	}
	return derive.OrderKPIs(snap.Orders)
}

// ReserveKPIs totals the reserve cards.
func (s *DashboardService) ReserveKPIs() domain.ReserveKPIs {
	snap := s.store.Current()
	if snap == nil {
		return domain.ReserveKPIs{}
	}
	return derive.ReserveKPIs(snap.ReserveOrders)
}

// Summary bundles all derived views in one payload, memoized per snapshot
// when the cache is enabled. Cache failures degrade to recomputation.
func (s *DashboardService) Summary(ctx context.Context) *domain.DashboardSummary {
	snap := s.store.Current()
	if snap == nil {
		return &domain.DashboardSummary{Pivot: derive.CountrySegmentGP(nil)}
	}

	if cached, ok, err := s.cache.GetSummary(ctx, snap.FetchedAt); err != nil {
		log.Warn().Err(err).Msg("dashboard summary cache read failed")
	} else if ok {
		return cached
	}

	summary := &domain.DashboardSummary{
		OrderKPIs:    derive.OrderKPIs(snap.Orders),
		ReserveKPIs:  derive.ReserveKPIs(snap.ReserveOrders),
		ProductSales: derive.ProductSales(snap.Orders),
		TopProducts:  derive.TopProductsByQuantity(snap.Orders, derive.TopN),
		TopSegments:  derive.TopSegmentsByGP(snap.GPRecords, derive.TopN),
		Pivot:        derive.CountrySegmentGP(snap.GPRecords),
	}

	if err := s.cache.SetSummary(ctx, snap.FetchedAt, summary); err != nil {
		log.Warn().Err(err).Msg("dashboard summary cache write failed")
	}

	return summary
}
