package refresh

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/derive"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
)

// Fetcher supplies the four sheet collections. Implemented by
// sheets.Fetcher; tests substitute fakes.
type Fetcher interface {
	ReserveOrders(ctx context.Context) ([]domain.ReserveOrder, error)
	GPRecords(ctx context.Context) ([]domain.GPRecord, error)
	OrderHeaders(ctx context.Context) ([]domain.OrderHeader, error)
	OrderLineItems(ctx context.Context) ([]domain.OrderLineItem, error)
}

// Refresher triggers refresh cycles on an interval and on demand. At most
// one cycle runs at a time: triggers arriving while a cycle is in flight are
// ignored, so overlapping timer and manual refreshes cannot race each other
// for the final state.
type Refresher struct {
	fetcher  Fetcher
	store    *Store
	interval time.Duration
	inFlight atomic.Bool
	clock    func() time.Time
}

func NewRefresher(fetcher Fetcher, store *Store, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Refresher{
		fetcher:  fetcher,
		store:    store,
		interval: interval,
		clock:    time.Now,
	}
}

// Run performs an immediate refresh, then keeps refreshing on the configured
// interval until ctx is cancelled. Cancellation stops the timer; a cycle
// already in flight runs to completion.
func (r *Refresher) Run(ctx context.Context) {
	r.TryRefresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("refresher stopped")
			return
		case <-ticker.C:
			r.TryRefresh(ctx)
		}
	}
}

// TryRefresh runs one refresh cycle unless one is already in flight, in
// which case it reports false and does nothing.
func (r *Refresher) TryRefresh(ctx context.Context) bool {
	if !r.inFlight.CompareAndSwap(false, true) {
		log.Debug().Msg("refresh already in flight, trigger ignored")
		return false
	}
	defer r.inFlight.Store(false)

	start := r.clock()
	if err := r.refresh(ctx); err != nil {
		r.store.Fail(err)
		log.Error().Err(err).Msg("refresh cycle failed")
		return true
	}

	log.Info().Dur("took", time.Since(start)).Msg("refresh cycle completed")
	return true
}

// refresh fetches all four sheets concurrently and installs a new snapshot.
// The order join waits for both of its inputs; any fetch failure fails the
// whole cycle with no partial replacement.
func (r *Refresher) refresh(ctx context.Context) error {
	var (
		reserve []domain.ReserveOrder
		gp      []domain.GPRecord
		headers []domain.OrderHeader
		items   []domain.OrderLineItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reserve, err = r.fetcher.ReserveOrders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		gp, err = r.fetcher.GPRecords(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		headers, err = r.fetcher.OrderHeaders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = r.fetcher.OrderLineItems(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	r.store.Replace(&Snapshot{
		ReserveOrders: reserve,
		GPRecords:     gp,
		Orders:        derive.CombineOrders(headers, items),
		FetchedAt:     r.clock(),
	})
	return nil
}
