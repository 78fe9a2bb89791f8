package sheets

import (
	"context"
	"strings"
	"time"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
)

// Fetcher retrieves the four sheets and converts their raw rows into typed,
// filtered collections. Clock feeds the schemas' missing-date fallback;
// tests pin it to a fixed instant.
type Fetcher struct {
	client *Client
	clock  func() time.Time
}

func NewFetcher(client *Client) *Fetcher {
	return &Fetcher{client: client, clock: time.Now}
}

// WithClock returns a copy of the Fetcher using the given clock.
func (f *Fetcher) WithClock(clock func() time.Time) *Fetcher {
	return &Fetcher{client: f.client, clock: clock}
}

func (f *Fetcher) schema(base Schema) Schema {
	base.Clock = f.clock
	return base
}

// present reports whether a required-presence field carries real data:
// not absent, not the sentinel, not whitespace-only.
func present(value string) bool {
	return value != "" && value != Sentinel && strings.TrimSpace(value) != ""
}

// ReserveOrders fetches the reserve sheet. Rows without a party name are
// placeholder rows and are dropped.
func (f *Fetcher) ReserveOrders(ctx context.Context) ([]domain.ReserveOrder, error) {
	rows, err := f.client.FetchTable(ctx, ReserveSource)
	if err != nil {
		return nil, err
	}

	schema := f.schema(ReserveSchema)
	orders := make([]domain.ReserveOrder, 0, len(rows))
	for _, row := range rows {
		rec := schema.Normalize(row)
		if !present(rec.Str("party_name")) {
			continue
		}
		orders = append(orders, domain.ReserveOrder{
			Date:         rec.Time("date"),
			OrderFY:      rec.Str("order_fy"),
			PartyName:    rec.Str("party_name"),
			Amount:       rec.Float("amount"),
			Reserve:      rec.Float("reserve"),
			Total:        rec.Float("total"),
			OrderNo:      rec.Str("order_no"),
			Segment:      rec.Str("segment"),
			ReqReserve12: rec.Float("req_reserve_12"),
		})
	}
	return orders, nil
}

// GPRecords fetches the gross-profit sheet. Besides the usual presence
// filter on country, rows whose country literally reads "country" are a
// re-included header row and are dropped too.
func (f *Fetcher) GPRecords(ctx context.Context) ([]domain.GPRecord, error) {
	rows, err := f.client.FetchTable(ctx, GPSource)
	if err != nil {
		return nil, err
	}

	schema := f.schema(GPSchema)
	records := make([]domain.GPRecord, 0, len(rows))
	for _, row := range rows {
		rec := schema.Normalize(row)
		country := rec.Str("country")
		if !present(country) || strings.EqualFold(country, "country") {
			continue
		}
		records = append(records, domain.GPRecord{
			Country:        country,
			Segment:        rec.Str("segment"),
			BonhorfferCode: rec.Str("bonhorffer_code"),
			ExportValue:    rec.Float("export_value"),
			ImportValue:    rec.Float("import_value"),
			GP:             rec.Float("gp"),
		})
	}
	return records, nil
}

// OrderHeaders fetches the order sheet; rows without an order number are
// dropped.
func (f *Fetcher) OrderHeaders(ctx context.Context) ([]domain.OrderHeader, error) {
	rows, err := f.client.FetchTable(ctx, OrderSource)
	if err != nil {
		return nil, err
	}

	schema := f.schema(OrderSchema)
	headers := make([]domain.OrderHeader, 0, len(rows))
	for _, row := range rows {
		rec := schema.Normalize(row)
		if !present(rec.Str("order_no")) {
			continue
		}
		headers = append(headers, domain.OrderHeader{
			Date:        rec.Time("date"),
			FY:          rec.Str("fy"),
			SalesPerson: rec.Str("sales_person"),
			Segment:     rec.Str("segment"),
			Country:     rec.Str("country"),
			OrderNo:     rec.Str("order_no"),
			Amount:      rec.Float("amount"),
		})
	}
	return headers, nil
}

// OrderLineItems fetches the order-by-product sheet; rows without an order
// number are dropped.
func (f *Fetcher) OrderLineItems(ctx context.Context) ([]domain.OrderLineItem, error) {
	rows, err := f.client.FetchTable(ctx, OrderProductSource)
	if err != nil {
		return nil, err
	}

	schema := f.schema(OrderProductSchema)
	items := make([]domain.OrderLineItem, 0, len(rows))
	for _, row := range rows {
		rec := schema.Normalize(row)
		if !present(rec.Str("order_no")) {
			continue
		}
		items = append(items, domain.OrderLineItem{
			OrderNo:     rec.Str("order_no"),
			ProductCode: rec.Str("product_code"),
			ProductName: rec.Str("product_name"),
			Quantity:    rec.Int("quantity"),
		})
	}
	return items, nil
}
