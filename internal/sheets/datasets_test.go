package sheets

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// envelope wraps a rows payload in the JSONP envelope the gviz API emits.
func envelope(rows string) string {
	return fmt.Sprintf(`/*O_o*/
google.visualization.Query.setResponse({"version":"0.6","table":{"rows":%s}});`, rows)
}

// newFetcherServing routes each sheet name to its canned rows payload and
// returns a Fetcher pinned to a fixed clock.
func newFetcherServing(t *testing.T, bodies map[string]string) (*Fetcher, func()) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sheet := r.URL.Query().Get("sheet")
		body, ok := bodies[sheet]
		if !ok {
			t.Errorf("unexpected sheet %q requested", sheet)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(body))
	}))

	fetcher := NewFetcher(NewClient(server.URL, 5*time.Second)).WithClock(fixedClock)
	return fetcher, server.Close
}

func TestReserveOrdersFiltersPlaceholderRows(t *testing.T) {
	rows := `[
		{"c":[{"v":"Date(2024,0,15)"},{"v":"FY24"},{"v":"Acme Corp"},{"v":1000},{"v":250},{"v":1250},{"v":"ORD-1"},{"v":"Surgical"},{"v":300}]},
		{"c":[{"v":"Date(2024,1,1)"},{"v":"FY24"},null,{"v":500}]},
		{"c":[{"v":"Date(2024,1,2)"},{"v":"FY24"},{"v":"   "},{"v":500}]},
		{"c":[null,null,{"v":"Beta Ltd"}]}
	]`
	fetcher, closeServer := newFetcherServing(t, map[string]string{
		ReserveSource.Sheet: envelope(rows),
	})
	defer closeServer()

	orders, err := fetcher.ReserveOrders(context.Background())
	if err != nil {
		t.Fatalf("ReserveOrders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}

	first := orders[0]
	if first.PartyName != "Acme Corp" || first.Amount != 1000 || first.Reserve != 250 || first.OrderNo != "ORD-1" {
		t.Errorf("unexpected first order: %+v", first)
	}
	wantDate := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !first.Date.Equal(wantDate) {
		t.Errorf("date = %v, want %v", first.Date, wantDate)
	}

	// The row carrying only a party name still comes through, with every
	// other field defaulted.
	second := orders[1]
	if second.PartyName != "Beta Ltd" {
		t.Errorf("second party = %q, want Beta Ltd", second.PartyName)
	}
	if second.OrderNo != Sentinel {
		t.Errorf("second order_no = %q, want sentinel", second.OrderNo)
	}
	if !second.Date.Equal(fixedClock()) {
		t.Errorf("second date = %v, want clock fallback", second.Date)
	}
}

func TestGPRecordsDropsEmbeddedHeaderRow(t *testing.T) {
	rows := `[
		{"c":[{"v":"Country"},{"v":"Segment"},{"v":"Code"},null,{"v":"Export"},{"v":"Import"},{"v":"GP"}]},
		{"c":[{"v":"USA"},{"v":"Surgical"},{"v":"BNF-001"},null,{"v":100},{"v":60},{"v":40}]},
		{"c":[null,{"v":"Dental"}]},
		{"c":[{"v":"Brazil"},{"v":"Dental"},{"v":"BNF-002"},null,{"v":80},{"v":50},{"v":30}]}
	]`
	fetcher, closeServer := newFetcherServing(t, map[string]string{
		GPSource.Sheet: envelope(rows),
	})
	defer closeServer()

	records, err := fetcher.GPRecords(context.Background())
	if err != nil {
		t.Fatalf("GPRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Country != "USA" || records[0].GP != 40 {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].Country != "Brazil" || records[1].Segment != "Dental" {
		t.Errorf("unexpected second record: %+v", records[1])
	}
}

func TestOrderHeadersParsesCurrencyAmounts(t *testing.T) {
	rows := `[
		{"c":[{"v":"Date(2024,2,10)"},{"v":"FY24"},{"v":"Jane"},{"v":"Surgical"},{"v":"Mexico"},{"v":"ORD-7"},{"v":"$1,234.50"}]},
		{"c":[{"v":"Date(2024,2,11)"},{"v":"FY24"},{"v":"John"},{"v":"Dental"},{"v":"Chile"},{"v":"ORD-8"},{"v":980}]},
		{"c":[{"v":"Date(2024,2,12)"}]}
	]`
	fetcher, closeServer := newFetcherServing(t, map[string]string{
		OrderSource.Sheet: envelope(rows),
	})
	defer closeServer()

	headers, err := fetcher.OrderHeaders(context.Background())
	if err != nil {
		t.Fatalf("OrderHeaders: %v", err)
	}
	if len(headers) != 2 {
		t.Fatalf("got %d headers, want 2", len(headers))
	}
	if headers[0].Amount != 1234.5 {
		t.Errorf("formatted amount = %v, want 1234.5", headers[0].Amount)
	}
	if headers[1].Amount != 980 {
		t.Errorf("numeric amount = %v, want 980", headers[1].Amount)
	}
}

func TestOrderLineItemsMapsSwappedColumns(t *testing.T) {
	rows := `[
		{"c":[{"v":"ORD-7"},{"v":"P-100"},{"v":5},{"v":"Forceps"}]},
		{"c":[null,{"v":"P-200"},{"v":3},{"v":"Scalpel"}]}
	]`
	fetcher, closeServer := newFetcherServing(t, map[string]string{
		OrderProductSource.Sheet: envelope(rows),
	})
	defer closeServer()

	items, err := fetcher.OrderLineItems(context.Background())
	if err != nil {
		t.Fatalf("OrderLineItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	item := items[0]
	if item.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", item.Quantity)
	}
	if item.ProductName != "Forceps" {
		t.Errorf("product name = %q, want Forceps", item.ProductName)
	}
}

func TestFetcherEmptySheetYieldsEmptyCollection(t *testing.T) {
	fetcher, closeServer := newFetcherServing(t, map[string]string{
		ReserveSource.Sheet: envelope(`[]`),
	})
	defer closeServer()

	orders, err := fetcher.ReserveOrders(context.Background())
	if err != nil {
		t.Fatalf("ReserveOrders: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("got %v, want empty non-nil slice", orders)
	}
}
