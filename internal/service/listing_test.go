package service

import (
	"testing"
	"time"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
)

func TestWindowClamping(t *testing.T) {
	cases := []struct {
		label  string
		params ListParams
		total  int
		lo, hi int
	}{
		{"defaults", ListParams{}, 25, 0, 10},
		{"second page", ListParams{Page: 2, PageSize: 10}, 25, 10, 20},
		{"last partial page", ListParams{Page: 3, PageSize: 10}, 25, 20, 25},
		{"page past the end", ListParams{Page: 9, PageSize: 10}, 25, 25, 25},
		{"zero total", ListParams{Page: 1, PageSize: 10}, 0, 0, 0},
		{"negative page", ListParams{Page: -1, PageSize: 5}, 12, 0, 5},
		{"zero size", ListParams{Page: 1}, 12, 0, 10},
	}

	for _, tc := range cases {
		lo, hi := tc.params.window(tc.total)
		if lo != tc.lo || hi != tc.hi {
			t.Errorf("%s: window(%d) = [%d, %d), want [%d, %d)", tc.label, tc.total, lo, hi, tc.lo, tc.hi)
		}
	}
}

func TestSortReserveOrders(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
	}
	in := []domain.ReserveOrder{
		{PartyName: "Beta", Amount: 200, Date: day(2)},
		{PartyName: "Acme", Amount: 300, Date: day(1)},
		{PartyName: "Cord", Amount: 100, Date: day(3)},
	}

	byAmount := sortReserveOrders(in, ListParams{SortField: "amount", SortDesc: true})
	if byAmount[0].PartyName != "Acme" || byAmount[2].PartyName != "Cord" {
		t.Errorf("amount desc order wrong: %+v", byAmount)
	}

	byDate := sortReserveOrders(in, ListParams{SortField: "date"})
	if byDate[0].PartyName != "Acme" || byDate[2].PartyName != "Cord" {
		t.Errorf("date asc order wrong: %+v", byDate)
	}

	// The input slice must not be reordered.
	if in[0].PartyName != "Beta" {
		t.Error("input slice mutated by sorting")
	}
}

func TestSortIsStableOnTies(t *testing.T) {
	in := []domain.GPRecord{
		{Country: "USA", Segment: "B", GP: 50},
		{Country: "USA", Segment: "A", GP: 50},
		{Country: "USA", Segment: "C", GP: 50},
	}

	out := sortGPRecords(in, ListParams{SortField: "gp", SortDesc: true})
	if out[0].Segment != "B" || out[1].Segment != "A" || out[2].Segment != "C" {
		t.Errorf("ties reordered: %+v", out)
	}
}

func TestSortEmptyFieldKeepsSourceOrder(t *testing.T) {
	in := []domain.GPRecord{
		{Country: "Chile"},
		{Country: "Brazil"},
	}

	out := sortGPRecords(in, ListParams{})
	if out[0].Country != "Chile" || out[1].Country != "Brazil" {
		t.Errorf("source order not preserved: %+v", out)
	}
}

func TestSortUnknownFieldIsNoop(t *testing.T) {
	in := []domain.GPRecord{
		{Country: "Chile"},
		{Country: "Brazil"},
	}

	out := sortGPRecords(in, ListParams{SortField: "nope"})
	if out[0].Country != "Chile" || out[1].Country != "Brazil" {
		t.Errorf("unknown field reordered rows: %+v", out)
	}
}
