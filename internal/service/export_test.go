package service

import (
	"strings"
	"testing"
	"time"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
)

func TestExportReserveOrdersCSV(t *testing.T) {
	orders := []domain.ReserveOrder{
		{
			Date:      time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			OrderFY:   "FY24",
			PartyName: "Acme Corp",
			Amount:    1000,
			Reserve:   250.5,
			Total:     1250.5,
			OrderNo:   "ORD-1",
			Segment:   "Surgical",
		},
	}

	var buf strings.Builder
	if err := ExportReserveOrdersCSV(&buf, orders); err != nil {
		t.Fatalf("ExportReserveOrdersCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Date,Order FY,Party Name") {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2024-01-15,FY24,Acme Corp,1000.00,250.50,1250.50,ORD-1,Surgical,0.00" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestExportCombinedOrdersCSVOneLinePerItem(t *testing.T) {
	orders := []domain.CombinedOrder{
		{
			OrderHeader: domain.OrderHeader{
				Date:    time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
				OrderNo: "A",
				Amount:  1000,
			},
			Products: []domain.OrderLineItem{
				{OrderNo: "A", ProductCode: "P-1", ProductName: "Forceps", Quantity: 5},
				{OrderNo: "A", ProductCode: "P-2", ProductName: "Scalpel", Quantity: 3},
			},
			ProductCount: 2,
		},
		{
			OrderHeader:  domain.OrderHeader{OrderNo: "B", Amount: 500},
			Products:     []domain.OrderLineItem{},
			ProductCount: 0,
		},
	}

	var buf strings.Builder
	if err := ExportCombinedOrdersCSV(&buf, orders); err != nil {
		t.Fatalf("ExportCombinedOrdersCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Header, two item lines for A, one placeholder line for B.
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if !strings.Contains(lines[1], "P-1,Forceps,5") {
		t.Errorf("first item line = %q", lines[1])
	}
	if !strings.HasSuffix(lines[3], ",,,0") {
		t.Errorf("empty-order line = %q", lines[3])
	}
}

func TestExportProductSalesCSV(t *testing.T) {
	sales := []domain.ProductSale{
		{ProductCode: "P-1", ProductName: "Forceps", TotalQuantity: 8, OrderCount: 2, AvgQuantityPerOrder: 4, PercentageOfTotal: 57.14},
	}

	var buf strings.Builder
	if err := ExportProductSalesCSV(&buf, sales); err != nil {
		t.Fatalf("ExportProductSalesCSV: %v", err)
	}

	if !strings.Contains(buf.String(), "P-1,Forceps,8,2,4.0,57.14") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestExportTimestamp(t *testing.T) {
	at := time.Date(2024, time.June, 1, 9, 5, 7, 0, time.UTC)
	if got := ExportTimestamp(at); got != "20240601_090507" {
		t.Errorf("ExportTimestamp = %q", got)
	}
}
