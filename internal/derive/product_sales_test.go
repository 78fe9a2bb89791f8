package derive

import (
	"math"
	"testing"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
)

func TestProductSales(t *testing.T) {
	orders := CombineOrders(
		[]domain.OrderHeader{header("A", 1000), header("B", 500)},
		[]domain.OrderLineItem{
			item("A", "P-1", "Forceps", 5),
			item("A", "P-1", "Forceps", 3),
			item("A", "P-2", "Scalpel", 2),
			item("B", "P-2", "Scalpel", 4),
		},
	)

	sales := ProductSales(orders)
	if len(sales) != 2 {
		t.Fatalf("got %d products, want 2", len(sales))
	}

	// P-1 appears twice in the same order: quantities accumulate but the
	// order counts once.
	p1 := sales[0]
	if p1.ProductCode != "P-1" {
		t.Fatalf("first product = %q, want P-1 (first-encounter order)", p1.ProductCode)
	}
	if p1.TotalQuantity != 8 || p1.OrderCount != 1 {
		t.Errorf("P-1 quantity/orders = %d/%d, want 8/1", p1.TotalQuantity, p1.OrderCount)
	}
	if p1.AvgQuantityPerOrder != 8 {
		t.Errorf("P-1 avg = %v, want 8", p1.AvgQuantityPerOrder)
	}

	p2 := sales[1]
	if p2.TotalQuantity != 6 || p2.OrderCount != 2 {
		t.Errorf("P-2 quantity/orders = %d/%d, want 6/2", p2.TotalQuantity, p2.OrderCount)
	}
	if p2.AvgQuantityPerOrder != 3 {
		t.Errorf("P-2 avg = %v, want 3", p2.AvgQuantityPerOrder)
	}

	var pctSum float64
	for _, sale := range sales {
		pctSum += sale.PercentageOfTotal
	}
	if math.Abs(pctSum-100) > 1e-9 {
		t.Errorf("percentages sum to %v, want 100", pctSum)
	}
}

func TestProductSalesNoProducts(t *testing.T) {
	orders := CombineOrders([]domain.OrderHeader{header("A", 1000)}, nil)

	sales := ProductSales(orders)
	if len(sales) != 0 {
		t.Fatalf("got %d products, want 0", len(sales))
	}
}

func TestProductSalesZeroQuantityGrandTotal(t *testing.T) {
	orders := CombineOrders(
		[]domain.OrderHeader{header("A", 1000)},
		[]domain.OrderLineItem{item("A", "P-1", "Forceps", 0)},
	)

	sales := ProductSales(orders)
	if len(sales) != 1 {
		t.Fatalf("got %d products, want 1", len(sales))
	}
	if sales[0].PercentageOfTotal != 0 {
		t.Errorf("percentage = %v, want 0 on a zero grand total", sales[0].PercentageOfTotal)
	}
}
