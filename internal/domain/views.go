package domain

// ProductSale is the per-product sales summary derived from combined orders.
type ProductSale struct {
	ProductCode         string  `json:"product_code"`
	ProductName         string  `json:"product_name"`
	TotalQuantity       int     `json:"total_quantity"`
	OrderCount          int     `json:"order_count"`
	AvgQuantityPerOrder float64 `json:"avg_quantity_per_order"`
	PercentageOfTotal   float64 `json:"percentage_of_total"`
}

// SegmentGP is one entry of a segment ranking by summed gross profit.
type SegmentGP struct {
	Segment string  `json:"segment"`
	GP      float64 `json:"gp"`
}

// ProductQuantity is one entry of a product ranking by total quantity sold.
type ProductQuantity struct {
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// PivotRow is one country row of the country x segment pivot. Values holds
// one sum per stack column, including the "Others" bucket.
type PivotRow struct {
	Country string             `json:"country"`
	Values  map[string]float64 `json:"values"`
	Total   float64            `json:"total"`
}

// CountrySegmentPivot is the stacked-bar feed: one column per top segment
// plus "Others", one row per country sorted descending by row total.
type CountrySegmentPivot struct {
	Stacks []string          `json:"stacks"`
	Colors map[string]string `json:"colors"`
	Rows   []PivotRow        `json:"rows"`
}

// OrderKPIs are the headline cards of the order analysis dashboard.
type OrderKPIs struct {
	TotalAmount   float64 `json:"total_amount"`
	OrderCount    int     `json:"order_count"`
	TotalQuantity int     `json:"total_quantity"`
}

// ReserveKPIs are the headline cards of the reserve dashboard.
type ReserveKPIs struct {
	TotalAmount  float64 `json:"total_amount"`
	TotalReserve float64 `json:"total_reserve"`
	OrderCount   int     `json:"order_count"`
}

// DashboardSummary aggregates the derived views served to the dashboard in
// one payload.
type DashboardSummary struct {
	OrderKPIs    OrderKPIs           `json:"order_kpis"`
	ReserveKPIs  ReserveKPIs         `json:"reserve_kpis"`
	ProductSales []ProductSale       `json:"product_sales"`
	TopProducts  []ProductQuantity   `json:"top_products"`
	TopSegments  []SegmentGP         `json:"top_segments"`
	Pivot        CountrySegmentPivot `json:"pivot"`
}
