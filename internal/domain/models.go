package domain

import "time"

// ReserveOrder is one row of the Latam reserve sheet.
type ReserveOrder struct {
	Date         time.Time `json:"date"`
	OrderFY      string    `json:"order_fy"`
	PartyName    string    `json:"party_name"`
	Amount       float64   `json:"amount"`
	Reserve      float64   `json:"reserve"`
	Total        float64   `json:"total"`
	OrderNo      string    `json:"order_no"`
	Segment      string    `json:"segment"`
	ReqReserve12 float64   `json:"req_reserve_12"`
}

// GPRecord is one row of the country-wise gross profit sheet.
type GPRecord struct {
	Country        string  `json:"country"`
	Segment        string  `json:"segment"`
	BonhorfferCode string  `json:"bonhorffer_code"`
	ExportValue    float64 `json:"export_value"`
	ImportValue    float64 `json:"import_value"`
	GP             float64 `json:"gp"`
}

// OrderHeader is one row of the order sheet.
type OrderHeader struct {
	Date        time.Time `json:"date"`
	FY          string    `json:"fy"`
	SalesPerson string    `json:"sales_person"`
	Segment     string    `json:"segment"`
	Country     string    `json:"country"`
	OrderNo     string    `json:"order_no"`
	Amount      float64   `json:"amount"`
}

// OrderLineItem is one row of the order-by-product sheet, keyed back to its
// header by OrderNo.
type OrderLineItem struct {
	OrderNo     string `json:"order_no"`
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// CombinedOrder is an order header enriched with its line items.
// ProductCount always equals len(Products).
type CombinedOrder struct {
	OrderHeader
	Products     []OrderLineItem `json:"products"`
	ProductCount int             `json:"product_count"`
}
