package sheets

// Spreadsheet identifiers are fixed; the dashboards read two public
// spreadsheets, one carrying the reserve and gross-profit sheets and one
// carrying the order-analysis sheets.
const (
	reserveSpreadsheetID = "1Q-FWc9tnZhhLtn0kpp_9HmvPR9g_8VQOD12WBWPzboM"
	orderSpreadsheetID   = "1UhYJoAhHaeqo_0HRzmoBY3FD1VD-Kbw_9iDACk9jEZ0"
)

var (
	ReserveSource = Source{
		Name:          "reserve",
		SpreadsheetID: reserveSpreadsheetID,
		Sheet:         "Latam_Reserve",
		Range:         "A:I",
	}

	GPSource = Source{
		Name:          "gp",
		SpreadsheetID: reserveSpreadsheetID,
		Sheet:         "Country Wise Highest Selling GP",
		Range:         "A:G",
	}

	OrderSource = Source{
		Name:          "orders",
		SpreadsheetID: orderSpreadsheetID,
		Sheet:         "Order",
		Range:         "A:G",
	}

	OrderProductSource = Source{
		Name:          "order_products",
		SpreadsheetID: orderSpreadsheetID,
		Sheet:         "Orderbyproduct",
		Range:         "A:D",
	}
)

// Column maps per record shape. Shared with the schema tests so that a
// column shift in the source sheet shows up as a test diff, not a silent
// mis-mapping.
var (
	ReserveSchema = Schema{
		Name: ReserveSource.Name,
		Columns: []Column{
			{Index: 0, Name: "date", Kind: KindDate},
			{Index: 1, Name: "order_fy", Kind: KindString},
			{Index: 2, Name: "party_name", Kind: KindString},
			{Index: 3, Name: "amount", Kind: KindNumber},
			{Index: 4, Name: "reserve", Kind: KindNumber},
			{Index: 5, Name: "total", Kind: KindNumber},
			{Index: 6, Name: "order_no", Kind: KindString},
			{Index: 7, Name: "segment", Kind: KindString},
			{Index: 8, Name: "req_reserve_12", Kind: KindNumber},
		},
	}

	// Column D of the GP sheet is unused.
	GPSchema = Schema{
		Name: GPSource.Name,
		Columns: []Column{
			{Index: 0, Name: "country", Kind: KindString},
			{Index: 1, Name: "segment", Kind: KindString},
			{Index: 2, Name: "bonhorffer_code", Kind: KindString},
			{Index: 4, Name: "export_value", Kind: KindNumber},
			{Index: 5, Name: "import_value", Kind: KindNumber},
			{Index: 6, Name: "gp", Kind: KindNumber},
		},
	}

	OrderSchema = Schema{
		Name: OrderSource.Name,
		Columns: []Column{
			{Index: 0, Name: "date", Kind: KindDate},
			{Index: 1, Name: "fy", Kind: KindString},
			{Index: 2, Name: "sales_person", Kind: KindString},
			{Index: 3, Name: "segment", Kind: KindString},
			{Index: 4, Name: "country", Kind: KindString},
			{Index: 5, Name: "order_no", Kind: KindString},
			{Index: 6, Name: "amount", Kind: KindCurrency},
		},
	}

	// Product name and quantity arrive swapped relative to their display
	// order: column C is the quantity, column D the name.
	OrderProductSchema = Schema{
		Name: OrderProductSource.Name,
		Columns: []Column{
			{Index: 0, Name: "order_no", Kind: KindString},
			{Index: 1, Name: "product_code", Kind: KindString},
			{Index: 2, Name: "quantity", Kind: KindNumber},
			{Index: 3, Name: "product_name", Kind: KindString},
		},
	}
)
