package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
)

const exportDateLayout = "2006-01-02"

// ExportReserveOrdersCSV writes reserve orders as CSV.
func ExportReserveOrdersCSV(w io.Writer, orders []domain.ReserveOrder) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"Date", "Order FY", "Party Name", "Amount", "Reserve", "Total", "Order No", "Segment", "Req Reserve 12"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, order := range orders {
		record := []string{
			order.Date.Format(exportDateLayout),
			order.OrderFY,
			order.PartyName,
			formatAmount(order.Amount),
			formatAmount(order.Reserve),
			formatAmount(order.Total),
			order.OrderNo,
			order.Segment,
			formatAmount(order.ReqReserve12),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportGPRecordsCSV writes gross-profit records as CSV.
func ExportGPRecordsCSV(w io.Writer, records []domain.GPRecord) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"Country", "Segment", "Bonhorffer Code", "Export Value", "Import Value", "GP"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, rec := range records {
		record := []string{
			rec.Country,
			rec.Segment,
			rec.BonhorfferCode,
			formatAmount(rec.ExportValue),
			formatAmount(rec.ImportValue),
			formatAmount(rec.GP),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportCombinedOrdersCSV writes combined orders as CSV, one line per line
// item so the order/product join stays visible in the export. Orders without
// products still get one line.
func ExportCombinedOrdersCSV(w io.Writer, orders []domain.CombinedOrder) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"Date", "Order No", "Sales Person", "Country", "Segment", "Amount", "Product Code", "Product Name", "Quantity"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, order := range orders {
		base := []string{
			order.Date.Format(exportDateLayout),
			order.OrderNo,
			order.SalesPerson,
			order.Country,
			order.Segment,
			formatAmount(order.Amount),
		}
		if len(order.Products) == 0 {
			if err := writer.Write(append(base, "", "", "0")); err != nil {
				return err
			}
			continue
		}
		for _, product := range order.Products {
			record := append(append([]string{}, base...),
				product.ProductCode,
				product.ProductName,
				strconv.Itoa(product.Quantity),
			)
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportProductSalesCSV writes the derived per-product summary as CSV.
func ExportProductSalesCSV(w io.Writer, sales []domain.ProductSale) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"Product Code", "Product Name", "Total Quantity", "Order Count", "Avg Qty/Order", "% of Total"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, sale := range sales {
		record := []string{
			sale.ProductCode,
			sale.ProductName,
			strconv.Itoa(sale.TotalQuantity),
			strconv.Itoa(sale.OrderCount),
			fmt.Sprintf("%.1f", sale.AvgQuantityPerOrder),
			fmt.Sprintf("%.2f", sale.PercentageOfTotal),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ExportTimestamp names export files consistently.
func ExportTimestamp(t time.Time) string {
	return t.Format("20060102_150405")
}
