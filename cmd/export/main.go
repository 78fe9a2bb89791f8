package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/config"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/derive"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/service"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/sheets"
)

func newOutFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "out",
		Usage:   "Directory to write CSV exports to (\"-\" writes to stdout)",
		Value:   "./exports",
		EnvVars: []string{"EXPORT_OUT_DIR"},
	}
}

func newFetcher(c *cli.Context) *sheets.Fetcher {
	cfg := config.Load()
	baseURL := c.String("base-url")
	if baseURL == "" {
		baseURL = cfg.Sheets.BaseURL
	}
	client := sheets.NewClient(baseURL, time.Duration(cfg.Sheets.RequestTimeoutSeconds)*time.Second)
	return sheets.NewFetcher(client)
}

// openOut returns the writer for a dataset export and a close function.
func openOut(c *cli.Context, dataset string) (io.Writer, func() error, error) {
	dir := c.String("out")
	if dir == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	name := fmt.Sprintf("%s_%s.csv", dataset, service.ExportTimestamp(time.Now()))
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create export file: %w", err)
	}
	return f, f.Close, nil
}

func exportReserve(c *cli.Context) error {
	fetcher := newFetcher(c)
	orders, err := fetcher.ReserveOrders(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch reserve orders: %w", err)
	}
	w, closeOut, err := openOut(c, "reserve_orders")
	if err != nil {
		return err
	}
	if err := service.ExportReserveOrdersCSV(w, orders); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func exportGP(c *cli.Context) error {
	fetcher := newFetcher(c)
	records, err := fetcher.GPRecords(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch GP records: %w", err)
	}
	w, closeOut, err := openOut(c, "gp_records")
	if err != nil {
		return err
	}
	if err := service.ExportGPRecordsCSV(w, records); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func fetchCombined(c *cli.Context) ([]domain.CombinedOrder, error) {
	fetcher := newFetcher(c)
	headers, err := fetcher.OrderHeaders(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order headers: %w", err)
	}
	items, err := fetcher.OrderLineItems(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order line items: %w", err)
	}
	return derive.CombineOrders(headers, items), nil
}

func exportOrders(c *cli.Context) error {
	combined, err := fetchCombined(c)
	if err != nil {
		return err
	}
	w, closeOut, err := openOut(c, "orders")
	if err != nil {
		return err
	}
	if err := service.ExportCombinedOrdersCSV(w, combined); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func exportProductSales(c *cli.Context) error {
	combined, err := fetchCombined(c)
	if err != nil {
		return err
	}
	sales := derive.ProductSales(combined)
	w, closeOut, err := openOut(c, "product_sales")
	if err != nil {
		return err
	}
	if err := service.ExportProductSalesCSV(w, sales); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "export",
		Usage: "Fetch dashboard datasets from Google Sheets and write them as CSV",
		Flags: []cli.Flag{
			newOutFlag(),
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "Google Sheets base URL override",
				EnvVars: []string{"SHEETS_BASE_URL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "reserve",
				Usage:  "Export Latam reserve orders",
				Flags:  []cli.Flag{newOutFlag()},
				Action: exportReserve,
			},
			{
				Name:   "gp",
				Usage:  "Export country wise GP records",
				Flags:  []cli.Flag{newOutFlag()},
				Action: exportGP,
			},
			{
				Name:   "orders",
				Usage:  "Export combined orders with their line items",
				Flags:  []cli.Flag{newOutFlag()},
				Action: exportOrders,
			},
			{
				Name:   "product_sales",
				Usage:  "Export the per product sales summary",
				Flags:  []cli.Flag{newOutFlag()},
				Action: exportProductSales,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
