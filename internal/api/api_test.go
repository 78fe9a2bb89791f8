package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/domain"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/refresh"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/service"
)

type stubFetcher struct{}

func (stubFetcher) ReserveOrders(ctx context.Context) ([]domain.ReserveOrder, error) {
	return []domain.ReserveOrder{{PartyName: "Acme", Amount: 1000, Reserve: 250}}, nil
}

func (stubFetcher) GPRecords(ctx context.Context) ([]domain.GPRecord, error) {
	return []domain.GPRecord{{Country: "USA", Segment: "Surgical", GP: 40}}, nil
}

func (stubFetcher) OrderHeaders(ctx context.Context) ([]domain.OrderHeader, error) {
	return []domain.OrderHeader{{OrderNo: "A", Amount: 1000}}, nil
}

func (stubFetcher) OrderLineItems(ctx context.Context) ([]domain.OrderLineItem, error) {
	return []domain.OrderLineItem{{OrderNo: "A", ProductCode: "P-1", ProductName: "Forceps", Quantity: 5}}, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := refresh.NewStore()
	refresher := refresh.NewRefresher(stubFetcher{}, store, time.Minute)
	if !refresher.TryRefresh(context.Background()) {
		t.Fatal("initial refresh did not run")
	}

	return NewRouter(service.NewDashboardService(store, refresher, nil), nil)
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	w := doGet(t, newTestRouter(t), "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestStatusEndpoint(t *testing.T) {
	w := doGet(t, newTestRouter(t), "/api/v1/status")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var info domain.StatusInfo
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.Status != domain.StatusReady || !info.HasData {
		t.Errorf("status payload = %+v, want ready with data", info)
	}
}

func TestReserveOrdersEndpointPaginates(t *testing.T) {
	w := doGet(t, newTestRouter(t), "/api/v1/reserve/orders?page=1&page_size=5")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var payload struct {
		Items      []domain.ReserveOrder `json:"items"`
		Total      int                   `json:"total"`
		Page       int                   `json:"page"`
		PageSize   int                   `json:"page_size"`
		TotalPages int                   `json:"total_pages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Total != 1 || len(payload.Items) != 1 {
		t.Errorf("payload = %+v, want one order", payload)
	}
	if payload.Items[0].PartyName != "Acme" {
		t.Errorf("party = %q, want Acme", payload.Items[0].PartyName)
	}
	if payload.TotalPages != 1 {
		t.Errorf("total_pages = %d, want 1", payload.TotalPages)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	w := doGet(t, newTestRouter(t), "/api/v1/summary")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var summary domain.DashboardSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if summary.OrderKPIs.OrderCount != 1 {
		t.Errorf("order count = %d, want 1", summary.OrderKPIs.OrderCount)
	}
	if len(summary.TopSegments) != 1 || summary.TopSegments[0].Segment != "Surgical" {
		t.Errorf("top segments = %+v", summary.TopSegments)
	}
}

func TestManualRefreshEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/refresh", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var info domain.StatusInfo
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.Status != domain.StatusReady {
		t.Errorf("status after refresh = %q, want ready", info.Status)
	}
}

func TestNormalizeAllowedOrigins(t *testing.T) {
	origins, allowAll := normalizeAllowedOrigins([]string{"http://a.example, http://b.example", "", "*"})
	if !allowAll {
		t.Error("wildcard not detected")
	}
	if len(origins) != 2 || origins[0] != "http://a.example" || origins[1] != "http://b.example" {
		t.Errorf("origins = %v", origins)
	}
}
