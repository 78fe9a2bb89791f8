package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/service"
)

type DashboardHandler struct {
	service *service.DashboardService
}

func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// parseListParams reads the sort/page view parameters shared by the table
// endpoints. defaultField/defaultDesc give each endpoint its natural order.
func (h *DashboardHandler) parseListParams(c *gin.Context, defaultField string, defaultDesc bool) service.ListParams {
	params := service.ListParams{
		SortField: defaultField,
		SortDesc:  defaultDesc,
		Page:      1,
		PageSize:  10,
	}

	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && page > 0 {
		params.Page = page
	}

	if size, err := strconv.Atoi(c.DefaultQuery("page_size", "10")); err == nil && size > 0 {
		params.PageSize = size
	}

	if field := strings.TrimSpace(c.Query("sort_field")); field != "" {
		params.SortField = strings.ToLower(field)
	}

	if dir := strings.ToLower(strings.TrimSpace(c.Query("sort_direction"))); dir != "" {
		params.SortDesc = dir == "desc"
	}

	return params
}

func listResponse(c *gin.Context, items any, total int, params service.ListParams) {
	totalPages := 0
	if params.PageSize > 0 {
		totalPages = (total + params.PageSize - 1) / params.PageSize
	}
	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total":       total,
		"page":        params.Page,
		"page_size":   params.PageSize,
		"total_pages": totalPages,
	})
}

func (h *DashboardHandler) GetReserveOrders(c *gin.Context) {
	params := h.parseListParams(c, "date", true)
	items, total := h.service.ReserveOrders(params)
	listResponse(c, items, total, params)
}

func (h *DashboardHandler) GetGPRecords(c *gin.Context) {
	params := h.parseListParams(c, "", false)
	items, total := h.service.GPRecords(params)
	listResponse(c, items, total, params)
}

func (h *DashboardHandler) GetCombinedOrders(c *gin.Context) {
	params := h.parseListParams(c, "date", true)
	items, total := h.service.CombinedOrders(params)
	listResponse(c, items, total, params)
}

func (h *DashboardHandler) GetProductSales(c *gin.Context) {
	params := h.parseListParams(c, "total_quantity", true)
	items, total := h.service.ProductSales(params)
	listResponse(c, items, total, params)
}

func (h *DashboardHandler) GetTopSegments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"segments": h.service.TopSegments()})
}

func (h *DashboardHandler) GetTopProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.service.TopProducts()})
}

func (h *DashboardHandler) GetCountrySegmentPivot(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.CountrySegmentPivot())
}

func (h *DashboardHandler) GetOrderKPIs(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.OrderKPIs())
}

func (h *DashboardHandler) GetReserveKPIs(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ReserveKPIs())
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Summary(c.Request.Context()))
}

// GetStatus exposes the snapshot status so the dashboard can render a
// full-screen loading or error state before the first successful cycle, and
// a non-blocking stale banner afterwards.
func (h *DashboardHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status())
}

// TriggerRefresh runs a manual refresh cycle to completion. While a cycle is
// already in flight the trigger is ignored and 409 is returned.
func (h *DashboardHandler) TriggerRefresh(c *gin.Context) {
	if !h.service.TriggerRefresh(c.Request.Context()) {
		c.JSON(http.StatusConflict, gin.H{"error": "a refresh cycle is already in flight"})
		return
	}
	c.JSON(http.StatusOK, h.service.Status())
}
