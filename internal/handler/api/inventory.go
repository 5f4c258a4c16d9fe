package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "commerce-ledger/internal/handler/dto/request"
	resdto "commerce-ledger/internal/handler/dto/response"
	"commerce-ledger/internal/handler/httperr"
	"commerce-ledger/internal/pkg/errs"
	"commerce-ledger/internal/usecase/commands"
	"commerce-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const analyticsDateLayout = "2006-01-02"

var (
	errInvalidLimit     = errs.NewValidation("limit must be a positive integer")
	errInvalidDateRange = errs.NewValidation("from and to are required dates formatted as YYYY-MM-DD")
)

type InventoryHandler struct {
	cmds commands.InventoryCommands
	q    queries.InventoryQueries
}

func NewInventoryHandler(cmds commands.InventoryCommands, q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{cmds: cmds, q: q}
}

// @Summary Record stock transaction
// @Description Apply a stock movement to a product and append it to the ledger
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordTransactionRequest true "Transaction"
// @Success 201 {object} resdto.RecordTransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /inventory/transactions [post]
func (h *InventoryHandler) RecordTransaction(c *gin.Context) {
	var req reqdto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.RecordTransaction(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Record transaction failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRecordResult(result))
}

// @Summary Get product stock
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.StockResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inventory/products/{id}/stock [get]
func (h *InventoryHandler) GetStock(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetStock(c.Request.Context(), productID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load stock")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStockView(view))
}

// @Summary List product transactions
// @Description Newest first
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param limit query int false "Max items (default 50, max 200)"
// @Success 200 {array} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inventory/transactions/product/{id} [get]
func (h *InventoryHandler) ListTransactions(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	history, err := h.q.ListProductTransactions(c.Request.Context(), productID, limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to load transactions")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionViews(history))
}

// @Summary Product inventory analytics
// @Description Daily sales, restocks and turnover over a UTC date range, both ends inclusive
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} resdto.ProductAnalyticsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inventory/analytics/product/{id} [get]
func (h *InventoryHandler) ProductAnalytics(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	from, errFrom := time.Parse(analyticsDateLayout, c.Query("from"))
	to, errTo := time.Parse(analyticsDateLayout, c.Query("to"))
	if errFrom != nil || errTo != nil {
		httperr.Abort(c, errInvalidDateRange, "")
		return
	}
	view, err := h.q.ProductAnalytics(c.Request.Context(), productID, from, to)
	if err != nil {
		httperr.Abort(c, err, "Failed to load analytics")
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductAnalytics(view))
}

// @Summary List low stock products
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.StockResponse
// @Router /inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	items, err := h.q.ListLowStockProducts(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to load low stock products")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStockViews(items))
}

// @Summary List active stock alerts
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AlertResponse
// @Router /inventory/alerts [get]
func (h *InventoryHandler) ListAlerts(c *gin.Context) {
	alerts, err := h.q.ListActiveAlerts(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to load alerts")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAlertViews(alerts))
}

// @Summary Create stock alert
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateStockAlertRequest true "Alert"
// @Success 201 {object} resdto.AlertResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /inventory/alerts [post]
func (h *InventoryHandler) CreateAlert(c *gin.Context) {
	var req reqdto.CreateStockAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	alert, err := h.cmds.CreateStockAlert(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Create alert failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromStockAlert(alert))
}

// @Summary Update stock alert
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Param request body reqdto.UpdateStockAlertRequest true "Alert changes"
// @Success 200 {object} resdto.AlertResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inventory/alerts/{id} [put]
func (h *InventoryHandler) UpdateAlert(c *gin.Context) {
	alertID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateStockAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	alert, err := h.cmds.UpdateStockAlert(c.Request.Context(), alertID, req)
	if err != nil {
		httperr.Abort(c, err, "Update alert failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStockAlert(alert))
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// parseLimit yields 0 when the parameter is absent; queries apply the default.
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		httperr.Abort(c, errInvalidLimit, "")
		return 0, false
	}
	return limit, true
}
