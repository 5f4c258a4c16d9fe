package api

import (
	"net/http"

	resdto "commerce-ledger/internal/handler/dto/response"
	"commerce-ledger/internal/handler/httperr"
	"commerce-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	q queries.NotificationQueries
}

func NewNotificationHandler(q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{q: q}
}

// @Summary List notification jobs
// @Description Delivery log of low-stock notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param status query string false "queued, sent or failed (default failed)"
// @Param limit query int false "Max items"
// @Success 200 {array} resdto.NotificationJobResponse
// @Failure 400 {object} httperr.Response
// @Router /notifications/jobs [get]
func (h *NotificationHandler) ListJobs(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	jobs, err := h.q.ListJobs(c.Request.Context(), c.Query("status"), limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to load notification jobs")
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotificationJobViews(jobs))
}
