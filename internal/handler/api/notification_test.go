//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"commerce-ledger/internal/handler/api"
	resdto "commerce-ledger/internal/handler/dto/response"
	"commerce-ledger/internal/pkg/ptr"
	"commerce-ledger/internal/usecase/queries"
	"commerce-ledger/tests/common/httptest"
	queriesmock "commerce-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupNotificationRouter(t *testing.T) (*gin.Engine, *queriesmock.MockNotificationQueries) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockQueries := queriesmock.NewMockNotificationQueries(ctrl)

	router := gin.New()
	router.GET("/notifications/jobs", api.NewNotificationHandler(mockQueries).ListJobs)
	return router, mockQueries
}

func TestNotificationHandler_ListJobs(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("基本成功ケース", func(t *testing.T) {
		router, mockQueries := setupNotificationRouter(t)
		mockQueries.EXPECT().ListJobs(gomock.Any(), "failed", 20).Return([]queries.NotificationJobView{
			{
				ID:        uuid.New(),
				Kind:      "low_stock",
				Topic:     "inventory.low-stock",
				Payload:   []byte(`{"currentStock":2,"threshold":5}`),
				RunAt:     now,
				Attempts:  3,
				Status:    "failed",
				LastError: ptr.To("broker unavailable"),
				CreatedAt: now,
				UpdatedAt: now,
			},
		}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/notifications/jobs?status=failed&limit=20", nil, "")

		var response []resdto.NotificationJobResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		if assert.Len(t, response, 1) {
			assert.Equal(t, int32(3), response[0].Attempts)
			assert.JSONEq(t, `{"currentStock":2,"threshold":5}`, string(response[0].Payload))
			assert.Equal(t, "broker unavailable", *response[0].LastError)
		}
	})

	t.Run("status and limit are optional", func(t *testing.T) {
		router, mockQueries := setupNotificationRouter(t)
		mockQueries.EXPECT().ListJobs(gomock.Any(), "", 0).Return([]queries.NotificationJobView{}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/notifications/jobs", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("invalid payload is rendered as null", func(t *testing.T) {
		router, mockQueries := setupNotificationRouter(t)
		mockQueries.EXPECT().ListJobs(gomock.Any(), "sent", 0).Return([]queries.NotificationJobView{
			{ID: uuid.New(), Status: "sent", Payload: []byte("{broken")},
		}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/notifications/jobs?status=sent", nil, "")

		var response []map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		if assert.Len(t, response, 1) {
			assert.Nil(t, response[0]["payload"])
		}
	})

	t.Run("error: unknown status", func(t *testing.T) {
		router, mockQueries := setupNotificationRouter(t)
		mockQueries.EXPECT().ListJobs(gomock.Any(), "lost", 0).Return(nil, queries.ErrInvalidJobStatus)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/notifications/jobs?status=lost", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "invalid notification job status")
	})

	t.Run("error: invalid limit", func(t *testing.T) {
		router, _ := setupNotificationRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/notifications/jobs?limit=many", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "limit")
	})
}
