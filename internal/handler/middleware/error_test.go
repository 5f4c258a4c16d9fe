//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"commerce-ledger/internal/handler/middleware"
	"commerce-ledger/internal/pkg/errs"
	"commerce-ledger/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	return router
}

func TestErrorHandler(t *testing.T) {
	t.Run("private errors are classified", func(t *testing.T) {
		router := setupErrorRouter()
		router.GET("/conflict", func(c *gin.Context) { _ = c.Error(errs.NewConflict("taken")) })
		router.GET("/boom", func(c *gin.Context) { _ = c.Error(errs.New("db down")) })

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/conflict", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Conflict")

		rec = httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal Server Error")
		assert.NotContains(t, rec.Body.String(), "db down")
	})

	t.Run("status without body is flushed", func(t *testing.T) {
		router := setupErrorRouter()
		router.DELETE("/thing", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		rec := httptest.PerformRequest(t, router, http.MethodDelete, "/thing", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("written responses are untouched", func(t *testing.T) {
		router := setupErrorRouter()
		router.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, "")
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	})
}

func TestCustomRecovery(t *testing.T) {
	router := setupErrorRouter()
	router.GET("/panic", func(c *gin.Context) { panic("nil map write") })

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.NotContains(t, rec.Body.String(), "nil map")
}
