package middleware

import (
	"log/slog"
	"net/http"

	"commerce-ledger/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware also exposes the request id header so browser clients
// can quote it when reporting a failed checkout.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	exposed := cfg.ExposeHeaders
	if !containsHeader(exposed, headerRequestID) {
		exposed = append(append([]string{}, exposed...), headerRequestID)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    exposed,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = !cfg.AllowCredentials
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"expose_headers", exposed,
	)
	return cors.New(corsCfg)
}

func containsHeader(headers []string, name string) bool {
	for _, h := range headers {
		if http.CanonicalHeaderKey(h) == http.CanonicalHeaderKey(name) {
			return true
		}
	}
	return false
}
