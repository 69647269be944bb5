package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prospectcrm/internal/config"
	"prospectcrm/internal/domain/auth"
	"prospectcrm/internal/domain/conversion"
	"prospectcrm/internal/domain/notification"
	"prospectcrm/internal/domain/organization"
	"prospectcrm/internal/domain/prospect"
	"prospectcrm/internal/middleware"
	"prospectcrm/internal/pkg/jwt"
)

// Handlers groups every HTTP handler mounted by the router.
type Handlers struct {
	Auth          *auth.Handler
	Prospects     *prospect.Handler
	Conversion    *conversion.Handler
	Organizations *organization.Handler
	Notifications *notification.Handler
	WS            *notification.WSHandler
}

// NewRouter builds the gin engine with all routes.
func NewRouter(cfg *config.Config, log *zap.Logger, tokens *jwt.Service, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.ErrorLogger(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	notification.RegisterWSRoutes(r, h.WS)

	v1 := r.Group("/api/v1")
	h.Auth.RegisterPublicRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(tokens))
	{
		h.Auth.RegisterProtectedRoutes(protected)
		prospect.RegisterRoutes(protected, h.Prospects)
		conversion.RegisterRoutes(protected, h.Conversion)
		organization.RegisterRoutes(protected, h.Organizations)
		notification.RegisterRoutes(protected, h.Notifications)
	}

	return r
}

// NewHTTPServer wraps the engine in an http.Server listening on cfg.Port.
func NewHTTPServer(cfg *config.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
