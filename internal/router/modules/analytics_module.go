package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teamkudos/kudos-backend/internal/container"
	handlers "github.com/teamkudos/kudos-backend/internal/interface/http"
	"github.com/teamkudos/kudos-backend/internal/interface/middleware"
	"github.com/teamkudos/kudos-backend/pkg/helpers"
)

// AnalyticsModule wires the recognition analytics summary.
type AnalyticsModule struct {
	Handler *handlers.AnalyticsHandler
	JWT     *helpers.JWTManager
}

func NewAnalyticsModule(h *handlers.AnalyticsHandler, jwt *helpers.JWTManager) *AnalyticsModule {
	return &AnalyticsModule{Handler: h, JWT: jwt}
}

func (m *AnalyticsModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, container.GetRevocationStore()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/analytics/summary", m.Handler.Summary)
	}
}
