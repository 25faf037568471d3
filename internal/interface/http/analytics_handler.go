package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/teamkudos/kudos-backend/internal/application"
	"github.com/teamkudos/kudos-backend/internal/interface/middleware"
	"github.com/teamkudos/kudos-backend/pkg/response"
)

type AnalyticsHandler struct {
	Analytics *app.AnalyticsService
	Logger    *logrus.Logger
}

func NewAnalyticsHandler(analytics *app.AnalyticsService, logger *logrus.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{Analytics: analytics, Logger: logger}
}

// Summary GET /api/analytics/summary (admin/lead)
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.Analytics.Summary(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary, "analytics summary", nil)
}
