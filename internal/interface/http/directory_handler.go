package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/teamkudos/kudos-backend/internal/application"
	"github.com/teamkudos/kudos-backend/internal/interface/middleware"
	"github.com/teamkudos/kudos-backend/pkg/response"
	"github.com/teamkudos/kudos-backend/pkg/validation"
)

type DirectoryHandler struct {
	Directory *app.DirectoryService
	Logger    *logrus.Logger
}

func NewDirectoryHandler(directory *app.DirectoryService, logger *logrus.Logger) *DirectoryHandler {
	return &DirectoryHandler{Directory: directory, Logger: logger}
}

type createNamedRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListTeams GET /api/teams
func (h *DirectoryHandler) ListTeams(c *gin.Context) {
	teams, err := h.Directory.ListTeams(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, teams, "teams", nil)
}

// CreateTeam POST /api/teams (admin)
func (h *DirectoryHandler) CreateTeam(c *gin.Context) {
	var req createNamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	team, err := h.Directory.CreateTeam(c.Request.Context(), middleware.ActorFrom(c), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, team, "team created", nil)
}

// ListCategories GET /api/categories
func (h *DirectoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.Directory.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, categories, "categories", nil)
}

// CreateCategory POST /api/categories (admin)
func (h *DirectoryHandler) CreateCategory(c *gin.Context) {
	var req createNamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cat, err := h.Directory.CreateCategory(c.Request.Context(), middleware.ActorFrom(c), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cat, "category created", nil)
}
