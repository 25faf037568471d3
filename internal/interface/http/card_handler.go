package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/teamkudos/kudos-backend/internal/application"
	"github.com/teamkudos/kudos-backend/internal/domain/repository"
	"github.com/teamkudos/kudos-backend/internal/interface/middleware"
	"github.com/teamkudos/kudos-backend/pkg/response"
	"github.com/teamkudos/kudos-backend/pkg/validation"
)

type CardHandler struct {
	Cards  *app.CardService
	Logger *logrus.Logger
}

func NewCardHandler(cards *app.CardService, logger *logrus.Logger) *CardHandler {
	return &CardHandler{Cards: cards, Logger: logger}
}

type createCardRequest struct {
	Message     string `json:"message" binding:"required"`
	RecipientID string `json:"recipient_id" binding:"required"`
	SentBy      string `json:"sent_by"`
	TeamID      string `json:"team_id"`
	CategoryID  string `json:"category_id"`
}

type updateCardRequest struct {
	Message    *string `json:"message"`
	CategoryID *string `json:"category_id"`
	TeamID     *string `json:"team_id"`
}

// Create POST /api/cards (admin/lead)
func (h *CardHandler) Create(c *gin.Context) {
	var req createCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	card, err := h.Cards.Create(c.Request.Context(), middleware.ActorFrom(c), app.CreateCardInput{
		Message:     req.Message,
		RecipientID: req.RecipientID,
		SentBy:      req.SentBy,
		TeamID:      req.TeamID,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, card, "card created", nil)
}

// Get GET /api/cards/:id
func (h *CardHandler) Get(c *gin.Context) {
	card, err := h.Cards.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, card, "card", nil)
}

// List GET /api/cards?recipient_id=&team_id=&category_id=
func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.Cards.List(c.Request.Context(), repository.CardFilter{
		RecipientID: c.Query("recipient_id"),
		TeamID:      c.Query("team_id"),
		CategoryID:  c.Query("category_id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cards, "cards", map[string]any{"count": len(cards)})
}

// Update PUT /api/cards/:id (creator or admin, elevated role required)
func (h *CardHandler) Update(c *gin.Context) {
	var req updateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	card, err := h.Cards.Update(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), app.UpdateCardInput{
		Message:    req.Message,
		CategoryID: req.CategoryID,
		TeamID:     req.TeamID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, card, "card updated", nil)
}

// Delete DELETE /api/cards/:id
func (h *CardHandler) Delete(c *gin.Context) {
	if err := h.Cards.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "card deleted", nil)
}

// Search GET /api/cards/search?q=&size=
func (h *CardHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter 'q' is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Cards.Search(c.Request.Context(), q, size)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}
