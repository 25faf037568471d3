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

type UserHandler struct {
	Users  *app.UserService
	Logger *logrus.Logger
}

func NewUserHandler(users *app.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Users: users, Logger: logger}
}

type updateUserRequest struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	JobTitle       *string `json:"job_title"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Role           *string `json:"role"`
	ApprovalStatus *string `json:"approval_status"`
}

// GetProfile GET /api/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.Users.GetProfile(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile, "profile", nil)
}

// UpdateProfile PUT /api/profile. Same rules as Update with the actor as
// the target, so own role and approval changes stay policy-gated.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	h.update(c, c.GetString(middleware.CtxUserIDKey))
}

// List GET /api/users (admin/lead)
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users, "users", map[string]any{"count": len(users)})
}

// Update PUT /api/users/:id. Field-level rules are enforced by the access
// policy; the handler only parses the payload.
func (h *UserHandler) Update(c *gin.Context) {
	h.update(c, c.Param("id"))
}

func (h *UserHandler) update(c *gin.Context, targetID string) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Users.Update(c.Request.Context(), middleware.ActorFrom(c), targetID, app.UpdateUserInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		JobTitle:       req.JobTitle,
		Email:          req.Email,
		Role:           req.Role,
		ApprovalStatus: req.ApprovalStatus,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.Public(), "user updated", nil)
}

// Delete DELETE /api/users/:id (admin only, never self, never another admin)
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Users.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "user deleted", nil)
}

// UploadAvatar POST /api/profile/avatar (multipart form, field "avatar")
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "avatar file is required", nil)
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cannot read avatar file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Users.UploadAvatar(
		c.Request.Context(),
		c.GetString(middleware.CtxUserIDKey),
		f,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"avatar_url": url}, "avatar uploaded", nil)
}
