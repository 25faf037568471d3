package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/teamkudos/kudos-backend/internal/application"
	"github.com/teamkudos/kudos-backend/internal/domain/entity"
	"github.com/teamkudos/kudos-backend/pkg/response"
	"github.com/teamkudos/kudos-backend/pkg/validation"
)

type AuthHandler struct {
	Auth   *app.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *app.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

type signupRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,pwd"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	JobTitle  string `json:"job_title"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup POST /api/signup. New accounts always start as pending members.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Auth.Signup(c.Request.Context(), entity.NewUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		JobTitle:  req.JobTitle,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, u.Public(), "account created", nil)
}

// Login POST /api/login. A lookup miss and a wrong password produce the same
// response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"token": res.Token,
		"user":  res.User,
	}, "login successful", map[string]any{"expires_at": res.ExpiresAt})
}

// Logout POST /api/logout. Revokes the presented token for its remaining
// lifetime; an already-expired token is a successful no-op.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := ""
	if header := c.GetHeader("Authorization"); header != "" {
		if _, rest, ok := strings.Cut(header, " "); ok {
			token = strings.TrimSpace(rest)
		}
	}
	if token == "" {
		response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	if err := h.Auth.Logout(c.Request.Context(), token); err != nil {
		writeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}
