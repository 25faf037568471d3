package application

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/teamkudos/kudos-backend/internal/domain/entity"
	repo "github.com/teamkudos/kudos-backend/internal/domain/repository"
	"github.com/teamkudos/kudos-backend/internal/infrastructure/revocation"
	"github.com/teamkudos/kudos-backend/pkg/apperrors"
	"github.com/teamkudos/kudos-backend/pkg/helpers"
)

// invalidCredentialsMsg is shared by the lookup-miss and password-mismatch
// paths so a caller cannot distinguish them (user-enumeration defense).
const invalidCredentialsMsg = "invalid email or password"

// AuthService issues and revokes session credentials.
type AuthService struct {
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
	Revoked revocation.Store
	Logger  *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, revoked revocation.Store, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Revoked: revoked, Logger: logger}
}

// LoginResult is the sign-in payload: the session token, its expiry, and the
// public (password-free) user projection.
type LoginResult struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	User      entity.PublicUser `json:"user"`
}

// Signup registers a new account. Role and approval status are forced to
// member/pending regardless of input; a duplicate email is a conflict.
func (s *AuthService) Signup(ctx context.Context, in entity.NewUserInput) (*entity.User, error) {
	u, err := entity.NewUser(in)
	if err != nil {
		return nil, err
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user signed up")
	}
	return u, nil
}

// Login authenticates email/password and mints a session token. A missing
// user and a wrong password fail identically; timing between the two paths
// is not equalized.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindUserNotFound) {
			return nil, apperrors.InvalidCredentials(invalidCredentialsMsg)
		}
		return nil, err
	}
	if !u.VerifyPassword(password) {
		return nil, apperrors.InvalidCredentials(invalidCredentialsMsg)
	}

	token, exp, err := s.JWT.Generate(u.ID, u.Email.String(), string(u.Role))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: u.Public()}, nil
}

// Logout puts the presented token on the revocation list for its remaining
// life. An already-expired token needs no entry.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.JWT.Parse(token)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindTokenExpired) {
			return nil
		}
		return err
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return s.Revoked.Revoke(ctx, token, ttl)
}
