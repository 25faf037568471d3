package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/teamkudos/kudos-backend/internal/domain/entity"
	"github.com/teamkudos/kudos-backend/internal/domain/policy"
	repo "github.com/teamkudos/kudos-backend/internal/domain/repository"
	"github.com/teamkudos/kudos-backend/internal/domain/valueobject"
	"github.com/teamkudos/kudos-backend/pkg/apperrors"
	"github.com/teamkudos/kudos-backend/pkg/helpers"
)

const profileCacheTTL = 5 * time.Minute

func profileCacheKey(userID string) string { return "user:profile:" + userID }

// UserService is the policy-gated mutation path for user accounts. Every
// change goes through the access policy evaluator before touching storage.
type UserService struct {
	Users     repo.UserRepository
	GCS       *storage.Client
	GCSBucket string
	RDB       *redis.Client
	Logger    *logrus.Logger
}

func NewUserService(users repo.UserRepository, gcs *storage.Client, gcsBucket string, rdb *redis.Client, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, GCS: gcs, GCSBucket: gcsBucket, RDB: rdb, Logger: logger}
}

// GetProfile returns the public projection, served from the Redis cache when
// warm. Cache failures fall through to storage.
func (s *UserService) GetProfile(ctx context.Context, userID string) (entity.PublicUser, error) {
	if s.RDB != nil {
		var cached entity.PublicUser
		if ok, err := helpers.RedisGetJSON(ctx, s.RDB, profileCacheKey(userID), &cached); err == nil && ok {
			return cached, nil
		}
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return entity.PublicUser{}, err
	}
	pub := u.Public()
	if s.RDB != nil {
		_ = helpers.RedisSetJSON(ctx, s.RDB, profileCacheKey(userID), pub, profileCacheTTL)
	}
	return pub, nil
}

// UpdateUserInput carries the requested changes as raw strings; nil means
// leave untouched. Role/approval values are parsed before policy evaluation.
type UpdateUserInput struct {
	FirstName      *string
	LastName       *string
	JobTitle       *string
	Email          *string
	Role           *string
	ApprovalStatus *string
}

// Update applies a policy-checked mutation to the target user.
func (s *UserService) Update(ctx context.Context, actor policy.Actor, targetID string, in UpdateUserInput) (*entity.User, error) {
	target, err := s.Users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	change := policy.UserUpdate{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		JobTitle:  in.JobTitle,
		Email:     in.Email,
	}
	if in.Role != nil {
		role, err := entity.ParseRole(*in.Role)
		if err != nil {
			return nil, err
		}
		change.Role = &role
	}
	if in.ApprovalStatus != nil {
		st, err := entity.ParseApprovalStatus(*in.ApprovalStatus)
		if err != nil {
			return nil, err
		}
		change.ApprovalStatus = &st
	}

	if err := policy.CanUpdateUser(actor, target, change); err != nil {
		return nil, err
	}

	if in.Email != nil {
		email, err := valueobject.NewEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		target.Email = email
	}
	if in.FirstName != nil {
		target.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		target.LastName = *in.LastName
	}
	if in.JobTitle != nil {
		target.JobTitle = *in.JobTitle
	}
	if change.Role != nil {
		target.Role = *change.Role
	}
	if change.ApprovalStatus != nil {
		target.ApprovalStatus = *change.ApprovalStatus
	}

	if err := s.Users.Update(ctx, target); err != nil {
		return nil, err
	}
	s.invalidateProfile(ctx, target.ID)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"actor_id": actor.ID, "user_id": target.ID}).Info("user updated")
	}
	return target, nil
}

func (s *UserService) invalidateProfile(ctx context.Context, userID string) {
	if s.RDB != nil {
		_ = helpers.RedisDel(ctx, s.RDB, profileCacheKey(userID))
	}
}

// Delete removes a user account after the admin-only policy check.
func (s *UserService) Delete(ctx context.Context, actor policy.Actor, targetID string) error {
	target, err := s.Users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if err := policy.CanDeleteUser(actor, target); err != nil {
		return err
	}
	if err := s.Users.Delete(ctx, targetID); err != nil {
		return err
	}
	s.invalidateProfile(ctx, targetID)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"actor_id": actor.ID, "user_id": targetID}).Info("user deleted")
	}
	return nil
}

// List returns the password-free projection of every account; admin/lead only.
func (s *UserService) List(ctx context.Context, actor policy.Actor) ([]entity.PublicUser, error) {
	if err := policy.CanListUsers(actor); err != nil {
		return nil, err
	}
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

// UploadAvatar stores the avatar under a fixed per-user object path in GCS
// and returns the public URL. The path is deterministic so no URL column is
// needed on the user row.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", apperrors.InvalidUserData("avatar storage not configured")
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, "avatar"+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}
