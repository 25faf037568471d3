package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/teamkudos/kudos-backend/internal/domain/entity"
	"github.com/teamkudos/kudos-backend/internal/domain/policy"
	"github.com/teamkudos/kudos-backend/internal/domain/repository"
	"github.com/teamkudos/kudos-backend/pkg/apperrors"
)

// DirectoryService manages the team and category lookup tables. Reads are
// open to any authenticated user; writes are admin-only.
type DirectoryService struct {
	Teams      repository.TeamRepository
	Categories repository.CategoryRepository
	Logger     *logrus.Logger
}

func NewDirectoryService(teams repository.TeamRepository, categories repository.CategoryRepository, logger *logrus.Logger) *DirectoryService {
	return &DirectoryService{Teams: teams, Categories: categories, Logger: logger}
}

func (s *DirectoryService) ListTeams(ctx context.Context) ([]*entity.Team, error) {
	return s.Teams.List(ctx)
}

func (s *DirectoryService) CreateTeam(ctx context.Context, actor policy.Actor, name string) (*entity.Team, error) {
	if err := policy.CanManageDirectory(actor); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperrors.InvalidUserData("team name is required")
	}
	now := time.Now().UTC()
	team := &entity.Team{ID: uuid.NewString(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := s.Teams.Create(ctx, team); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"team_id": team.ID, "actor_id": actor.ID}).Info("team created")
	}
	return team, nil
}

func (s *DirectoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return s.Categories.List(ctx)
}

func (s *DirectoryService) CreateCategory(ctx context.Context, actor policy.Actor, name string) (*entity.Category, error) {
	if err := policy.CanManageDirectory(actor); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperrors.InvalidUserData("category name is required")
	}
	now := time.Now().UTC()
	cat := &entity.Category{ID: uuid.NewString(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := s.Categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"category_id": cat.ID, "actor_id": actor.ID}).Info("category created")
	}
	return cat, nil
}
