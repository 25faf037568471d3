package application

import (
	"context"

	"github.com/teamkudos/kudos-backend/internal/domain/policy"
	repo "github.com/teamkudos/kudos-backend/internal/domain/repository"
)

// AnalyticsService exposes aggregate recognition counts to admins and leads.
type AnalyticsService struct {
	Analytics repo.AnalyticsRepository
}

func NewAnalyticsService(analytics repo.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{Analytics: analytics}
}

type AnalyticsSummary struct {
	TotalCards    int64                 `json:"total_cards"`
	ByCategory    []repo.CategoryCount  `json:"by_category"`
	TopRecipients []repo.RecipientCount `json:"top_recipients"`
}

func (s *AnalyticsService) Summary(ctx context.Context, actor policy.Actor) (*AnalyticsSummary, error) {
	if err := policy.CanViewAnalytics(actor); err != nil {
		return nil, err
	}
	total, err := s.Analytics.TotalCards(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.Analytics.CardsByCategory(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.Analytics.TopRecipients(ctx, 10)
	if err != nil {
		return nil, err
	}
	return &AnalyticsSummary{TotalCards: total, ByCategory: byCategory, TopRecipients: top}, nil
}
