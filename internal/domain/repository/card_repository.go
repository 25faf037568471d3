package repository

import (
	"context"

	"github.com/teamkudos/kudos-backend/internal/domain/entity"
)

// CardFilter narrows card listings. Zero values mean no filtering.
type CardFilter struct {
	RecipientID string
	TeamID      string
	CategoryID  string
}

// CardRepository defines the interface for recognition card persistence.
type CardRepository interface {
	Create(ctx context.Context, c *entity.Card) error
	GetByID(ctx context.Context, id string) (*entity.Card, error)
	Update(ctx context.Context, c *entity.Card) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f CardFilter) ([]*entity.Card, error)
}

// TeamRepository provides team lookups for card attribution.
type TeamRepository interface {
	Create(ctx context.Context, t *entity.Team) error
	GetByID(ctx context.Context, id string) (*entity.Team, error)
	List(ctx context.Context) ([]*entity.Team, error)
}

// CategoryRepository provides category lookups for cards.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
}

// CategoryCount is a per-category card tally.
type CategoryCount struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Count      int64  `json:"count"`
}

// RecipientCount is a per-recipient card tally.
type RecipientCount struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Count     int64  `json:"count"`
}

// AnalyticsRepository runs the aggregate queries behind the summary view.
type AnalyticsRepository interface {
	CardsByCategory(ctx context.Context) ([]CategoryCount, error)
	TopRecipients(ctx context.Context, limit int) ([]RecipientCount, error)
	TotalCards(ctx context.Context) (int64, error)
}
