package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teamkudos/kudos-backend/internal/domain/repository"
)

type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

func (r *AnalyticsRepository) CardsByCategory(ctx context.Context) ([]repository.CategoryCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT COALESCE(c.category_id::text, ''), COALESCE(cat.name, ''), COUNT(*)
		FROM cards c
		LEFT JOIN categories cat ON cat.id = c.category_id
		GROUP BY c.category_id, cat.name
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []repository.CategoryCount
	for rows.Next() {
		var cc repository.CategoryCount
		if err := rows.Scan(&cc.CategoryID, &cc.Name, &cc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, cc)
	}
	return counts, rows.Err()
}

func (r *AnalyticsRepository) TopRecipients(ctx context.Context, limit int) ([]repository.RecipientCount, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	rows, err := r.pool.Query(ctx, `
		SELECT c.recipient_id, COALESCE(u.first_name, ''), COALESCE(u.last_name, ''), COUNT(*)
		FROM cards c
		LEFT JOIN users u ON u.id = c.recipient_id
		GROUP BY c.recipient_id, u.first_name, u.last_name
		ORDER BY COUNT(*) DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []repository.RecipientCount
	for rows.Next() {
		var rc repository.RecipientCount
		if err := rows.Scan(&rc.UserID, &rc.FirstName, &rc.LastName, &rc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, rc)
	}
	return counts, rows.Err()
}

func (r *AnalyticsRepository) TotalCards(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cards`).Scan(&total)
	return total, err
}

var _ repository.AnalyticsRepository = (*AnalyticsRepository)(nil)
