package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teamkudos/kudos-backend/internal/domain/entity"
	"github.com/teamkudos/kudos-backend/internal/domain/repository"
	"github.com/teamkudos/kudos-backend/pkg/apperrors"
)

type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

func (r *TeamRepository) Create(ctx context.Context, t *entity.Team) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO teams (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)
	`, t.ID, t.Name, t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (*entity.Team, error) {
	t := &entity.Team{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at FROM teams WHERE id = $1
	`, id).Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("team not found")
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]*entity.Team, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at, updated_at FROM teams ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*entity.Team
	for rows.Next() {
		t := &entity.Team{}
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO categories (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)
	`, c.ID, c.Name, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	c := &entity.Category{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at FROM categories WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("category not found")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at, updated_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		c := &entity.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

var (
	_ repository.TeamRepository     = (*TeamRepository)(nil)
	_ repository.CategoryRepository = (*CategoryRepository)(nil)
)
