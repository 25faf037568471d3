package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teamkudos/kudos-backend/internal/domain/entity"
	"github.com/teamkudos/kudos-backend/internal/domain/repository"
	"github.com/teamkudos/kudos-backend/pkg/apperrors"
)

type CardRepository struct {
	pool *pgxpool.Pool
}

func NewCardRepository(pool *pgxpool.Pool) *CardRepository {
	return &CardRepository{pool: pool}
}

const cardColumns = `id, message, recipient_id, sent_by, created_by, team_id, category_id, created_at, updated_at`

// team_id and category_id are nullable FKs; the entity models absence as "".
func uuidOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func scanCard(row pgx.Row) (*entity.Card, error) {
	c := &entity.Card{}
	var teamID, categoryID *string
	if err := row.Scan(&c.ID, &c.Message, &c.RecipientID, &c.SentBy, &c.CreatedBy,
		&teamID, &categoryID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if teamID != nil {
		c.TeamID = *teamID
	}
	if categoryID != nil {
		c.CategoryID = *categoryID
	}
	return c, nil
}

func (r *CardRepository) Create(ctx context.Context, c *entity.Card) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cards (id, message, recipient_id, sent_by, created_by, team_id, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, c.ID, c.Message, c.RecipientID, c.SentBy, c.CreatedBy, uuidOrNil(c.TeamID), uuidOrNil(c.CategoryID), c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *CardRepository) GetByID(ctx context.Context, id string) (*entity.Card, error) {
	c, err := scanCard(r.pool.QueryRow(ctx, `
		SELECT `+cardColumns+` FROM cards WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("card not found")
	}
	return c, err
}

func (r *CardRepository) Update(ctx context.Context, c *entity.Card) error {
	c.UpdatedAt = time.Now().UTC()
	res, err := r.pool.Exec(ctx, `
		UPDATE cards
		SET message = $1, recipient_id = $2, sent_by = $3, team_id = $4, category_id = $5, updated_at = $6
		WHERE id = $7
	`, c.Message, c.RecipientID, c.SentBy, uuidOrNil(c.TeamID), uuidOrNil(c.CategoryID), c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.NotFound("card not found")
	}
	return nil
}

func (r *CardRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.NotFound("card not found")
	}
	return nil
}

func (r *CardRepository) List(ctx context.Context, f repository.CardFilter) ([]*entity.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards`
	var (
		conds []string
		args  []any
	)
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, cond+" = $"+strconv.Itoa(len(args)))
	}
	if f.RecipientID != "" {
		add("recipient_id", f.RecipientID)
	}
	if f.TeamID != "" {
		add("team_id", f.TeamID)
	}
	if f.CategoryID != "" {
		add("category_id", f.CategoryID)
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*entity.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

var _ repository.CardRepository = (*CardRepository)(nil)
