package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/teamkudos/kudos-backend/pkg/apperrors"
)

// Card is a recognition card. CreatedBy is the account that created the
// record; SentBy is the attributed sender and may differ when a lead or
// admin sends on behalf of someone else.
type Card struct {
	ID          string    `json:"id"`
	Message     string    `json:"message"`
	RecipientID string    `json:"recipient_id"`
	SentBy      string    `json:"sent_by"`
	CreatedBy   string    `json:"created_by"`
	TeamID      string    `json:"team_id,omitempty"`
	CategoryID  string    `json:"category_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type NewCardInput struct {
	Message     string
	RecipientID string
	SentBy      string
	CreatedBy   string
	TeamID      string
	CategoryID  string
}

// NewCard validates required fields and defaults SentBy to the creator.
func NewCard(in NewCardInput) (*Card, error) {
	if in.Message == "" || in.RecipientID == "" || in.CreatedBy == "" {
		return nil, apperrors.InvalidUserData("message, recipient and creator are required")
	}
	sentBy := in.SentBy
	if sentBy == "" {
		sentBy = in.CreatedBy
	}
	now := time.Now().UTC()
	return &Card{
		ID:          uuid.NewString(),
		Message:     in.Message,
		RecipientID: in.RecipientID,
		SentBy:      sentBy,
		CreatedBy:   in.CreatedBy,
		TeamID:      in.TeamID,
		CategoryID:  in.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
