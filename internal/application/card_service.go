package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/teamkudos/kudos-backend/internal/domain/entity"
	"github.com/teamkudos/kudos-backend/internal/domain/policy"
	repo "github.com/teamkudos/kudos-backend/internal/domain/repository"
	"github.com/teamkudos/kudos-backend/pkg/helpers"
	"github.com/teamkudos/kudos-backend/pkg/mailer"
)

// CardService handles recognition card use cases: policy-gated CRUD, search
// indexing, and recipient notification.
type CardService struct {
	Cards        repo.CardRepository
	Users        repo.UserRepository
	Teams        repo.TeamRepository
	Categories   repo.CategoryRepository
	ES           *elasticsearch.Client
	ESCardsIndex string
	Pub          *helpers.RabbitPublisher
	Logger       *logrus.Logger
}

func NewCardService(cards repo.CardRepository, users repo.UserRepository, teams repo.TeamRepository,
	categories repo.CategoryRepository, es *elasticsearch.Client, esCardsIndex string,
	pub *helpers.RabbitPublisher, logger *logrus.Logger) *CardService {
	return &CardService{
		Cards:        cards,
		Users:        users,
		Teams:        teams,
		Categories:   categories,
		ES:           es,
		ESCardsIndex: esCardsIndex,
		Pub:          pub,
		Logger:       logger,
	}
}

type CreateCardInput struct {
	Message     string
	RecipientID string
	SentBy      string
	TeamID      string
	CategoryID  string
}

// Create makes a new recognition card. Admin/lead only; SentBy may name
// another user (send on behalf), CreatedBy is always the actor.
func (s *CardService) Create(ctx context.Context, actor policy.Actor, in CreateCardInput) (*entity.Card, error) {
	if err := policy.CanCreateCard(actor); err != nil {
		return nil, err
	}
	recipient, err := s.Users.GetByID(ctx, in.RecipientID)
	if err != nil {
		return nil, err
	}
	if in.TeamID != "" {
		if _, err := s.Teams.GetByID(ctx, in.TeamID); err != nil {
			return nil, err
		}
	}
	if in.CategoryID != "" {
		if _, err := s.Categories.GetByID(ctx, in.CategoryID); err != nil {
			return nil, err
		}
	}

	card, err := entity.NewCard(entity.NewCardInput{
		Message:     in.Message,
		RecipientID: in.RecipientID,
		SentBy:      in.SentBy,
		CreatedBy:   actor.ID,
		TeamID:      in.TeamID,
		CategoryID:  in.CategoryID,
	})
	if err != nil {
		return nil, err
	}
	if err := s.Cards.Create(ctx, card); err != nil {
		return nil, err
	}

	_ = s.indexCard(ctx, card)
	s.notifyRecipient(ctx, card, recipient)

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"card_id": card.ID, "actor_id": actor.ID}).Info("card created")
	}
	return card, nil
}

func (s *CardService) Get(ctx context.Context, id string) (*entity.Card, error) {
	return s.Cards.GetByID(ctx, id)
}

func (s *CardService) List(ctx context.Context, f repo.CardFilter) ([]*entity.Card, error) {
	return s.Cards.List(ctx, f)
}

type UpdateCardInput struct {
	Message    *string
	CategoryID *string
	TeamID     *string
}

// Update mutates a card after the creator-or-admin policy check.
func (s *CardService) Update(ctx context.Context, actor policy.Actor, id string, in UpdateCardInput) (*entity.Card, error) {
	card, err := s.Cards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanMutateCard(actor, card); err != nil {
		return nil, err
	}
	if in.Message != nil {
		card.Message = *in.Message
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			if _, err := s.Categories.GetByID(ctx, *in.CategoryID); err != nil {
				return nil, err
			}
		}
		card.CategoryID = *in.CategoryID
	}
	if in.TeamID != nil {
		if *in.TeamID != "" {
			if _, err := s.Teams.GetByID(ctx, *in.TeamID); err != nil {
				return nil, err
			}
		}
		card.TeamID = *in.TeamID
	}
	if err := s.Cards.Update(ctx, card); err != nil {
		return nil, err
	}
	_ = s.indexCard(ctx, card)
	return card, nil
}

// Delete removes a card after the creator-or-admin policy check.
func (s *CardService) Delete(ctx context.Context, actor policy.Actor, id string) error {
	card, err := s.Cards.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanMutateCard(actor, card); err != nil {
		return err
	}
	if err := s.Cards.Delete(ctx, id); err != nil {
		return err
	}
	s.removeFromIndex(ctx, id)
	return nil
}

func (s *CardService) indexCard(ctx context.Context, c *entity.Card) error {
	if s.ES == nil || s.ESCardsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":           c.ID,
		"message":      c.Message,
		"recipient_id": c.RecipientID,
		"sent_by":      c.SentBy,
		"created_by":   c.CreatedBy,
		"team_id":      c.TeamID,
		"category_id":  c.CategoryID,
		"created_at":   c.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESCardsIndex, DocumentID: c.ID, Body: strings.NewReader(string(b)), Refresh: "false"}

	cx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(cx, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("card_id", c.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("card_id", c.ID).Warn("es index response error")
	}
	return nil
}

func (s *CardService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESCardsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESCardsIndex, DocumentID: id}
	cx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if res, err := req.Do(cx, s.ES); err == nil {
		_ = res.Body.Close()
	}
}

// Search performs a multi_match query over card messages and attribution.
func (s *CardService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESCardsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"message^2", "recipient_id", "sent_by"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	cx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := s.ES.Search(
		s.ES.Search.WithContext(cx),
		s.ES.Search.WithIndex(s.ESCardsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

// notifyRecipient queues a recognition email. Delivery is best-effort; a
// publish failure never fails card creation.
func (s *CardService) notifyRecipient(ctx context.Context, card *entity.Card, recipient *entity.User) {
	if s.Pub == nil {
		return
	}
	senderName := card.SentBy
	if sender, err := s.Users.GetByID(ctx, card.SentBy); err == nil {
		senderName = sender.FirstName + " " + sender.LastName
	}
	job := mailer.CardNotificationJob{
		To:            recipient.Email.String(),
		RecipientName: recipient.FirstName,
		SenderName:    senderName,
		Message:       card.Message,
		CardID:        card.ID,
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("card_id", card.ID).Warn("notification publish failed")
	}
}
