package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamkudos/kudos-backend/internal/domain/entity"
	"github.com/teamkudos/kudos-backend/internal/domain/repository"
	"github.com/teamkudos/kudos-backend/pkg/apperrors"
)

func newCardService(users *fakeUserRepo) (*CardService, *fakeCardRepo) {
	cards := newFakeCardRepo()
	teams := &fakeTeamRepo{byID: map[string]*entity.Team{
		"t1": {ID: "t1", Name: "Platform"},
	}}
	categories := &fakeCategoryRepo{byID: map[string]*entity.Category{
		"c1": {ID: "c1", Name: "Teamwork"},
	}}
	return NewCardService(cards, users, teams, categories, nil, "", nil, nil), cards
}

func TestCreateCard_LeadOnBehalfOfMember(t *testing.T) {
	leadU := testUser("l1", "lead@example.com", entity.RoleLead)
	memberU := testUser("m1", "member@example.com", entity.RoleMember)
	recip := testUser("r1", "recipient@example.com", entity.RoleMember)
	svc, _ := newCardService(newFakeUserRepo(leadU, memberU, recip))

	card, err := svc.Create(context.Background(), actorFor(leadU), CreateCardInput{
		Message:     "Great incident response",
		RecipientID: "r1",
		SentBy:      "m1",
		TeamID:      "t1",
		CategoryID:  "c1",
	})
	require.NoError(t, err)
	assert.Equal(t, "l1", card.CreatedBy)
	assert.Equal(t, "m1", card.SentBy)
	assert.Equal(t, "r1", card.RecipientID)
}

func TestCreateCard_SentByDefaultsToCreator(t *testing.T) {
	adminU := testUser("a1", "admin@example.com", entity.RoleAdmin)
	recip := testUser("r1", "recipient@example.com", entity.RoleMember)
	svc, _ := newCardService(newFakeUserRepo(adminU, recip))

	card, err := svc.Create(context.Background(), actorFor(adminU), CreateCardInput{
		Message:     "Shipped the migration",
		RecipientID: "r1",
	})
	require.NoError(t, err)
	assert.Equal(t, "a1", card.SentBy)
	assert.Equal(t, "a1", card.CreatedBy)
}

func TestCreateCard_MemberDenied(t *testing.T) {
	memberU := testUser("m1", "member@example.com", entity.RoleMember)
	recip := testUser("r1", "recipient@example.com", entity.RoleMember)
	svc, cards := newCardService(newFakeUserRepo(memberU, recip))

	_, err := svc.Create(context.Background(), actorFor(memberU), CreateCardInput{
		Message:     "nope",
		RecipientID: "r1",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))

	all, _ := cards.List(context.Background(), repository.CardFilter{})
	assert.Empty(t, all)
}

func TestCreateCard_UnknownRecipient(t *testing.T) {
	leadU := testUser("l1", "lead@example.com", entity.RoleLead)
	svc, _ := newCardService(newFakeUserRepo(leadU))

	_, err := svc.Create(context.Background(), actorFor(leadU), CreateCardInput{
		Message:     "hi",
		RecipientID: "ghost",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUserNotFound, apperrors.KindOf(err))
}

func TestUpdateCard_NonCreatorLeadDenied(t *testing.T) {
	creator := testUser("l1", "creator@example.com", entity.RoleLead)
	other := testUser("l2", "other@example.com", entity.RoleLead)
	recip := testUser("r1", "recipient@example.com", entity.RoleMember)
	svc, _ := newCardService(newFakeUserRepo(creator, other, recip))
	ctx := context.Background()

	card, err := svc.Create(ctx, actorFor(creator), CreateCardInput{Message: "original", RecipientID: "r1"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, actorFor(other), card.ID, UpdateCardInput{Message: strPtr("edited")})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestUpdateCard_AdminOverridesCreator(t *testing.T) {
	creator := testUser("l1", "creator@example.com", entity.RoleLead)
	adminU := testUser("a1", "admin@example.com", entity.RoleAdmin)
	recip := testUser("r1", "recipient@example.com", entity.RoleMember)
	svc, _ := newCardService(newFakeUserRepo(creator, adminU, recip))
	ctx := context.Background()

	card, err := svc.Create(ctx, actorFor(creator), CreateCardInput{Message: "original", RecipientID: "r1"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, actorFor(adminU), card.ID, UpdateCardInput{Message: strPtr("edited")})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Message)
}

func TestDeleteCard_DemotedCreatorDenied(t *testing.T) {
	creator := testUser("l1", "creator@example.com", entity.RoleLead)
	recip := testUser("r1", "recipient@example.com", entity.RoleMember)
	svc, _ := newCardService(newFakeUserRepo(creator, recip))
	ctx := context.Background()

	card, err := svc.Create(ctx, actorFor(creator), CreateCardInput{Message: "original", RecipientID: "r1"})
	require.NoError(t, err)

	// The creator lost their lead role since creating the card.
	demoted := actorFor(creator)
	demoted.Role = entity.RoleMember

	err = svc.Delete(ctx, demoted, card.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestDeleteCard_Creator(t *testing.T) {
	creator := testUser("l1", "creator@example.com", entity.RoleLead)
	recip := testUser("r1", "recipient@example.com", entity.RoleMember)
	svc, cards := newCardService(newFakeUserRepo(creator, recip))
	ctx := context.Background()

	card, err := svc.Create(ctx, actorFor(creator), CreateCardInput{Message: "original", RecipientID: "r1"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, actorFor(creator), card.ID))
	_, err = cards.GetByID(ctx, card.ID)
	assert.Equal(t, apperrors.KindUserNotFound, apperrors.KindOf(err))
}

func TestListCards_FilterByRecipient(t *testing.T) {
	leadU := testUser("l1", "lead@example.com", entity.RoleLead)
	r1 := testUser("r1", "r1@example.com", entity.RoleMember)
	r2 := testUser("r2", "r2@example.com", entity.RoleMember)
	svc, _ := newCardService(newFakeUserRepo(leadU, r1, r2))
	ctx := context.Background()

	_, err := svc.Create(ctx, actorFor(leadU), CreateCardInput{Message: "one", RecipientID: "r1"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, actorFor(leadU), CreateCardInput{Message: "two", RecipientID: "r2"})
	require.NoError(t, err)

	got, err := svc.List(ctx, repository.CardFilter{RecipientID: "r2"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "two", got[0].Message)
}
