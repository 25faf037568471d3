package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamkudos/kudos-backend/internal/domain/entity"
	"github.com/teamkudos/kudos-backend/internal/domain/policy"
	"github.com/teamkudos/kudos-backend/pkg/apperrors"
)

func actorFor(u *entity.User) policy.Actor {
	return policy.Actor{ID: u.ID, Email: u.Email.String(), Role: u.Role}
}

func strPtr(s string) *string { return &s }

func TestUpdate_AdminApprovesOtherUser(t *testing.T) {
	adminU := testUser("a1", "admin@example.com", entity.RoleAdmin)
	target := testUser("u1", "user@example.com", entity.RoleMember)
	target.ApprovalStatus = entity.ApprovalPending
	svc := NewUserService(newFakeUserRepo(adminU, target), nil, "", nil, nil)

	updated, err := svc.Update(context.Background(), actorFor(adminU), "u1", UpdateUserInput{
		ApprovalStatus: strPtr("approved"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalApproved, updated.ApprovalStatus)
}

func TestUpdate_AdminCannotApproveSelf(t *testing.T) {
	adminU := testUser("a1", "admin@example.com", entity.RoleAdmin)
	svc := NewUserService(newFakeUserRepo(adminU), nil, "", nil, nil)

	_, err := svc.Update(context.Background(), actorFor(adminU), "a1", UpdateUserInput{
		ApprovalStatus: strPtr("approved"),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestUpdate_MemberCannotEscalateOwnRole(t *testing.T) {
	memberU := testUser("m1", "member@example.com", entity.RoleMember)
	svc := NewUserService(newFakeUserRepo(memberU), nil, "", nil, nil)

	// Legacy numeric encoding: "1" means admin.
	_, err := svc.Update(context.Background(), actorFor(memberU), "m1", UpdateUserInput{
		Role: strPtr("1"),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestUpdate_MemberUpdatesOwnFirstName(t *testing.T) {
	memberU := testUser("m1", "member@example.com", entity.RoleMember)
	svc := NewUserService(newFakeUserRepo(memberU), nil, "", nil, nil)

	updated, err := svc.Update(context.Background(), actorFor(memberU), "m1", UpdateUserInput{
		FirstName: strPtr("Renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.FirstName)
	// Role untouched by a plain profile update.
	assert.Equal(t, entity.RoleMember, updated.Role)
}

func TestUpdate_InvalidApprovalValue(t *testing.T) {
	adminU := testUser("a1", "admin@example.com", entity.RoleAdmin)
	target := testUser("u1", "user@example.com", entity.RoleMember)
	svc := NewUserService(newFakeUserRepo(adminU, target), nil, "", nil, nil)

	_, err := svc.Update(context.Background(), actorFor(adminU), "u1", UpdateUserInput{
		ApprovalStatus: strPtr("maybe"),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidUserData, apperrors.KindOf(err))
}

func TestUpdate_EmailValidated(t *testing.T) {
	memberU := testUser("m1", "member@example.com", entity.RoleMember)
	svc := NewUserService(newFakeUserRepo(memberU), nil, "", nil, nil)

	_, err := svc.Update(context.Background(), actorFor(memberU), "m1", UpdateUserInput{
		Email: strPtr("not-an-email"),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidFormat, apperrors.KindOf(err))
}

func TestUpdate_TargetMissing(t *testing.T) {
	adminU := testUser("a1", "admin@example.com", entity.RoleAdmin)
	svc := NewUserService(newFakeUserRepo(adminU), nil, "", nil, nil)

	_, err := svc.Update(context.Background(), actorFor(adminU), "ghost", UpdateUserInput{
		FirstName: strPtr("X"),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUserNotFound, apperrors.KindOf(err))
}

func TestDelete_AdminDeletesLead(t *testing.T) {
	adminU := testUser("a1", "admin@example.com", entity.RoleAdmin)
	leadU := testUser("l1", "lead@example.com", entity.RoleLead)
	repo := newFakeUserRepo(adminU, leadU)
	svc := NewUserService(repo, nil, "", nil, nil)

	require.NoError(t, svc.Delete(context.Background(), actorFor(adminU), "l1"))

	_, err := repo.GetByID(context.Background(), "l1")
	assert.Equal(t, apperrors.KindUserNotFound, apperrors.KindOf(err))
}

func TestDelete_AdminCannotDeleteAdmin(t *testing.T) {
	a1 := testUser("a1", "a1@example.com", entity.RoleAdmin)
	a2 := testUser("a2", "a2@example.com", entity.RoleAdmin)
	svc := NewUserService(newFakeUserRepo(a1, a2), nil, "", nil, nil)

	err := svc.Delete(context.Background(), actorFor(a1), "a2")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "cannot delete another admin")
}

func TestList_MemberDenied(t *testing.T) {
	memberU := testUser("m1", "member@example.com", entity.RoleMember)
	svc := NewUserService(newFakeUserRepo(memberU), nil, "", nil, nil)

	_, err := svc.List(context.Background(), actorFor(memberU))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestList_NeverLeaksPasswords(t *testing.T) {
	adminU := testUser("a1", "admin@example.com", entity.RoleAdmin)
	svc := NewUserService(newFakeUserRepo(adminU), nil, "", nil, nil)

	users, err := svc.List(context.Background(), actorFor(adminU))
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin@example.com", users[0].Email)
}
