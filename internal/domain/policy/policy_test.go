package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamkudos/kudos-backend/internal/domain/entity"
	"github.com/teamkudos/kudos-backend/pkg/apperrors"
)

func admin(id string) Actor  { return Actor{ID: id, Role: entity.RoleAdmin} }
func lead(id string) Actor   { return Actor{ID: id, Role: entity.RoleLead} }
func member(id string) Actor { return Actor{ID: id, Role: entity.RoleMember} }

func user(id string, role entity.Role) *entity.User {
	return &entity.User{ID: id, Role: role}
}

func strptr(s string) *string                              { return &s }
func roleptr(r entity.Role) *entity.Role                   { return &r }
func approvalptr(s entity.ApprovalStatus) *entity.ApprovalStatus { return &s }

func TestCanUpdateUser_ProfileFields(t *testing.T) {
	change := UserUpdate{FirstName: strptr("New")}

	// Self update always allowed.
	assert.NoError(t, CanUpdateUser(member("u1"), user("u1", entity.RoleMember), change))
	// Admin and lead may update anyone.
	assert.NoError(t, CanUpdateUser(admin("a1"), user("u1", entity.RoleMember), change))
	assert.NoError(t, CanUpdateUser(lead("l1"), user("u1", entity.RoleMember), change))
	// Member may not touch another user.
	err := CanUpdateUser(member("u2"), user("u1", entity.RoleMember), change)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestCanUpdateUser_RoleChange(t *testing.T) {
	change := UserUpdate{Role: roleptr(entity.RoleAdmin)}

	assert.NoError(t, CanUpdateUser(admin("a1"), user("u1", entity.RoleMember), change))

	// A member escalating their own role is denied even though the base
	// self-update rule passes.
	err := CanUpdateUser(member("u1"), user("u1", entity.RoleMember), change)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))

	// Lead cannot change roles either.
	err = CanUpdateUser(lead("l1"), user("u1", entity.RoleMember), change)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestCanUpdateUser_ApprovalStatus(t *testing.T) {
	approve := UserUpdate{ApprovalStatus: approvalptr(entity.ApprovalApproved)}

	// Admin approves another user.
	assert.NoError(t, CanUpdateUser(admin("a1"), user("u1", entity.RoleMember), approve))
	// Lead approves another user.
	assert.NoError(t, CanUpdateUser(lead("l1"), user("u1", entity.RoleMember), approve))

	// Same admin on their own approval status is denied.
	err := CanUpdateUser(admin("a1"), user("a1", entity.RoleAdmin), approve)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))

	// Member cannot change approval status at all.
	err = CanUpdateUser(member("u2"), user("u2", entity.RoleMember), approve)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))

	// Malformed status value is a data error, not a role error.
	bad := UserUpdate{ApprovalStatus: approvalptr(entity.ApprovalStatus("maybe"))}
	err = CanUpdateUser(admin("a1"), user("u1", entity.RoleMember), bad)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidUserData, apperrors.KindOf(err))
}

func TestCanDeleteUser(t *testing.T) {
	// Admin deletes a lead.
	assert.NoError(t, CanDeleteUser(admin("a1"), user("l1", entity.RoleLead)))

	// Admin deleting another admin is denied.
	err := CanDeleteUser(admin("a1"), user("a2", entity.RoleAdmin))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "cannot delete another admin")

	// Admin deleting themselves is denied.
	err = CanDeleteUser(admin("a1"), user("a1", entity.RoleAdmin))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot delete yourself")

	// Lead and member cannot delete anyone.
	for _, actor := range []Actor{lead("l1"), member("m1")} {
		err = CanDeleteUser(actor, user("u1", entity.RoleMember))
		require.Error(t, err)
		assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
	}
}

func TestCanCreateCard(t *testing.T) {
	assert.NoError(t, CanCreateCard(admin("a1")))
	assert.NoError(t, CanCreateCard(lead("l1")))

	err := CanCreateCard(member("m1"))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestCanMutateCard(t *testing.T) {
	card := &entity.Card{ID: "c1", CreatedBy: "l1"}

	// Creator (a lead) may mutate.
	assert.NoError(t, CanMutateCard(lead("l1"), card))
	// Any admin may mutate.
	assert.NoError(t, CanMutateCard(admin("a1"), card))

	// A different lead is not the creator.
	err := CanMutateCard(lead("l2"), card)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))

	// The creator who has since lost the elevated role is denied.
	err = CanMutateCard(member("l1"), card)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}
