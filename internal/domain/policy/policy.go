package policy

import (
	"github.com/teamkudos/kudos-backend/internal/domain/entity"
	"github.com/teamkudos/kudos-backend/pkg/apperrors"
)

// Actor is the authenticated identity a request acts as, decoded from the
// session token by the auth middleware.
type Actor struct {
	ID    string
	Email string
	Role  entity.Role
}

func (a Actor) isElevated() bool {
	return a.Role == entity.RoleAdmin || a.Role == entity.RoleLead
}

// UserUpdate is the requested mutation on a user account. Nil fields are
// untouched; non-nil role/approval fields trigger the stricter rules.
type UserUpdate struct {
	FirstName      *string
	LastName       *string
	JobTitle       *string
	Email          *string
	Role           *entity.Role
	ApprovalStatus *entity.ApprovalStatus
}

// CanUpdateUser evaluates a profile mutation. Plain profile fields may be
// changed by the user themselves or by any admin/lead. Role changes are
// admin-only. Approval status changes require admin or lead, are never
// allowed on the actor's own account, and must carry a valid status.
func CanUpdateUser(actor Actor, target *entity.User, change UserUpdate) error {
	if actor.ID != target.ID && !actor.isElevated() {
		return apperrors.Unauthorized("you are not allowed to update this user")
	}
	if change.Role != nil {
		if actor.Role != entity.RoleAdmin {
			return apperrors.Unauthorized("only an admin can change a user's role")
		}
		if !change.Role.Valid() {
			return apperrors.InvalidUserData("invalid role: " + string(*change.Role))
		}
	}
	if change.ApprovalStatus != nil {
		if !change.ApprovalStatus.Valid() {
			return apperrors.InvalidUserData("invalid approval status: " + string(*change.ApprovalStatus))
		}
		if !actor.isElevated() {
			return apperrors.Unauthorized("only an admin or lead can change approval status")
		}
		if actor.ID == target.ID {
			return apperrors.Unauthorized("cannot change your own approval status")
		}
	}
	return nil
}

// CanDeleteUser allows admins to delete accounts, never their own and never
// another admin's.
func CanDeleteUser(actor Actor, target *entity.User) error {
	if actor.Role != entity.RoleAdmin {
		return apperrors.Unauthorized("only an admin can delete users")
	}
	if actor.ID == target.ID {
		return apperrors.Unauthorized("cannot delete yourself")
	}
	if target.Role == entity.RoleAdmin {
		return apperrors.Unauthorized("cannot delete another admin")
	}
	return nil
}

// CanCreateCard allows admins and leads to create recognition cards,
// including on behalf of another sender.
func CanCreateCard(actor Actor) error {
	if !actor.isElevated() {
		return apperrors.Unauthorized("only an admin or lead can create recognition cards")
	}
	return nil
}

// CanMutateCard covers card update and delete: the actor must hold admin or
// lead, and must be the card's creator unless they are an admin.
func CanMutateCard(actor Actor, card *entity.Card) error {
	if !actor.isElevated() {
		return apperrors.Unauthorized("only an admin or lead can modify recognition cards")
	}
	if card.CreatedBy != actor.ID && actor.Role != entity.RoleAdmin {
		return apperrors.Unauthorized("only the card's creator or an admin can modify this card")
	}
	return nil
}

// CanListUsers gates the admin user listing.
func CanListUsers(actor Actor) error {
	if !actor.isElevated() {
		return apperrors.Unauthorized("only an admin or lead can list users")
	}
	return nil
}

// CanManageDirectory gates team and category creation.
func CanManageDirectory(actor Actor) error {
	if actor.Role != entity.RoleAdmin {
		return apperrors.Unauthorized("only an admin can manage teams and categories")
	}
	return nil
}

// CanViewAnalytics gates the analytics summary.
func CanViewAnalytics(actor Actor) error {
	if !actor.isElevated() {
		return apperrors.Unauthorized("only an admin or lead can view analytics")
	}
	return nil
}
