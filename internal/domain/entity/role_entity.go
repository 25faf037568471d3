package entity

import "github.com/teamkudos/kudos-backend/pkg/apperrors"

// Role is the authorization role. Strict total order by privilege:
// admin > lead > member.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleLead   Role = "lead"
	RoleMember Role = "member"
)

// Priority returns the rank of a role, 1 being the most privileged.
// Unknown roles rank below member so they never gain access.
func (r Role) Priority() int {
	switch r {
	case RoleAdmin:
		return 1
	case RoleLead:
		return 2
	case RoleMember:
		return 3
	default:
		return 4
	}
}

// AtLeast reports whether r holds privilege equal to or above other.
func (r Role) AtLeast(other Role) bool {
	return r.Priority() <= other.Priority()
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLead, RoleMember:
		return true
	}
	return false
}

// ParseRole accepts role names and the legacy numeric encoding
// ("1" admin, "2" lead, "3" member) still sent by older clients.
func ParseRole(s string) (Role, error) {
	switch s {
	case string(RoleAdmin), "1":
		return RoleAdmin, nil
	case string(RoleLead), "2":
		return RoleLead, nil
	case string(RoleMember), "3":
		return RoleMember, nil
	}
	return "", apperrors.InvalidUserData("invalid role: " + s)
}

// ApprovalStatus is the account workflow state, distinct from the role
// based permission system.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

func ParseApprovalStatus(s string) (ApprovalStatus, error) {
	st := ApprovalStatus(s)
	if !st.Valid() {
		return "", apperrors.InvalidUserData("invalid approval status: " + s)
	}
	return st, nil
}
