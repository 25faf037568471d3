package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/teamkudos/kudos-backend/internal/domain/valueobject"
	"github.com/teamkudos/kudos-backend/pkg/apperrors"
)

// User is the aggregate root for identity, credential, role and approval
// state. Passwords live in the Password value object and are always hashed
// before the aggregate leaves NewUser.
type User struct {
	ID             string
	Email          valueobject.Email
	Password       valueobject.Password
	FirstName      string
	LastName       string
	JobTitle       string
	Role           Role
	ApprovalStatus ApprovalStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUserInput carries raw signup data. Role and approval status are not
// accepted here: self-signup always starts as a pending member.
type NewUserInput struct {
	ID        string
	Email     string
	Password  string
	FirstName string
	LastName  string
	JobTitle  string
}

// NewUser validates required fields, builds the value objects, hashes a
// plaintext password, and defaults role=member, approvalStatus=pending.
func NewUser(in NewUserInput) (*User, error) {
	if in.Email == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" {
		return nil, apperrors.InvalidUserData("email, password, first name and last name are required")
	}
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	password, err := valueobject.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}
	password, err = password.Hash()
	if err != nil {
		return nil, err
	}
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().UTC()
	return &User{
		ID:             id,
		Email:          email,
		Password:       password,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		JobTitle:       in.JobTitle,
		Role:           RoleMember,
		ApprovalStatus: ApprovalPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// UserRow mirrors the users table columns.
type UserRow struct {
	ID             string
	Email          string
	Password       string
	FirstName      string
	LastName       string
	Role           string
	JobTitle       string
	ApprovalStatus string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserFromRow reconstitutes a User from storage. The stored password is
// trusted to be hashed already; nothing is re-validated or re-hashed.
func UserFromRow(row UserRow) *User {
	return &User{
		ID:             row.ID,
		Email:          valueobject.EmailFromStorage(row.Email),
		Password:       valueobject.PasswordFromHash(row.Password),
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		JobTitle:       row.JobTitle,
		Role:           Role(row.Role),
		ApprovalStatus: ApprovalStatus(row.ApprovalStatus),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

// VerifyPassword checks a plaintext candidate against the stored credential.
func (u *User) VerifyPassword(plain string) bool {
	return u.Password.Compare(plain)
}

// PublicUser is the egress projection of a User. It carries no password
// field at all, so the credential cannot leak through serialization.
type PublicUser struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	JobTitle       string    `json:"job_title"`
	Role           Role      `json:"role"`
	ApprovalStatus string    `json:"approval_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Public returns the password-free projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID,
		Email:          u.Email.String(),
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		JobTitle:       u.JobTitle,
		Role:           u.Role,
		ApprovalStatus: string(u.ApprovalStatus),
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
