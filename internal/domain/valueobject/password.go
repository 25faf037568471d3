package valueobject

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/teamkudos/kudos-backend/pkg/apperrors"
)

const (
	minPasswordLength = 6
	bcryptCost        = 10
)

// Password is a two-state secret: plaintext pending a hash, or an
// already-computed bcrypt hash. The state is fixed at construction; Hash
// moves plaintext to hashed and is a no-op on hashed values.
type Password struct {
	value  string
	hashed bool
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$")
}

// NewPassword validates raw and classifies it: bcrypt-shaped input is tagged
// hashed, anything else is plaintext awaiting Hash.
func NewPassword(raw string) (Password, error) {
	if len(raw) < minPasswordLength {
		return Password{}, apperrors.TooShort("password must be at least 6 characters")
	}
	return Password{value: raw, hashed: isBcryptHash(raw)}, nil
}

// PasswordFromHash tags raw as hashed without validation. Trusted storage
// path only.
func PasswordFromHash(raw string) Password {
	return Password{value: raw, hashed: true}
}

// Hash returns a hashed Password. Idempotent: hashing an already-hashed
// value returns it unchanged.
func (p Password) Hash() (Password, error) {
	if p.hashed {
		return p, nil
	}
	b, err := bcrypt.GenerateFromPassword([]byte(p.value), bcryptCost)
	if err != nil {
		return Password{}, err
	}
	return Password{value: string(b), hashed: true}, nil
}

// Compare checks a plaintext candidate against the stored secret. For a
// hashed value this is a bcrypt comparison; for a plaintext value it is a
// direct equality check intended only for pre-hash and test paths, never as
// a production credential check.
func (p Password) Compare(plain string) bool {
	if p.hashed {
		return bcrypt.CompareHashAndPassword([]byte(p.value), []byte(plain)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(p.value), []byte(plain)) == 1
}

// Hashed reports whether the stored value is a bcrypt hash.
func (p Password) Hashed() bool { return p.hashed }

// Value exposes the stored string for persistence. Persisting a plaintext
// password is a caller bug; Hash first.
func (p Password) Value() string { return p.value }

// String redacts the secret so a Password never leaks through formatting.
func (p Password) String() string { return "[redacted]" }

func (p Password) Equals(other Password) bool {
	return p.hashed == other.hashed && p.value == other.value
}

func (p Password) IsZero() bool { return p.value == "" }
