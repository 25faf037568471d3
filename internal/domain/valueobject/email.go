package valueobject

import (
	"strings"

	"github.com/teamkudos/kudos-backend/pkg/apperrors"
)

// Email is an immutable address validated at construction.
// Equality is on the normalized (trimmed, lowercased) string.
type Email struct {
	value string
}

// NewEmail validates raw against the local@domain.tld shape: exactly one @,
// non-empty local part, and a domain with a dot and a non-empty trailing label.
func NewEmail(raw string) (Email, error) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	at := strings.Count(norm, "@")
	if at != 1 {
		return Email{}, apperrors.InvalidFormat("invalid email format")
	}
	parts := strings.SplitN(norm, "@", 2)
	local, domain := parts[0], parts[1]
	if local == "" || domain == "" {
		return Email{}, apperrors.InvalidFormat("invalid email format")
	}
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return Email{}, apperrors.InvalidFormat("invalid email format")
	}
	return Email{value: norm}, nil
}

// EmailFromStorage rebuilds an Email from a stored row without
// re-validating. Trusted storage path only; normalization still applies.
func EmailFromStorage(raw string) Email {
	return Email{value: strings.ToLower(strings.TrimSpace(raw))}
}

func (e Email) String() string { return e.value }

func (e Email) Equals(other Email) bool { return e.value == other.value }

func (e Email) IsZero() bool { return e.value == "" }
