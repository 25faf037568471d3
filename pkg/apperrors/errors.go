package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies a domain failure. Handlers map kinds to HTTP statuses;
// services and value objects only ever deal in kinds.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInvalidFormat
	KindTooShort
	KindInvalidUserData
	KindUserNotFound
	KindInvalidCredentials
	KindEmailAlreadyExists
	KindAuthenticationRequired
	KindInvalidToken
	KindTokenExpired
	KindTokenRevoked
	KindUnauthorized
)

// Error is a typed, recoverable domain error. It crosses into the
// presentation boundary unchanged; anything untyped is treated as internal.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is lets errors.Is match two domain errors by kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func InvalidFormat(msg string) *Error   { return newError(KindInvalidFormat, msg) }
func TooShort(msg string) *Error        { return newError(KindTooShort, msg) }
func InvalidUserData(msg string) *Error { return newError(KindInvalidUserData, msg) }
func UserNotFound(msg string) *Error    { return newError(KindUserNotFound, msg) }

// NotFound covers lookup misses on resources other than users; it shares the
// user-not-found kind so handlers map both to the same status.
func NotFound(msg string) *Error { return newError(KindUserNotFound, msg) }

func InvalidCredentials(msg string) *Error     { return newError(KindInvalidCredentials, msg) }
func EmailAlreadyExists(msg string) *Error     { return newError(KindEmailAlreadyExists, msg) }
func AuthenticationRequired(msg string) *Error { return newError(KindAuthenticationRequired, msg) }
func InvalidToken(msg string) *Error           { return newError(KindInvalidToken, msg) }
func TokenExpired(msg string) *Error           { return newError(KindTokenExpired, msg) }
func TokenRevoked(msg string) *Error           { return newError(KindTokenRevoked, msg) }
func Unauthorized(msg string) *Error           { return newError(KindUnauthorized, msg) }

// HTTPStatus maps a domain error to its HTTP status code. Untyped errors are
// internal failures.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidFormat, KindTooShort, KindInvalidUserData:
		return http.StatusBadRequest
	case KindInvalidCredentials, KindAuthenticationRequired, KindInvalidToken, KindTokenExpired, KindTokenRevoked:
		return http.StatusUnauthorized
	case KindUnauthorized:
		return http.StatusForbidden
	case KindUserNotFound:
		return http.StatusNotFound
	case KindEmailAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// KindOf returns the kind carried by err, or KindUnknown for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
