package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamkudos/kudos-backend/internal/domain/entity"
	"github.com/teamkudos/kudos-backend/internal/infrastructure/revocation"
	"github.com/teamkudos/kudos-backend/pkg/apperrors"
	"github.com/teamkudos/kudos-backend/pkg/helpers"
)

func newAuthService(users *fakeUserRepo) (*AuthService, *revocation.MemoryStore) {
	store := revocation.NewMemoryStore()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(users, jwt, store, nil), store
}

func TestSignup_ForcesMemberPending(t *testing.T) {
	svc, _ := newAuthService(newFakeUserRepo())

	u, err := svc.Signup(context.Background(), entity.NewUserInput{
		Email:     "jane@example.com",
		Password:  "secret123",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleMember, u.Role)
	assert.Equal(t, entity.ApprovalPending, u.ApprovalStatus)
	assert.True(t, u.Password.Hashed())
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo(testUser("u1", "jane@example.com", entity.RoleMember))
	svc, _ := newAuthService(repo)

	_, err := svc.Signup(context.Background(), entity.NewUserInput{
		Email:     "jane@example.com",
		Password:  "secret123",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindEmailAlreadyExists, apperrors.KindOf(err))
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo(testUser("u1", "jane@example.com", entity.RoleLead))
	svc, _ := newAuthService(repo)

	res, err := svc.Login(context.Background(), "Jane@Example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "u1", res.User.ID)

	claims, err := svc.JWT.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "lead", claims.Role)
}

func TestLogin_FailurePathsIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo(testUser("u1", "jane@example.com", entity.RoleMember))
	svc, _ := newAuthService(repo)
	ctx := context.Background()

	_, errMissing := svc.Login(ctx, "nobody@example.com", "secret123")
	_, errWrongPwd := svc.Login(ctx, "jane@example.com", "wrong-password")

	require.Error(t, errMissing)
	require.Error(t, errWrongPwd)
	assert.Equal(t, apperrors.KindInvalidCredentials, apperrors.KindOf(errMissing))
	assert.Equal(t, apperrors.KindInvalidCredentials, apperrors.KindOf(errWrongPwd))
	assert.Equal(t, errMissing.Error(), errWrongPwd.Error())
}

func TestLogout_RevokesToken(t *testing.T) {
	repo := newFakeUserRepo(testUser("u1", "jane@example.com", entity.RoleMember))
	svc, store := newAuthService(repo)
	ctx := context.Background()

	res, err := svc.Login(ctx, "jane@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, res.Token))

	revoked, err := store.IsRevoked(ctx, res.Token)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestLogout_ExpiredTokenIsNoop(t *testing.T) {
	repo := newFakeUserRepo()
	store := revocation.NewMemoryStore()
	expired := helpers.NewJWTManager("test-secret", -time.Minute)
	svc := NewAuthService(repo, expired, store, nil)

	token, _, err := expired.Generate("u1", "jane@example.com", "member")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))
	revoked, err := store.IsRevoked(context.Background(), token)
	require.NoError(t, err)
	assert.False(t, revoked)
}
