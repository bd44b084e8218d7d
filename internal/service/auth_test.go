package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/seekwell/jobboard/internal/adapters/memstore"
	"github.com/seekwell/jobboard/internal/data"
	domainauth "github.com/seekwell/jobboard/internal/domain/auth"
	"github.com/seekwell/jobboard/internal/domain/model"
	apperrors "github.com/seekwell/jobboard/internal/errors"
	"github.com/seekwell/jobboard/internal/mocks"
)

// newAuthService creates a mock user repository, an in-memory session store,
// and the service under test.
func newAuthService(t *testing.T) (*mocks.MockUserRepository, *memstore.SessionStore, *AuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := mocks.NewMockUserRepository(ctrl)
	sessions := memstore.NewSessionStore()

	svc := NewAuthService(AuthServiceOptions{
		Users:      users,
		Sessions:   sessions,
		SessionTTL: time.Hour,
		BcryptCost: bcrypt.MinCost, // keep the tests fast
	})

	return users, sessions, svc
}

func storedUser(t *testing.T, username, password string, role domainauth.Role) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{
		ID:           "user-1",
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	t.Parallel()
	users, _, svc := newAuthService(t)
	ctx := context.Background()

	users.EXPECT().
		GetByUsername(ctx, "alice").
		Return(nil, data.ErrUserNotFound).
		Times(1)

	users.EXPECT().
		Create(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.RegisterRequest, hash []byte) (*model.User, error) {
			// The stored hash must verify against the submitted password.
			require.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("pw1")))
			return &model.User{ID: "user-1", Username: req.Username, PasswordHash: hash, Role: req.Role}, nil
		}).
		Times(1)

	user, err := svc.Register(ctx, &model.RegisterRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, domainauth.RoleUser, user.Role)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	t.Parallel()
	users, _, svc := newAuthService(t)
	ctx := context.Background()

	users.EXPECT().
		GetByUsername(ctx, "alice").
		Return(storedUser(t, "alice", "pw1", domainauth.RoleUser), nil).
		Times(1)

	_, err := svc.Register(ctx, &model.RegisterRequest{Username: "alice", Password: "pw2"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "username", apperrors.GetField(err))
}

func TestAuthService_Register_DuplicateRaceAtInsert(t *testing.T) {
	t.Parallel()
	users, _, svc := newAuthService(t)
	ctx := context.Background()

	// Pre-check misses but the insert hits the unique index.
	users.EXPECT().
		GetByUsername(ctx, "alice").
		Return(nil, data.ErrUserNotFound).
		Times(1)
	users.EXPECT().
		Create(ctx, gomock.Any(), gomock.Any()).
		Return(nil, data.ErrUsernameExists).
		Times(1)

	_, err := svc.Register(ctx, &model.RegisterRequest{Username: "alice", Password: "pw1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()
	_, _, svc := newAuthService(t)

	_, err := svc.Register(context.Background(), &model.RegisterRequest{Username: "", Password: "pw"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Register(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()
	users, sessions, svc := newAuthService(t)
	ctx := context.Background()

	users.EXPECT().
		GetByUsername(ctx, "alice").
		Return(storedUser(t, "alice", "pw1", domainauth.RoleAdmin), nil).
		Times(1)

	sess, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, domainauth.RoleAdmin, sess.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, 5*time.Second)

	// The session must be retrievable by its ID.
	stored, err := sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Username, stored.Username)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()
	users, _, svc := newAuthService(t)
	ctx := context.Background()

	users.EXPECT().
		GetByUsername(ctx, "alice").
		Return(storedUser(t, "alice", "pw1", domainauth.RoleUser), nil).
		Times(1)

	_, err := svc.Login(ctx, "alice", "wrong")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	t.Parallel()
	users, _, svc := newAuthService(t)
	ctx := context.Background()

	users.EXPECT().
		GetByUsername(ctx, "ghost").
		Return(nil, data.ErrUserNotFound).
		Times(1)

	_, err := svc.Login(ctx, "ghost", "pw")
	require.Error(t, err)
	// Unknown user and bad password are indistinguishable to the caller.
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	t.Parallel()
	_, _, svc := newAuthService(t)

	_, err := svc.Login(context.Background(), "", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_GetSession_Expired(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sessions := mocks.NewMockSessionStore(ctrl)
	svc := NewAuthService(AuthServiceOptions{
		Users:    mocks.NewMockUserRepository(ctrl),
		Sessions: sessions,
	})

	ctx := context.Background()
	expired := domainauth.Session{
		ID:        "sess-1",
		Username:  "alice",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	sessions.EXPECT().Get(ctx, "sess-1").Return(expired, nil).Times(1)
	sessions.EXPECT().Delete(ctx, "sess-1").Return(nil).Times(1)

	_, err := svc.GetSession(ctx, "sess-1")
	assert.Error(t, err)
}

func TestAuthService_Logout(t *testing.T) {
	t.Parallel()
	users, sessions, svc := newAuthService(t)
	ctx := context.Background()

	users.EXPECT().
		GetByUsername(ctx, "alice").
		Return(storedUser(t, "alice", "pw1", domainauth.RoleUser), nil).
		Times(1)

	sess, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess.ID))

	_, err = sessions.Get(ctx, sess.ID)
	assert.Error(t, err)

	// Logging out with no session is a no-op.
	assert.NoError(t, svc.Logout(ctx, ""))
}
