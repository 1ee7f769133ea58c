// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mani62/Blog-Backend/internal/crypto"
	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/internal/mock"
	"github.com/mani62/Blog-Backend/internal/store"
	"github.com/mani62/Blog-Backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc creates an authService over mocks.
func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*authService,
	*mock.MockUserRepository,
	*mock.MockPasswordHasher,
	*mock.MockTokenCodec,
) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	tokens := mock.NewMockTokenCodec(ctrl)

	svc := NewAuthService(users, hasher, tokens, newSequentialIDs("user-1"), logger.Nop()).(*authService)

	return svc, users, hasher, tokens
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher, tokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	name := "Alice"
	gomock.InOrder(
		hasher.EXPECT().Hash("secret1").Return("bcrypt-hash", nil),
		users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "user-1", u.ID)
				assert.Equal(t, "a@x.io", u.Email)
				assert.Equal(t, "bcrypt-hash", u.PasswordHash)
				require.NotNil(t, u.Name)
				assert.Equal(t, "Alice", *u.Name)
				return u, nil
			},
		),
		tokens.EXPECT().Issue(models.Claims{UserID: "user-1", Email: "a@x.io"}).Return("signed-token", nil),
	)

	token, err := svc.Register(ctx, models.RegisterRequest{Email: "a@x.io", Password: "secret1", Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token.AccessToken)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hasher.EXPECT().Hash("secret1").Return("bcrypt-hash", nil)
	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	token, err := svc.Register(ctx, models.RegisterRequest{Email: "a@x.io", Password: "secret1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	assert.Empty(t, token.AccessToken)
}

func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, hasher, _ := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("", crypto.ErrPasswordTooLong)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "a@x.io", Password: "long"})
	assert.ErrorIs(t, err, crypto.ErrPasswordTooLong)
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hasher.EXPECT().Hash("secret1").Return("bcrypt-hash", nil)
	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@x.io", Password: "secret1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthService_Register_TokenFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher, tokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hasher.EXPECT().Hash("secret1").Return("bcrypt-hash", nil)
	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) { return u, nil },
	)
	tokens.EXPECT().Issue(gomock.Any()).Return("", crypto.ErrEmptySignKey)

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@x.io", Password: "secret1"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher, tokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{ID: "user-7", Email: "a@x.io", PasswordHash: "bcrypt-hash"}
	gomock.InOrder(
		users.EXPECT().FindUserByEmail(ctx, "a@x.io").Return(stored, nil),
		hasher.EXPECT().Verify("secret1", "bcrypt-hash").Return(true, nil),
		tokens.EXPECT().Issue(models.Claims{UserID: "user-7", Email: "a@x.io"}).Return("signed-token", nil),
	)

	token, err := svc.Login(ctx, models.LoginRequest{Email: "a@x.io", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token.AccessToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "a@x.io").Return(models.User{ID: "user-7", PasswordHash: "bcrypt-hash"}, nil)
	hasher.EXPECT().Verify("wrong", "bcrypt-hash").Return(false, nil)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "a@x.io", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnreadableStoredHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "a@x.io").Return(models.User{ID: "user-7", PasswordHash: "garbage"}, nil)
	hasher.EXPECT().Verify("secret1", "garbage").Return(false, crypto.ErrInvalidHashFormat)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "a@x.io", Password: "secret1"})
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestAuthService_Login_UnknownEmailStillComparesHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "ghost@x.io").Return(models.User{}, store.ErrNoUserWasFound).Times(2)
	hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Times(1)
	hasher.EXPECT().Verify("secret1", "dummy-hash").Return(false, nil).Times(2)

	for range 2 {
		_, err := svc.Login(ctx, models.LoginRequest{Email: "ghost@x.io", Password: "secret1"})
		assert.Equal(t, ErrInvalidCredentials, err)
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("connection refused")
	users.EXPECT().FindUserByEmail(ctx, "a@x.io").Return(models.User{}, dbErr)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "a@x.io", Password: "secret1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── ParseToken ───────────────────────────────────────────────────────────────

func TestAuthService_ParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, tokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tokens.EXPECT().Verify("good").Return(models.Claims{UserID: "user-7", Email: "a@x.io"}, nil)
	tokens.EXPECT().Verify("old").Return(models.Claims{}, crypto.ErrTokenExpired)

	principal, err := svc.ParseToken(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, models.Principal{UserID: "user-7", Email: "a@x.io"}, principal)

	_, err = svc.ParseToken(ctx, "old")
	assert.ErrorIs(t, err, crypto.ErrTokenExpired)
	assert.ErrorIs(t, err, crypto.ErrInvalidToken)
}

// ── Real crypto ──────────────────────────────────────────────────────────────

func TestAuthService_RegisterThenLogin_RealCrypto(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	tokens, err := crypto.NewJWTCodec("test-sign-key", "blog-backend", time.Hour)
	require.NoError(t, err)

	svc := NewAuthService(users, crypto.NewBcryptHasher(4), tokens, newSequentialIDs("user-1"), logger.Nop())
	ctx := context.Background()

	var stored models.User
	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEqual(t, "secret1", u.PasswordHash)
			stored = u
			return u, nil
		},
	)
	users.EXPECT().FindUserByEmail(ctx, "a@x.io").DoAndReturn(
		func(context.Context, string) (models.User, error) { return stored, nil },
	).Times(2)

	registered, err := svc.Register(ctx, models.RegisterRequest{Email: "a@x.io", Password: "secret1"})
	require.NoError(t, err)

	loggedIn, err := svc.Login(ctx, models.LoginRequest{Email: "a@x.io", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "a@x.io", Password: "secret2"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	for _, token := range []models.Token{registered, loggedIn} {
		principal, err := svc.ParseToken(ctx, token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, models.Principal{UserID: "user-1", Email: "a@x.io"}, principal)
	}
}
