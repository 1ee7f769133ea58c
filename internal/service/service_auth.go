// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mani62/Blog-Backend/internal/crypto"
	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/internal/store"
	"github.com/mani62/Blog-Backend/internal/utils"
	"github.com/mani62/Blog-Backend/models"
)

// dummyPassword is hashed once to give unknown-email logins a real hash to
// compare against.
const dummyPassword = "blog-backend-dummy-password"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and token
// issuance using a UserRepository for persistence, a PasswordHasher for
// credentials and a TokenCodec for access tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes new passwords and verifies presented ones.
	hasher crypto.PasswordHasher

	// tokens issues and verifies access tokens. Its signing key is fixed for
	// the process lifetime.
	tokens crypto.TokenCodec

	// idGenerator assigns ids to new accounts.
	idGenerator utils.IDGenerator

	dummyHashOnce sync.Once
	dummyHash     string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction apart from the lazily computed dummy hash.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokens crypto.TokenCodec,
	idGenerator utils.IDGenerator,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		idGenerator:    idGenerator,
		logger:         logger,
	}
}

// Register hashes the password, persists the account and issues a token
// for it.
//
// Returns the token or:
//   - ErrDuplicateEmail (wrapping store.ErrEmailAlreadyExists) if the email is taken.
//   - crypto.ErrPasswordTooLong if the password exceeds the hasher's limit.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.idGenerator.Generate(),
		Email:        request.Email,
		PasswordHash: hash,
		Name:         request.Name,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("func", "*authService.Register").Msg("registration with an email already in use")
			return models.Token{}, fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
		}
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	return a.issue(user)
}

// Login authenticates an existing user.
//
// An unknown email, a wrong password and an unreadable stored hash all
// return the same ErrInvalidCredentials. For an unknown email the password
// is still compared against a dummy hash so that both paths cost one bcrypt
// comparison.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.compareWithDummyHash(request.Password)
			log.Info().Str("func", "*authService.Login").Msg("login failed")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(request.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("stored password hash is unreadable")
		return models.Token{}, ErrInvalidCredentials
	}
	if !ok {
		log.Info().Str("func", "*authService.Login").Msg("login failed")
		return models.Token{}, ErrInvalidCredentials
	}

	log.Info().Str("user_id", user.ID).Msg("user logged in")
	return a.issue(user)
}

// ParseToken verifies tokenString and returns its principal. Failures are
// crypto.ErrInvalidToken, or crypto.ErrTokenExpired for expired tokens.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	claims, err := a.tokens.Verify(tokenString)
	if err != nil {
		return models.Principal{}, err
	}

	return claims.Principal(), nil
}

func (a *authService) issue(user models.User) (models.Token, error) {
	signed, err := a.tokens.Issue(models.Claims{UserID: user.ID, Email: user.Email})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Token{AccessToken: signed}, nil
}

func (a *authService) compareWithDummyHash(password string) {
	a.dummyHashOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Err(err).Msg("error computing dummy password hash")
			return
		}
		a.dummyHash = hash
	})

	if a.dummyHash != "" {
		_, _ = a.hasher.Verify(password, a.dummyHash)
	}
}
