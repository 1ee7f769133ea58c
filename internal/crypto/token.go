// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mani62/Blog-Backend/models"
)

// jwtClaims is the wire form of [models.Claims]. Only the identity pair and
// the registered iss/sub/iat/exp claims are ever encoded.
type jwtClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTCodec implements [TokenCodec] with HMAC-SHA256 signed JWTs.
type JWTCodec struct {
	signKey  []byte
	issuer   string
	duration time.Duration
	now      func() time.Time
}

// NewJWTCodec builds a codec around the process-wide signing secret.
// A non-positive duration issues tokens without an "exp" claim.
func NewJWTCodec(signKey, issuer string, duration time.Duration) (*JWTCodec, error) {
	if signKey == "" {
		return nil, ErrEmptySignKey
	}

	return &JWTCodec{
		signKey:  []byte(signKey),
		issuer:   issuer,
		duration: duration,
		now:      time.Now,
	}, nil
}

// Issue implements [TokenCodec].
func (c *JWTCodec) Issue(claims models.Claims) (string, error) {
	now := c.now()
	registered := jwt.RegisteredClaims{
		Issuer:   c.issuer,
		Subject:  claims.UserID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if c.duration > 0 {
		registered.ExpiresAt = jwt.NewNumericDate(now.Add(c.duration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{
		UserID:           claims.UserID,
		Email:            claims.Email,
		RegisteredClaims: registered,
	})

	signed, err := token.SignedString(c.signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// Verify implements [TokenCodec]. Only HS256 is accepted, the issuer must
// match, and both identity claims must be present.
func (c *JWTCodec) Verify(tokenString string) (models.Claims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithStrictDecoding(),
	}
	if c.issuer != "" {
		options = append(options, jwt.WithIssuer(c.issuer))
	}

	var claims jwtClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return c.signKey, nil
	}, options...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Claims{}, ErrTokenExpired
		}
		return models.Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.UserID == "" || claims.Email == "" || claims.Subject != claims.UserID {
		return models.Claims{}, fmt.Errorf("%w: incomplete claims", ErrInvalidToken)
	}

	return models.Claims{UserID: claims.UserID, Email: claims.Email}, nil
}
