// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mani62/Blog-Backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "test-secret"

func newTestCodec(t *testing.T, duration time.Duration) *JWTCodec {
	t.Helper()

	c, err := NewJWTCodec(testSignKey, "blog-backend", duration)
	require.NoError(t, err)
	return c
}

func TestNewJWTCodec_EmptyKey(t *testing.T) {
	c, err := NewJWTCodec("", "iss", time.Hour)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrEmptySignKey)
}

func TestJWTCodec_RoundTrip(t *testing.T) {
	c := newTestCodec(t, time.Hour)
	claims := models.Claims{UserID: "0199c1c2-7e4f-7a00-8000-000000000001", Email: "a@x.io"}

	token, err := c.Issue(claims)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	got, err := c.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, claims, got)
}

func TestJWTCodec_ExpiryClaim(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration time.Duration
		wantExp  bool
	}{
		{"positive duration sets exp", time.Hour, true},
		{"zero duration omits exp", 0, false},
		{"negative duration omits exp", -time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCodec(t, tt.duration)
			c.now = func() time.Time { return now }

			token, err := c.Issue(models.Claims{UserID: "u1", Email: "a@x.io"})
			require.NoError(t, err)

			parsed, _, err := jwt.NewParser().ParseUnverified(token, &jwtClaims{})
			require.NoError(t, err)
			claims := parsed.Claims.(*jwtClaims)

			assert.Equal(t, "blog-backend", claims.Issuer)
			assert.Equal(t, "u1", claims.Subject)
			assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
			if tt.wantExp {
				require.NotNil(t, claims.ExpiresAt)
				assert.Equal(t, now.Add(tt.duration).Unix(), claims.ExpiresAt.Unix())
			} else {
				assert.Nil(t, claims.ExpiresAt)
			}
		})
	}
}

func TestJWTCodec_Expired(t *testing.T) {
	c := newTestCodec(t, time.Minute)
	issued := time.Now().Add(-time.Hour)
	c.now = func() time.Time { return issued }

	token, err := c.Issue(models.Claims{UserID: "u1", Email: "a@x.io"})
	require.NoError(t, err)

	c.now = time.Now
	_, err = c.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTCodec_AnySingleBitFlipFails(t *testing.T) {
	c := newTestCodec(t, time.Hour)

	token, err := c.Issue(models.Claims{UserID: "u1", Email: "a@x.com"})
	require.NoError(t, err)

	for i := range len(token) {
		for bit := range 8 {
			mutated := []byte(token)
			mutated[i] ^= 1 << bit

			_, err := c.Verify(string(mutated))
			assert.ErrorIs(t, err, ErrInvalidToken, "bit %d of byte %d (%q -> %q)", bit, i, token[i], mutated[i])
		}
	}
}

func TestJWTCodec_WrongKey(t *testing.T) {
	c := newTestCodec(t, time.Hour)
	other, err := NewJWTCodec("another-secret", "blog-backend", time.Hour)
	require.NoError(t, err)

	token, err := other.Issue(models.Claims{UserID: "u1", Email: "a@x.io"})
	require.NoError(t, err)

	_, err = c.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTCodec_WrongIssuer(t *testing.T) {
	c := newTestCodec(t, time.Hour)
	other, err := NewJWTCodec(testSignKey, "someone-else", time.Hour)
	require.NoError(t, err)

	token, err := other.Issue(models.Claims{UserID: "u1", Email: "a@x.io"})
	require.NoError(t, err)

	_, err = c.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTCodec_RejectsOtherAlgorithms(t *testing.T) {
	c := newTestCodec(t, time.Hour)

	claims := jwtClaims{
		UserID: "u1",
		Email:  "a@x.io",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:  "blog-backend",
			Subject: "u1",
		},
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)
	_, err = c.Verify(hs512)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = c.Verify(none)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTCodec_IncompleteClaims(t *testing.T) {
	c := newTestCodec(t, time.Hour)

	tests := []struct {
		name   string
		claims jwtClaims
	}{
		{"missing user id", jwtClaims{Email: "a@x.io", RegisteredClaims: jwt.RegisteredClaims{Issuer: "blog-backend"}}},
		{"missing email", jwtClaims{UserID: "u1", RegisteredClaims: jwt.RegisteredClaims{Issuer: "blog-backend", Subject: "u1"}}},
		{"subject mismatch", jwtClaims{UserID: "u1", Email: "a@x.io", RegisteredClaims: jwt.RegisteredClaims{Issuer: "blog-backend", Subject: "u2"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString([]byte(testSignKey))
			require.NoError(t, err)

			_, err = c.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestJWTCodec_Garbage(t *testing.T) {
	c := newTestCodec(t, time.Hour)

	for _, token := range []string{"", "abc", "a.b.c", "a.b"} {
		_, err := c.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}
