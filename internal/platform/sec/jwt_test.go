// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/modhub/internal/platform/sec"
)

func newKeyPair(t *testing.T) (*rsa.PrivateKey, []byte) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return key, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
}

func sign(t *testing.T, key *rsa.PrivateKey, claims sec.AuthClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

/*
TestVerifyToken covers valid, expired and foreign-issuer tokens.
*/
func TestVerifyToken(t *testing.T) {
	key, publicPEM := newKeyPair(t)
	verifier, err := sec.NewTokenVerifier(publicPEM, "modhub.app")
	require.NoError(t, err)

	now := time.Now()
	valid := sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "modhub.app",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID: "u-1",
		Role:   "moderator",
	}

	t.Run("valid", func(t *testing.T) {
		claims, err := verifier.VerifyToken(sign(t, key, valid))
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.UserID)
		assert.True(t, sec.ParseRole(claims.Role).Can(sec.PermPinThread))
	})

	t.Run("expired", func(t *testing.T) {
		expired := valid
		expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
		_, err := verifier.VerifyToken(sign(t, key, expired))
		assert.Error(t, err)
	})

	t.Run("wrong_issuer", func(t *testing.T) {
		foreign := valid
		foreign.Issuer = "elsewhere"
		_, err := verifier.VerifyToken(sign(t, key, foreign))
		assert.Error(t, err)
	})

	t.Run("wrong_key", func(t *testing.T) {
		other, _ := newKeyPair(t)
		_, err := verifier.VerifyToken(sign(t, other, valid))
		assert.Error(t, err)
	})
}

/*
TestUserRole_Can checks the permissions granted to each role.
*/
func TestUserRole_Can(t *testing.T) {
	tests := []struct {
		role sec.UserRole
		like bool
		pin  bool
	}{
		{sec.RoleAdmin, true, true},
		{sec.RoleModerator, true, true},
		{sec.RoleMember, true, false},
		{sec.ParseRole(" Moderator "), true, true},
		{sec.UserRole("ghost"), false, false},
		{sec.UserRole(""), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.like, tt.role.Can(sec.PermLikeComment))
			assert.Equal(t, tt.pin, tt.role.Can(sec.PermPinThread))
			assert.Equal(t, tt.pin, tt.role.Can(sec.PermLikeComment|sec.PermPinThread))
		})
	}
}
