// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldofalafia/marketplace-api/internal/platform/apperr"
	"github.com/worldofalafia/marketplace-api/internal/platform/middleware"
	"github.com/worldofalafia/marketplace-api/internal/platform/sec"
)

// # Test Doubles

// stubVerifier accepts any token it was seeded with and maps it to claims.
type stubVerifier struct {
	tokens map[string]*sec.AuthClaims
}

func (verifier *stubVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	claims, ok := verifier.tokens[tokenStr]
	if !ok {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}
	return claims, nil
}

// memorySessionStore maps account IDs to their live session token hash.
type memorySessionStore struct {
	hashes map[string]string
}

func (store *memorySessionStore) Get(_ context.Context, userID string) (string, error) {
	hash, ok := store.hashes[userID]
	if !ok {
		return "", apperr.NotFound("Active session")
	}
	return hash, nil
}

// capturingHandler records the claims the middleware injected downstream.
type capturingHandler struct {
	called bool
	claims *sec.AuthClaims
}

func (handler *capturingHandler) ServeHTTP(_ http.ResponseWriter, request *http.Request) {
	handler.called = true
	handler.claims = middleware.GetUser(request.Context())
}

func serveAuthenticated(t *testing.T, sessions *memorySessionStore, authorization string) (*capturingHandler, *httptest.ResponseRecorder) {
	t.Helper()

	verifier := &stubVerifier{tokens: map[string]*sec.AuthClaims{
		"token-current": {UserID: "user-amina", Role: string(sec.RoleCustomer)},
		"token-old":     {UserID: "user-amina", Role: string(sec.RoleCustomer)},
	}}

	downstream := &capturingHandler{}
	chain := middleware.Authenticate(verifier, sessions)(downstream)

	request := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	if authorization != "" {
		request.Header.Set("Authorization", authorization)
	}

	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)
	return downstream, recorder
}

// # Scenarios

/*
TestAuthenticate_LiveSessionPasses verifies the happy path: a verifiable
token whose hash matches the account's session record reaches the handler
with claims injected.
*/
func TestAuthenticate_LiveSessionPasses(t *testing.T) {
	sessions := &memorySessionStore{hashes: map[string]string{
		"user-amina": sec.HashToken("token-current"),
	}}

	downstream, recorder := serveAuthenticated(t, sessions, "Bearer token-current")

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, downstream.called)
	require.NotNil(t, downstream.claims)
	assert.Equal(t, "user-amina", downstream.claims.UserID)
}

/*
TestAuthenticate_NoTokenIsAnonymous verifies that requests without an
Authorization header proceed with no claims.
*/
func TestAuthenticate_NoTokenIsAnonymous(t *testing.T) {
	sessions := &memorySessionStore{hashes: map[string]string{}}

	downstream, recorder := serveAuthenticated(t, sessions, "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, downstream.called)
	assert.Nil(t, downstream.claims)
}

/*
TestAuthenticate_LoggedOutTokenRejected verifies revocation: once the
session record is gone, a still-verifiable token no longer authenticates.
*/
func TestAuthenticate_LoggedOutTokenRejected(t *testing.T) {
	sessions := &memorySessionStore{hashes: map[string]string{}}

	downstream, recorder := serveAuthenticated(t, sessions, "Bearer token-current")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, downstream.called)
}

/*
TestAuthenticate_DisplacedTokenRejected verifies the one-session-per-account
rule: after a fresh login overwrites the session record, the previous token
is rejected even though its signature is still valid.
*/
func TestAuthenticate_DisplacedTokenRejected(t *testing.T) {
	sessions := &memorySessionStore{hashes: map[string]string{
		"user-amina": sec.HashToken("token-current"),
	}}

	downstream, recorder := serveAuthenticated(t, sessions, "Bearer token-old")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, downstream.called)
}

/*
TestAuthenticate_MalformedHeaderRejected verifies the format check runs
before any verification.
*/
func TestAuthenticate_MalformedHeaderRejected(t *testing.T) {
	sessions := &memorySessionStore{hashes: map[string]string{}}

	downstream, recorder := serveAuthenticated(t, sessions, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, downstream.called)
}
