// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldofalafia/marketplace-api/internal/notify"
	"github.com/worldofalafia/marketplace-api/internal/platform/apperr"
	"github.com/worldofalafia/marketplace-api/internal/platform/sec"
)

// # Test Doubles

type memoryUserRepository struct {
	byID    map[string]*User
	byEmail map[string]*User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{byID: map[string]*User{}, byEmail: map[string]*User{}}
}

func (repo *memoryUserRepository) Create(_ context.Context, user *User) error {
	if _, exists := repo.byEmail[user.Email]; exists {
		return apperr.Conflict("Email is already registered")
	}
	repo.byID[user.ID] = user
	repo.byEmail[user.Email] = user
	return nil
}

func (repo *memoryUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	user, ok := repo.byEmail[email]
	if !ok {
		return nil, apperr.NotFound("User account")
	}
	return user, nil
}

func (repo *memoryUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	user, ok := repo.byID[id]
	if !ok {
		return nil, apperr.NotFound("User account")
	}
	return user, nil
}

func (repo *memoryUserRepository) UpdatePrivacySettings(_ context.Context, userID string, settings PrivacySettings) error {
	user, ok := repo.byID[userID]
	if !ok {
		return apperr.NotFound("User account")
	}
	user.PrivacySettings = settings
	return nil
}

func (repo *memoryUserRepository) UpdateTwoFactor(_ context.Context, userID string, enabled bool, method TwoFactorMethod, secret string) error {
	user, ok := repo.byID[userID]
	if !ok {
		return apperr.NotFound("User account")
	}
	user.TwoFactorEnabled = enabled
	user.TwoFactorMethod = method
	user.TwoFactorSecret = secret
	return nil
}

type memoryPendingRepository struct {
	entries map[string]*PendingLogin
}

func newMemoryPendingRepository() *memoryPendingRepository {
	return &memoryPendingRepository{entries: map[string]*PendingLogin{}}
}

func (repo *memoryPendingRepository) Set(_ context.Context, token string, pending *PendingLogin, _ time.Duration) error {
	repo.entries[token] = pending
	return nil
}

func (repo *memoryPendingRepository) Get(_ context.Context, token string) (*PendingLogin, error) {
	pending, ok := repo.entries[token]
	if !ok {
		return nil, apperr.NotFound("Pending verification")
	}
	return pending, nil
}

func (repo *memoryPendingRepository) Delete(_ context.Context, token string) error {
	delete(repo.entries, token)
	return nil
}

type memorySessionRepository struct {
	hashes map[string]string
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{hashes: map[string]string{}}
}

func (repo *memorySessionRepository) Set(_ context.Context, userID, tokenHash string, _ time.Duration) error {
	repo.hashes[userID] = tokenHash
	return nil
}

func (repo *memorySessionRepository) Get(_ context.Context, userID string) (string, error) {
	hash, ok := repo.hashes[userID]
	if !ok {
		return "", apperr.NotFound("Active session")
	}
	return hash, nil
}

func (repo *memorySessionRepository) Delete(_ context.Context, userID string) error {
	delete(repo.hashes, userID)
	return nil
}

type stubTokenProvider struct{}

func (stubTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	return "jwt-for-" + userID, nil
}

// sequenceTokenProvider mints a distinct token per call, for scenarios that
// need two different tokens for the same account.
type sequenceTokenProvider struct {
	issued int
}

func (provider *sequenceTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	provider.issued++
	return fmt.Sprintf("jwt-%d-for-%s", provider.issued, userID), nil
}

type recordingCodeSender struct {
	method      string
	destination string
	code        string
	calls       int
}

func (sender *recordingCodeSender) SendCode(_ context.Context, method, destination, code string) error {
	sender.method = method
	sender.destination = destination
	sender.code = code
	sender.calls++
	return nil
}

type spyNotifier struct {
	sent []notify.Notification
}

func (spy *spyNotifier) Notify(_ context.Context, notification notify.Notification) {
	spy.sent = append(spy.sent, notification)
}

// # Fixture

type fixture struct {
	service  *Service
	users    *memoryUserRepository
	pending  *memoryPendingRepository
	sessions *memorySessionRepository
	sender   *recordingCodeSender
	notifier *spyNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := newMemoryUserRepository()
	pending := newMemoryPendingRepository()
	sessions := newMemorySessionRepository()
	sender := &recordingCodeSender{}
	notifier := &spyNotifier{}

	service := NewService(users, pending, sessions, stubTokenProvider{}, sender, notifier)

	// Deterministic generators so the flow can be driven end to end.
	service.newCode = func() (string, error) { return "123456", nil }
	service.newToken = func() (string, error) { return "pending-token-1", nil }

	return &fixture{
		service:  service,
		users:    users,
		pending:  pending,
		sessions: sessions,
		sender:   sender,
		notifier: notifier,
	}
}

func (f *fixture) seedUser(t *testing.T, email, password string, twoFactor bool, method TwoFactorMethod) *User {
	t.Helper()

	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	user := &User{
		ID:               "user-" + email,
		Email:            email,
		PasswordHash:     hash,
		DisplayName:      "Test User",
		PhoneNumber:      "+232 76 123456",
		Role:             sec.RoleCustomer,
		TwoFactorEnabled: twoFactor,
		TwoFactorMethod:  method,
		PrivacySettings:  DefaultPrivacySettings(),
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

// # Scenarios

/*
TestLogin_WithoutSecondFactor verifies the direct path: a correct password
on an unenrolled account yields an authenticated session immediately.
*/
func TestLogin_WithoutSecondFactor(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "amina@example.sl", "correct-horse-1", false, "")

	result, err := f.service.Login(context.Background(), LoginInput{
		Email:    "amina@example.sl",
		Password: "correct-horse-1",
	})

	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, result.State)
	require.NotNil(t, result.Session)
	assert.NotEmpty(t, result.Session.AccessToken)
	assert.Empty(t, result.PendingToken)
	assert.Zero(t, f.sender.calls)

	// Session hash recorded for the account.
	hash, err := f.sessions.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, sec.VerifyTokenHash(result.Session.AccessToken, hash))
}

/*
TestLogin_DisplacesPreviousSession verifies the one-session-per-account
rule: a fresh login overwrites the stored hash, so only the newest token
matches the session record the middleware checks.
*/
func TestLogin_DisplacesPreviousSession(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "amina@example.sl", "correct-horse-1", false, "")

	first, err := f.service.Login(context.Background(), LoginInput{
		Email:    "amina@example.sl",
		Password: "correct-horse-1",
	})
	require.NoError(t, err)

	// The stub provider mints per-user tokens; make the second one distinct
	// so displacement is observable.
	f.service.tokenProvider = &sequenceTokenProvider{}
	second, err := f.service.Login(context.Background(), LoginInput{
		Email:    "amina@example.sl",
		Password: "correct-horse-1",
	})
	require.NoError(t, err)
	require.NotEqual(t, first.Session.AccessToken, second.Session.AccessToken)

	hash, err := f.sessions.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, sec.VerifyTokenHash(second.Session.AccessToken, hash))
	assert.False(t, sec.VerifyTokenHash(first.Session.AccessToken, hash),
		"the displaced token must no longer match the session record")
}

/*
TestLogin_WrongPassword verifies the generic rejection for bad credentials,
identical for unknown accounts and wrong passwords.
*/
func TestLogin_WrongPassword(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "amina@example.sl", "correct-horse-1", false, "")

	cases := []LoginInput{
		{Email: "amina@example.sl", Password: "wrong"},
		{Email: "ghost@example.sl", Password: "correct-horse-1"},
	}

	for _, input := range cases {
		_, err := f.service.Login(context.Background(), input)
		var appError *apperr.AppError
		require.ErrorAs(t, err, &appError)
		assert.Equal(t, 401, appError.HTTPStatus)
		assert.Equal(t, "Invalid login credentials", appError.Message)
	}
}

/*
TestLogin_WithSecondFactor verifies the pending transition: a correct
password on an enrolled account yields a pending token and a delivered
code, but no session.
*/
func TestLogin_WithSecondFactor(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "sorie@example.sl", "correct-horse-1", true, MethodEmail)

	result, err := f.service.Login(context.Background(), LoginInput{
		Email:    "sorie@example.sl",
		Password: "correct-horse-1",
	})

	require.NoError(t, err)
	assert.Equal(t, StatePendingSecondFactor, result.State)
	assert.Equal(t, "pending-token-1", result.PendingToken)
	assert.Nil(t, result.Session)

	// Code delivered over the enrolled channel; only the hash is stored.
	assert.Equal(t, 1, f.sender.calls)
	assert.Equal(t, "email", f.sender.method)
	assert.Equal(t, user.Email, f.sender.destination)
	assert.Equal(t, "123456", f.sender.code)
	assert.Equal(t, sec.HashToken("123456"), f.pending.entries["pending-token-1"].CodeHash)

	// No session until the code is redeemed.
	_, err = f.sessions.Get(context.Background(), user.ID)
	assert.Error(t, err)
}

/*
TestLogin_SMSDeliveryUsesPhoneNumber verifies channel selection for
SMS-enrolled accounts.
*/
func TestLogin_SMSDeliveryUsesPhoneNumber(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "fatmata@example.sl", "correct-horse-1", true, MethodSMS)

	_, err := f.service.Login(context.Background(), LoginInput{
		Email:    "fatmata@example.sl",
		Password: "correct-horse-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "sms", f.sender.method)
	assert.Equal(t, user.PhoneNumber, f.sender.destination)
}

/*
TestVerify_WrongCodeLeavesPendingState verifies that a wrong code is
rejected without consuming the challenge, so a later correct code still
succeeds.
*/
func TestVerify_WrongCodeLeavesPendingState(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "sorie@example.sl", "correct-horse-1", true, MethodEmail)

	result, err := f.service.Login(context.Background(), LoginInput{
		Email:    "sorie@example.sl",
		Password: "correct-horse-1",
	})
	require.NoError(t, err)

	_, err = f.service.Verify(context.Background(), result.PendingToken, "000000")
	var appError *apperr.AppError
	require.ErrorAs(t, err, &appError)
	assert.Equal(t, 401, appError.HTTPStatus)
	assert.Equal(t, "Invalid verification code", appError.Message)

	// Challenge survives the failed attempt.
	verified, err := f.service.Verify(context.Background(), result.PendingToken, "123456")
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, verified.State)
}

/*
TestVerify_CorrectCodeIsSingleUse verifies that a redeemed pending token
cannot be redeemed again.
*/
func TestVerify_CorrectCodeIsSingleUse(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "sorie@example.sl", "correct-horse-1", true, MethodEmail)

	result, err := f.service.Login(context.Background(), LoginInput{
		Email:    "sorie@example.sl",
		Password: "correct-horse-1",
	})
	require.NoError(t, err)

	verified, err := f.service.Verify(context.Background(), result.PendingToken, "123456")
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, verified.State)
	require.NotNil(t, verified.Session)
	assert.Equal(t, user.ID, verified.Session.User.ID)

	// Second redemption reads as a login with no pending verification.
	_, err = f.service.Verify(context.Background(), result.PendingToken, "123456")
	var appError *apperr.AppError
	require.ErrorAs(t, err, &appError)
	assert.Equal(t, "No pending verification for this login", appError.Message)
}

/*
TestVerify_StaleToken verifies the distinct rejection for tokens that never
existed or have expired.
*/
func TestVerify_StaleToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Verify(context.Background(), "never-issued", "123456")

	var appError *apperr.AppError
	require.ErrorAs(t, err, &appError)
	assert.Equal(t, 401, appError.HTTPStatus)
	assert.Equal(t, "No pending verification for this login", appError.Message)
}

/*
TestCancelPending_Idempotent verifies that abandoning a login always
succeeds, even when the pending entry is already gone.
*/
func TestCancelPending_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "sorie@example.sl", "correct-horse-1", true, MethodEmail)

	result, err := f.service.Login(context.Background(), LoginInput{
		Email:    "sorie@example.sl",
		Password: "correct-horse-1",
	})
	require.NoError(t, err)

	require.NoError(t, f.service.CancelPending(context.Background(), result.PendingToken))
	require.NoError(t, f.service.CancelPending(context.Background(), result.PendingToken))

	// The abandoned token is no longer redeemable.
	_, err = f.service.Verify(context.Background(), result.PendingToken, "123456")
	assert.Error(t, err)
}

/*
TestRegister_CreatesAccountAndSession verifies enrollment: default role,
default privacy baseline, two-factor off, live session.
*/
func TestRegister_CreatesAccountAndSession(t *testing.T) {
	f := newFixture(t)

	result, err := f.service.Register(context.Background(), RegisterInput{
		Email:       "new@example.sl",
		Password:    "longenough-1",
		DisplayName: "New Shopper",
	})

	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, result.State)
	require.NotNil(t, result.Session)

	user := result.Session.User
	assert.Equal(t, sec.RoleCustomer, user.Role)
	assert.False(t, user.TwoFactorEnabled)
	assert.True(t, user.PrivacySettings.EmailNotifications)
	assert.False(t, user.PrivacySettings.MarketingEmails)
	assert.NotEqual(t, "longenough-1", user.PasswordHash, "password must be hashed")
}

/*
TestRegister_DuplicateEmail verifies the conflict on re-registration.
*/
func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "taken@example.sl", "correct-horse-1", false, "")

	_, err := f.service.Register(context.Background(), RegisterInput{
		Email:       "taken@example.sl",
		Password:    "longenough-1",
		DisplayName: "Impostor",
	})

	var appError *apperr.AppError
	require.ErrorAs(t, err, &appError)
	assert.Equal(t, 409, appError.HTTPStatus)
}

/*
TestLogout_Idempotent verifies that logout succeeds with and without a
tracked session.
*/
func TestLogout_Idempotent(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "amina@example.sl", "correct-horse-1", false, "")

	_, err := f.service.Login(context.Background(), LoginInput{
		Email:    "amina@example.sl",
		Password: "correct-horse-1",
	})
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(context.Background(), user.ID))
	_, err = f.sessions.Get(context.Background(), user.ID)
	assert.Error(t, err)

	// Second logout finds nothing to remove and still succeeds.
	require.NoError(t, f.service.Logout(context.Background(), user.ID))
}

/*
TestUpdatePrivacySettings verifies the whole-document replacement and the
server-side LastUpdated stamp.
*/
func TestUpdatePrivacySettings(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "amina@example.sl", "correct-horse-1", false, "")
	before := time.Now()

	updated, err := f.service.UpdatePrivacySettings(context.Background(), user.ID, PrivacySettings{
		EmailNotifications: false,
		MarketingEmails:    true,
		ProfileVisibility:  "public",
		DataSharing:        true,
		LastUpdated:        time.Unix(0, 0), // client-supplied value must be ignored
	})

	require.NoError(t, err)
	assert.False(t, updated.PrivacySettings.EmailNotifications)
	assert.True(t, updated.PrivacySettings.MarketingEmails)
	assert.Equal(t, "public", updated.PrivacySettings.ProfileVisibility)
	assert.False(t, updated.PrivacySettings.LastUpdated.Before(before))
}

/*
TestUpdatePrivacySettings_UnknownAccount verifies that an unauthenticated
or deleted identity cannot update settings.
*/
func TestUpdatePrivacySettings_UnknownAccount(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.UpdatePrivacySettings(context.Background(), "nobody", PrivacySettings{})

	var appError *apperr.AppError
	require.ErrorAs(t, err, &appError)
	assert.Equal(t, 404, appError.HTTPStatus)
}

/*
TestSetupTwoFactor verifies enrollment changes in both directions.
*/
func TestSetupTwoFactor(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "amina@example.sl", "correct-horse-1", false, "")

	enrolled, err := f.service.SetupTwoFactor(context.Background(), user.ID, true, MethodSMS)
	require.NoError(t, err)
	assert.True(t, enrolled.User.TwoFactorEnabled)
	assert.Equal(t, MethodSMS, enrolled.User.TwoFactorMethod)
	assert.Empty(t, enrolled.Secret, "delivered-code methods carry no secret")

	// The next login now takes the pending path.
	result, err := f.service.Login(context.Background(), LoginInput{
		Email:    "amina@example.sl",
		Password: "correct-horse-1",
	})
	require.NoError(t, err)
	assert.Equal(t, StatePendingSecondFactor, result.State)

	disabled, err := f.service.SetupTwoFactor(context.Background(), user.ID, false, "")
	require.NoError(t, err)
	assert.False(t, disabled.User.TwoFactorEnabled)
	assert.Empty(t, disabled.User.TwoFactorMethod)

	_, err = f.service.SetupTwoFactor(context.Background(), user.ID, true, "carrier-pigeon")
	assert.Error(t, err)
}

/*
TestAuthenticatorFlow verifies the TOTP path end to end: enrollment returns
the secret and provisioning URL once, login issues a pending token without
delivering anything, and a code derived from the secret redeems it.
*/
func TestAuthenticatorFlow(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "ibrahim@example.sl", "correct-horse-1", false, "")

	setup, err := f.service.SetupTwoFactor(context.Background(), user.ID, true, MethodAuthenticator)
	require.NoError(t, err)
	require.NotEmpty(t, setup.Secret)
	assert.Contains(t, setup.OtpauthURL, "otpauth://totp/")
	assert.Contains(t, setup.OtpauthURL, setup.Secret)

	result, err := f.service.Login(context.Background(), LoginInput{
		Email:    "ibrahim@example.sl",
		Password: "correct-horse-1",
	})
	require.NoError(t, err)
	assert.Equal(t, StatePendingSecondFactor, result.State)
	assert.Zero(t, f.sender.calls, "authenticator codes are never delivered")
	assert.Empty(t, f.pending.entries[result.PendingToken].CodeHash)

	// A code computed from the shared secret, as the app would.
	code, err := sec.TOTPCode(setup.Secret, time.Now())
	require.NoError(t, err)

	_, err = f.service.Verify(context.Background(), result.PendingToken, "000000")
	assert.Error(t, err, "wrong code must be rejected")

	verified, err := f.service.Verify(context.Background(), result.PendingToken, code)
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, verified.State)
	require.NotNil(t, verified.Session)
	assert.Equal(t, user.ID, verified.Session.User.ID)
}
