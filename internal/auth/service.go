// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/worldofalafia/marketplace-api/internal/notify"
	"github.com/worldofalafia/marketplace-api/internal/platform/apperr"
	"github.com/worldofalafia/marketplace-api/internal/platform/constants"
	"github.com/worldofalafia/marketplace-api/internal/platform/sec"
	"github.com/worldofalafia/marketplace-api/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for generating signed access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - email: The email of the account.
	//   - role: The role of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID, email, role string, timeToLive time.Duration) (string, error)
}

// CodeSender delivers a verification code over the account's chosen channel.
type CodeSender interface {
	SendCode(ctx context.Context, method, destination, code string) error
}

// Service implements the credential state machine and account lifecycle.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, pending
// login, or session logic must be reviewed before release.
type Service struct {
	userRepository    UserRepository
	pendingRepository PendingLoginRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
	codeSender        CodeSender
	notifier          notify.Notifier

	// Generator seams. Production uses crypto/rand; tests substitute
	// deterministic values to drive the state machine.
	newCode  func() (string, error)
	newToken func() (string, error)
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	pendingRepo PendingLoginRepository,
	sessionRepo SessionRepository,
	tokenProv TokenProvider,
	codeSender CodeSender,
	notifier notify.Notifier,
) *Service {
	return &Service{
		userRepository:    userRepo,
		pendingRepository: pendingRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
		codeSender:        codeSender,
		notifier:          notifier,
		newCode: func() (string, error) {
			return sec.GenerateNumericCode(constants.TwoFactorCodeDigits)
		},
		newToken: func() (string, error) {
			return sec.GenerateSecureToken(constants.PendingTokenLength)
		},
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	PhoneNumber string
}

/*
Register validates, hashes, and persists a brand new account, then
establishes a session immediately.

Description: New accounts start with two-factor disabled and the default
privacy baseline; both can be changed from the account settings afterward.

Parameters:
  - ctx: context.Context
  - input: RegisterInput

Returns:
  - *LoginResult: Authenticated result with a live session
  - error: Conflict (if the email exists) or storage errors
*/
func (service *Service) Register(ctx context.Context, input RegisterInput) (*LoginResult, error) {

	// ── 1. Verify email uniqueness. Return a client-safe Conflict err ──
	_, err := service.userRepository.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// ── 2. Hash the password. Plain text never reaches storage ──
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// ── 3. Construct and persist the account ──
	user := &User{
		ID:               uuidv7.New(),
		Email:            input.Email,
		PasswordHash:     hashedPassword,
		DisplayName:      input.DisplayName,
		PhoneNumber:      input.PhoneNumber,
		Role:             sec.RoleCustomer,
		TwoFactorEnabled: false,
		PrivacySettings:  DefaultPrivacySettings(),
	}

	if err := service.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}

	// ── 4. Establish the first session ──
	session, err := service.establishSession(ctx, user)
	if err != nil {
		return nil, err
	}

	service.notifier.Notify(ctx, notify.Notification{
		Title:       "Welcome to World of Alafia",
		Description: fmt.Sprintf("Account created for %s.", user.Email),
		Severity:    notify.SeveritySuccess,
	})

	return &LoginResult{State: StateAuthenticated, Session: session}, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login validates credentials and advances the credential state machine.

Description: A correct password moves the identity to Authenticated when the
account has no second factor, or to PendingSecondFactor when it does. In the
pending case a verification code is issued over the account's channel and an
opaque pending token is returned; no session exists until the code is
redeemed through [Service.Verify].

Parameters:
  - ctx: context.Context
  - input: LoginInput

Returns:
  - *LoginResult: Session or pending token, depending on enrollment
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {

	// ── 1. Resolve the account. Generic message to prevent enumeration ──
	user, err := service.userRepository.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 2. Constant-time password comparison via bcrypt ──
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 3. No second factor: straight to Authenticated ──
	if !user.TwoFactorEnabled {
		session, err := service.establishSession(ctx, user)
		if err != nil {
			return nil, err
		}

		service.notifier.Notify(ctx, notify.Notification{
			Title:       "Welcome back",
			Description: fmt.Sprintf("Signed in as %s.", user.Email),
			Severity:    notify.SeveritySuccess,
		})

		return &LoginResult{State: StateAuthenticated, Session: session}, nil
	}

	// ── 4. Second factor required: issue a pending challenge ──
	return service.beginSecondFactor(ctx, user)
}

// beginSecondFactor creates the pending login state and delivers the code.
//
// The authenticator method stores no code hash: the app derives codes from
// the shared secret, and [Service.Verify] validates them against it.
func (service *Service) beginSecondFactor(ctx context.Context, user *User) (*LoginResult, error) {
	token, err := service.newToken()
	if err != nil {
		return nil, fmt.Errorf("auth_service_pending_token_failed: %w", err)
	}

	pending := &PendingLogin{
		UserID: user.ID,
		Method: user.TwoFactorMethod,
	}

	if user.TwoFactorMethod != MethodAuthenticator {
		code, err := service.newCode()
		if err != nil {
			return nil, fmt.Errorf("auth_service_code_generation_failed: %w", err)
		}
		pending.CodeHash = sec.HashToken(code)

		destination := user.Email
		if user.TwoFactorMethod == MethodSMS {
			destination = user.PhoneNumber
		}
		if err := service.codeSender.SendCode(ctx, string(user.TwoFactorMethod), destination, code); err != nil {
			return nil, fmt.Errorf("auth_service_code_delivery_failed: %w", err)
		}
	}

	if err := service.pendingRepository.Set(ctx, token, pending, constants.PendingTokenTTL); err != nil {
		return nil, fmt.Errorf("auth_service_pending_store_failed: %w", err)
	}

	service.notifier.Notify(ctx, notify.Notification{
		Title:       "Verification Required",
		Description: "Enter the verification code we sent you to finish signing in.",
		Severity:    notify.SeverityInfo,
	})

	return &LoginResult{State: StatePendingSecondFactor, PendingToken: token}, nil
}

/*
Verify redeems a pending token with a verification code.

Description: The pending entry is single-use: a correct code consumes it and
establishes the session, a wrong code leaves it in place for another attempt
until the TTL lapses. A missing entry (expired, cancelled, or already
consumed) is reported distinctly so the client can restart the login.

Parameters:
  - ctx: context.Context
  - pendingToken: string
  - code: string

Returns:
  - *LoginResult: Authenticated result on success
  - error: Unauthorized (stale token or wrong code) or internal failures
*/
func (service *Service) Verify(ctx context.Context, pendingToken, code string) (*LoginResult, error) {

	// ── 1. Resolve the pending challenge and its account ──
	pending, err := service.pendingRepository.Get(ctx, pendingToken)
	if err != nil {
		return nil, apperr.Unauthorized("No pending verification for this login")
	}

	user, err := service.userRepository.FindByID(ctx, pending.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("Account no longer exists")
	}

	// ── 2. Validate the code: TOTP for authenticator, hash otherwise ──
	if pending.Method == MethodAuthenticator {
		if !sec.ValidateTOTP(user.TwoFactorSecret, code, time.Now()) {
			return nil, apperr.Unauthorized("Invalid verification code")
		}
	} else if !sec.VerifyTokenHash(code, pending.CodeHash) {
		return nil, apperr.Unauthorized("Invalid verification code")
	}

	// ── 3. Consume the challenge before issuing anything ──
	if err := service.pendingRepository.Delete(ctx, pendingToken); err != nil {
		return nil, fmt.Errorf("auth_service_pending_consume_failed: %w", err)
	}

	// ── 4. Establish the session ──
	session, err := service.establishSession(ctx, user)
	if err != nil {
		return nil, err
	}

	service.notifier.Notify(ctx, notify.Notification{
		Title:       "Welcome back",
		Description: fmt.Sprintf("Signed in as %s.", user.Email),
		Severity:    notify.SeveritySuccess,
	})

	return &LoginResult{State: StateAuthenticated, Session: session}, nil
}

/*
CancelPending abandons an unfinished two-factor login.

Description: Returns the identity to Anonymous. Cancelling a token that no
longer exists succeeds: the end state is the same.

Parameters:
  - ctx: context.Context
  - pendingToken: string

Returns:
  - error: Deletion failures
*/
func (service *Service) CancelPending(ctx context.Context, pendingToken string) error {
	if err := service.pendingRepository.Delete(ctx, pendingToken); err != nil {
		return fmt.Errorf("auth_service_cancel_pending_failed: %w", err)
	}
	return nil
}

/*
Logout terminates the account's active session.

Description: Idempotent. Logging out twice, or without a tracked session,
still ends in the Anonymous state and succeeds.

Parameters:
  - ctx: context.Context
  - userID: string

Returns:
  - error: Revocation failures
*/
func (service *Service) Logout(ctx context.Context, userID string) error {
	if err := service.sessionRepository.Delete(ctx, userID); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	service.notifier.Notify(ctx, notify.Notification{
		Title:       "Signed Out",
		Description: "You have been signed out of your account.",
		Severity:    notify.SeverityInfo,
	})

	return nil
}

// # Account Settings

/*
UpdatePrivacySettings replaces the account's consent document.

Description: The document is replaced whole; LastUpdated is stamped here so
clients cannot forge it. Only an authenticated account can reach this
operation, enforced at the transport layer.

Parameters:
  - ctx: context.Context
  - userID: string
  - settings: PrivacySettings

Returns:
  - *User: Account with the updated settings
  - error: NotFound or update failures
*/
func (service *Service) UpdatePrivacySettings(ctx context.Context, userID string, settings PrivacySettings) (*User, error) {
	settings.LastUpdated = time.Now()

	if err := service.userRepository.UpdatePrivacySettings(ctx, userID, settings); err != nil {
		return nil, err
	}

	user, err := service.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	service.notifier.Notify(ctx, notify.Notification{
		Title:       "Privacy Settings Updated",
		Description: "Your privacy preferences have been saved.",
		Severity:    notify.SeveritySuccess,
	})

	return user, nil
}

/*
SetupTwoFactor changes the account's second-factor enrollment.

Description: Enabling requires a valid delivery method. Enabling the
authenticator method mints a fresh TOTP secret and returns it with its
otpauth provisioning URL; the secret is never readable again afterward.
Disabling clears both method and secret. The change takes effect on the
next login; the current session is left untouched.

Parameters:
  - ctx: context.Context
  - userID: string
  - enabled: bool
  - method: TwoFactorMethod

Returns:
  - *TwoFactorSetup: Updated account, plus enrollment material for the
    authenticator method
  - error: Validation or update failures
*/
func (service *Service) SetupTwoFactor(ctx context.Context, userID string, enabled bool, method TwoFactorMethod) (*TwoFactorSetup, error) {
	if enabled && !ValidTwoFactorMethod(string(method)) {
		return nil, apperr.ValidationError("Unknown two-factor method")
	}

	secret := ""
	if !enabled {
		method = ""
	} else if method == MethodAuthenticator {
		generated, err := sec.GenerateTOTPSecret()
		if err != nil {
			return nil, fmt.Errorf("auth_service_totp_secret_failed: %w", err)
		}
		secret = generated
	}

	if err := service.userRepository.UpdateTwoFactor(ctx, userID, enabled, method, secret); err != nil {
		return nil, err
	}

	user, err := service.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	setup := &TwoFactorSetup{User: user}
	if secret != "" {
		setup.Secret = secret
		setup.OtpauthURL = sec.OtpauthURL(secret, user.Email, constants.AuthIssuer)
	}

	return setup, nil
}

/*
Profile returns the account behind an authenticated session.

Parameters:
  - ctx: context.Context
  - userID: string

Returns:
  - *User: Hydrated account entity
  - error: NotFound or storage errors
*/
func (service *Service) Profile(ctx context.Context, userID string) (*User, error) {
	return service.userRepository.FindByID(ctx, userID)
}

// # Session Establishment

// establishSession issues the access token and records its hash, displacing
// any previous session for the account.
func (service *Service) establishSession(ctx context.Context, user *User) (*Session, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, string(user.Role), constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	if err := service.sessionRepository.Set(ctx, user.ID, sec.HashToken(accessToken), constants.SessionTTL); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &Session{
		AccessToken: accessToken,
		ExpiresAt:   time.Now().Add(constants.AccessTokenTTL),
		User:        user,
	}, nil
}
