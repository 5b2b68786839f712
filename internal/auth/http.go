// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worldofalafia/marketplace-api/internal/platform/middleware"
	requestutil "github.com/worldofalafia/marketplace-api/internal/platform/request"
	"github.com/worldofalafia/marketplace-api/internal/platform/respond"
	"github.com/worldofalafia/marketplace-api/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler covers the full credential lifecycle: registration, the
// two-step login flow, session teardown, and the account settings that
// feed back into it (privacy, two-factor enrollment).
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST /register : Creates a new account and a session.
//   - POST /login    : Starts a login; may return a pending token.
//   - POST /verify   : Redeems a pending token with a code.
//   - POST /cancel   : Abandons a pending login.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/verify", handler.verify)
	router.Post("/cancel", handler.cancel)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/logout", handler.logout)
		r.Get("/me", handler.me)
		r.Put("/privacy", handler.updatePrivacy)
		r.Post("/2fa/setup", handler.setupTwoFactor)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	PhoneNumber string `json:"phone_number"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyRequest struct {
	PendingToken string `json:"pending_token"`
	Code         string `json:"code"`
}

type cancelRequest struct {
	PendingToken string `json:"pending_token"`
}

type privacyRequest struct {
	EmailNotifications bool   `json:"email_notifications"`
	MarketingEmails    bool   `json:"marketing_emails"`
	ProfileVisibility  string `json:"profile_visibility"`
	DataSharing        bool   `json:"data_sharing"`
}

type twoFactorSetupRequest struct {
	Enabled bool   `json:"enabled"`
	Method  string `json:"method"`
}

/*
Register handles the creation of a new account.

POST /api/v1/auth/register

Description: Validates input, checks for identity conflicts, persists the
account, and returns an authenticated result with a live session.

Request:
  - Body: registerRequest (Email, Password, DisplayName, PhoneNumber)

Response:
  - 201: LoginResult: Authenticated state with session
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Email already registered
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, 8).
		Required(FieldDisplayName, input.DisplayName)
	if input.PhoneNumber != "" {
		validator.Phone(FieldPhoneNumber, input.PhoneNumber)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.authService.Register(request.Context(), RegisterInput{
		Email:       input.Email,
		Password:    input.Password,
		DisplayName: input.DisplayName,
		PhoneNumber: input.PhoneNumber,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, result)
}

/*
Login starts an authentication attempt.

POST /api/v1/auth/login

Description: Verifies credentials. Accounts without a second factor receive
a session directly; enrolled accounts receive a pending token and must call
/verify with the delivered code.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: LoginResult: Either a session or a pending token
  - 401: ErrUnauthorized: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
Verify completes a two-factor login.

POST /api/v1/auth/verify

Description: Redeems the pending token with the delivered code. The pending
entry is single-use; a wrong code leaves it in place for another attempt.

Request:
  - Body: verifyRequest (PendingToken, Code)

Response:
  - 200: LoginResult: Authenticated state with session
  - 401: ErrUnauthorized: Stale token or wrong code
*/
func (handler *Handler) verify(writer http.ResponseWriter, request *http.Request) {
	var input verifyRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldPendingToken, input.PendingToken)
	validator.Required(FieldCode, input.Code)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.authService.Verify(request.Context(), input.PendingToken, input.Code)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
Cancel abandons an unfinished two-factor login.

POST /api/v1/auth/cancel

Description: Discards the pending state and returns the identity to
Anonymous. Cancelling an already-gone token still succeeds.

Request:
  - Body: cancelRequest (PendingToken)

Response:
  - 204: No Content: Pending login discarded
*/
func (handler *Handler) cancel(writer http.ResponseWriter, request *http.Request) {
	var input cancelRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.PendingToken == "" {
		respond.Error(writer, request, validate.RequiredError(FieldPendingToken, "is required"))
		return
	}

	if err := handler.authService.CancelPending(request.Context(), input.PendingToken); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
Logout terminates the current session.

POST /api/v1/auth/logout

Description: Idempotent. The session record is removed; the identity
returns to Anonymous.

Response:
  - 204: No Content: Session terminated
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.Logout(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
Me returns the profile of the authenticated account.

GET /api/v1/auth/me

Response:
  - 200: User: Account profile
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Profile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
UpdatePrivacy replaces the account's privacy settings.

PUT /api/v1/auth/privacy

Description: The settings document is replaced whole. LastUpdated is
stamped server-side.

Request:
  - Body: privacyRequest (EmailNotifications, MarketingEmails, ProfileVisibility, DataSharing)

Response:
  - 200: User: Account with updated settings
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) updatePrivacy(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input privacyRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	user, err := handler.authService.UpdatePrivacySettings(request.Context(), userID, PrivacySettings{
		EmailNotifications: input.EmailNotifications,
		MarketingEmails:    input.MarketingEmails,
		ProfileVisibility:  input.ProfileVisibility,
		DataSharing:        input.DataSharing,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
SetupTwoFactor changes the account's second-factor enrollment.

POST /api/v1/auth/2fa/setup

Description: Enabling the authenticator method returns the TOTP secret and
its otpauth provisioning URL in this response only; the client must capture
them immediately.

Request:
  - Body: twoFactorSetupRequest (Enabled, Method)

Response:
  - 200: TwoFactorSetup: Account with updated enrollment
  - 400: ErrValidation: Unknown method
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) setupTwoFactor(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input twoFactorSetupRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.Enabled {
		validator := &validate.Validator{}
		validator.Required(FieldMethod, input.Method)
		if err := validator.Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	setup, err := handler.authService.SetupTwoFactor(request.Context(), userID, input.Enabled, TwoFactorMethod(input.Method))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, setup)
}
