// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package newsletter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/worldofalafia/marketplace-api/internal/platform/request"
	"github.com/worldofalafia/marketplace-api/internal/platform/respond"
	"github.com/worldofalafia/marketplace-api/internal/platform/validate"
)

// Handler implements the newsletter HTTP endpoint.
type Handler struct {
	newsletterService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{newsletterService: service}
}

// Routes returns a [chi.Router] with the signup route.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.subscribe)
	return router
}

type subscribeRequest struct {
	Email string `json:"email"`
}

/*
Subscribe adds an email to the mailing list.

POST /api/v1/newsletter

Request:
  - Body: subscribeRequest (Email)

Response:
  - 201: Subscription: Created entry
  - 400: ErrInvalidJSON: Missing or malformed email
  - 409: ErrConflict: Already subscribed
*/
func (handler *Handler) subscribe(writer http.ResponseWriter, request *http.Request) {
	var input subscribeRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	subscription, err := handler.newsletterService.Subscribe(request.Context(), input.Email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, subscription)
}
