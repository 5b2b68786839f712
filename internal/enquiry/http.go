// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package enquiry

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worldofalafia/marketplace-api/internal/platform/middleware"
	requestutil "github.com/worldofalafia/marketplace-api/internal/platform/request"
	"github.com/worldofalafia/marketplace-api/internal/platform/respond"
	"github.com/worldofalafia/marketplace-api/internal/platform/sec"
	"github.com/worldofalafia/marketplace-api/internal/platform/validate"
)

// Handler implements the enquiry HTTP endpoints.
type Handler struct {
	enquiryService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{enquiryService: service}
}

// Routes returns a [chi.Router] configured with enquiry routes.
//
// # Endpoints
//   - POST / : Submit an enquiry (public).
//   - GET  / : Review the archive (admin only).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.submit)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Get("/", handler.list)
	})

	return router
}

// # Request Payloads

type submitRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Message          string `json:"message"`
	PreferredContact string `json:"preferred_contact"`
	PreferredDate    string `json:"preferred_date"`
	Location         string `json:"location"`
	Quantity         int    `json:"quantity"`
	ItemID           string `json:"item_id"`
}

/*
Submit archives and forwards a purchase enquiry.

POST /api/v1/enquiries

Description: Validates the form, archives the enquiry, and forwards it to
the CRM. The response's delivered flag reports the forward outcome.

Request:
  - Body: submitRequest (Name, Email, Phone, PreferredContact, ItemID, ...)

Response:
  - 201: Enquiry: Archived enquiry
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 404: ErrNotFound: Unknown catalog item
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input submitRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPhone, input.Phone).
		Phone(FieldPhone, input.Phone).
		Required(FieldItemID, input.ItemID).
		OneOf(FieldPreferredContact, input.PreferredContact, ContactPhone, ContactEmail, ContactWhatsApp)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	enquiry, err := handler.enquiryService.Submit(request.Context(), SubmitInput{
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		Message:          input.Message,
		PreferredContact: input.PreferredContact,
		PreferredDate:    input.PreferredDate,
		Location:         input.Location,
		Quantity:         input.Quantity,
		ItemID:           input.ItemID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, enquiry)
}

/*
List returns the enquiry archive for the sales team.

GET /api/v1/enquiries

Response:
  - 200: []Enquiry: Archived enquiries, newest first
  - 401: ErrUnauthorized: Authentication required
  - 403: ErrForbidden: Admin role required
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	enquiries, err := handler.enquiryService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, enquiries)
}
