// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worldofalafia/marketplace-api/internal/platform/apperr"
	"github.com/worldofalafia/marketplace-api/internal/platform/constants"
	requestutil "github.com/worldofalafia/marketplace-api/internal/platform/request"
	"github.com/worldofalafia/marketplace-api/internal/platform/respond"
	"github.com/worldofalafia/marketplace-api/internal/platform/validate"
	"github.com/worldofalafia/marketplace-api/pkg/money"
)

// # Definitions & Constructors

// Handler implements the cart HTTP endpoints.
//
// # Ownership
//
// An authenticated request operates on the cart keyed by the JWT subject.
// A guest request supplies a client-generated cart identifier through the
// X-Cart-ID header instead. A request carrying neither is rejected, since
// there is no cart to address.
type Handler struct {
	cartService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{cartService: service}
}

// Routes returns a [chi.Router] configured with cart routes.
//
// # Endpoints
//   - GET    /               : Current cart with derived totals.
//   - DELETE /               : Empty the cart.
//   - POST   /items          : Add an item (merging duplicates).
//   - PATCH  /items/{itemID} : Set a line's quantity.
//   - DELETE /items/{itemID} : Remove a line.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.get)
	router.Delete("/", handler.clear)
	router.Post("/items", handler.addItem)
	router.Patch("/items/{itemID}", handler.updateQuantity)
	router.Delete("/items/{itemID}", handler.removeItem)

	return router
}

// # Request & Response Payloads

type addItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// cartView is the response shape: the raw lines plus the derived values the
// storefront renders in the cart badge and checkout summary.
type cartView struct {
	Lines        []Line       `json:"lines"`
	ItemCount    int          `json:"item_count"`
	Total        money.Amount `json:"total"`
	TotalDisplay string       `json:"total_display"`
}

func newCartView(cart *Cart) cartView {
	lines := cart.Lines
	if lines == nil {
		lines = []Line{}
	}
	return cartView{
		Lines:        lines,
		ItemCount:    cart.ItemCount(),
		Total:        cart.Total(),
		TotalDisplay: cart.Total().Format(),
	}
}

// resolveOwner determines which cart a request addresses.
func resolveOwner(request *http.Request) (string, error) {
	if claims := requestutil.Claims(request); claims != nil && claims.UserID != "" {
		return claims.UserID, nil
	}

	if cartID := request.Header.Get(constants.HeaderCartID); cartID != "" {
		return cartID, nil
	}

	return "", apperr.ValidationError("Missing cart identity: authenticate or supply " + constants.HeaderCartID)
}

/*
Get returns the current cart.

GET /api/v1/cart

Description: Loads the owner's snapshot and returns it with derived totals.
A missing or corrupt snapshot presents as an empty cart.

Response:
  - 200: cartView: Lines, item count, total
  - 400: ErrValidation: No cart identity on the request
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := resolveOwner(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.cartService.Get(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, newCartView(current))
}

/*
AddItem merges a catalog item into the cart.

POST /api/v1/cart/items

Description: Resolves the item from the catalog, merges it into the cart
(incrementing quantity when already present), and persists the snapshot.

Request:
  - Body: addItemRequest (ItemID, Quantity)

Response:
  - 200: cartView: Updated cart
  - 400: ErrInvalidJSON: Bad input
  - 404: ErrNotFound: Unknown catalog item
*/
func (handler *Handler) addItem(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := resolveOwner(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input addItemRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	current, err := handler.cartService.AddItem(request.Context(), ownerID, input.ItemID, input.Quantity)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, newCartView(current))
}

/*
UpdateQuantity sets a line's quantity to an absolute value.

PATCH /api/v1/cart/items/{itemID}

Description: A quantity of zero or below removes the line. Updating an item
not in the cart is a no-op and still returns the current cart.

Request:
  - Body: updateQuantityRequest (Quantity)

Response:
  - 200: cartView: Updated cart
  - 400: ErrInvalidJSON: Bad input
*/
func (handler *Handler) updateQuantity(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := resolveOwner(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	itemID := requestutil.Param(request, "itemID")

	var input updateQuantityRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	current, err := handler.cartService.UpdateQuantity(request.Context(), ownerID, itemID, input.Quantity)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, newCartView(current))
}

/*
RemoveItem deletes a line from the cart.

DELETE /api/v1/cart/items/{itemID}

Description: Idempotent. Removing an item not in the cart succeeds and
returns the unchanged cart.

Response:
  - 200: cartView: Updated cart
*/
func (handler *Handler) removeItem(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := resolveOwner(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	itemID := requestutil.Param(request, "itemID")

	current, err := handler.cartService.RemoveItem(request.Context(), ownerID, itemID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, newCartView(current))
}

/*
Clear empties the cart.

DELETE /api/v1/cart

Response:
  - 200: cartView: Empty cart
*/
func (handler *Handler) clear(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := resolveOwner(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.cartService.Clear(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, newCartView(current))
}
