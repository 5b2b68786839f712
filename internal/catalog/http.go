// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/worldofalafia/marketplace-api/internal/platform/request"
	"github.com/worldofalafia/marketplace-api/internal/platform/respond"
)

// Handler implements the catalog HTTP endpoints. All routes are public.
type Handler struct {
	catalogService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{catalogService: service}
}

// Routes returns a [chi.Router] configured with catalog routes.
//
// # Endpoints
//   - GET /items           : All listings, ?category= to filter.
//   - GET /items/{itemID}  : One listing.
//   - GET /categories      : Navigation groups with counts.
//   - GET /offers          : Discounted listings.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/items", handler.listItems)
	router.Get("/items/{itemID}", handler.getItem)
	router.Get("/categories", handler.listCategories)
	router.Get("/offers", handler.listOffers)

	return router
}

/*
ListItems returns catalog listings.

GET /api/v1/catalog/items?category=electronics

Response:
  - 200: []Item: Matching listings, possibly empty
*/
func (handler *Handler) listItems(writer http.ResponseWriter, request *http.Request) {
	category := request.URL.Query().Get(FieldCategory)

	items, err := handler.catalogService.ListItems(request.Context(), category)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, items)
}

/*
GetItem returns one listing.

GET /api/v1/catalog/items/{itemID}

Response:
  - 200: Item: Hydrated listing
  - 404: ErrNotFound: Unknown item
*/
func (handler *Handler) getItem(writer http.ResponseWriter, request *http.Request) {
	itemID := requestutil.Param(request, "itemID")

	item, err := handler.catalogService.GetItem(request.Context(), itemID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, item)
}

/*
ListCategories returns the navigation groups.

GET /api/v1/catalog/categories

Response:
  - 200: []Category: Categories with item counts
*/
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.catalogService.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, categories)
}

/*
ListOffers returns the discounted listings.

GET /api/v1/catalog/offers

Response:
  - 200: []Item: Discounted listings, largest markdown first
*/
func (handler *Handler) listOffers(writer http.ResponseWriter, request *http.Request) {
	offers, err := handler.catalogService.ListOffers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, offers)
}
