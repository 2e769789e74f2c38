package handler

import (
	"net/http"

	"github.com/orvane/Gemstore_Go/internal/catalog"
	"github.com/orvane/Gemstore_Go/internal/domain"
)

// CatalogResponse wraps a catalog listing.
type CatalogResponse struct {
	Items []domain.CatalogItem `json:"items"`
}

// HandleListCatalog returns the purchasable catalog.
//
//	@Summary		List catalog items
//	@Description	Lists catalog items, optionally filtered by game scope. Inactive items are hidden unless include_inactive=true.
//	@Tags			catalog
//	@Produce		json
//	@Param			scope				query		string	false	"Game scope filter (empty for platform-wide)"
//	@Param			include_inactive	query		bool	false	"Include delisted items"
//	@Success		200					{object}	CatalogResponse
//	@Router			/catalog [get]
func HandleListCatalog(catalogService catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scope := r.URL.Query().Get("scope")
		activeOnly := GetOptionalQueryParam(r, "include_inactive", "false") != "true"

		items, err := catalogService.ListItems(r.Context(), activeOnly, scope)
		if err != nil {
			respondServiceError(w, r, "List catalog", err)
			return
		}

		respondJSON(w, http.StatusOK, CatalogResponse{Items: items})
	}
}

// HandleGetCatalogItem returns one catalog item by ID.
//
//	@Summary		Get catalog item
//	@Tags			catalog
//	@Produce		json
//	@Param			item_id	query		string	true	"Item ID"
//	@Success		200		{object}	domain.CatalogItem
//	@Failure		404		{object}	ErrorResponse
//	@Router			/catalog/item [get]
func HandleGetCatalogItem(catalogService catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := GetQueryParam(r, w, "item_id")
		if !ok {
			return
		}

		item, err := catalogService.GetItem(r.Context(), itemID)
		if err != nil {
			respondServiceError(w, r, "Get catalog item", err)
			return
		}

		respondJSON(w, http.StatusOK, item)
	}
}
