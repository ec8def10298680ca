package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"itemforge/internal/domain"
	"itemforge/internal/logger"
)

// ItemListResponse wraps an item listing.
type ItemListResponse struct {
	Items []*domain.Item `json:"items"`
	Count int            `json:"count"`
}

// HandleListItems lists catalog items, optionally filtered by type, rarity or
// a search query. Filters combine left to right.
func HandleListItems(db Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !db.Loaded() {
			respondServiceError(w, domain.ErrDatabaseNotLoaded)
			return
		}

		var items []*domain.Item
		switch {
		case r.URL.Query().Get("search") != "":
			items = db.Search(r.URL.Query().Get("search"))
		case r.URL.Query().Get("type") != "":
			items = db.ByType(r.URL.Query().Get("type"))
		case r.URL.Query().Get("rarity") != "":
			items = db.ByRarity(r.URL.Query().Get("rarity"))
		case r.URL.Query().Get("craftable") == "true":
			items = db.CraftableItems()
		default:
			items = db.Items()
		}

		respondJSON(w, http.StatusOK, ItemListResponse{Items: items, Count: len(items)})
	}
}

// HandleGetItem returns one item by id.
func HandleGetItem(db Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !db.Loaded() {
			respondServiceError(w, domain.ErrDatabaseNotLoaded)
			return
		}

		id := chi.URLParam(r, "id")
		item, ok := db.Get(id)
		if !ok {
			respondServiceError(w, domain.ErrItemNotFound)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: item})
	}
}

// HandleGetItemIcon serves the raw icon bytes for an item.
func HandleGetItemIcon(db Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id := chi.URLParam(r, "id")
		handle, err := db.Icon(id)
		if err != nil {
			log.Debug("Icon lookup failed", "item_id", id, "error", err)
			respondError(w, http.StatusNotFound, "Icon not found")
			return
		}

		w.Header().Set("Content-Type", http.DetectContentType(handle.Data))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(handle.Data); err != nil {
			log.Error("Failed to write icon response", "item_id", id, "error", err)
		}
	}
}
