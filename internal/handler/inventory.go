package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"itemforge/internal/domain"
	"itemforge/internal/inventory"
	"itemforge/internal/logger"
	"itemforge/internal/session"
)

// InventoryResponse is the full slot layout plus usage stats.
type InventoryResponse struct {
	PlayerID string           `json:"player_id"`
	Slots    []inventory.Slot `json:"slots"`
	Stats    inventory.Stats  `json:"stats"`
}

type AddItemRequest struct {
	ItemID   string `json:"item_id" validate:"required,max=100,slug"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

// AddItemResponse reports how much of the request actually fit.
type AddItemResponse struct {
	Added int `json:"added"`
}

type RemoveItemRequest struct {
	ItemID   string `json:"item_id" validate:"required,max=100,slug"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

type RemoveItemResponse struct {
	Removed int `json:"removed"`
}

type MoveItemRequest struct {
	From int `json:"from" validate:"gte=0"`
	To   int `json:"to" validate:"gte=0"`
}

// HandleGetInventory returns a player's slot layout and stats.
func HandleGetInventory(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		var resp InventoryResponse
		err := sessions.WithSession(r.Context(), playerID, func(s *session.Session) error {
			resp = InventoryResponse{
				PlayerID: playerID,
				Slots:    s.Inventory.Slots(),
				Stats:    s.Inventory.Stats(),
			}
			return nil
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleAddItem adds items to a player's inventory. Partial placement is a
// success; the response carries the placed amount.
func HandleAddItem(db Database, sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		playerID := chi.URLParam(r, "playerID")

		var req AddItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
			return
		}

		item, ok := db.Get(req.ItemID)
		if !ok {
			respondServiceError(w, domain.ErrItemNotFound)
			return
		}

		var added int
		err := sessions.WithSession(r.Context(), playerID, func(s *session.Session) error {
			added = s.Inventory.Add(item, req.Quantity)
			return nil
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		log.Info("Item added", "player_id", playerID, "item_id", req.ItemID,
			"requested", req.Quantity, "added", added)
		respondJSON(w, http.StatusOK, AddItemResponse{Added: added})
	}
}

// HandleRemoveItem removes items from a player's inventory.
func HandleRemoveItem(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		playerID := chi.URLParam(r, "playerID")

		var req RemoveItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Remove item"); err != nil {
			return
		}

		var removed int
		err := sessions.WithSession(r.Context(), playerID, func(s *session.Session) error {
			removed = s.Inventory.Remove(req.ItemID, req.Quantity)
			return nil
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		log.Info("Item removed", "player_id", playerID, "item_id", req.ItemID, "removed", removed)
		respondJSON(w, http.StatusOK, RemoveItemResponse{Removed: removed})
	}
}

// HandleMoveItem relocates, merges or swaps two slots.
func HandleMoveItem(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		var req MoveItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Move item"); err != nil {
			return
		}

		err := sessions.WithSession(r.Context(), playerID, func(s *session.Session) error {
			return s.Inventory.Move(req.From, req.To)
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item moved"})
	}
}

// HandleSortInventory orders a player's inventory by item type then name.
func HandleSortInventory(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		err := sessions.WithSession(r.Context(), playerID, func(s *session.Session) error {
			s.Inventory.Sort()
			return nil
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Inventory sorted"})
	}
}

// HandleSaveInventory persists the player's inventory snapshot.
func HandleSaveInventory(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		if err := sessions.Save(r.Context(), playerID); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Inventory saved"})
	}
}

// HandleLoadInventory replaces the player's inventory with the stored
// snapshot.
func HandleLoadInventory(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		if err := sessions.Load(r.Context(), playerID); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Inventory loaded"})
	}
}
