package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"itemforge/internal/crafting"
	"itemforge/internal/logger"
	"itemforge/internal/session"
)

type CraftRequest struct {
	RecipeID string `json:"recipe_id" validate:"required,max=100,slug"`
	Queue    bool   `json:"queue,omitempty"`
}

// CraftResponse reports the result of an immediate craft.
type CraftResponse struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// QueueResponse lists a player's pending craft jobs front to back.
type QueueResponse struct {
	Jobs  []crafting.JobInfo `json:"jobs"`
	Count int                `json:"count"`
}

// ClearQueueResponse reports how many jobs were refunded.
type ClearQueueResponse struct {
	Cleared int `json:"cleared"`
}

// HandleCraft crafts a recipe for a player. With "queue": true the craft is
// reserved instead: ingredients are consumed now and the result arrives when
// the timer completes.
func HandleCraft(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		playerID := chi.URLParam(r, "playerID")

		var req CraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Craft"); err != nil {
			return
		}

		if req.Queue {
			err := sessions.WithSession(r.Context(), playerID, func(s *session.Session) error {
				return s.Crafting.Enqueue(r.Context(), s.Inventory, req.RecipeID)
			})
			if err != nil {
				respondServiceError(w, err)
				return
			}
			respondJSON(w, http.StatusAccepted, SuccessResponse{Message: "Craft queued"})
			return
		}

		var resp CraftResponse
		err := sessions.WithSession(r.Context(), playerID, func(s *session.Session) error {
			item, qty, err := s.Crafting.Craft(r.Context(), s.Inventory, req.RecipeID)
			if err != nil {
				return err
			}
			resp = CraftResponse{ItemID: item.ID, Quantity: qty}
			return nil
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		log.Info("Craft succeeded", "player_id", playerID, "recipe_id", req.RecipeID)
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetQueue returns the player's craft queue.
func HandleGetQueue(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		var resp QueueResponse
		err := sessions.WithSession(r.Context(), playerID, func(s *session.Session) error {
			resp.Jobs = s.Crafting.Queue()
			resp.Count = len(resp.Jobs)
			return nil
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleCancelCraft cancels the active job and refunds its ingredients.
func HandleCancelCraft(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		err := sessions.WithSession(r.Context(), playerID, func(s *session.Session) error {
			return s.Crafting.Cancel(r.Context(), s.Inventory)
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Craft cancelled"})
	}
}

// HandleClearQueue cancels every queued job with refunds.
func HandleClearQueue(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		var cleared int
		err := sessions.WithSession(r.Context(), playerID, func(s *session.Session) error {
			cleared = s.Crafting.ClearQueue(r.Context(), s.Inventory)
			return nil
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, ClearQueueResponse{Cleared: cleared})
	}
}
