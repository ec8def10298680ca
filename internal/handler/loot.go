package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"itemforge/internal/domain"
	"itemforge/internal/logger"
	"itemforge/internal/rng"
	"itemforge/internal/session"
)

// LootRollResponse lists the drops of one roll, aggregated by item id.
type LootRollResponse struct {
	TableID   string         `json:"table_id"`
	Drops     map[string]int `json:"drops"`
	Total     int            `json:"total"`
	Deposited int            `json:"deposited,omitempty"`
}

// LootTablesResponse lists known loot table ids.
type LootTablesResponse struct {
	Tables []string `json:"tables"`
}

// LootRollRequest optionally deposits the drops into a player's inventory.
type LootRollRequest struct {
	PlayerID string `json:"player_id,omitempty" validate:"omitempty,max=100,excludesall=\x00\n\r\t"`
}

// HandleListLootTables lists the loaded loot table ids.
func HandleListLootTables(db Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !db.Loaded() {
			respondServiceError(w, domain.ErrDatabaseNotLoaded)
			return
		}
		respondJSON(w, http.StatusOK, LootTablesResponse{Tables: db.LootTableIDs()})
	}
}

// HandleRollLoot rolls a loot table. When the request names a player, the
// drops are deposited into that player's inventory; whatever does not fit is
// discarded and the deposited count reflects it.
func HandleRollLoot(db Database, sessions Sessions, src rng.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		tableID := chi.URLParam(r, "table")
		if !db.Loaded() {
			respondServiceError(w, domain.ErrDatabaseNotLoaded)
			return
		}
		if db.LootTable(tableID) == nil {
			respondServiceError(w, domain.ErrLootTableNotFound)
			return
		}

		var req LootRollRequest
		if r.ContentLength > 0 {
			if err := DecodeAndValidateRequest(r, w, &req, "Roll loot"); err != nil {
				return
			}
		}

		drops := db.GenerateLoot(r.Context(), tableID, src)

		resp := LootRollResponse{
			TableID: tableID,
			Drops:   make(map[string]int, len(drops)),
			Total:   len(drops),
		}
		for _, item := range drops {
			resp.Drops[item.ID]++
		}

		if req.PlayerID != "" {
			err := sessions.WithSession(r.Context(), req.PlayerID, func(s *session.Session) error {
				for _, item := range drops {
					resp.Deposited += s.Inventory.Add(item, 1)
				}
				return nil
			})
			if err != nil {
				respondServiceError(w, err)
				return
			}
			if resp.Deposited < resp.Total {
				log.Warn("Loot drops discarded, inventory full",
					"player_id", req.PlayerID, "table_id", tableID,
					"discarded", resp.Total-resp.Deposited)
			}
		}

		respondJSON(w, http.StatusOK, resp)
	}
}
