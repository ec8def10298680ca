package handler

import (
	"net/http"

	"itemforge/internal/domain"
	"itemforge/internal/itemdb"
	"itemforge/internal/logger"
)

// DatabaseInfoResponse summarizes the loaded catalog.
type DatabaseInfoResponse struct {
	Loaded     bool `json:"loaded"`
	Items      int  `json:"items"`
	Recipes    int  `json:"recipes"`
	LootTables int  `json:"loot_tables"`
}

// ValidateResponse lists advisory data issues.
type ValidateResponse struct {
	Issues []itemdb.Issue `json:"issues"`
	Count  int            `json:"count"`
}

// HandleDatabaseInfo reports catalog counts.
func HandleDatabaseInfo(db Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DatabaseInfoResponse{
			Loaded:     db.Loaded(),
			Items:      db.Len(),
			Recipes:    len(db.Recipes()),
			LootTables: len(db.LootTableIDs()),
		})
	}
}

// HandleReloadDatabase re-reads the CSV sources. A failed reload keeps the
// previous catalog live and reports the failure.
func HandleReloadDatabase(db Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if err := db.Reload(r.Context()); err != nil {
			log.Error("Database reload failed", "error", err)
			respondServiceError(w, err)
			return
		}

		log.Info("Database reloaded", "items", db.Len())
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Database reloaded"})
	}
}

// HandleValidateDatabase runs the advisory integrity scan.
func HandleValidateDatabase(db Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !db.Loaded() {
			respondServiceError(w, domain.ErrDatabaseNotLoaded)
			return
		}

		issues := db.Validate()
		respondJSON(w, http.StatusOK, ValidateResponse{Issues: issues, Count: len(issues)})
	}
}
