package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"itemforge/internal/domain"
	"itemforge/internal/session"
)

// RecipeListResponse wraps a recipe listing.
type RecipeListResponse struct {
	Recipes []*domain.Recipe `json:"recipes"`
	Count   int              `json:"count"`
}

// CanCraftResponse reports whether a player's inventory covers a recipe.
type CanCraftResponse struct {
	RecipeID string `json:"recipe_id"`
	CanCraft bool   `json:"can_craft"`
}

// HandleListRecipes lists all loaded recipes. With ?result=<item_id> it
// returns the recipe producing that item.
func HandleListRecipes(db Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !db.Loaded() {
			respondServiceError(w, domain.ErrDatabaseNotLoaded)
			return
		}

		if resultID := r.URL.Query().Get("result"); resultID != "" {
			recipe, ok := db.RecipeForResult(resultID)
			if !ok {
				respondServiceError(w, domain.ErrRecipeNotFound)
				return
			}
			respondJSON(w, http.StatusOK, RecipeListResponse{Recipes: []*domain.Recipe{recipe}, Count: 1})
			return
		}

		recipes := db.Recipes()
		respondJSON(w, http.StatusOK, RecipeListResponse{Recipes: recipes, Count: len(recipes)})
	}
}

// HandleGetRecipe returns one recipe by id.
func HandleGetRecipe(db Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !db.Loaded() {
			respondServiceError(w, domain.ErrDatabaseNotLoaded)
			return
		}

		recipe, ok := db.RecipeByID(chi.URLParam(r, "id"))
		if !ok {
			respondServiceError(w, domain.ErrRecipeNotFound)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: recipe})
	}
}

// HandleCanCraft checks a recipe against the player's current inventory
// without mutating anything.
func HandleCanCraft(db Database, sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		recipeID := chi.URLParam(r, "id")

		if _, ok := db.RecipeByID(recipeID); !ok {
			respondServiceError(w, domain.ErrRecipeNotFound)
			return
		}

		var can bool
		err := sessions.WithSession(r.Context(), playerID, func(s *session.Session) error {
			can = db.CanCraft(recipeID, s.Inventory.Counts())
			return nil
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, CanCraftResponse{RecipeID: recipeID, CanCraft: can})
	}
}
