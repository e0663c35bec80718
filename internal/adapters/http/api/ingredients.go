package api

import (
	"net/http"
)

// IngredientsDependencies draws a random dish's ingredients.
type IngredientsDependencies interface {
	Ingredients() (string, error)
}

// IngredientsHandler handles ingredient requests.
type IngredientsHandler struct {
	deps IngredientsDependencies
}

// NewIngredientsHandler creates a new ingredients handler.
func NewIngredientsHandler(deps IngredientsDependencies) *IngredientsHandler {
	return &IngredientsHandler{deps: deps}
}

// HandleGetIngredients handles GET /ingredients requests.
func (h *IngredientsHandler) HandleGetIngredients(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_ingredients"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	list, err := h.deps.Ingredients()
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, ingredientsResponse{Ingredients: list})
}
