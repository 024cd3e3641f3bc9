package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	apprecipes "github.com/preston-bernstein/nba-recipes-service/internal/app/recipes"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/recipes"
	"github.com/preston-bernstein/nba-recipes-service/internal/logging"
	"github.com/preston-bernstein/nba-recipes-service/internal/store"
)

const maxRecipeBody = 1 << 20

// RecipeService is the part of the recipe service the handlers use.
type RecipeService interface {
	Add(ctx context.Context, inputs []recipes.Input) ([]recipes.Recipe, error)
	List(ctx context.Context) ([]recipes.Recipe, error)
	Get(ctx context.Context, id int) (recipes.Recipe, error)
	Remove(ctx context.Context, id int) error
}

// RecipesHandler serves the recipe CRUD routes.
type RecipesHandler struct {
	svc    RecipeService
	logger *slog.Logger
}

// NewRecipesHandler constructs a RecipesHandler.
func NewRecipesHandler(svc RecipeService, logger *slog.Logger) *RecipesHandler {
	return &RecipesHandler{svc: svc, logger: logger}
}

// Status reports the service is up.
func (h *RecipesHandler) Status(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "Recipes service is up and running"}, h.logger)
}

// AddRecipes stores every recipe in a JSON array body, or none of them.
func (h *RecipesHandler) AddRecipes(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodPost) {
		return
	}
	inputs, err := decodeRecipes(io.LimitReader(r.Body, maxRecipeBody))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid recipe payload", h.logger)
		return
	}

	if _, err := h.svc.Add(r.Context(), inputs); err != nil {
		var verr *apprecipes.ValidationError
		if errors.As(err, &verr) {
			writeErrorBody(w, r, http.StatusBadRequest, map[string]any{
				"error":  "invalid recipe payload",
				"fields": verr.Fields,
			}, h.logger)
			return
		}
		logging.Error(loggerFromContext(r, h.logger), "add recipes failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal error", h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Recipes added successfully"}, h.logger)
}

// GetRecipes returns every stored recipe.
func (h *RecipesHandler) GetRecipes(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	all, err := h.svc.List(r.Context())
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "list recipes failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal error", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, all, h.logger)
}

// GetRecipe returns one recipe by id.
func (h *RecipesHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, http.StatusNotFound, "Recipe not found", h.logger)
		return
	}
	recipe, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipe, h.logger)
}

// RemoveRecipe deletes one recipe by id.
func (h *RecipesHandler) RemoveRecipe(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodDelete) {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, http.StatusNotFound, "Recipe not found", h.logger)
		return
	}
	if err := h.svc.Remove(r.Context(), id); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Recipe removed"}, h.logger)
}

var errRecipePayload = errors.New("recipe payload must be a single JSON array")

// decodeRecipes reads exactly one JSON array; trailing data is an error.
func decodeRecipes(body io.Reader) ([]recipes.Input, error) {
	dec := json.NewDecoder(body)
	var inputs []recipes.Input
	if err := dec.Decode(&inputs); err != nil {
		return nil, err
	}
	if inputs == nil {
		return nil, errRecipePayload
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errRecipePayload
	}
	return inputs, nil
}

func (h *RecipesHandler) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "Recipe not found", h.logger)
		return
	}
	logging.Error(loggerFromContext(r, h.logger), "recipe query failed", err)
	writeError(w, r, http.StatusInternalServerError, "internal error", h.logger)
}
