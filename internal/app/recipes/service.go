package recipes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/preston-bernstein/nba-recipes-service/internal/domain/recipes"
	"github.com/preston-bernstein/nba-recipes-service/internal/logging"
)

// Store defines the contract for persisting and retrieving recipes.
type Store interface {
	CreateAll(ctx context.Context, items []recipes.Recipe) error
	List(ctx context.Context) ([]recipes.Recipe, error)
	ByID(ctx context.Context, id int) (recipes.Recipe, error)
	Delete(ctx context.Context, id int) error
}

// FieldError names one missing or invalid field of one submitted recipe.
type FieldError struct {
	Index int    `json:"index"`
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError is returned by Add when any submitted recipe is incomplete. Nothing is written.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("[%d].%s %s", f.Index, f.Field, f.Error))
	}
	return "invalid recipe payload: " + strings.Join(parts, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Service coordinates recipe operations using a Store.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Add validates every input and inserts them all in one transaction. Duplicates are not collapsed.
func (s *Service) Add(ctx context.Context, inputs []recipes.Input) ([]recipes.Recipe, error) {
	if err := Validate(inputs); err != nil {
		return nil, err
	}

	rows := make([]recipes.Recipe, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, in.Recipe())
	}
	if err := s.store.CreateAll(ctx, rows); err != nil {
		return nil, fmt.Errorf("add recipes: %w", err)
	}
	logging.Info(logging.FromContext(ctx, s.logger), "recipes added", logging.FieldInserted, len(rows))
	return rows, nil
}

// List returns every recipe ordered by id.
func (s *Service) List(ctx context.Context) ([]recipes.Recipe, error) {
	return s.store.List(ctx)
}

// Get returns a single recipe.
func (s *Service) Get(ctx context.Context, id int) (recipes.Recipe, error) {
	return s.store.ByID(ctx, id)
}

// Remove deletes a single recipe.
func (s *Service) Remove(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	logging.Info(logging.FromContext(ctx, s.logger), "recipe removed", "id", id)
	return nil
}

// Validate checks that every input carries name, ingredients and instructions.
func Validate(inputs []recipes.Input) error {
	var fields []FieldError
	for i, in := range inputs {
		err := validate.Struct(in)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields = append(fields, FieldError{Index: i, Field: fe.Field(), Error: fe.Tag()})
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
