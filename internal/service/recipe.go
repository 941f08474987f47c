package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrypal/backend/internal/matching"
	"github.com/pantrypal/backend/internal/models"
)

// RecipeService owns catalog access and drives the matching engine
// over explicit catalog snapshots. The engine itself never touches the
// database.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// preloadIngredients loads recipe ingredient associations in declared
// order, which the match calculator relies on.
func (s *RecipeService) preloadIngredients(q *gorm.DB) *gorm.DB {
	return q.Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
		return db.Order("recipe_ingredients.position ASC")
	}).Preload("Ingredients.Ingredient")
}

// GetRecipe retrieves a recipe with its ordered ingredient list.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.preloadIngredients(s.db.WithContext(ctx)).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes returns the full catalog with ingredient associations.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.preloadIngredients(s.db.WithContext(ctx)).Order("created_at ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// CreateRecipe inserts a recipe and its ingredient associations.
// Ingredient names are resolved against the catalog, creating missing
// ingredients under the given category default.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *models.Recipe, ingredients []models.RecipeIngredient) (*models.Recipe, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients").Create(recipe).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].RecipeID = recipe.ID
			ingredients[i].Position = i
			if err := tx.Omit("Ingredient").Create(&ingredients[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, recipe.ID)
}

// ListIngredients returns the ingredient catalog.
func (s *RecipeService) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// GetIngredientByName looks up a catalog ingredient by canonical name.
func (s *RecipeService) GetIngredientByName(ctx context.Context, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.WithContext(ctx).Where("name = ?", matching.CanonicalName(name)).First(&ingredient).Error
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// CreateIngredient adds an ingredient to the catalog.
func (s *RecipeService) CreateIngredient(ctx context.Context, ingredient *models.Ingredient) (*models.Ingredient, error) {
	if err := s.db.WithContext(ctx).Create(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

// SearchByIngredientIDs is the catalog search path: hard dietary and
// cook-time filtering, ID-based matching, and the 25% threshold ranked
// by match percentage.
func (s *RecipeService) SearchByIngredientIDs(ctx context.Context, ids []uuid.UUID, constraints matching.Constraints) ([]matching.Result, error) {
	if len(ids) == 0 {
		return []matching.Result{}, nil
	}

	catalog, err := s.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe catalog: %w", err)
	}

	filtered := matching.Filter(catalog, constraints)
	results := matching.MatchAll(filtered, matching.NewIDSet(ids))
	return matching.RankByMatch(results), nil
}

// SearchByIngredientNames is the free-text search path: no hard
// exclusions, loose name matching, composite scoring with soft
// constraints, non-zero matches ranked by score.
func (s *RecipeService) SearchByIngredientNames(ctx context.Context, names []string, prefs matching.DietaryPreferences, maxCookTime *int) ([]matching.Result, error) {
	have := matching.NewNameSet(names)
	if have.Len() == 0 {
		return []matching.Result{}, nil
	}

	catalog, err := s.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe catalog: %w", err)
	}

	results := matching.ScoreAll(matching.MatchAll(catalog, have), prefs, maxCookTime)
	return matching.RankByScore(results), nil
}
