package api

import (
	"github.com/google/uuid"

	"github.com/pantrypal/backend/internal/matching"
	"github.com/pantrypal/backend/internal/types"
)

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,min=2"`
	LastName  string `json:"last_name" binding:"required,min=2"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the payload for logging in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries a signed JWT back to the client.
type TokenResponse struct {
	Token string `json:"token"`
}

// DetectResponse is returned from the photo detection endpoint.
type DetectResponse struct {
	SessionID   string                     `json:"session_id"`
	Ingredients []types.DetectedIngredient `json:"ingredients"`
	ImageURL    string                     `json:"image_url,omitempty"`
}

// SearchRequest drives recipe search. When SessionID is set the
// detected ingredients for that session are used; otherwise the inline
// ingredient names are.
type SearchRequest struct {
	SessionID          string                      `json:"session_id"`
	Ingredients        []string                    `json:"ingredients"`
	DietaryPreferences matching.DietaryPreferences `json:"dietary_preferences"`
	MaxCookTime        *int                        `json:"max_cook_time"`
}

// SearchResponse wraps ranked match results.
type SearchResponse struct {
	Results []matching.Result `json:"results"`
	Total   int               `json:"total"`
}

// RecipeIngredientRequest is one ingredient line in a recipe payload.
type RecipeIngredientRequest struct {
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category"`
	Amount     string `json:"amount" binding:"required"`
	Unit       string `json:"unit"`
	IsRequired *bool  `json:"is_required"`
}

// CreateRecipeRequest is the payload for adding a catalog recipe.
type CreateRecipeRequest struct {
	Title        string                    `json:"title" binding:"required"`
	Description  string                    `json:"description"`
	Instructions []string                  `json:"instructions" binding:"required,min=1"`
	CookTime     int                       `json:"cook_time" binding:"required,gt=0"`
	Servings     int                       `json:"servings" binding:"required,gt=0"`
	Difficulty   string                    `json:"difficulty" binding:"required,oneof=Easy Medium Hard"`
	Rating       float64                   `json:"rating" binding:"gte=0,lte=5"`
	ImageURL     string                    `json:"image_url"`
	IsVegetarian bool                      `json:"is_vegetarian"`
	IsVegan      bool                      `json:"is_vegan"`
	IsGlutenFree bool                      `json:"is_gluten_free"`
	IsKeto       bool                      `json:"is_keto"`
	Ingredients  []RecipeIngredientRequest `json:"ingredients" binding:"required,min=1"`
}

// CreateIngredientRequest is the payload for adding a catalog ingredient.
type CreateIngredientRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Category string `json:"category" binding:"required"`
}

// FeedbackRequest is the payload for rating a suggested recipe.
type FeedbackRequest struct {
	RecipeID  uuid.UUID `json:"recipe_id" binding:"required"`
	SessionID string    `json:"session_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment"`
	IsHelpful *bool     `json:"is_helpful"`
}
