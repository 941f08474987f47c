package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrypal/backend/internal/matching"
	"github.com/pantrypal/backend/internal/middleware"
	"github.com/pantrypal/backend/internal/models"
	"github.com/pantrypal/backend/internal/service"
)

// RecipeHandler serves the recipe catalog and ingredient-based search.
type RecipeHandler struct {
	recipes    *service.RecipeService
	detections *service.DetectionService
	auth       middleware.TokenValidator
}

func NewRecipeHandler(recipes *service.RecipeService, detections *service.DetectionService, auth middleware.TokenValidator) *RecipeHandler {
	return &RecipeHandler{
		recipes:    recipes,
		detections: detections,
		auth:       auth,
	}
}

// RegisterRoutes registers recipe and ingredient routes on the given
// group. Catalog reads and search are open; writes require auth.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/search", h.Search)
	}

	router.GET("/ingredients", h.ListIngredients)

	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(h.auth))
	{
		protected.POST("/recipes", h.CreateRecipe)
		protected.POST("/ingredients", h.CreateIngredient)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list recipes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe ID"})
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get recipe"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// Search ranks catalog recipes against the caller's ingredients. The
// ingredients come either from a detection session or from the inline
// list. Sessions whose detections all resolved to catalog entries use
// the catalog matching path; everything else goes through free-text
// matching.
func (h *RecipeHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := c.Request.Context()

	if req.SessionID != "" {
		set, err := h.detections.GetSession(ctx, req.SessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			log.Printf("Failed to load detection session %s: %v", req.SessionID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
			return
		}

		if ids, ok := set.IngredientIDs(); ok {
			constraints := matching.Constraints{
				DietaryPreferences: req.DietaryPreferences,
				MaxCookTime:        req.MaxCookTime,
			}
			results, err := h.recipes.SearchByIngredientIDs(ctx, ids, constraints)
			if err != nil {
				log.Printf("Catalog search failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
				return
			}
			c.JSON(http.StatusOK, SearchResponse{Results: results, Total: len(results)})
			return
		}

		results, err := h.recipes.SearchByIngredientNames(ctx, set.Names(), req.DietaryPreferences, req.MaxCookTime)
		if err != nil {
			log.Printf("Free-text search failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
			return
		}
		c.JSON(http.StatusOK, SearchResponse{Results: results, Total: len(results)})
		return
	}

	if len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id or ingredients is required"})
		return
	}

	results, err := h.recipes.SearchByIngredientNames(ctx, req.Ingredients, req.DietaryPreferences, req.MaxCookTime)
	if err != nil {
		log.Printf("Free-text search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, SearchResponse{Results: results, Total: len(results)})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	recipe := models.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Instructions: models.JSONBStringArray(req.Instructions),
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Difficulty:   req.Difficulty,
		Rating:       req.Rating,
		ImageURL:     req.ImageURL,
		IsVegetarian: req.IsVegetarian,
		IsVegan:      req.IsVegan,
		IsGlutenFree: req.IsGlutenFree,
		IsKeto:       req.IsKeto,
	}

	rows := make([]models.RecipeIngredient, 0, len(req.Ingredients))
	for _, line := range req.Ingredients {
		ingredient, err := h.recipes.GetIngredientByName(ctx, line.Name)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve ingredients"})
				return
			}
			category := line.Category
			if category == "" {
				category = "other"
			}
			ingredient, err = h.recipes.CreateIngredient(ctx, &models.Ingredient{Name: line.Name, Category: category})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create ingredient"})
				return
			}
		}

		required := true
		if line.IsRequired != nil {
			required = *line.IsRequired
		}
		rows = append(rows, models.RecipeIngredient{
			IngredientID: ingredient.ID,
			Amount:       line.Amount,
			Unit:         line.Unit,
			IsRequired:   required,
		})
	}

	created, err := h.recipes.CreateRecipe(ctx, &recipe, rows)
	if err != nil {
		log.Printf("Failed to create recipe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *RecipeHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.recipes.ListIngredients(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list ingredients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

func (h *RecipeHandler) CreateIngredient(c *gin.Context) {
	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := h.recipes.CreateIngredient(c.Request.Context(), &models.Ingredient{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "ingredient already exists"})
		return
	}

	c.JSON(http.StatusCreated, ingredient)
}
