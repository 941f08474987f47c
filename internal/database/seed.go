package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/pantrypal/backend/internal/models"
)

type seedIngredient struct {
	name     string
	category string
}

type seedRecipeIngredient struct {
	name     string
	amount   string
	unit     string
	required bool
}

type seedRecipe struct {
	recipe      models.Recipe
	ingredients []seedRecipeIngredient
}

var seedIngredients = []seedIngredient{
	{"tomatoes", "vegetables"},
	{"basil", "herbs"},
	{"mozzarella", "dairy"},
	{"olive oil", "oils"},
	{"garlic", "vegetables"},
	{"onion", "vegetables"},
	{"pasta", "grains"},
	{"chicken breast", "meat"},
	{"bell peppers", "vegetables"},
	{"mushrooms", "vegetables"},
	{"cheese", "dairy"},
	{"eggs", "dairy"},
	{"flour", "grains"},
	{"butter", "dairy"},
	{"spinach", "vegetables"},
}

var seedRecipes = []seedRecipe{
	{
		recipe: models.Recipe{
			Title:       "Classic Margherita Pizza",
			Description: "A simple Neapolitan pizza with fresh tomatoes, mozzarella and basil.",
			Instructions: models.JSONBStringArray{
				"Preheat the oven to 250C with a pizza stone inside.",
				"Stretch the dough into a thin round.",
				"Spread crushed tomatoes over the base.",
				"Top with torn mozzarella and a drizzle of olive oil.",
				"Bake for 8-10 minutes until the crust is blistered.",
				"Finish with fresh basil leaves.",
			},
			CookTime:     25,
			Servings:     4,
			Difficulty:   models.DifficultyEasy,
			Rating:       4.5,
			IsVegetarian: true,
		},
		ingredients: []seedRecipeIngredient{
			{"flour", "300", "g", true},
			{"tomatoes", "400", "g", true},
			{"mozzarella", "200", "g", true},
			{"basil", "1", "handful", true},
			{"olive oil", "2", "tbsp", false},
		},
	},
	{
		recipe: models.Recipe{
			Title:       "Fresh Caprese Salad",
			Description: "Sliced tomatoes and mozzarella layered with basil.",
			Instructions: models.JSONBStringArray{
				"Slice the tomatoes and mozzarella into even rounds.",
				"Arrange them alternating on a plate.",
				"Scatter basil leaves on top.",
				"Season and drizzle with olive oil before serving.",
			},
			CookTime:     10,
			Servings:     2,
			Difficulty:   models.DifficultyEasy,
			Rating:       4.2,
			IsVegetarian: true,
			IsGlutenFree: true,
		},
		ingredients: []seedRecipeIngredient{
			{"tomatoes", "3", "whole", true},
			{"mozzarella", "200", "g", true},
			{"basil", "1", "handful", true},
			{"olive oil", "2", "tbsp", false},
		},
	},
	{
		recipe: models.Recipe{
			Title:       "Garlic Mushroom Pasta",
			Description: "Pasta tossed with garlicky butter-fried mushrooms.",
			Instructions: models.JSONBStringArray{
				"Cook the pasta in salted water until al dente.",
				"Fry the mushrooms in butter until golden.",
				"Add minced garlic and cook for one more minute.",
				"Toss the pasta with the mushrooms and a splash of cooking water.",
			},
			CookTime:     20,
			Servings:     3,
			Difficulty:   models.DifficultyEasy,
			Rating:       4.0,
			IsVegetarian: true,
		},
		ingredients: []seedRecipeIngredient{
			{"pasta", "300", "g", true},
			{"mushrooms", "250", "g", true},
			{"garlic", "3", "cloves", true},
			{"butter", "2", "tbsp", true},
			{"olive oil", "1", "tbsp", false},
		},
	},
}

// Seed loads the starter ingredient catalog and recipes. It is a no-op
// when the catalog already has data.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Ingredient{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect ingredient catalog: %w", err)
	}
	if count > 0 {
		log.Printf("Catalog already seeded (%d ingredients), skipping", count)
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		byName := make(map[string]*models.Ingredient, len(seedIngredients))
		for _, si := range seedIngredients {
			ing := &models.Ingredient{Name: si.name, Category: si.category}
			if err := tx.Create(ing).Error; err != nil {
				return fmt.Errorf("failed to seed ingredient %q: %w", si.name, err)
			}
			byName[si.name] = ing
		}

		for _, sr := range seedRecipes {
			recipe := sr.recipe
			if err := tx.Omit("Ingredients").Create(&recipe).Error; err != nil {
				return fmt.Errorf("failed to seed recipe %q: %w", recipe.Title, err)
			}
			for pos, ri := range sr.ingredients {
				ing, ok := byName[ri.name]
				if !ok {
					return fmt.Errorf("recipe %q references unknown ingredient %q", recipe.Title, ri.name)
				}
				row := models.RecipeIngredient{
					RecipeID:     recipe.ID,
					IngredientID: ing.ID,
					Amount:       ri.amount,
					Unit:         ri.unit,
					IsRequired:   ri.required,
					Position:     pos,
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("failed to seed ingredients for %q: %w", recipe.Title, err)
				}
			}
		}

		log.Printf("Seeded %d ingredients and %d recipes", len(seedIngredients), len(seedRecipes))
		return nil
	})
}
