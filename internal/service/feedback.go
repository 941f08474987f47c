package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrypal/backend/internal/models"
)

// FeedbackService records user feedback on suggested recipes.
type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

// CreateFeedback saves one feedback entry.
func (s *FeedbackService) CreateFeedback(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error) {
	if err := s.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

// ListByRecipe returns a recipe's feedback, newest first.
func (s *FeedbackService) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := s.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&feedback).Error
	if err != nil {
		return nil, err
	}
	return feedback, nil
}
