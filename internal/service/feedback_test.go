package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrypal/backend/internal/database"
	"github.com/pantrypal/backend/internal/models"
	"github.com/pantrypal/backend/internal/testhelpers"
)

func TestFeedbackListNewestFirst(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	require.NoError(t, database.Seed(db))

	var recipe models.Recipe
	require.NoError(t, db.First(&recipe).Error)

	svc := NewFeedbackService(db)
	ctx := context.Background()

	first, err := svc.CreateFeedback(ctx, &models.Feedback{
		RecipeID:  recipe.ID,
		SessionID: "session-a",
		Rating:    3,
		Comment:   "Decent",
	})
	require.NoError(t, err)

	helpful := true
	second, err := svc.CreateFeedback(ctx, &models.Feedback{
		RecipeID:  recipe.ID,
		SessionID: "session-b",
		Rating:    5,
		Comment:   "Great match",
		IsHelpful: &helpful,
	})
	require.NoError(t, err)

	// Force distinct creation times for the ordering assertion.
	require.NoError(t, db.Model(first).Update("created_at", first.CreatedAt.Add(-time.Minute)).Error)

	listed, err := svc.ListByRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
	require.NotNil(t, listed[0].IsHelpful)
	assert.True(t, *listed[0].IsHelpful)
}
