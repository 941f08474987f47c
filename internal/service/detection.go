package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pantrypal/backend/internal/types"
)

// ErrSessionNotFound is returned when a session has no detected
// ingredients (expired or never created).
var ErrSessionNotFound = errors.New("no detected ingredients for session")

// sessionTTL bounds how long a detection set outlives its request.
const sessionTTL = 24 * time.Hour

// DetectionService runs ingredient detection on uploaded photos and
// keeps the per-session results in Redis for later recipe searches.
type DetectionService struct {
	redis   *redis.Client
	vision  VisionClient
	recipes *RecipeService
}

func NewDetectionService(redisClient *redis.Client, vision VisionClient, recipes *RecipeService) *DetectionService {
	return &DetectionService{
		redis:   redisClient,
		vision:  vision,
		recipes: recipes,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("detect:session:%s", sessionID)
}

// DetectFromImage detects ingredients in the image, resolves them
// against the catalog, and stores the resulting set under the session.
// Results are ordered by descending confidence. imageURL is optional
// and recorded for the client when photo storage is enabled.
func (s *DetectionService) DetectFromImage(ctx context.Context, sessionID, imageURL string, imageData []byte) (*types.DetectionSet, error) {
	detected, err := s.vision.DetectIngredients(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("ingredient detection failed: %w", err)
	}

	// Attach catalog IDs where an exact canonical name exists; loose
	// matching stays in the search path.
	for i := range detected {
		ingredient, err := s.recipes.GetIngredientByName(ctx, detected[i].Name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		id := ingredient.ID
		detected[i].IngredientID = &id
	}

	sort.SliceStable(detected, func(i, j int) bool {
		return detected[i].Confidence > detected[j].Confidence
	})

	set := &types.DetectionSet{
		SessionID:   sessionID,
		Ingredients: detected,
		ImageURL:    imageURL,
		CreatedAt:   time.Now(),
	}
	if err := s.SaveSession(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

// SaveSession stores a detection set under its session key.
func (s *DetectionService) SaveSession(ctx context.Context, set *types.DetectionSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to marshal detection set: %w", err)
	}
	if err := s.redis.Set(ctx, sessionKey(set.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save detection set to Redis: %w", err)
	}
	return nil
}

// GetSession retrieves a session's detection set.
func (s *DetectionService) GetSession(ctx context.Context, sessionID string) (*types.DetectionSet, error) {
	data, err := s.redis.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get detection set from Redis: %w", err)
	}

	var set types.DetectionSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to unmarshal detection set: %w", err)
	}
	return &set, nil
}
