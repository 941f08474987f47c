package types

import (
	"time"

	"github.com/google/uuid"
)

// DetectedIngredient is one ingredient recognized in an uploaded photo.
// IngredientID is set when the detected name resolves to a catalog
// ingredient; free-text detections that match nothing keep it nil.
type DetectedIngredient struct {
	Name         string     `json:"name"`
	IngredientID *uuid.UUID `json:"ingredient_id,omitempty"`
	Confidence   float64    `json:"confidence"`
}

// DetectionSet is the ephemeral set of ingredients detected for one
// session. It lives in Redis for the session's lifetime and is never
// written to the catalog database.
type DetectionSet struct {
	SessionID   string               `json:"session_id"`
	Ingredients []DetectedIngredient `json:"ingredients"`
	ImageURL    string               `json:"image_url,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// Names returns the detected ingredient names in detection order.
func (s *DetectionSet) Names() []string {
	names := make([]string, len(s.Ingredients))
	for i, ing := range s.Ingredients {
		names[i] = ing.Name
	}
	return names
}

// IngredientIDs returns the resolved catalog IDs and whether every
// detection resolved to one.
func (s *DetectionSet) IngredientIDs() ([]uuid.UUID, bool) {
	ids := make([]uuid.UUID, 0, len(s.Ingredients))
	for _, ing := range s.Ingredients {
		if ing.IngredientID == nil {
			return nil, false
		}
		ids = append(ids, *ing.IngredientID)
	}
	return ids, len(ids) > 0
}
