package types

import "github.com/google/uuid"

// TokenClaims holds the validated claims extracted from a JWT.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}
