package usecase

import (
	"lounge-engine/internal/pkg/jwt"
)

// StaffIdentity is the request-scoped actor context derived from the bearer
// token. Branch and staff IDs travel as parameters from here on, never as
// ambient state.
type StaffIdentity struct {
	StaffID  string
	Role     string
	BranchID string
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (StaffIdentity, error)
}

type tokenValidatorImpl struct {
	validator *jwt.Validator
}

func NewTokenValidator(validator *jwt.Validator) TokenValidator {
	return &tokenValidatorImpl{validator: validator}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (StaffIdentity, error) {
	claims, err := t.validator.Validate(tokenString)
	if err != nil {
		return StaffIdentity{}, err
	}
	return StaffIdentity{
		StaffID:  claims.StaffID,
		Role:     claims.Role,
		BranchID: claims.BranchID,
	}, nil
}
