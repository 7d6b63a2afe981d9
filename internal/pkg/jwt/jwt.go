package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// StaffClaims identifies the terminal operator. Tokens are issued by the
// record store's auth surface; this service only validates them. The branch
// claim scopes every engine call, there is no ambient branch state.
type StaffClaims struct {
	StaffID  string `json:"staff_id"`
	Role     string `json:"role"`
	BranchID string `json:"branch_id"`
	jwt.RegisteredClaims
}

type Validator struct {
	secret []byte
}

func NewValidator(secret string) *Validator {
	return &Validator{secret: []byte(secret)}
}

func (v *Validator) Validate(tokenString string) (*StaffClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StaffClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*StaffClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.StaffID == "" || claims.BranchID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Sign is used by tests and local tooling to mint tokens compatible with
// Validate.
func Sign(secret, staffID, role, branchID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := StaffClaims{
		StaffID:  staffID,
		Role:     role,
		BranchID: branchID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
