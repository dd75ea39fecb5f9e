package identity

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/studynest/studyspaces-backend/internal/domain/providers"
	apperrors "github.com/studynest/studyspaces-backend/pkg/errors"
)

// tokenClaims is the shape of identity-provider access tokens. The metadata
// block carries whatever the user supplied at sign-up, so every field is
// optional.
type tokenClaims struct {
	Email        string `json:"email"`
	UserMetadata struct {
		FullName  string `json:"full_name"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// JWTAdapter verifies identity-provider bearer tokens signed with a shared
// HS256 secret.
type JWTAdapter struct {
	secret []byte
}

// NewJWTAdapter creates a new JWT identity adapter.
func NewJWTAdapter(secret string) providers.IdentityProvider {
	return &JWTAdapter{secret: []byte(secret)}
}

// Verify parses and validates the credential and yields the caller identity.
func (a *JWTAdapter) Verify(ctx context.Context, credential string) (*providers.Identity, error) {
	token, err := jwt.ParseWithClaims(credential, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid credential")
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, apperrors.NewUnauthorizedError("invalid credential")
	}

	return &providers.Identity{
		ID:        claims.Subject,
		Email:     claims.Email,
		FullName:  claims.UserMetadata.FullName,
		ShortName: claims.UserMetadata.Name,
		AvatarURL: claims.UserMetadata.AvatarURL,
	}, nil
}
