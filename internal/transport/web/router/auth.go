package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/jbeshir/article-board/internal/command"
	"github.com/jbeshir/article-board/internal/domain"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID int64
	Method domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
// A request no validator applies to keeps the user its session carries.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					http.Error(w, "authentication failed", http.StatusUnauthorized)
					return
				}

				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// TokenValidator checks a raw bearer token and returns its claims.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (any, error)
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens.
// The token subject is mapped to a local user, created on first sight.
func NewAuth0Validator(
	auth0Domain, auth0Audience string,
	provisioner command.Command[string, int64],
) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return NewBearerValidator(jwtValidator, provisioner, domain.AuthMethodAuth0), nil
}

// NewBearerValidator applies to requests with an Authorization header.
func NewBearerValidator(
	tokens TokenValidator,
	provisioner command.Command[string, int64],
	method domain.AuthMethod,
) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		token, err := jwtmiddleware.AuthHeaderTokenExtractor(r)
		if err != nil {
			return nil, fmt.Errorf("reading bearer token: %w", err)
		}
		if token == "" {
			return nil, nil
		}

		validated, err := tokens.ValidateToken(r.Context(), token)
		if err != nil {
			return nil, errors.New("invalid JWT token")
		}

		claims, ok := validated.(*validator.ValidatedClaims)
		if !ok || claims.RegisteredClaims.Subject == "" {
			return nil, errors.New("JWT token has no subject")
		}

		userID, err := provisioner.Execute(r.Context(), claims.RegisteredClaims.Subject)
		if err != nil {
			return nil, fmt.Errorf("provisioning user for token subject: %w", err)
		}

		return &AuthResult{
			UserID: userID,
			Method: method,
		}, nil
	}
}
