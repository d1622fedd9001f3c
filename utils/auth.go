package utils

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/grantscout/grantscout-backend/models"
)

type tokenValidator interface {
	ValidateToken(raw string) (models.Identity, error)
}

// Authentication decides the caller identity from the bearer token. Failures are handed to onFailure, which
// is expected to write the response.
type Authentication struct {
	Validator tokenValidator
	onFailure func(c *gin.Context, err error)
}

func NewAuthentication(validator tokenValidator, onFailure func(c *gin.Context, err error)) Authentication {
	return Authentication{
		Validator: validator,
		onFailure: onFailure,
	}
}

// Required rejects requests without a valid bearer token.
func (a *Authentication) Required(c *gin.Context) {
	a.authenticate(c, true)
}

// Optional lets anonymous requests through. A token that is present but invalid is still rejected.
func (a *Authentication) Optional(c *gin.Context) {
	a.authenticate(c, false)
}

func (a *Authentication) authenticate(c *gin.Context, required bool) {
	token, err := ParseAuthorizationBearerHeader(c.Request.Header)
	if err != nil {
		a.fail(c, err)
		return
	}
	if token == "" {
		if required {
			a.fail(c, models.ErrMissingToken)
			return
		}
		c.Next()
		return
	}

	identity, err := a.Validator.ValidateToken(token)
	if err != nil {
		a.fail(c, err)
		return
	}

	ctx := StoreIdentityInContext(c.Request.Context(), identity)
	logger := LoggerFromContext(ctx).With(identityAttrs(identity)...)
	c.Request = c.Request.WithContext(context.WithValue(ctx, ContextKeyLogger, logger))
	c.Next()
}

func (a *Authentication) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	if a.onFailure != nil {
		a.onFailure(c, err)
	}
	c.Abort()
	if !c.Writer.Written() {
		c.Status(http.StatusUnauthorized)
	}
}

func identityAttrs(identity models.Identity) []any {
	return []any{
		slog.String("user_id", identity.UserId.String()),
		slog.String("email", identity.Email),
	}
}

func ParseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", nil
	}

	token, found := strings.CutPrefix(authorization, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return "", errors.WithSecondaryError(models.ErrInvalidToken, errors.New("malformed authorization header"))
	}
	return strings.TrimSpace(token), nil
}
