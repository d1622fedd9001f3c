package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/grantscout/grantscout-backend/dto"
	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/pure_utils"
	"github.com/grantscout/grantscout-backend/utils"
)

const internalErrorMessage = "An unexpected error occurred"

var errorStatuses = []struct {
	kind    error
	status  int
	message string
}{
	{models.BadParameterError, http.StatusBadRequest, "Bad request"},
	{models.UnAuthorizedError, http.StatusUnauthorized, "Unauthorized"},
	{models.ForbiddenError, http.StatusForbidden, "Forbidden"},
	{models.NotFoundError, http.StatusNotFound, "Not found"},
	{models.ConflictError, http.StatusConflict, "Conflict"},
	{models.UnprocessableEntityError, http.StatusUnprocessableEntity, "Unprocessable entity"},
	{models.RateLimitedError, http.StatusTooManyRequests, "Rate limit exceeded"},
}

// presentError writes the error envelope and returns true when err is not nil. Only messages of public errors
// reach the caller. Unexpected errors are reported and rendered as a generic 500.
func presentError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	ctx := c.Request.Context()
	_ = c.Error(err)

	var validationErrors validator.ValidationErrors
	var typeError *json.UnmarshalTypeError
	var syntaxError *json.SyntaxError
	switch {
	case errors.As(err, &validationErrors):
		messages := pure_utils.Map(validationErrors, func(fe validator.FieldError) string {
			return dto.AdaptFieldValidationError(fe)
		})
		newErrorResponse(strings.Join(messages, ", ")).Serve(c, http.StatusBadRequest)
		return true

	case errors.As(err, &typeError):
		msg := fmt.Sprintf("expected type %s, got %s", typeError.Type.String(), typeError.Value)
		if typeError.Field != "" {
			msg = fmt.Sprintf("field `%s` expected type %s, got %s", typeError.Field, typeError.Type.String(), typeError.Value)
		}
		newErrorResponse(msg).Serve(c, http.StatusBadRequest)
		return true

	case errors.As(err, &syntaxError), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		newErrorResponse(models.ErrRequestMustBeJson.Error()).Serve(c, http.StatusBadRequest)
		return true
	}

	for _, kind := range errorStatuses {
		if !errors.Is(err, kind.kind) {
			continue
		}
		message := kind.message
		var public *models.PublicError
		if errors.As(err, &public) {
			message = public.Error()
		}
		utils.LoggerFromContext(ctx).DebugContext(ctx, "request failed", "error", err.Error())
		newErrorResponse(message).Serve(c, kind.status)
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		utils.LoggerFromContext(ctx).WarnContext(ctx, "request interrupted", "error", err.Error())
		newErrorResponse("Request timeout").Serve(c, http.StatusRequestTimeout)
		return true
	}

	utils.LogAndReportSentryError(ctx, err)
	newErrorResponse(internalErrorMessage).Serve(c, http.StatusInternalServerError)
	return true
}

// presentLimitExceeded renders rejected requests of the rate limiter.
func presentLimitExceeded(c *gin.Context, _ time.Duration) {
	presentError(c, models.ErrRateLimited)
}
