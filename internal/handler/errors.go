package handler

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/AmirAbuELHija/popcorn-palace/internal/service"
	"github.com/AmirAbuELHija/popcorn-palace/pkg/logger"
	"github.com/AmirAbuELHija/popcorn-palace/pkg/response"
)

// writeServiceError is the single translation point from a service error
// to an HTTP status. Anything unrecognized is logged and returned as a
// 500 with the message withheld.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMovieNotFound),
		errors.Is(err, service.ErrShowtimeNotFound),
		errors.Is(err, service.ErrBookingNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrMovieTitleTaken),
		errors.Is(err, service.ErrShowtimeOverlap),
		errors.Is(err, service.ErrSeatTaken):
		response.Conflict(c, err.Error())
	case service.IsInvalidInput(err):
		response.BadRequest(c, err.Error())
	default:
		logger.Get().Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		response.InternalError(c)
	}
}

// writeBindingError reports a malformed request body. Validator failures
// become a field->message map; anything else (bad JSON, wrong types) gets
// a generic message.
func writeBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[jsonFieldName(fe.Field())] = validationMessage(fe)
		}
		response.ValidationFailed(c, details)
		return
	}
	response.BadRequest(c, "invalid request body")
}

// jsonFieldName lowercases the first rune of a struct field name, which
// matches the camelCase json tags used by the DTOs.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	r := []rune(field)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return strings.TrimSpace("is invalid (" + fe.Tag() + ")")
	}
}
