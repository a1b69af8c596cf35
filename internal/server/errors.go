package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/course-builder/internal/llm"
	"github.com/jonathan/course-builder/internal/pipeline"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var notFound *pipeline.NotFoundError
	var conflict *pipeline.ConflictError
	var invalid *pipeline.ValidationError
	var config *pipeline.ConfigurationError
	var generation *llm.GenerationError
	var fieldErrs validator.ValidationErrors

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &invalid):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.As(err, &generation):
		return http.StatusBadGateway
	case errors.As(err, &config):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
