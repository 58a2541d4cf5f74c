package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/jonathan/resume-builder/internal/profile"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var emptyInput *pipeline.EmptyInputError
	var unsupported *ingestion.UnsupportedFormatError
	var extraction *ingestion.ExtractionError
	var schema *profile.SchemaValidationError
	var fieldErrs validator.ValidationErrors

	switch {
	case errors.As(err, &emptyInput), errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &extraction):
		return http.StatusUnprocessableEntity
	case errors.As(err, &schema):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
