// Package server provides the JSON API over the assistant core
package server

import (
	"errors"
	"net/http"

	"github.com/csiboto/kyle/internal/llm"
	"github.com/csiboto/kyle/internal/types"
)

// HTTPStatus maps the assistant error taxonomy onto HTTP status codes.
// Degraded parses never arrive here: they are successful responses.
func HTTPStatus(err error) int {
	var validationErr *types.ValidationError
	var configErr *llm.ConfigurationError
	var serviceErr *llm.ServiceError
	var transportErr *llm.TransportError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &configErr):
		return http.StatusInternalServerError
	case errors.As(err, &serviceErr):
		return http.StatusBadGateway
	case errors.As(err, &transportErr):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
