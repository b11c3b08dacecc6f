// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"searchlens-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsExternalAPI(err) {
		if apiErr, ok := err.(*errors.ExternalAPIError); ok {
			// Map aggregator status codes to our API status codes
			switch {
			case apiErr.StatusCode >= 500 || apiErr.StatusCode == 0:
				return huma.Error502BadGateway("Search aggregator error", err)
			case apiErr.StatusCode == 429:
				return huma.Error429TooManyRequests("Rate limited by search aggregator")
			case apiErr.StatusCode >= 400:
				return huma.Error502BadGateway("Search aggregator rejected the request", err)
			default:
				return huma.Error500InternalServerError("Unexpected aggregator response", err)
			}
		}
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
