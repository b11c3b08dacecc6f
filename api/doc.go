// Package api provides the HTTP API layer for the SearchLens service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type SearchParams struct {
//	    Query string `query:"q" required:"true" maxLength:"500"`
//	    Limit int    `query:"limit,omitempty" minimum:"1"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - API key authentication (optional, enabled by configuration)
// - Rate limiting per API key or client IP
// - CORS handling
//
// The streaming search endpoint is registered directly on the chi router
// rather than through Huma, because Server-Sent Events do not fit Huma's
// single-response model. It still passes through the same middleware chain.
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "search query cannot be empty",
//	    "instance": "/api/v1/search"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
