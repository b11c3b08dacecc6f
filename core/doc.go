// Package core contains the business logic for the SearchLens API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (RawHit, EnrichedResult, SearchResponse, etc.)
// - search: The enrichment pipeline orchestrating fetch, enrich, and dedup
// - extract: Page fetching and main-content extraction
// - enrich: Metadata derivation and citation formatting
// - ai: Optional AI summarization and embedding provider
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, aggregator)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "searchlens-api/core/interfaces"
//	    "searchlens-api/core/search"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	searchService := search.NewService(deps, aggregator, extractor, enricher, nil, cfg)
//
//	// Run a search
//	resp, err := searchService.Search(ctx, search.Options{Query: "go concurrency"})
package core
