// ABOUTME: Streaming search handler using Server-Sent Events
// ABOUTME: Emits result events as they complete, then metadata and done

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"searchlens-api/api/dto/mappers"
	"searchlens-api/api/dto/requests"
	"searchlens-api/api/dto/responses"
	"searchlens-api/core/domain"
	"searchlens-api/core/interfaces"
)

// StreamHandler handles the SSE search endpoint. It bypasses huma because
// the response is a progressive event stream, not a single JSON body.
type StreamHandler struct {
	searchService SearchService
	logger        interfaces.Logger
}

// NewStreamHandler creates a new streaming search handler
func NewStreamHandler(searchService SearchService, logger interfaces.Logger) *StreamHandler {
	return &StreamHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// ServeHTTP handles the GET /api/v1/search/stream endpoint.
// Event sequence: one result event per enriched result in completion order,
// then metadata, then done. A request-level failure emits a terminal error
// event instead. Results are streamed eagerly, so when deduplication runs,
// already-sent duplicates are not retracted; metadata carries final totals.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	params := requests.ParamsFromQuery(r.URL.Query())

	emit := func(event string, payload interface{}) {
		data, err := json.Marshal(payload)
		if err != nil {
			h.logger.Error("failed to marshal stream event", map[string]interface{}{
				"event": event,
				"error": err.Error(),
			})
			return
		}
		fmt.Fprintf(w, "event: %s\n", event)
		fmt.Fprintf(w, "data: %s\n\n", data)
		flusher.Flush()
	}

	response, err := h.searchService.SearchStream(r.Context(), toOptions(params), func(result domain.EnrichedResult) {
		emit(responses.EventResult, mappers.ToSearchResultResponse(result))
	})
	if err != nil {
		emit(responses.EventError, responses.StreamError{Error: err.Error()})
		return
	}

	emit(responses.EventMetadata, responses.StreamMetadata{
		TotalResults: response.TotalResults,
		SearchTimeMs: response.SearchTimeMs,
		EnginesUsed:  response.EnginesUsed,
	})
	emit(responses.EventDone, responses.StreamDone{Status: "complete"})
}
