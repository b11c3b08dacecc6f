// ABOUTME: SSE event names and payloads for the streaming search endpoint
// ABOUTME: Event sequence is result* then metadata then done, or a terminal error

package responses

// SSE event names emitted by the streaming endpoint.
const (
	EventResult   = "result"
	EventMetadata = "metadata"
	EventDone     = "done"
	EventError    = "error"
)

// StreamMetadata is the payload of the metadata event, sent after the last
// result. Totals reflect the final response, so results streamed earlier may
// exceed TotalResults when deduplication removed some.
type StreamMetadata struct {
	TotalResults int      `json:"total_results"`
	SearchTimeMs int64    `json:"search_time_ms"`
	EnginesUsed  []string `json:"engines_used"`
}

// StreamDone is the payload of the done event.
type StreamDone struct {
	Status string `json:"status"`
}

// StreamError is the payload of the error event. Sent only for
// request-level failures; per-result failures degrade the result instead.
type StreamError struct {
	Error string `json:"error"`
}
