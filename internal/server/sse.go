package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/hiremind/internal/workflow"
)

// streamWriter emits the workflow run event stream as Server-Sent Events:
// a start event carrying the session id, one stage event per engine progress
// update, then either a complete event with the full result or an error event
// when the run could not execute.
type streamWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

func newStreamWriter(w http.ResponseWriter) (*streamWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	return &streamWriter{w: w, flusher: flusher}, nil
}

func (s *streamWriter) writeEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\n", event); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// Start announces the session id before the first stage runs.
func (s *streamWriter) Start(sessionID string) {
	s.writeEvent("start", map[string]string{"session_id": sessionID}) //nolint:errcheck
}

// Stage forwards one engine progress event.
func (s *streamWriter) Stage(event workflow.StageEvent) {
	s.writeEvent("stage", event) //nolint:errcheck
}

// Complete carries the terminal status and the full run result.
func (s *streamWriter) Complete(sessionID string, status workflow.Status, result *workflow.Result) {
	s.writeEvent("complete", map[string]any{ //nolint:errcheck
		"session_id": sessionID,
		"status":     string(status),
		"result":     result,
	})
}

// Fail reports a run that never executed, such as a duplicate start.
func (s *streamWriter) Fail(message string) {
	s.writeEvent("error", map[string]string{"error": message}) //nolint:errcheck
}
