package workflow

import "context"

// Status is the coarse externally-visible state of a run.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Status derives the coarse run status from the state. Failed wins over
// completed: a run with an error is failed even when every other stage ran.
func (s *WorkflowState) Status() Status {
	switch {
	case s.Error != "":
		return StatusFailed
	case s.Terminal():
		return StatusCompleted
	default:
		return StatusProcessing
	}
}

// StatusReport pairs a result snapshot with its derived status.
type StatusReport struct {
	Status Status  `json:"status"`
	Result *Result `json:"result"`
}

// Status reads the latest checkpoint for the session without modifying it.
// Returns ErrSessionNotFound when no checkpoint exists; a mid-run poll sees
// exactly the stages checkpointed so far, never a half-written record.
func (e *Engine) Status(ctx context.Context, sessionID string) (*StatusReport, error) {
	state, err := e.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrSessionNotFound
	}
	return &StatusReport{Status: state.Status(), Result: state.Result()}, nil
}
