// Package types provides the request and response shapes for the HireMind
// HTTP API.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// StartWorkflowRequest starts a hiring workflow from a natural-language role
// description.
type StartWorkflowRequest struct {
	Description string `json:"description" validate:"required,min=10"`
	CompanyName string `json:"company_name" validate:"required,min=1"`
	Department  string `json:"department,omitempty"`
	// SessionID lets callers resume an incomplete run; omitted means a fresh
	// session.
	SessionID string `json:"session_id,omitempty" validate:"omitempty,min=8"`
}

// StartWorkflowResponse acknowledges an accepted run. Execution happens
// out-of-band; callers poll the status endpoint.
type StartWorkflowResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

// WorkflowStatusResponse reports the latest checkpointed state of a run.
type WorkflowStatusResponse struct {
	SessionID       string   `json:"session_id"`
	Status          string   `json:"status"`
	CurrentStage    string   `json:"current_stage"`
	CompletedStages []string `json:"completed_stages"`
	Results         any      `json:"results,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// RunAgentRequest invokes a single agent outside the pipeline.
type RunAgentRequest struct {
	AgentType string `json:"agent_type" validate:"required"`
	Message   string `json:"message" validate:"required,min=1"`
	SessionID string `json:"session_id,omitempty"`
}

// RunAgentResponse carries one agent exchange.
type RunAgentResponse struct {
	SessionID string `json:"session_id"`
	Agent     string `json:"agent"`
	Success   bool   `json:"success"`
	Response  string `json:"response,omitempty"`
	Error     string `json:"error,omitempty"`
}

// AddNoteRequest appends a note to a hiring profile.
type AddNoteRequest struct {
	Note   string `json:"note" validate:"required,min=1"`
	Author string `json:"author,omitempty"`
}

// UpdateProfileStatusRequest moves a profile through the hiring lifecycle.
type UpdateProfileStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft active completed cancelled"`
}

// ProfileListResponse is the recent-profiles index.
type ProfileListResponse struct {
	Profiles any `json:"profiles"`
	Total    int `json:"total"`
}

// HealthResponse reports API and store connectivity.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Validate validates the StartWorkflowRequest using the validator.
func (r *StartWorkflowRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RunAgentRequest using the validator.
func (r *RunAgentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AddNoteRequest using the validator.
func (r *AddNoteRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateProfileStatusRequest using the validator.
func (r *UpdateProfileStatusRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
