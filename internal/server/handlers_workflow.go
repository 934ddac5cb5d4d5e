package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/hiremind/internal/types"
	"github.com/jonathan/hiremind/internal/workflow"
)

// handleStartWorkflow accepts a run and executes it in the background.
// Callers poll GET /api/workflow/{session_id} for progress.
func (s *Server) handleStartWorkflow(w http.ResponseWriter, r *http.Request) {
	var req types.StartWorkflowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	// The run outlives this request; it gets its own context.
	go func() {
		_, err := s.engine.Start(context.Background(), workflow.StartOptions{
			Input:       req.Description,
			CompanyName: req.CompanyName,
			Department:  req.Department,
			SessionID:   sessionID,
		})
		if err != nil {
			log.Printf("workflow %s: background run failed: %v", sessionID, err)
		}
	}()

	s.jsonResponse(w, http.StatusAccepted, types.StartWorkflowResponse{
		SessionID: sessionID,
		Status:    string(workflow.StatusProcessing),
	})
}

// handleStartWorkflowStream runs the pipeline synchronously, streaming a
// stage event per transition and a final complete event over SSE.
func (s *Server) handleStartWorkflowStream(w http.ResponseWriter, r *http.Request) {
	var req types.StartWorkflowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	stream, err := newStreamWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	stream.Start(sessionID)

	result, err := s.engine.Start(r.Context(), workflow.StartOptions{
		Input:       req.Description,
		CompanyName: req.CompanyName,
		Department:  req.Department,
		SessionID:   sessionID,
		OnProgress:  stream.Stage,
	})
	if err != nil {
		stream.Fail(err.Error())
		return
	}

	status := workflow.StatusCompleted
	if !result.Success {
		status = workflow.StatusFailed
	}
	stream.Complete(sessionID, status, result)
}

// handleWorkflowStatus reads the latest checkpoint for a session.
func (s *Server) handleWorkflowStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")

	report, err := s.engine.Status(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, workflow.ErrSessionNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Session not found")
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.WorkflowStatusResponse{
		SessionID:       sessionID,
		Status:          string(report.Status),
		CurrentStage:    report.Result.CurrentStage,
		CompletedStages: report.Result.CompletedStages,
		Results:         report.Result,
		Error:           report.Result.Error,
	})
}
