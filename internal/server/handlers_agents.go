package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/hiremind/internal/store"
	"github.com/jonathan/hiremind/internal/types"
	"github.com/jonathan/hiremind/internal/workflow"
)

// handleRunAgent invokes a single agent outside the pipeline. Successful
// exchanges are appended to the session's conversation record.
func (s *Server) handleRunAgent(w http.ResponseWriter, r *http.Request) {
	var req types.RunAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	a, err := s.agents.Get(req.AgentType)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	result := a.Run(r.Context(), req.Message)
	if result.Success {
		s.appendConversation(r, sessionID, req.Message, result.Output)
	}

	s.jsonResponse(w, http.StatusOK, types.RunAgentResponse{
		SessionID: sessionID,
		Agent:     result.Agent,
		Success:   result.Success,
		Response:  result.Output,
		Error:     result.Error,
	})
}

// handleListAgentTypes returns the registered agent keys and descriptions.
func (s *Server) handleListAgentTypes(w http.ResponseWriter, _ *http.Request) {
	agents := make(map[string]string)
	for _, key := range s.agents.Keys() {
		a, err := s.agents.Get(key)
		if err != nil {
			continue
		}
		agents[key] = a.Description()
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"agents": agents})
}

// appendConversation adds one exchange to the session's conversation record.
// Best-effort; a store failure only loses history.
func (s *Server) appendConversation(r *http.Request, sessionID, input, output string) {
	key := store.SessionKey(sessionID, store.RecordConversation)

	var history []workflow.Message
	if data, ok, err := s.store.Get(r.Context(), key); err == nil && ok {
		if err := json.Unmarshal(data, &history); err != nil {
			log.Printf("conversation %s: discarding undecodable history: %v", sessionID, err)
			history = nil
		}
	}

	history = append(history,
		workflow.Message{Role: workflow.RoleHuman, Content: input},
		workflow.Message{Role: workflow.RoleAssistant, Content: output},
	)

	data, err := json.Marshal(history)
	if err != nil {
		log.Printf("conversation %s: failed to encode history: %v", sessionID, err)
		return
	}
	if err := s.store.SetWithExpiry(r.Context(), key, data, store.DefaultStateTTL); err != nil {
		log.Printf("conversation %s: failed to save history: %v", sessionID, err)
	}
}
