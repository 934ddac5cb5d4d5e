package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/jonathan/hiremind/internal/types"
	"github.com/jonathan/hiremind/internal/workflow"
)

// handleListProfiles returns summaries of recent hiring profiles.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	summaries, err := s.engine.ListProfiles(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ProfileListResponse{
		Profiles: summaries,
		Total:    len(summaries),
	})
}

// handleGetProfile returns one full hiring profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.loadProfile(w, r)
	if err != nil {
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleDeleteProfile removes a hiring profile.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")

	existed, err := s.engine.DeleteProfile(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if !existed {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message":    "Profile deleted",
		"session_id": sessionID,
	})
}

// handleAddProfileNote appends a note to a profile.
func (s *Server) handleAddProfileNote(w http.ResponseWriter, r *http.Request) {
	var req types.AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.loadProfile(w, r)
	if err != nil {
		return
	}

	profile.AddNote(req.Note, req.Author)
	if err := s.engine.SaveProfile(r.Context(), profile); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleUpdateProfileStatus moves a profile through the hiring lifecycle,
// recording the transition in its revision history.
func (s *Server) handleUpdateProfileStatus(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateProfileStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.loadProfile(w, r)
	if err != nil {
		return
	}

	profile.UpdateStatus(req.Status)
	if err := s.engine.SaveProfile(r.Context(), profile); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// loadProfile fetches the profile named in the request path, writing the
// error response itself when the load fails.
func (s *Server) loadProfile(w http.ResponseWriter, r *http.Request) (*workflow.Profile, error) {
	sessionID := r.PathValue("session_id")

	profile, err := s.engine.LoadProfile(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, workflow.ErrSessionNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Profile not found")
		} else {
			s.errorResponse(w, HTTPStatus(err), err.Error())
		}
		return nil, err
	}
	return profile, nil
}
