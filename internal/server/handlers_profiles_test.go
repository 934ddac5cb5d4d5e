package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hiremind/internal/types"
	"github.com/jonathan/hiremind/internal/workflow"
)

// seedProfile saves a minimal profile for handler tests.
func seedProfile(t *testing.T, s *Server, sessionID string) *workflow.Profile {
	t.Helper()

	p := &workflow.Profile{
		SessionID:       sessionID,
		RoleTitle:       "Backend Engineer",
		Department:      "Platform",
		Status:          workflow.ProfileStatusActive,
		CompletedStages: workflow.Stages(),
		CurrentStage:    workflow.StageCompleted,
		Notes:           []workflow.Note{},
		RevisionHistory: []workflow.Revision{},
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	require.NoError(t, s.engine.SaveProfile(context.Background(), p))
	return p
}

func TestListProfiles(t *testing.T) {
	s, _ := newTestServer(t, &scriptedLLM{})
	for i := 1; i <= 3; i++ {
		seedProfile(t, s, fmt.Sprintf("sess-%d", i))
	}

	rec := doJSON(t, s.routes(), http.MethodGet, "/api/profiles", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[types.ProfileListResponse](t, rec)
	assert.Equal(t, 3, resp.Total)
}

func TestListProfiles_LimitParam(t *testing.T) {
	s, _ := newTestServer(t, &scriptedLLM{})
	for i := 1; i <= 5; i++ {
		seedProfile(t, s, fmt.Sprintf("sess-%d", i))
	}
	routes := s.routes()

	rec := doJSON(t, routes, http.MethodGet, "/api/profiles?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decodeBody[types.ProfileListResponse](t, rec).Total)

	for _, bad := range []string{"0", "-1", "abc"} {
		rec := doJSON(t, routes, http.MethodGet, "/api/profiles?limit="+bad, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", bad)
	}
}

func TestGetProfile(t *testing.T) {
	s, _ := newTestServer(t, &scriptedLLM{})
	seedProfile(t, s, "sess-1")
	routes := s.routes()

	rec := doJSON(t, routes, http.MethodGet, "/api/profiles/sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	profile := decodeBody[workflow.Profile](t, rec)
	assert.Equal(t, "sess-1", profile.SessionID)
	assert.Equal(t, "Backend Engineer", profile.RoleTitle)

	rec = doJSON(t, routes, http.MethodGet, "/api/profiles/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProfile(t *testing.T) {
	s, _ := newTestServer(t, &scriptedLLM{})
	seedProfile(t, s, "sess-1")
	routes := s.routes()

	rec := doJSON(t, routes, http.MethodDelete, "/api/profiles/sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, routes, http.MethodGet, "/api/profiles/sess-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, routes, http.MethodDelete, "/api/profiles/sess-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddProfileNote(t *testing.T) {
	s, _ := newTestServer(t, &scriptedLLM{})
	seedProfile(t, s, "sess-1")
	routes := s.routes()

	rec := doJSON(t, routes, http.MethodPost, "/api/profiles/sess-1/notes",
		types.AddNoteRequest{Note: "strong candidate pipeline", Author: "alex"})
	require.Equal(t, http.StatusOK, rec.Code)

	profile := decodeBody[workflow.Profile](t, rec)
	require.Len(t, profile.Notes, 1)
	assert.Equal(t, "strong candidate pipeline", profile.Notes[0].Note)
	assert.Equal(t, "alex", profile.Notes[0].Author)

	// A second note appends; the persisted profile keeps both.
	rec = doJSON(t, routes, http.MethodPost, "/api/profiles/sess-1/notes",
		types.AddNoteRequest{Note: "second note"})
	require.Equal(t, http.StatusOK, rec.Code)
	profile = decodeBody[workflow.Profile](t, rec)
	require.Len(t, profile.Notes, 2)
	assert.Equal(t, "system", profile.Notes[1].Author)
}

func TestAddProfileNote_Validation(t *testing.T) {
	s, _ := newTestServer(t, &scriptedLLM{})
	seedProfile(t, s, "sess-1")
	routes := s.routes()

	rec := doJSON(t, routes, http.MethodPost, "/api/profiles/sess-1/notes", types.AddNoteRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, routes, http.MethodPost, "/api/profiles/missing/notes",
		types.AddNoteRequest{Note: "note"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfileStatus(t *testing.T) {
	s, _ := newTestServer(t, &scriptedLLM{})
	seedProfile(t, s, "sess-1")
	routes := s.routes()

	rec := doJSON(t, routes, http.MethodPatch, "/api/profiles/sess-1/status",
		types.UpdateProfileStatusRequest{Status: workflow.ProfileStatusCompleted})
	require.Equal(t, http.StatusOK, rec.Code)

	profile := decodeBody[workflow.Profile](t, rec)
	assert.Equal(t, workflow.ProfileStatusCompleted, profile.Status)
	require.Len(t, profile.RevisionHistory, 1)
	assert.Equal(t, workflow.ProfileStatusActive, profile.RevisionHistory[0].OldValue)
	assert.Equal(t, workflow.ProfileStatusCompleted, profile.RevisionHistory[0].NewValue)
}

func TestUpdateProfileStatus_RejectsUnknownStatus(t *testing.T) {
	s, _ := newTestServer(t, &scriptedLLM{})
	seedProfile(t, s, "sess-1")

	rec := doJSON(t, s.routes(), http.MethodPatch, "/api/profiles/sess-1/status",
		types.UpdateProfileStatusRequest{Status: "archived"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
