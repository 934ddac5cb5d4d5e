package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hiremind/internal/agent"
	"github.com/jonathan/hiremind/internal/store"
	"github.com/jonathan/hiremind/internal/types"
	"github.com/jonathan/hiremind/internal/workflow"
)

func TestRunAgent(t *testing.T) {
	s, st := newTestServer(t, &scriptedLLM{})

	rec := doJSON(t, s.routes(), http.MethodPost, "/api/agent/run", types.RunAgentRequest{
		AgentType: agent.KeyRoleDefinition,
		Message:   "Define a role for a backend engineer",
		SessionID: "agent-session",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[types.RunAgentResponse](t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "agent-session", resp.SessionID)
	assert.Equal(t, "Role Definition Agent", resp.Agent)
	assert.Contains(t, resp.Response, "Backend Engineer")
	assert.Empty(t, resp.Error)

	// The exchange lands in the session's conversation record.
	data, ok, err := st.Get(context.Background(),
		store.SessionKey("agent-session", store.RecordConversation))
	require.NoError(t, err)
	require.True(t, ok)

	var history []workflow.Message
	require.NoError(t, json.Unmarshal(data, &history))
	require.Len(t, history, 2)
	assert.Equal(t, workflow.RoleHuman, history[0].Role)
	assert.Equal(t, workflow.RoleAssistant, history[1].Role)
}

func TestRunAgent_GeneratesSessionID(t *testing.T) {
	s, _ := newTestServer(t, &scriptedLLM{})

	rec := doJSON(t, s.routes(), http.MethodPost, "/api/agent/run", types.RunAgentRequest{
		AgentType: agent.KeyJDGenerator,
		Message:   "Create a job description for a designer",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeBody[types.RunAgentResponse](t, rec).SessionID)
}

func TestRunAgent_UnknownType(t *testing.T) {
	s, _ := newTestServer(t, &scriptedLLM{})

	rec := doJSON(t, s.routes(), http.MethodPost, "/api/agent/run", types.RunAgentRequest{
		AgentType: "fortune_teller",
		Message:   "tell me the future",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[map[string]string](t, rec)["error"], "unknown agent type")
}

func TestRunAgent_Validation(t *testing.T) {
	s, _ := newTestServer(t, &scriptedLLM{})
	routes := s.routes()

	rec := doJSON(t, routes, http.MethodPost, "/api/agent/run", types.RunAgentRequest{Message: "hi"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, routes, http.MethodPost, "/api/agent/run",
		types.RunAgentRequest{AgentType: agent.KeyRoleDefinition})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunAgent_FailureReportedInBody(t *testing.T) {
	s, st := newTestServer(t, &scriptedLLM{failPrefix: "Define"})

	rec := doJSON(t, s.routes(), http.MethodPost, "/api/agent/run", types.RunAgentRequest{
		AgentType: agent.KeyRoleDefinition,
		Message:   "Define a role",
		SessionID: "failed-session",
	})
	// Agent failures are payload, not transport errors.
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[types.RunAgentResponse](t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "Error in Role Definition Agent")

	// Failed exchanges are not recorded.
	_, ok, err := st.Get(context.Background(),
		store.SessionKey("failed-session", store.RecordConversation))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListAgentTypes(t *testing.T) {
	s, _ := newTestServer(t, &scriptedLLM{})

	rec := doJSON(t, s.routes(), http.MethodGet, "/api/agent/types", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[map[string]map[string]string](t, rec)
	agents := resp["agents"]
	require.Len(t, agents, 3)
	assert.Contains(t, agents, agent.KeyRoleDefinition)
	assert.Contains(t, agents, agent.KeyJDGenerator)
	assert.Contains(t, agents, agent.KeyInterviewPlanner)
	assert.NotEmpty(t, agents[agent.KeyRoleDefinition])
}
