package agent

import (
	"fmt"
	"sort"

	"github.com/jonathan/hiremind/internal/llm"
)

// Agent keys used for dispatch. The set is closed: the registry is built once
// at startup and never mutated afterwards.
const (
	KeyRoleDefinition   = "role_definition"
	KeyJDGenerator      = "jd_generator"
	KeyInterviewPlanner = "interview_planner"
)

// NewRoleDefinitionAgent creates the agent that defines and scopes job roles.
// Low temperature for focused, structured output.
func NewRoleDefinitionAgent(client llm.Client) *Agent {
	return New(client,
		"Role Definition Agent",
		"Helps define job roles, responsibilities, and requirements",
		roleDefinitionPrompt,
		0.3,
	)
}

// NewJDGeneratorAgent creates the agent that writes job descriptions.
// Balanced temperature for creativity and accuracy.
func NewJDGeneratorAgent(client llm.Client) *Agent {
	return New(client,
		"JD Generator Agent",
		"Creates compelling and comprehensive job descriptions",
		jdGeneratorPrompt,
		0.7,
	)
}

// NewInterviewPlannerAgent creates the agent that designs interview processes.
func NewInterviewPlannerAgent(client llm.Client) *Agent {
	return New(client,
		"Interview Planner Agent",
		"Designs comprehensive interview processes and evaluation criteria",
		interviewPlannerPrompt,
		0.4,
	)
}

// Registry is a closed dispatch table mapping agent keys to instances.
type Registry struct {
	agents map[string]*Agent
}

// NewRegistry builds the full agent set against one LLM client.
func NewRegistry(client llm.Client) *Registry {
	return &Registry{
		agents: map[string]*Agent{
			KeyRoleDefinition:   NewRoleDefinitionAgent(client),
			KeyJDGenerator:      NewJDGeneratorAgent(client),
			KeyInterviewPlanner: NewInterviewPlannerAgent(client),
		},
	}
}

// Get returns the agent registered under key.
func (r *Registry) Get(key string) (*Agent, error) {
	a, ok := r.agents[key]
	if !ok {
		return nil, fmt.Errorf("unknown agent type %q, must be one of: %v", key, r.Keys())
	}
	return a, nil
}

// Keys returns the registered agent keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.agents))
	for k := range r.agents {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
