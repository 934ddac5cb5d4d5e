// Package agent implements the HR hiring agents: configured reasoning
// capabilities that turn an instruction plus bounded conversation history into
// text output, or fail.
package agent

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/jonathan/hiremind/internal/llm"
)

// maxAttempts bounds the generation loop. Empty or blocked responses are
// retried within this bound; exhausting it is a capability failure.
const maxAttempts = 5

// defaultMemoryWindow is the number of prior exchanges an agent remembers.
const defaultMemoryWindow = 10

// Result is the outcome of one agent invocation. Failures are reported here;
// an agent never panics or returns a raw error past this boundary.
type Result struct {
	Success bool   `json:"success"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
	Agent   string `json:"agent"`
}

// Agent is a reasoning capability with a fixed system prompt and temperature.
// Instances differ only in configuration, not behavior. An Agent is safe for
// concurrent use; its conversation memory is guarded by a mutex.
type Agent struct {
	name        string
	description string
	system      string
	temperature float32

	client llm.Client

	mu     sync.Mutex
	memory *WindowMemory
}

// New creates an agent with the given configuration.
func New(client llm.Client, name, description, system string, temperature float32) *Agent {
	return &Agent{
		name:        name,
		description: description,
		system:      system,
		temperature: temperature,
		client:      client,
		memory:      NewWindowMemory(defaultMemoryWindow),
	}
}

// Name returns the agent's display name.
func (a *Agent) Name() string { return a.name }

// Description returns a short summary of what the agent does.
func (a *Agent) Description() string { return a.description }

// Run executes the agent with the given input. The error surface is the
// Result: upstream failures and exhausted retries yield Success=false with a
// message, never an error return. Callers wanting concurrency run this from
// their own goroutines; the contract is identical.
func (a *Agent) Run(ctx context.Context, input string) Result {
	a.mu.Lock()
	history := a.memory.Turns()
	a.mu.Unlock()

	req := llm.Request{
		System:      a.system,
		History:     history,
		Input:       input,
		Temperature: a.temperature,
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return a.failure(fmt.Sprintf("cancelled: %v", err))
		}

		output, err := a.client.Generate(ctx, req)
		if err != nil {
			lastErr = err
			log.Printf("Error in %s (attempt %d/%d): %v", a.name, attempt, maxAttempts, err)
			continue
		}
		if strings.TrimSpace(output) == "" {
			lastErr = fmt.Errorf("empty response")
			continue
		}

		a.mu.Lock()
		a.memory.Add(input, output)
		a.mu.Unlock()

		return Result{Success: true, Output: output, Agent: a.name}
	}

	return a.failure(fmt.Sprintf("exceeded %d attempts: %v", maxAttempts, lastErr))
}

func (a *Agent) failure(msg string) Result {
	return Result{Success: false, Error: fmt.Sprintf("Error in %s: %s", a.name, msg), Agent: a.name}
}

// ClearMemory drops the agent's conversation history.
func (a *Agent) ClearMemory() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.memory.Clear()
}
