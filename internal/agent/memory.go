package agent

import "github.com/jonathan/hiremind/internal/llm"

// WindowMemory keeps a bounded sliding window of prior exchanges, dropping
// the oldest first. It is scoped to one agent instance and is not persisted
// across process restarts.
type WindowMemory struct {
	window    int
	exchanges []exchange
}

type exchange struct {
	input  string
	output string
}

// NewWindowMemory creates a memory that retains the last window exchanges.
func NewWindowMemory(window int) *WindowMemory {
	return &WindowMemory{window: window}
}

// Add records one exchange, evicting the oldest beyond the window.
func (m *WindowMemory) Add(input, output string) {
	m.exchanges = append(m.exchanges, exchange{input: input, output: output})
	if len(m.exchanges) > m.window {
		m.exchanges = m.exchanges[len(m.exchanges)-m.window:]
	}
}

// Turns returns the retained history as alternating user/model turns.
func (m *WindowMemory) Turns() []llm.Turn {
	turns := make([]llm.Turn, 0, len(m.exchanges)*2)
	for _, e := range m.exchanges {
		turns = append(turns,
			llm.Turn{Role: llm.RoleUser, Content: e.input},
			llm.Turn{Role: llm.RoleModel, Content: e.output},
		)
	}
	return turns
}

// Len returns the number of retained exchanges.
func (m *WindowMemory) Len() int { return len(m.exchanges) }

// Clear drops all retained exchanges.
func (m *WindowMemory) Clear() { m.exchanges = nil }
