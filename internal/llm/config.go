package llm

// Provider identifies an LLM provider.
type Provider string

// Supported providers. Only Gemini is implemented today; the switch in
// NewClient leaves room for others.
const (
	ProviderGemini Provider = "gemini"
)

// Config holds LLM client configuration.
type Config struct {
	Provider Provider `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
}

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// DefaultConfig returns the default client configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultModel,
	}
}
