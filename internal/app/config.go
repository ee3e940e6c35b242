package app

// Config holds runtime configuration for one hardening run.
type Config struct {
	ReadmePath string
	OutputPath string
	OutputPDF  string

	// Advisor (optional; disabled when Model is empty)
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Behavior. Execute flips from dry-run to real command execution.
	Execute bool
	Verbose bool
}
