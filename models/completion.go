package models

// CompletionRequest is one call to the external completion service.
type CompletionRequest struct {
	Instructions    string
	Prompt          string
	MaxOutputTokens int
}
