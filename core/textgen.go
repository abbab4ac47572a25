package core

import "context"

// TextGenerator abstracts a remote text-generation capability.
type TextGenerator interface {
	// Enabled reports whether the service is configured and calls may be attempted.
	Enabled() bool
	Generate(ctx context.Context, prompt string) (string, error)
}
