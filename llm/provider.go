// Provider interface - the abstract interface for generation providers.
// Each provider implementation hides:
// - API client initialization and authentication
// - Request/response format conversion
// - Provider-specific error handling

package llm

import (
	"context"
)

// Provider defines the abstract interface for generation providers.
// Implementations hide provider-specific details while exposing a
// consistent single-turn completion interface.
type Provider interface {
	// Name returns the provider name (for logging/debugging).
	Name() string

	// Model returns the model this provider instance targets.
	Model() string

	// Complete sends a completion request.
	Complete(ctx context.Context, req Request) (Response, error)
}
