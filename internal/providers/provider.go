package providers

import (
	"context"
	"fmt"

	"pizzaiolo/internal/conversation"
)

// Provider is the language-model boundary: one ordered message list in, one
// assistant reply out. The core treats it as an opaque text-completion
// capability and never depends on a specific vendor's wire format.
type Provider interface {
	Complete(ctx context.Context, messages []conversation.Message) (string, error)
	SetTemperature(temp float64)
	SetMaxTokens(tokens int)
}

// UpstreamError reports a failed or malformed response from the language
// model service. Turns that hit one leave conversation and order state
// unchanged so the user can simply resend; retry policy belongs to callers.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
