package processor

import (
	"context"

	"pizzaiolo/internal/conversation"
	"pizzaiolo/internal/order"
	"pizzaiolo/internal/providers"
)

// TurnProcessor runs one conversational turn: prompt the model for the next
// reply, extract order fields from the latest user utterance, and decide
// whether the order is now complete.
type TurnProcessor struct {
	provider providers.Provider
}

// New creates a turn processor over the given language-model provider.
func New(provider providers.Provider) *TurnProcessor {
	return &TurnProcessor{provider: provider}
}

// ProcessTurn submits the system instruction plus the full history to the
// model, then merges extracted fields into a copy of priorOrder and evaluates
// completion. On provider failure it returns a providers.UpstreamError and no
// result: nothing is extracted from an abandoned or failed call, so
// conversation and order state stay untouched for a resend.
func (p *TurnProcessor) ProcessTurn(ctx context.Context, history []conversation.Message, priorOrder order.PartialOrder) (*conversation.TurnResult, error) {
	prompt := conversation.Message{Role: "system", Content: SystemPrompt(priorOrder)}
	messages := append([]conversation.Message{prompt}, history...)

	reply, err := p.provider.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}

	latest := conversation.LastUserMessage(history)
	updated := order.Extract(priorOrder, latest)
	complete := conversation.IsComplete(updated, reply, latest)

	return &conversation.TurnResult{
		Reply:    conversation.StripSentinel(reply),
		Order:    updated,
		Complete: complete,
	}, nil
}
