package processor

import (
	"context"
	"errors"
	"testing"

	"pizzaiolo/internal/conversation"
	"pizzaiolo/internal/order"
	"pizzaiolo/internal/providers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a testify mock for the language-model boundary.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Complete(ctx context.Context, messages []conversation.Message) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) SetTemperature(temp float64) { m.Called(temp) }
func (m *MockProvider) SetMaxTokens(tokens int)     { m.Called(tokens) }

func TestProcessTurnExtractsAndReplies(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Complete", mock.Anything, mock.Anything).
		Return("Great choice! Any toppings for you?", nil)

	p := New(provider)
	history := []conversation.Message{
		{Role: conversation.RoleAssistant, Content: "What pizza would you like?"},
		{Role: conversation.RoleUser, Content: "I'd like a pepperoni pizza with extra cheese and olives"},
	}

	result, err := p.ProcessTurn(context.Background(), history, order.PartialOrder{})
	assert.NoError(t, err)
	assert.Equal(t, "Great choice! Any toppings for you?", result.Reply)
	assert.Equal(t, "Pepperoni", result.Order.Pizza)
	assert.Equal(t, []string{"Extra Cheese", "Olives"}, result.Order.Toppings)
	assert.False(t, result.Complete)
}

func TestProcessTurnSendsSystemPromptFirst(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Complete", mock.Anything, mock.MatchedBy(func(messages []conversation.Message) bool {
		return len(messages) == 2 && messages[0].Role == "system" && messages[1].Role == conversation.RoleUser
	})).Return("Welcome to Tony's Pizza! What can I get you?", nil)

	p := New(provider)
	history := []conversation.Message{{Role: conversation.RoleUser, Content: "hi"}}

	_, err := p.ProcessTurn(context.Background(), history, order.PartialOrder{})
	assert.NoError(t, err)
	provider.AssertExpectations(t)
}

func TestProcessTurnStripsSentinel(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Complete", mock.Anything, mock.Anything).
		Return("ORDER_COMPLETE Thanks, your order is confirmed!", nil)

	p := New(provider)
	history := []conversation.Message{{Role: conversation.RoleUser, Content: "that's everything"}}

	result, err := p.ProcessTurn(context.Background(), history, order.PartialOrder{})
	assert.NoError(t, err)
	assert.True(t, result.Complete)
	assert.Equal(t, "Thanks, your order is confirmed!", result.Reply)
}

func TestProcessTurnHeuristicCompletion(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Complete", mock.Anything, mock.Anything).
		Return("Noted, no allergies then.", nil)

	p := New(provider)
	prior := order.PartialOrder{Pizza: "Margherita", DeliveryAddress: "12 main street"}
	history := []conversation.Message{{Role: conversation.RoleUser, Content: "no allergies, thanks"}}

	result, err := p.ProcessTurn(context.Background(), history, prior)
	assert.NoError(t, err)
	assert.True(t, result.Complete)
}

func TestProcessTurnUpstreamErrorLeavesStateAlone(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Complete", mock.Anything, mock.Anything).
		Return("", &providers.UpstreamError{Provider: "openai", Err: errors.New("connection refused")})

	p := New(provider)
	history := []conversation.Message{{Role: conversation.RoleUser, Content: "a veggie pizza"}}

	result, err := p.ProcessTurn(context.Background(), history, order.PartialOrder{})
	assert.Nil(t, result)

	var upstream *providers.UpstreamError
	assert.ErrorAs(t, err, &upstream)
}

func TestSystemPromptEmbedsOrderState(t *testing.T) {
	prompt := SystemPrompt(order.PartialOrder{Pizza: "Hawaiian"})
	assert.Contains(t, prompt, `"pizza":"Hawaiian"`)
	assert.Contains(t, prompt, "ORDER_COMPLETE")
	assert.Contains(t, prompt, "Margherita, Pepperoni, Veggie, Hawaiian, BBQ Chicken")
}
