package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#d1495b")).
			Padding(0, 1)

	assistantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#30d158"))

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0a84ff"))

	orderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD60A"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)
)

// Model defines the application state
type Model struct {
	client     *ApiClient
	transcript []Message
	order      PizzaOrder
	input      textinput.Model
	spinner    spinner.Model
	loading    bool
	complete   bool
	saved      bool
	error      string
}

// turnMsg carries the result of one chat turn back into the update loop
type turnMsg struct {
	result *TurnResult
	err    error
}

// savedMsg reports the outcome of persisting the completed order
type savedMsg struct {
	err error
}

func initialModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	input := textinput.New()
	input.Placeholder = "Type your order..."
	input.Focus()
	input.CharLimit = 280
	input.Width = 60

	return Model{
		client: NewApiClient(),
		transcript: []Message{{
			Role:    "assistant",
			Content: "Welcome to Tony's Pizza! What pizza would you like?",
		}},
		input:   input,
		spinner: s,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// sendTurn submits the transcript for one turn
func (m Model) sendTurn() tea.Cmd {
	messages := append([]Message(nil), m.transcript...)
	current := m.order
	return func() tea.Msg {
		result, err := m.client.SendTurn(messages, current)
		return turnMsg{result: result, err: err}
	}
}

// saveOrder persists the completed order
func (m Model) saveOrder() tea.Cmd {
	order := m.order
	return func() tea.Msg {
		return savedMsg{err: m.client.SaveOrder(order)}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.loading || m.complete {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.transcript = append(m.transcript, Message{Role: "user", Content: text})
			m.input.Reset()
			m.loading = true
			m.error = ""
			return m, tea.Batch(m.spinner.Tick, m.sendTurn())
		}

	case turnMsg:
		m.loading = false
		if msg.err != nil {
			// The failed turn left no server state behind; drop the
			// unanswered user message so a resend starts clean.
			m.transcript = m.transcript[:len(m.transcript)-1]
			m.error = msg.err.Error()
			return m, nil
		}
		m.transcript = append(m.transcript, Message{Role: "assistant", Content: msg.result.Reply})
		m.order = msg.result.Order
		if msg.result.Complete {
			m.complete = true
			return m, m.saveOrder()
		}
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.error = msg.err.Error()
		} else {
			m.saved = true
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tony's Pizza"))
	b.WriteString("\n\n")

	for _, msg := range m.transcript {
		if msg.Role == "user" {
			b.WriteString(userStyle.Render("you: " + msg.Content))
		} else {
			b.WriteString(assistantStyle.Render("tony: " + msg.Content))
		}
		b.WriteString("\n")
	}

	if summary := orderSummary(m.order); summary != "" {
		b.WriteString("\n")
		b.WriteString(orderStyle.Render(summary))
		b.WriteString("\n")
	}

	if m.error != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.error))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " thinking...")
	case m.complete && m.saved:
		b.WriteString("Order saved. Press esc to exit.")
	case m.complete:
		b.WriteString("Order complete. Press esc to exit.")
	default:
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")

	return docStyle.Render(b.String())
}

// orderSummary renders the fields collected so far
func orderSummary(o PizzaOrder) string {
	var parts []string
	if o.Pizza != "" {
		parts = append(parts, "pizza: "+o.Pizza)
	}
	if len(o.Toppings) > 0 {
		parts = append(parts, "toppings: "+strings.Join(o.Toppings, ", "))
	}
	if len(o.Extras) > 0 {
		parts = append(parts, "extras: "+strings.Join(o.Extras, ", "))
	}
	if o.DeliveryAddress != "" {
		parts = append(parts, "deliver to: "+o.DeliveryAddress)
	}
	if o.Allergies != "" {
		parts = append(parts, "allergies: "+o.Allergies)
	}
	if o.DietaryPreference != "" {
		parts = append(parts, "dietary: "+o.DietaryPreference)
	}
	if o.Customizations != "" {
		parts = append(parts, "notes: "+o.Customizations)
	}
	if len(parts) == 0 {
		return ""
	}
	return "[" + strings.Join(parts, " | ") + "]"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
