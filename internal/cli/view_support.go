package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"saarthi/internal/cli/formatter"
	"saarthi/internal/domain"
	"saarthi/internal/intelligence"
)

// supportView is the interactive support chat. Answers come from the
// support service, which falls back to canned guidance when the LLM is
// unavailable, so the chat always responds.
type supportView struct {
	state *SharedState
	input textinput.Model

	conv     *intelligence.SupportConversation
	messages []domain.ChatMessage
}

func newSupportView(state *SharedState) *supportView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	v := &supportView{state: state, input: ti}
	v.messages = append(v.messages, domain.ChatMessage{
		ID:   uuid.NewString(),
		Role: "model",
		Text: "Namaste! Saarthi support here. Tell me what's wrong: payments, bookings, delays, anything.",
	})
	return v
}

func (v *supportView) ID() ViewID    { return ViewSupport }
func (v *supportView) Title() string { return "Support" }

func (v *supportView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *supportView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *supportView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return v, popView()
		case tea.KeyEnter:
			text := strings.TrimSpace(v.input.Value())
			v.input.Reset()
			if text == "" {
				return v, nil
			}
			v.handleMessage(text)
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *supportView) handleMessage(text string) {
	v.messages = append(v.messages, domain.ChatMessage{
		ID:   uuid.NewString(),
		Role: "user",
		Text: text,
	})

	svc := v.state.App.Support
	var reply *intelligence.SupportReply
	if svc == nil {
		reply = intelligence.DeterministicAdvice(text)
	} else if v.conv == nil {
		v.conv, reply = svc.StartChat(context.Background(), text)
	} else {
		reply = svc.NextTurn(context.Background(), v.conv, text)
	}

	answer := reply.Text
	if reply.Source == "deterministic" {
		answer += "\n" + formatter.Dim("(offline guidance)")
	}
	v.messages = append(v.messages, domain.ChatMessage{
		ID:   uuid.NewString(),
		Role: "model",
		Text: answer,
	})
}

func (v *supportView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	for _, msg := range v.messages {
		line := msg.Text
		if msg.Role == "user" {
			line = formatter.Dim("You: ") + line
		} else {
			line = formatter.StyleGreen.Render("Saarthi: ") + line
		}
		b.WriteString(indent(line, 2))
		b.WriteString("\n\n")
	}

	b.WriteString("  " + formatter.StylePurple.Render("support") + formatter.Dim("> ") + v.input.View())
	return b.String()
}
