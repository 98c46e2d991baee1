package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"saarthi/internal/cli/formatter"
	"saarthi/internal/domain"
)

// walletView renders the active role's balance and transaction history.
// The data is already hydrated on the session, so rendering is pure.
type walletView struct {
	state *SharedState
}

func newWalletView(state *SharedState) *walletView {
	return &walletView{state: state}
}

func (v *walletView) ID() ViewID    { return ViewWallet }
func (v *walletView) Title() string { return "Wallet" }

func (v *walletView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *walletView) Init() tea.Cmd { return nil }

func (v *walletView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return v, nil
}

func (v *walletView) View() string {
	st := v.state.App.Machine.State()

	var b strings.Builder
	b.WriteString("\n")

	card := formatter.Dim("Available Balance") + "\n" +
		formatter.StyleGreen.Render(formatter.Rupees(st.Wallet.Balance))
	b.WriteString(indent(formatter.RenderBox("", card), 2))
	b.WriteString("\n\n")

	if len(st.Wallet.Transactions) == 0 {
		b.WriteString("  " + formatter.Dim("No transactions yet.") + "\n")
		return b.String()
	}

	b.WriteString(indent(formatter.Header("Transactions"), 2) + "\n")
	for _, tx := range st.Wallet.Transactions {
		amount := formatter.SignedRupees(tx.Amount, tx.Type == domain.TxCredit)
		b.WriteString("  " + formatter.Dim(tx.Date) + "  " +
			padRight(tx.Description, 30) + "  " +
			amount + "  " + formatter.TxStatusPill(tx.Status) + "\n")
	}

	return b.String()
}

// padRight pads s with spaces to width, truncating when longer.
func padRight(s string, width int) string {
	s = formatter.Truncate(s, width)
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
