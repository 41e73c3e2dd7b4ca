package prompt

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/wtree/internal/ui/styles"
)

// ConfirmResult holds the answer to a yes/no question.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type answer int

const (
	unanswered answer = iota
	answeredYes
	answeredNo
	answeredCancel
)

type confirmModel struct {
	question string
	detail   string
	answer   answer
}

func newConfirmModel(question, detail string) confirmModel {
	return confirmModel{question: question, detail: detail}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.answer = answeredYes
	case "n", "N", "enter":
		m.answer = answeredNo
	case "ctrl+c", "q", "esc":
		m.answer = answeredCancel
	default:
		return m, nil
	}
	return m, tea.Quit
}

func (m confirmModel) result() ConfirmResult {
	return ConfirmResult{
		Confirmed: m.answer == answeredYes,
		Cancelled: m.answer == answeredCancel,
	}
}

func (m confirmModel) View() tea.View {
	if m.answer != unanswered {
		return tea.NewView("")
	}
	s := styles.AccentStyle.Render(m.question) + " " + styles.MutedStyle.Render("[y/N]") + " "
	if m.detail != "" {
		s = styles.MutedStyle.Render(m.detail) + "\n" + s
	}
	return tea.NewView(s)
}

// Confirm asks a yes/no question on stderr. Enter answers no. detail is
// shown above the question when set.
func Confirm(question, detail string) (ConfirmResult, error) {
	p := tea.NewProgram(newConfirmModel(question, detail),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(colorprofile.Detect(os.Stderr, os.Environ())),
	)
	finalModel, err := p.Run()
	if err != nil {
		return ConfirmResult{}, err
	}
	return finalModel.(confirmModel).result(), nil
}
