// internal/tui/wizard.go
//
// Full-screen alternative to the line prompts. It asks the same questions
// with the same validation, shows the planned tree and waits for a y/n.
// The wizard never touches the filesystem; the caller materializes the plan
// once Confirmed() reports true.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/colloquium/internal/prompt"
	"github.com/kingrea/colloquium/internal/scaffold"
)

// wizardStep represents which question is on screen
type wizardStep int

const (
	stepPath wizardStep = iota
	stepName
	stepCount
	stepParts
	stepConfirm
	stepDone
)

type wizardStyles struct {
	title    lipgloss.Style
	question lipgloss.Style
	err      lipgloss.Style
	hint     lipgloss.Style
}

func newWizardStyles(r *lipgloss.Renderer) wizardStyles {
	return wizardStyles{
		title:    r.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true),
		question: r.NewStyle().Bold(true),
		err:      r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		hint:     r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

// Wizard is the bubbletea model collecting one RunConfig.
type Wizard struct {
	step   wizardStep
	input  textinput.Model
	prompt string
	layout scaffold.Layout

	renderer *lipgloss.Renderer
	styles   wizardStyles

	rc    scaffold.RunConfig
	count int
	plan  scaffold.FilePlan

	errMsg    string
	confirmed bool
}

// New creates a wizard. promptGlyph is the input prefix for every
// question except the numbered part names. r must be bound to the writer
// the program renders to; nil falls back to stdout.
func New(promptGlyph string, layout scaffold.Layout, r *lipgloss.Renderer) *Wizard {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	ti := textinput.New()
	ti.Prompt = promptGlyph
	ti.CharLimit = 0
	ti.Width = 50
	ti.Focus()
	return &Wizard{
		step:   stepPath,
		input:  ti,
		prompt: promptGlyph,
		layout: layout.Normalized(),

		renderer: r,
		styles:   newWizardStyles(r),
	}
}

// Confirmed reports whether the user accepted the plan.
func (w *Wizard) Confirmed() bool { return w.confirmed }

// Done reports whether the wizard has finished, either way.
func (w *Wizard) Done() bool { return w.step == stepDone }

// Plan returns the plan shown for confirmation.
func (w *Wizard) Plan() scaffold.FilePlan { return w.plan }

// Init is called once when the program starts.
func (w *Wizard) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses. Enter submits the current answer.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			w.confirmed = false
			w.step = stepDone
			return w, tea.Quit
		case tea.KeyEnter:
			return w.submit()
		}
	}
	if w.step == stepDone {
		return w, nil
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *Wizard) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(w.input.Value())
	switch w.step {
	case stepPath:
		if !scaffold.ValidText(value) {
			return w.reject(prompt.MsgInvalidPath)
		}
		w.rc.BasePath = value
		w.advance(stepName, w.prompt)

	case stepName:
		if !scaffold.ValidText(value) {
			return w.reject(prompt.MsgInvalidName)
		}
		w.rc.ProjectName = value
		w.advance(stepCount, w.prompt)

	case stepCount:
		n, ok := scaffold.ParseCount(value)
		if !ok {
			return w.reject(prompt.MsgInvalidCount)
		}
		w.count = n
		w.advance(stepParts, prompt.PartLabel(1))

	case stepParts:
		if !scaffold.ValidText(value) {
			return w.reject(prompt.MsgEmptyFile)
		}
		w.rc.PartNames = append(w.rc.PartNames, value)
		if len(w.rc.PartNames) < w.count {
			w.advance(stepParts, prompt.PartLabel(len(w.rc.PartNames)+1))
			break
		}
		w.plan = scaffold.NewPlan(w.rc, w.layout)
		w.advance(stepConfirm, w.prompt)

	case stepConfirm:
		// one shot: anything but y/yes declines
		w.confirmed = scaffold.IsAffirmative(value)
		w.step = stepDone
		w.input.Blur()
		return w, tea.Quit
	}
	return w, nil
}

func (w *Wizard) reject(message string) (tea.Model, tea.Cmd) {
	w.errMsg = message
	w.input.SetValue("")
	return w, nil
}

func (w *Wizard) advance(next wizardStep, label string) {
	w.step = next
	w.errMsg = ""
	w.input.Prompt = label
	w.input.SetValue("")
}

func (w *Wizard) question() string {
	switch w.step {
	case stepPath:
		return prompt.QuestionPath
	case stepName:
		return prompt.QuestionName
	case stepCount:
		return prompt.CountQuestion(w.layout)
	case stepParts:
		return prompt.PartsQuestion(w.layout)
	case stepConfirm:
		return prompt.QuestionConfirm
	}
	return ""
}

// View renders the current question.
func (w *Wizard) View() string {
	if w.step == stepDone {
		return ""
	}
	var b strings.Builder
	b.WriteString(w.styles.title.Render("colloquium"))
	b.WriteString("\n\n")
	if w.step == stepConfirm {
		b.WriteString("Planned structure:\n\n")
		b.WriteString(w.plan.Tree(w.renderer))
		b.WriteString("\n\n")
	}
	b.WriteString(w.styles.question.Render(w.question()))
	b.WriteString("\n")
	if w.errMsg != "" {
		b.WriteString(w.styles.err.Render(w.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(w.input.View())
	b.WriteString("\n\n")
	b.WriteString(w.styles.hint.Render("enter: submit · esc: abort"))
	return b.String()
}
