package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/colloquium/internal/config"
	"github.com/kingrea/colloquium/internal/logging"
	"github.com/kingrea/colloquium/internal/prompt"
	"github.com/kingrea/colloquium/internal/scaffold"
	"github.com/kingrea/colloquium/internal/tui"
)

const (
	msgAborted = "Aborted."
	msgCreated = "\nStructure successfully created!"
)

// pipeline runs collect -> plan -> preview -> confirm -> materialize.
type pipeline struct {
	in  io.Reader
	out io.Writer
	cfg *config.Config
	log *logging.Logger
}

// runNewProgram is swapped in tests to drive the wizard without a terminal.
var runNewProgram = func(model tea.Model, in io.Reader, out io.Writer) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out)).Run()
}

func (p *pipeline) runPrompts() error {
	layout := p.cfg.Layout()
	c := prompt.NewCollector(p.in, p.out, p.cfg.Prompt(), layout)
	rc, err := c.Collect()
	if err != nil {
		return err
	}

	plan := scaffold.NewPlan(rc, layout)
	p.log.Info("planned %s with %d part(s)", plan.ProjectPath(), len(plan.PartFiles))
	if err := scaffold.WritePreview(p.out, plan); err != nil {
		return err
	}

	ok, err := c.Confirm()
	if err != nil {
		return err
	}
	if !ok {
		return p.abort()
	}
	return p.materialize(plan)
}

func (p *pipeline) runWizard() error {
	w := tui.New(p.cfg.Prompt(), p.cfg.Layout(), lipgloss.NewRenderer(p.out))
	final, err := runNewProgram(w, p.in, p.out)
	if err != nil {
		return fmt.Errorf("cli: run wizard: %w", err)
	}
	done, ok := final.(*tui.Wizard)
	if !ok || !done.Confirmed() {
		return p.abort()
	}
	plan := done.Plan()
	p.log.Info("planned %s with %d part(s)", plan.ProjectPath(), len(plan.PartFiles))
	if err := scaffold.WritePreview(p.out, plan); err != nil {
		return err
	}
	return p.materialize(plan)
}

func (p *pipeline) abort() error {
	p.log.Info("aborted before writing")
	fmt.Fprintln(p.out, msgAborted)
	return nil
}

func (p *pipeline) materialize(plan scaffold.FilePlan) error {
	res, err := scaffold.Materialize(plan, p.log)
	if err != nil {
		return err
	}
	p.log.Info("created %s (%d files)", res.ProjectPath, len(res.Files))
	fmt.Fprintln(p.out, msgCreated)
	return nil
}
