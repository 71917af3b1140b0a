package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/colloquium/internal/prompt"
	"github.com/kingrea/colloquium/internal/scaffold"
)

func answer(t *testing.T, w *Wizard, value string) tea.Cmd {
	t.Helper()
	if value != "" {
		w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)})
	}
	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestWizardCollectsAndConfirms(t *testing.T) {
	w := New("> ", scaffold.DefaultLayout(), nil)
	for _, v := range []string{"/tmp/out", "algebra", "2", "intro"} {
		if cmd := answer(t, w, v); isQuit(cmd) {
			t.Fatalf("wizard quit early after %q", v)
		}
	}
	if !strings.Contains(w.View(), "2: ") {
		t.Fatalf("expected second part label in view:\n%s", w.View())
	}
	answer(t, w, "proofs")
	if w.step != stepConfirm {
		t.Fatalf("step = %d, want confirm", w.step)
	}
	view := w.View()
	for _, want := range []string{"Planned structure:", "intro.tex", "proofs.tex", "algebra.tex", prompt.QuestionConfirm} {
		if !strings.Contains(view, want) {
			t.Fatalf("confirm view missing %q:\n%s", want, view)
		}
	}
	if cmd := answer(t, w, "YES"); !isQuit(cmd) {
		t.Fatalf("confirmation should quit the program")
	}
	if !w.Done() || !w.Confirmed() {
		t.Fatalf("expected confirmed wizard")
	}
	plan := w.Plan()
	if plan.MainFile != "algebra.tex" || strings.Join(plan.PartFiles, ",") != "intro.tex,proofs.tex" {
		t.Fatalf("unexpected plan %+v", plan)
	}
}

func TestWizardRejectsInvalidAnswers(t *testing.T) {
	w := New("> ", scaffold.DefaultLayout(), nil)
	answer(t, w, "   ")
	if w.step != stepPath || w.errMsg != prompt.MsgInvalidPath {
		t.Fatalf("empty path should be rejected, step=%d err=%q", w.step, w.errMsg)
	}
	if !strings.Contains(w.View(), prompt.MsgInvalidPath) {
		t.Fatalf("view should show the validation message")
	}
	answer(t, w, "base")
	answer(t, w, "")
	if w.errMsg != prompt.MsgInvalidName {
		t.Fatalf("err = %q, want %q", w.errMsg, prompt.MsgInvalidName)
	}
	answer(t, w, "name")
	for _, bad := range []string{"abc", "0", "-3"} {
		answer(t, w, bad)
		if w.step != stepCount || w.errMsg != prompt.MsgInvalidCount {
			t.Fatalf("count %q should be rejected, step=%d err=%q", bad, w.step, w.errMsg)
		}
	}
	answer(t, w, "1")
	answer(t, w, "")
	if w.errMsg != prompt.MsgEmptyFile {
		t.Fatalf("err = %q, want %q", w.errMsg, prompt.MsgEmptyFile)
	}
	answer(t, w, "only")
	if w.step != stepConfirm || w.errMsg != "" {
		t.Fatalf("expected confirm step with cleared error, step=%d err=%q", w.step, w.errMsg)
	}
	if got := w.rc.PartNames; len(got) != 1 || got[0] != "only" {
		t.Fatalf("PartNames = %v", got)
	}
}

func TestWizardDeclines(t *testing.T) {
	for _, reply := range []string{"n", "", "maybe"} {
		w := New("> ", scaffold.DefaultLayout(), nil)
		for _, v := range []string{"b", "p", "1", "x"} {
			answer(t, w, v)
		}
		if cmd := answer(t, w, reply); !isQuit(cmd) {
			t.Fatalf("decline %q should quit", reply)
		}
		if w.Confirmed() {
			t.Fatalf("reply %q must not confirm", reply)
		}
	}
}

func TestWizardEscapeCancels(t *testing.T) {
	w := New("> ", scaffold.DefaultLayout(), nil)
	answer(t, w, "base")
	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) {
		t.Fatalf("esc should quit")
	}
	if !w.Done() || w.Confirmed() {
		t.Fatalf("esc should finish without confirming")
	}
	if w.View() != "" {
		t.Fatalf("finished wizard should render nothing")
	}
}

func TestWizardRendersThroughProgramOutput(t *testing.T) {
	var out bytes.Buffer
	w := New("> ", scaffold.DefaultLayout(), lipgloss.NewRenderer(&out))
	for _, v := range []string{"/tmp/out", "algebra", "2", "intro", "proofs"} {
		answer(t, w, v)
	}
	view := w.View()
	tree := "/tmp/out/\n" +
		"└─ algebra/\n" +
		"   ├─ parts/\n" +
		"   │  ├─ intro.tex\n" +
		"   │  └─ proofs.tex\n" +
		"   └─ algebra.tex"
	if !strings.Contains(view, tree) {
		t.Fatalf("confirm view missing plain tree:\n%s", view)
	}
}
