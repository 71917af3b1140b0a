package scaffold

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	branchMid  = "├─"
	branchLast = "└─"
	branchPipe = "│ "
)

// treeStyles colour the preview on a terminal. On anything else the
// renderer falls back to plain text.
type treeStyles struct {
	dir    lipgloss.Style
	file   lipgloss.Style
	branch lipgloss.Style
}

func newTreeStyles(r *lipgloss.Renderer) treeStyles {
	return treeStyles{
		dir:    r.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true),
		file:   r.NewStyle().Foreground(lipgloss.Color("#CCCCCC")),
		branch: r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

// Tree renders the planned hierarchy, one entry per line, without the
// surrounding heading.
func (p FilePlan) Tree(r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	st := newTreeStyles(r)
	var lines []string
	lines = append(lines, st.dir.Render(trimBase(p.BasePath)+"/"))
	lines = append(lines, st.branch.Render(branchLast)+" "+st.dir.Render(p.ProjectName+"/"))
	lines = append(lines, "   "+st.branch.Render(branchMid)+" "+st.dir.Render(p.PartsDir+"/"))
	for i, f := range p.PartFiles {
		connector := branchMid
		if i == len(p.PartFiles)-1 {
			connector = branchLast
		}
		lines = append(lines, "   "+st.branch.Render(branchPipe)+" "+st.branch.Render(connector)+" "+st.file.Render(f))
	}
	lines = append(lines, "   "+st.branch.Render(branchLast)+" "+st.file.Render(p.MainFile))
	return strings.Join(lines, "\n")
}

// WritePreview prints the "Planned structure" block to w.
func WritePreview(w io.Writer, plan FilePlan) error {
	r := lipgloss.NewRenderer(w)
	_, err := fmt.Fprintf(w, "\nPlanned structure:\n\n%s\n\n", plan.Tree(r))
	return err
}

func trimBase(base string) string {
	return strings.TrimRight(base, "/"+string(filepath.Separator))
}
