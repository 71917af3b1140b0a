// internal/scaffold/plan.go
//
// A colloquium is a two-level LaTeX layout:
//
// <base>/<project>/
// ├── parts/
// │   ├── <part>.tex   <- "% !TeX root = ../<project>.tex"
// │   └── ...
// └── <project>.tex    <- "% !TeX root = <project>.tex"

package scaffold

import (
	"strconv"
	"strings"
)

const (
	// DefaultExtension is appended to every generated file name.
	DefaultExtension = ".tex"
	// DefaultPartsDir is the subdirectory holding the part files.
	DefaultPartsDir = "parts"

	rootMarkerPrefix = "% !TeX root = "
)

// RunConfig holds the answers collected for a single run.
type RunConfig struct {
	BasePath    string
	ProjectName string
	PartNames   []string
}

// Layout controls naming of the generated tree.
type Layout struct {
	Extension string
	PartsDir  string
}

// DefaultLayout returns the stock .tex / parts layout.
func DefaultLayout() Layout {
	return Layout{Extension: DefaultExtension, PartsDir: DefaultPartsDir}
}

// FilePlan is the derived list of files for a RunConfig. It is not modified
// after NewPlan returns.
type FilePlan struct {
	BasePath    string
	ProjectName string
	PartsDir    string
	PartFiles   []string
	MainFile    string
}

// NewPlan derives the file plan. Part order follows the input order and
// duplicate names are kept.
func NewPlan(rc RunConfig, layout Layout) FilePlan {
	layout = layout.Normalized()
	parts := make([]string, 0, len(rc.PartNames))
	for _, name := range rc.PartNames {
		parts = append(parts, name+layout.Extension)
	}
	return FilePlan{
		BasePath:    rc.BasePath,
		ProjectName: rc.ProjectName,
		PartsDir:    layout.PartsDir,
		PartFiles:   parts,
		MainFile:    rc.ProjectName + layout.Extension,
	}
}

// PartMarker is the content written into every part file.
func (p FilePlan) PartMarker() string {
	return rootMarkerPrefix + "../" + p.MainFile
}

// MainMarker is the content written into the main file.
func (p FilePlan) MainMarker() string {
	return rootMarkerPrefix + p.MainFile
}

// Normalized fills in defaults and ensures the extension starts with a dot.
func (l Layout) Normalized() Layout {
	ext := strings.TrimSpace(l.Extension)
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	dir := strings.TrimSpace(l.PartsDir)
	if dir == "" {
		dir = DefaultPartsDir
	}
	return Layout{Extension: ext, PartsDir: dir}
}

// ValidText reports whether a trimmed answer is usable as a path or name.
func ValidText(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ParseCount parses a part count. Only strictly positive integers are valid.
func ParseCount(value string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// IsAffirmative reports whether a confirmation answer means "go ahead".
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
