package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// Logger receives one line per filesystem action. *logging.Logger
// satisfies it.
type Logger interface {
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Result lists what Materialize wrote.
type Result struct {
	ProjectPath string
	PartsPath   string
	Files       []string
}

// ProjectPath returns <base>/<project>.
func (p FilePlan) ProjectPath() string {
	return filepath.Join(p.BasePath, p.ProjectName)
}

// PartsPath returns <base>/<project>/<parts dir>.
func (p FilePlan) PartsPath() string {
	return filepath.Join(p.ProjectPath(), p.PartsDir)
}

// Materialize creates the directory tree and writes every file of the plan.
// Existing directories are reused and existing files are overwritten, so
// running it twice yields the same tree. Nothing is rolled back on error.
func Materialize(plan FilePlan, log Logger) (Result, error) {
	res := Result{ProjectPath: plan.ProjectPath(), PartsPath: plan.PartsPath()}

	// os.MkdirAll is a no-op for directories that already exist
	if err := os.MkdirAll(res.PartsPath, 0o755); err != nil {
		logError(log, "create %s: %v", res.PartsPath, err)
		return res, fmt.Errorf("scaffold: create %s: %w", res.PartsPath, err)
	}

	partMarker := plan.PartMarker()
	for _, name := range plan.PartFiles {
		path := filepath.Join(res.PartsPath, name)
		if err := writeMarker(path, partMarker); err != nil {
			logError(log, "write %s: %v", path, err)
			return res, err
		}
		logInfo(log, "wrote %s", path)
		res.Files = append(res.Files, path)
	}

	mainPath := filepath.Join(res.ProjectPath, plan.MainFile)
	if err := writeMarker(mainPath, plan.MainMarker()); err != nil {
		logError(log, "write %s: %v", mainPath, err)
		return res, err
	}
	logInfo(log, "wrote %s", mainPath)
	res.Files = append(res.Files, mainPath)
	return res, nil
}

func writeMarker(path, marker string) error {
	if err := os.WriteFile(path, []byte(marker), 0o644); err != nil {
		return fmt.Errorf("scaffold: write %s: %w", path, err)
	}
	return nil
}

func logInfo(log Logger, format string, args ...any) {
	if log == nil {
		return
	}
	log.Info(format, args...)
}

func logError(log Logger, format string, args ...any) {
	if log == nil {
		return
	}
	log.Error(format, args...)
}
