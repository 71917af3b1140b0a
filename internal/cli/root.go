package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kingrea/colloquium/internal/config"
	"github.com/kingrea/colloquium/internal/logging"
)

type rootOptions struct {
	configPath string
	logFile    string
	useTUI     bool
}

// Execute runs the root command against the process stdio.
func Execute() error {
	return NewRoot().Execute()
}

// NewRoot builds the colloquium command. Run without flags it asks its
// questions on stdin/stdout and writes the tree after confirmation.
func NewRoot() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "colloquium",
		Short:         "Scaffold a LaTeX colloquium with a parts/ directory",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-file") {
				cfg.SetLogFile(opts.logFile)
			}

			log, err := logging.New(cfg.LogPath())
			if err != nil {
				// a broken log location must not block scaffolding
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
			}
			defer log.Close()

			source := cfg.Path
			if source == "" {
				source = "defaults"
			}
			log.Info("run started · settings: %s", source)

			p := &pipeline{
				in:  cmd.InOrStdin(),
				out: cmd.OutOrStdout(),
				cfg: cfg,
				log: log,
			}
			run := p.runPrompts
			if opts.useTUI {
				run = p.runWizard
			}
			if err := run(); err != nil {
				log.Error("run failed: %v", err)
				return err
			}
			return nil
		},
	}
	root.Flags().StringVar(&opts.configPath, "config", "", "settings file (default: user config dir/colloquium/config.yaml)")
	root.Flags().StringVar(&opts.logFile, "log-file", "", "append a run log to this file (off by default)")
	root.Flags().BoolVar(&opts.useTUI, "tui", false, "use the full-screen wizard instead of line prompts")
	return root
}
