package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/faizmokh/dashdo/internal/config"
	"github.com/faizmokh/dashdo/internal/ctxlog"
	"github.com/faizmokh/dashdo/internal/files"
	"github.com/faizmokh/dashdo/internal/lists"
	"github.com/faizmokh/dashdo/internal/logging"
	"github.com/faizmokh/dashdo/internal/ui"
)

// app holds the collaborators shared by every subcommand. The root command
// fills it in before any subcommand runs.
type app struct {
	cfg     *config.Config
	manager *files.Manager
	reader  *lists.Reader
	writer  *lists.Writer
}

func newApp(cfg *config.Config) (*app, error) {
	manager, err := files.NewManager(cfg.Home, cfg.Extension)
	if err != nil {
		return nil, err
	}
	reader := lists.NewReader(manager, cfg.Cache.Size, cfg.Cache.TTL)
	return &app{
		cfg:     cfg,
		manager: manager,
		reader:  reader,
		writer:  lists.NewWriter(manager, reader),
	}, nil
}

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand() *cobra.Command {
	var (
		configFlag string
		homeFlag   string
		verbose    bool
	)
	a := &app{}

	cmd := &cobra.Command{
		Use:   "dashdo [list]",
		Short: "Keep nested todo lists in plain dash-outline files.",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			if homeFlag != "" {
				cfg.Home = homeFlag
			}
			if verbose {
				cfg.Logger.Level = "debug"
			}

			logger, err := logging.New(cfg.Logger)
			if err != nil {
				return err
			}
			built, err := newApp(cfg)
			if err != nil {
				return err
			}
			*a = *built

			logger.Debug("configuration loaded",
				zap.String("home", a.manager.BasePath()),
				zap.String("extension", cfg.Extension),
			)
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.DefaultList
			if len(args) == 1 {
				name = args[0]
			}
			if _, err := a.manager.EnsureListFile(name); err != nil {
				return err
			}
			m := ui.NewModel(cmd.Context(), a.reader, a.writer, name)
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to a config file (default: config.yaml in $DASHDO_HOME or .)")
	cmd.PersistentFlags().StringVar(&homeFlag, "home", "", "Directory holding list files (overrides config)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	cmd.AddCommand(
		newListsCommand(a),
		newShowCommand(a),
		newCheckCommand(a),
		newParseCommand(),
		newFmtCommand(a),
		newAddCommand(a),
		newToggleCommand(a),
		newEditCommand(a),
		newDeleteCommand(a),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// Main is a helper used by cmd/dashdo/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
