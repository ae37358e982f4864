package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/rebeliceyang/lazyjson/internal/app"
	"github.com/rebeliceyang/lazyjson/internal/config"
	"github.com/rebeliceyang/lazyjson/internal/history"
)

var (
	flagTheme   string
	flagNoMouse bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lazyjson [file]",
	Short: "A terminal UI for exploring JSON files",
	Long: `lazyjson loads a JSON file into a two-panel terminal UI:
an expandable tree on the left and the pretty-printed value on the
right. Navigate into subtrees, step back out, and export slices.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme (default, catppuccin-mocha)")
	rootCmd.Flags().BoolVar(&flagNoMouse, "no-mouse", false, "disable mouse support")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("could not load config, using defaults", "err", err)
		cfg = config.GetDefaults()
	}
	if flagTheme != "" {
		cfg.UI.Theme = flagTheme
	}
	if flagNoMouse {
		cfg.UI.MouseEnabled = false
	}

	a := app.New(cfg, logger)

	if cfg.History.Enabled {
		store, err := openHistory()
		if err != nil {
			logger.Warn("recent files disabled", "err", err)
		} else {
			defer func() { _ = store.Close() }()
			a.SetHistory(store)
		}
	}

	if len(args) == 1 {
		a.SetInitialFile(args[0])
	}

	if cfg.UI.MouseEnabled {
		zone.NewGlobal()
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(a, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func openHistory() (*history.Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	appDir := filepath.Join(dir, "lazyjson")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return nil, err
	}
	return history.NewStore(filepath.Join(appDir, "history.db"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
