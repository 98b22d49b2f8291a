// Command gallery is a terminal browser for a synthetic photo collection,
// built on the virtualization engine: however large the collection, only
// the tiles near the viewport own a live handle.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/IvanBrykalov/virtgrid/internal/config"
	"github.com/IvanBrykalov/virtgrid/provider"
)

var (
	cfgPath string

	flagItems      int
	flagCellWidth  int
	flagCellHeight int
	flagDebug      bool
	flagLogFile    string
)

var rootCmd = &cobra.Command{
	Use:           "gallery",
	Short:         "Scrollable terminal photo grid on the virtgrid engine",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "YAML settings file")
	rootCmd.Flags().IntVar(&flagItems, "items", 500, "number of items in the collection")
	rootCmd.Flags().IntVar(&flagCellWidth, "cell-width", 18, "cell width in terminal columns")
	rootCmd.Flags().IntVar(&flagCellHeight, "cell-height", 5, "cell height in terminal rows")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "write debug logs to the log file")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "gallery.log", "debug log destination (the TUI owns stdout)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gallery:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	set := config.Settings{
		CellWidth:  flagCellWidth,
		CellHeight: flagCellHeight,
		Items:      flagItems,
		Debug:      flagDebug,
		LogFile:    flagLogFile,
	}
	if cfgPath != "" {
		var err error
		if set, err = config.Load(cfgPath, set); err != nil {
			return err
		}
	}

	logger, err := buildLogger(set)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	photos := provider.NewCached(set.Items, 0, func(_ context.Context, i int) (string, error) {
		return fmt.Sprintf("photo-%04d.jpg", i), nil
	})
	// Prime the first screenful so the initial pass never shows a bare box.
	if err := photos.Warm(context.Background(), 0, 64, 8); err != nil {
		return err
	}

	m := newGalleryModel(set, photos, logger)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	if m.attachErr != nil {
		return m.attachErr
	}
	return nil
}

// buildLogger returns a file-backed development logger when debug is on,
// and a nop logger otherwise. Logging to stdout would fight the TUI.
func buildLogger(set config.Settings) (*zap.Logger, error) {
	if !set.Debug {
		return zap.NewNop(), nil
	}
	path := set.LogFile
	if path == "" {
		path = "gallery.log"
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
