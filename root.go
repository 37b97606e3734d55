package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/electr1fy0/jot/config"
	"github.com/electr1fy0/jot/logger"
	"github.com/electr1fy0/jot/model"
	"github.com/electr1fy0/jot/notes"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "A small notes editor for the terminal",
	Long: `jot keeps a list of notes in memory for one editing session.
Pick a note from the sidebar, edit its title and body, and save.
Nothing is written to disk unless you export.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// stdout belongs to the UI, so logs only go to a configured file
		log, closeLog, err := logger.New().
			FromPath(cfg.Log.File).
			Level(cfg.Log.Level).
			Debug(debug).
			Make()
		if err != nil {
			return err
		}
		defer closeLog()

		m := model.New(model.Options{
			Store:        newStore(cfg, log),
			Logger:       &log,
			Editor:       cfg.Editor,
			PreviewStyle: cfg.Preview.Style,
			PreviewWidth: cfg.Preview.Width,
			ExportDir:    cfg.Export.Dir,
		})
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run: %w", err)
		}
		return nil
	},
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.config/jot/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newStore(cfg *config.Config, log zerolog.Logger) *notes.Store {
	return notes.NewStore(
		notes.WithLogger(log),
		notes.WithSeed(cfg.Seed.Title, cfg.Seed.Body),
	)
}
