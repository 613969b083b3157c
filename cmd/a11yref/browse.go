package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/a11yref/a11yref/internal/tui"
)

func (a *app) newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Search the reference interactively",
		Long: `Browse opens a search box in the terminal. Type to filter, use the arrow keys to move
through results, Enter to open one and Esc to clear. Quit with ctrl+c, or q on an empty query.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			assets, err := a.load()
			if err != nil {
				return err
			}

			log, closeLog, err := newTUILogger(a.v.GetString("tui.log-file"), a.v.GetString("log-level"))
			if err != nil {
				return err
			}
			defer closeLog()

			log.WithField("entries", assets.Catalog.Len()).Info("browse started")
			return tui.Run(assets.Catalog.Entries(), assets.Patterns, log, tea.WithAltScreen())
		},
	}

	cmd.Flags().String("log-file", "", "write a debug log to this file (the terminal is owned by the UI)")
	_ = a.v.BindPFlag("tui.log-file", cmd.Flags().Lookup("log-file"))
	return cmd
}

// newTUILogger returns a JSON logrus logger writing to path, or discarding when path is empty.
func newTUILogger(path, level string) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}

	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, func() { _ = f.Close() }, nil
}
