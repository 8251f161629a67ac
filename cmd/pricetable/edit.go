package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/pricetable/internal/domain/sheet"
	"github.com/alexisbeaulieu97/pricetable/internal/tui/editor"
)

var errNotTerminal = errors.New("the editor needs an interactive terminal; use `pricetable export` for headless rendering")

// isTerminal is swapped out in tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func newEditCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive pricing table editor",
		Long:  `Open the terminal editor with the seeded package table. Edit cells inline, customize the theme, ask the AI model for colors and download the table as a PNG.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd, flags)
		},
	}

	return cmd
}

func runEditor(cmd *cobra.Command, flags *rootFlags) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNotTerminal
	}

	app, err := newAppContext(flags, cmd.ErrOrStderr(), true)
	if err != nil {
		return err
	}
	defer app.Close()

	cfg := app.Config
	model := editor.NewModel(sheet.New(cfg.Title, cfg.Colors()), editor.Options{
		Suggester: app.Suggester(),
		Exporter:  app.Exporter(cfg.Export.Dir, cfg.Export.Scale),
		Logger:    app.Logger,
	})

	app.Logger.WithFields(map[string]any{"title": cfg.Title, "model": cfg.AI.Model}).Info("editor started")

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		app.Logger.Error(err, "editor failed")
		return fmt.Errorf("run editor: %w", err)
	}

	app.Logger.Info("editor stopped")
	return nil
}
