package editor

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pricetable/internal/export"
)

// paletteCmd requests a UI palette asynchronously
func paletteCmd(ctx context.Context, svc Suggester) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return PaletteErrorMsg{Error: fmt.Errorf("no color suggester configured")}
		}

		palette, err := svc.SuggestPalette(ctx)
		if err != nil {
			return PaletteErrorMsg{Error: err}
		}

		return PaletteCompleteMsg{Palette: palette}
	}
}

// gradientCmd requests a row gradient asynchronously
func gradientCmd(ctx context.Context, svc Suggester) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return GradientErrorMsg{Error: fmt.Errorf("no color suggester configured")}
		}

		gradient, err := svc.SuggestGradient(ctx)
		if err != nil {
			return GradientErrorMsg{Error: err}
		}

		return GradientCompleteMsg{Gradient: gradient}
	}
}

// exportCmd writes the snapshot asynchronously
func exportCmd(ctx context.Context, svc Exporter, table export.Table) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return ExportErrorMsg{Error: fmt.Errorf("no exporter configured")}
		}

		path, err := svc.Export(ctx, table)
		if err != nil {
			return ExportErrorMsg{Error: err}
		}

		return ExportCompleteMsg{Path: path}
	}
}
