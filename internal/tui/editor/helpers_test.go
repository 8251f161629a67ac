package editor

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pricetable/internal/domain/sheet"
	"github.com/alexisbeaulieu97/pricetable/internal/domain/theme"
	"github.com/alexisbeaulieu97/pricetable/internal/export"
)

type fakeSuggester struct {
	palette  theme.UIPalette
	gradient theme.Gradient
	err      error
}

func (f *fakeSuggester) SuggestPalette(context.Context) (theme.UIPalette, error) {
	return f.palette, f.err
}

func (f *fakeSuggester) SuggestGradient(context.Context) (theme.Gradient, error) {
	return f.gradient, f.err
}

type fakeExporter struct {
	table export.Table
	calls int
	err   error
}

func (f *fakeExporter) Export(_ context.Context, t export.Table) (string, error) {
	f.calls++
	f.table = t
	if f.err != nil {
		return "", f.err
	}
	return export.FileName(t.Title), nil
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()

	m := NewModel(sheet.New("", theme.Defaults()), opts)
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	model, ok := newModel.(Model)
	require.True(t, ok)
	return model
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press sends each key in order
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, k := range keys {
		newModel, _ := m.Update(keyMsg(k))
		model, ok := newModel.(Model)
		require.True(t, ok)
		m = model
	}
	return m
}

// send feeds a non-key message
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	newModel, cmd := m.Update(msg)
	model, ok := newModel.(Model)
	require.True(t, ok)
	return model, cmd
}

// replaceDraft clears the open draft and types text into it
func replaceDraft(t *testing.T, m Model, text string) Model {
	t.Helper()
	require.True(t, m.Editing())
	return press(t, m, "ctrl+u", text)
}
