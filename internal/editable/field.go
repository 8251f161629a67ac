// Package editable implements the click-to-edit text cell used throughout
// the table: a committed value shown read-only until editing begins, and a
// draft that is either committed or thrown away.
package editable

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode is the field's edit state.
type Mode int

const (
	Viewing Mode = iota
	Editing
)

// Result reports how an Update ended an edit.
type Result struct {
	// Done is set when the edit ended on this message.
	Done bool
	// Changed is set when Value should be handed to the owner.
	Changed bool
	Value   string
}

// Field is a single editable value. The zero value is not usable; call New.
type Field struct {
	value    string
	mode     Mode
	disabled bool
	filter   Filter
	input    textinput.Model
}

// Option configures a Field.
type Option func(*Field)

// WithFilter sets the keystroke filter.
func WithFilter(f Filter) Option {
	return func(fd *Field) {
		fd.filter = f
	}
}

// WithCharLimit caps the draft length.
func WithCharLimit(n int) Option {
	return func(fd *Field) {
		fd.input.CharLimit = n
	}
}

// New returns a Field in Viewing mode showing value.
func New(value string, opts ...Option) Field {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 0

	f := Field{value: value, input: in}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Value returns the committed value.
func (f Field) Value() string {
	return f.value
}

// Draft returns the text being edited.
func (f Field) Draft() string {
	return f.input.Value()
}

// Mode returns the current edit state.
func (f Field) Mode() Mode {
	return f.mode
}

// Editing reports whether a draft is open.
func (f Field) Editing() bool {
	return f.mode == Editing
}

// Disabled reports whether Begin is suppressed.
func (f Field) Disabled() bool {
	return f.disabled
}

// SetDisabled toggles the read-only state. Disabling drops an open draft.
func (f Field) SetDisabled(disabled bool) Field {
	f.disabled = disabled
	if disabled && f.mode == Editing {
		f = f.Cancel()
	}
	return f
}

// SetValue replaces the committed value from the owner. An open draft is
// reset to the new value.
func (f Field) SetValue(v string) Field {
	if v == f.value {
		return f
	}
	f.value = v
	if f.mode == Editing {
		f.input.SetValue(v)
		f.input.CursorEnd()
	}
	return f
}

// Begin opens a draft seeded with the committed value.
func (f Field) Begin() (Field, tea.Cmd) {
	if f.disabled || f.mode == Editing {
		return f, nil
	}
	f.mode = Editing
	f.input.SetValue(f.value)
	f.input.CursorEnd()
	return f, f.input.Focus()
}

// Commit closes the draft. A blank draft is discarded; a draft equal to
// the committed value reports no change.
func (f Field) Commit() (Field, string, bool) {
	if f.mode != Editing {
		return f, f.value, false
	}
	draft := strings.TrimSpace(f.input.Value())
	f = f.close()
	if draft == "" || draft == f.value {
		return f, f.value, false
	}
	f.value = draft
	return f, draft, true
}

// Cancel drops the draft and keeps the committed value.
func (f Field) Cancel() Field {
	if f.mode != Editing {
		return f
	}
	return f.close()
}

func (f Field) close() Field {
	f.mode = Viewing
	f.input.Blur()
	f.input.SetValue("")
	return f
}

// Update feeds a message to an open draft. Enter commits, Esc cancels and
// every other key is filtered and passed to the input.
func (f Field) Update(msg tea.Msg) (Field, Result, tea.Cmd) {
	if f.mode != Editing {
		return f, Result{}, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			next, value, changed := f.Commit()
			return next, Result{Done: true, Changed: changed, Value: value}, nil
		case tea.KeyEsc:
			return f.Cancel(), Result{Done: true, Value: f.value}, nil
		case tea.KeyRunes, tea.KeySpace:
			if f.filter != nil {
				key.Runes = f.filter(f.input.Value(), key.Runes)
				if len(key.Runes) == 0 {
					return f, Result{}, nil
				}
				msg = key
			}
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, Result{}, cmd
}

// View renders the draft input while editing, otherwise the committed value.
func (f Field) View() string {
	if f.mode == Editing {
		return f.input.View()
	}
	return f.value
}
