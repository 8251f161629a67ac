// Package sheet owns the whole editing state of a pricing table: packages,
// header labels, title, theme, the pending deletion and the busy flags of
// outstanding collaborator calls. Every transition returns a new State.
package sheet

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/pricetable/internal/domain/pricing"
	"github.com/alexisbeaulieu97/pricetable/internal/domain/theme"
)

var (
	// ErrRowLocked is returned for edits on a row awaiting delete confirmation.
	ErrRowLocked = errors.New("row is pending deletion")
	// ErrUnknownOperation is returned for an Op outside the known set.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrBusy is returned by Begin while the same operation is in flight.
	ErrBusy = errors.New("operation already in progress")
)

// State is an immutable snapshot of the editor.
type State struct {
	Packages pricing.Collection
	Headers  pricing.Headers
	Title    string
	Colors   theme.Colors
	Deletion pricing.Deletion

	busy [opCount]bool
}

// New returns the seeded state. An empty title uses the default.
func New(title string, colors theme.Colors) State {
	if title == "" {
		title = pricing.DefaultTitle
	}
	return State{
		Packages: pricing.SeededCollection(),
		Headers:  pricing.DefaultHeaders(),
		Title:    title,
		Colors:   colors,
	}
}

// RowLocked reports whether the package at index is pending deletion.
func (s State) RowLocked(index int) bool {
	pkg, ok := s.Packages.At(index)
	return ok && s.Deletion.Blocks(pkg.ID)
}

func (s State) unlocked(index int) error {
	if s.RowLocked(index) {
		return fmt.Errorf("package %d: %w", index, ErrRowLocked)
	}
	return nil
}

func (s State) withPackages(c pricing.Collection, err error) (State, error) {
	if err != nil {
		return s, err
	}
	s.Packages = c
	return s, nil
}

// UpdateField commits a raw value to one field of a package.
func (s State) UpdateField(index int, field pricing.Field, raw string) (State, error) {
	if err := s.unlocked(index); err != nil {
		return s, err
	}
	return s.withPackages(s.Packages.UpdateField(index, field, raw))
}

// AddFeature appends a new feature to a package.
func (s State) AddFeature(index int) (State, error) {
	if err := s.unlocked(index); err != nil {
		return s, err
	}
	return s.withPackages(s.Packages.AddFeature(index))
}

// UpdateFeature commits a feature text.
func (s State) UpdateFeature(index, feature int, value string) (State, error) {
	if err := s.unlocked(index); err != nil {
		return s, err
	}
	return s.withPackages(s.Packages.UpdateFeature(index, feature, value))
}

// DeleteFeature removes one feature from a package.
func (s State) DeleteFeature(index, feature int) (State, error) {
	if err := s.unlocked(index); err != nil {
		return s, err
	}
	return s.withPackages(s.Packages.DeleteFeature(index, feature))
}

// AddPackage appends a new package with a fresh id.
func (s State) AddPackage() (State, pricing.Package) {
	var pkg pricing.Package
	s.Packages, pkg = s.Packages.AddPackage()
	return s, pkg
}

// InitiateDelete marks the package at index as pending deletion.
func (s State) InitiateDelete(index int) (State, error) {
	pkg, ok := s.Packages.At(index)
	if !ok {
		return s, fmt.Errorf("package index %d (have %d): %w", index, s.Packages.Len(), pricing.ErrIndexOutOfRange)
	}
	s.Deletion = s.Deletion.Initiate(pkg.ID)
	return s, nil
}

// ConfirmDelete removes the pending package, if any, and returns to idle.
func (s State) ConfirmDelete() (State, error) {
	packages, deletion, err := s.Deletion.Confirm(s.Packages)
	if err != nil {
		return s, err
	}
	s.Packages = packages
	s.Deletion = deletion
	return s, nil
}

// CancelDelete clears the pending deletion.
func (s State) CancelDelete() State {
	s.Deletion = s.Deletion.Cancel()
	return s
}

// SetHeader sets a column label; blank restores the default.
func (s State) SetHeader(index int, value string) (State, error) {
	headers, err := s.Headers.Set(index, value)
	if err != nil {
		return s, err
	}
	s.Headers = headers
	return s, nil
}

// SetTitle stores the banner title verbatim.
func (s State) SetTitle(value string) State {
	s.Title = value
	return s
}

// SetColor stores one theme role verbatim.
func (s State) SetColor(role theme.Role, value string) State {
	s.Colors = s.Colors.With(role, value)
	return s
}

// ResetColors restores the default theme. It does not touch the pending
// deletion.
func (s State) ResetColors() State {
	s.Colors = theme.Defaults()
	return s
}

// ApplySuggestion overwrites the roles carried by a generated suggestion.
// An invalid suggestion leaves the theme unchanged.
func (s State) ApplySuggestion(suggestion theme.Suggestion) (State, error) {
	colors, err := theme.Apply(s.Colors, suggestion)
	if err != nil {
		return s, err
	}
	s.Colors = colors
	return s, nil
}
