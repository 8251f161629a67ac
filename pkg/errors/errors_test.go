package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("pricetable.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "pricetable.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "pricetable.yaml")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("primary", "is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "primary", validationErr.Field)
	require.Contains(t, validationErr.Message, "is required")
}

func TestCollaboratorErrorIncludesOperation(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("connection refused")
	err := NewCollaboratorError("ollama", "suggest palette", underlying)

	var collabErr *CollaboratorError
	require.ErrorAs(t, err, &collabErr)
	require.Equal(t, "ollama", collabErr.Collaborator)
	require.Equal(t, "suggest palette", collabErr.Op)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "ollama suggest palette failed: connection refused", err.Error())
}

func TestCollaboratorErrorWithoutOperation(t *testing.T) {
	t.Parallel()

	err := NewCollaboratorError("exporter", "", stdErrors.New("disk full"))
	require.Equal(t, "exporter failed: disk full", err.Error())
}
