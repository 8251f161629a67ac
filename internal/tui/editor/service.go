package editor

import (
	"context"

	"github.com/alexisbeaulieu97/pricetable/internal/domain/theme"
	"github.com/alexisbeaulieu97/pricetable/internal/export"
)

// Suggester defines the AI color operations needed by the editor
type Suggester interface {
	SuggestPalette(ctx context.Context) (theme.UIPalette, error)
	SuggestGradient(ctx context.Context) (theme.Gradient, error)
}

// Exporter writes a table snapshot to an image and returns its path
type Exporter interface {
	Export(ctx context.Context, t export.Table) (string, error)
}
