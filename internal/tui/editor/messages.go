package editor

import (
	"github.com/alexisbeaulieu97/pricetable/internal/domain/theme"
)

// ViewMode represents the current screen of the editor
type ViewMode int

const (
	ViewTable ViewMode = iota
	ViewCustomize
)

// String returns the string representation of ViewMode
func (v ViewMode) String() string {
	switch v {
	case ViewTable:
		return "table"
	case ViewCustomize:
		return "customize"
	default:
		return "unknown"
	}
}

const (
	paletteFailureNotice  = "Failed to generate new UI colors. The AI might be busy or an error occurred. Please try again."
	gradientFailureNotice = "Failed to generate a new gradient. The AI might be busy or an error occurred. Please try again."
	exportFailureNotice   = "Failed to download the table image. Check the export directory and try again."
)

// AI palette messages

// PaletteCompleteMsg carries a generated UI palette
type PaletteCompleteMsg struct {
	Palette theme.UIPalette
}

// PaletteErrorMsg is sent when the palette request fails
type PaletteErrorMsg struct {
	Error error
}

// AI gradient messages

// GradientCompleteMsg carries a generated row gradient
type GradientCompleteMsg struct {
	Gradient theme.Gradient
}

// GradientErrorMsg is sent when the gradient request fails
type GradientErrorMsg struct {
	Error error
}

// Export messages

// ExportCompleteMsg is sent when the image has been written
type ExportCompleteMsg struct {
	Path string
}

// ExportErrorMsg is sent when rendering or writing the image fails
type ExportErrorMsg struct {
	Error error
}
