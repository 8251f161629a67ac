package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pricetable/internal/domain/theme"
	"github.com/alexisbeaulieu97/pricetable/internal/export"
)

var (
	// Colors
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink
	pendingColor = lipgloss.Color(export.PendingBackground)
	actionColor  = lipgloss.Color("#dc2626")

	// Selection inside a cell
	selectedCellStyle = lipgloss.NewStyle().
				Reverse(true).
				Bold(true)

	// "NEW" tag above the title
	newTagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#16a34a")).
			Background(lipgloss.Color("#ffffff")).
			Padding(0, 1)

	// Footer style
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			MarginTop(1)

	// Notice banner style
	noticeBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Background(lipgloss.Color("52")). // Dark red background
				Bold(true).
				Padding(1, 2).
				MarginBottom(1).
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(errorColor)

	// Status line style
	statusStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Italic(true)

	// Customize panel styles
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2).
			MarginTop(1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	panelSectionStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Bold(true).
				MarginTop(1)

	roleLabelStyle = lipgloss.NewStyle().
			Width(20)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Spinner style
	spinnerStyle = lipgloss.NewStyle().
			Foreground(accentColor)
)

// roleColor returns the terminal color of a theme role
func roleColor(colors theme.Colors, role theme.Role) lipgloss.Color {
	return lipgloss.Color(colors.Hex(role))
}

// bannerStyle paints the title banner with the primary role
func bannerStyle(colors theme.Colors) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(roleColor(colors, theme.RoleHeaderText)).
		Background(roleColor(colors, theme.RolePrimary)).
		Padding(1, 4).
		Align(lipgloss.Center)
}

// swatchStyle renders a small block in the role color
func swatchStyle(colors theme.Colors, role theme.Role) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(roleColor(colors, role)).
		Width(4)
}

// headerCellStyle styles the column labels
func headerCellStyle(colors theme.Colors) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(roleColor(colors, theme.RoleHeaderText)).
		Background(roleColor(colors, theme.RoleTableHeader)).
		Padding(0, 1)
}

// rowCellStyle styles one package cell. The background follows the row
// gradient from the first to the last column.
func rowCellStyle(colors theme.Colors, col, cols int, pending bool) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)

	if pending {
		style = style.Background(pendingColor)
	} else {
		t := 0.0
		if cols > 1 {
			t = float64(col) / float64(cols-1)
		}
		style = style.Background(lipgloss.Color(colors.GradientAt(t).Hex()))
	}

	switch col {
	case colName:
		style = style.Bold(true).Foreground(roleColor(colors, theme.RolePackageText))
	case colFeatures, colDetails:
		style = style.Foreground(roleColor(colors, theme.RoleDetailsText))
	case colPrice, colSellPrice:
		style = style.Bold(true).Foreground(roleColor(colors, theme.RolePriceText)).Align(lipgloss.Right)
	default:
		style = style.Foreground(actionColor).Align(lipgloss.Right)
	}

	return style
}
