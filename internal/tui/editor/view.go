package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexisbeaulieu97/pricetable/internal/domain/pricing"
	"github.com/alexisbeaulieu97/pricetable/internal/domain/sheet"
	"github.com/alexisbeaulieu97/pricetable/internal/domain/theme"
	"github.com/alexisbeaulieu97/pricetable/internal/export"
)

const (
	generatingLabel  = "Generating..."
	downloadingLabel = "Downloading..."

	// Number of roles listed under "UI Colors"; the rest are the row gradient.
	uiRoleCount = 6
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	content.WriteString(m.renderBanner())
	content.WriteString("\n")

	if m.notice != "" {
		content.WriteString(m.renderNotice())
		content.WriteString("\n")
	}

	content.WriteString(m.renderTable())
	content.WriteString("\n")

	if m.viewMode == ViewCustomize {
		content.WriteString(m.renderCustomizePanel())
		content.WriteString("\n")
	}

	content.WriteString(m.renderFooter())

	return content.String()
}

// renderBanner renders the NEW tag and the editable title
func (m Model) renderBanner() string {
	title := m.cellText(rowTitle, colName, m.state.Title)
	inner := lipgloss.JoinVertical(lipgloss.Center, newTagStyle.Render("NEW"), title)
	return bannerStyle(m.state.Colors).Render(inner)
}

// renderNotice renders the blocking notice
func (m Model) renderNotice() string {
	return noticeBannerStyle.Render(fmt.Sprintf("⚠ %s\n\nPress x to dismiss", m.notice))
}

// renderTable renders the package grid
func (m Model) renderTable() string {
	colors := m.state.Colors
	showActions := !m.actionsHidden

	headers := make([]string, 0, pricing.HeaderCount+1)
	for col, label := range m.state.Headers {
		headers = append(headers, m.cellText(rowHeaders, col, label))
	}
	if showActions {
		headers = append(headers, export.ActionsHeader)
	}

	packages := m.state.Packages.Packages()
	pending := make([]bool, len(packages))
	rows := make([][]string, 0, len(packages))
	for i, pkg := range packages {
		row := firstPackageRow + i
		pending[i] = m.state.Deletion.Blocks(pkg.ID)

		cells := []string{
			m.cellText(row, colName, pkg.Name),
			m.featuresText(row, pkg.Features),
			m.cellText(row, colDetails, pkg.Details),
			m.cellText(row, colPrice, pricing.FormatPrice(pkg.Price)),
			m.cellText(row, colSellPrice, pricing.FormatPrice(pkg.SellPrice)),
		}
		if showActions {
			cells = append(cells, actionText(pending[i]))
		}
		rows = append(rows, cells)
	}

	cols := len(headers)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(mutedColor)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle(colors)
			}
			locked := row >= 0 && row < len(pending) && pending[row]
			return rowCellStyle(colors, col, cols, locked)
		})

	return t.String()
}

// cellText renders a single-line cell, highlighting or replacing it with
// the open draft when it is under the cursor
func (m Model) cellText(row, col int, value string) string {
	if m.viewMode != ViewTable || m.row != row || m.col != col {
		return value
	}
	if m.editing {
		return m.field.View()
	}
	return selectedCellStyle.Render(value)
}

// featuresText renders the feature list of one package
func (m Model) featuresText(row int, features []string) string {
	focused := m.viewMode == ViewTable && m.row == row && m.col == colFeatures

	if len(features) == 0 {
		if focused {
			return selectedCellStyle.Render("-")
		}
		return "-"
	}

	lines := make([]string, 0, len(features))
	for j, feature := range features {
		line := "• " + feature
		if focused && j == m.feature {
			if m.editing {
				line = "• " + m.field.View()
			} else {
				line = selectedCellStyle.Render(line)
			}
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// actionText is the control hint of a row
func actionText(pending bool) string {
	if pending {
		return "[y] confirm / [n] cancel"
	}
	return "[d] delete"
}

// renderCustomizePanel renders the theme editor
func (m Model) renderCustomizePanel() string {
	roles := theme.Roles()

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Customize Appearance"))
	b.WriteString("\n")

	b.WriteString(panelSectionStyle.Render("UI Colors"))
	b.WriteString("\n")
	for i, role := range roles[:uiRoleCount] {
		b.WriteString(m.renderRoleLine(i, role))
		b.WriteString("\n")
	}

	b.WriteString(panelSectionStyle.Render("Table Row Background"))
	b.WriteString("\n")
	for i, role := range roles[uiRoleCount:] {
		b.WriteString(m.renderRoleLine(uiRoleCount+i, role))
		b.WriteString("\n")
	}

	paletteLabel := "✨ Generate UI Colors"
	if m.state.Busy(sheet.OpPalette) {
		paletteLabel = generatingLabel
	}
	gradientLabel := "✨ Generate with AI"
	if m.state.Busy(sheet.OpGradient) {
		gradientLabel = generatingLabel
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("p %s   g %s   r Reset to Defaults   esc Close", paletteLabel, gradientLabel)))

	return panelStyle.Render(b.String())
}

// renderRoleLine renders one role with its swatch and hex value
func (m Model) renderRoleLine(index int, role theme.Role) string {
	colors := m.state.Colors
	selected := index == m.roleCursor

	cursor := "  "
	if selected {
		cursor = "> "
	}

	value := colors.Get(role)
	switch {
	case selected && m.editing:
		value = m.field.View()
	case selected:
		value = selectedCellStyle.Render(value)
	}

	return cursor + roleLabelStyle.Render(role.Label()) + swatchStyle(colors, role).Render("") + " " + value
}

// renderProgress renders the labels of in-flight operations
func (m Model) renderProgress() string {
	var parts []string
	if m.state.Busy(sheet.OpPalette) {
		parts = append(parts, "UI colors: "+generatingLabel)
	}
	if m.state.Busy(sheet.OpGradient) {
		parts = append(parts, "Gradient: "+generatingLabel)
	}
	if m.state.Busy(sheet.OpExport) {
		parts = append(parts, "Image: "+downloadingLabel)
	}
	if len(parts) == 0 {
		return ""
	}
	return m.spinner.View() + " " + strings.Join(parts, "   ")
}

// renderFooter renders progress, status and key help
func (m Model) renderFooter() string {
	var lines []string

	if progress := m.renderProgress(); progress != "" {
		lines = append(lines, progress)
	}
	if m.status != "" {
		lines = append(lines, statusStyle.Render(m.status))
	}
	lines = append(lines, m.help.View(m.keys))

	return footerStyle.Render(strings.Join(lines, "\n"))
}
