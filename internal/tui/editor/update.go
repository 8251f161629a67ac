package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pricetable/internal/domain/sheet"
	"github.com/alexisbeaulieu97/pricetable/internal/domain/theme"
	"github.com/alexisbeaulieu97/pricetable/internal/editable"
	"github.com/alexisbeaulieu97/pricetable/internal/export"
)

const lockedStatus = "Row is pending deletion: press y to confirm or n to cancel"

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Spinner ticks only while something is in flight
	case spinner.TickMsg:
		if !m.anyBusy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Palette messages
	case PaletteCompleteMsg:
		m.finish(sheet.OpPalette)
		state, err := m.state.ApplySuggestion(msg.Palette)
		if err != nil {
			m.log.Error(err, "palette suggestion rejected")
			m.notice = paletteFailureNotice
			return m, nil
		}
		m.state = state
		m.status = "UI colors updated"
		m.log.Info("palette applied")
		return m, nil

	case PaletteErrorMsg:
		m.finish(sheet.OpPalette)
		m.log.Error(msg.Error, "palette suggestion failed")
		m.notice = paletteFailureNotice
		return m, nil

	// Gradient messages
	case GradientCompleteMsg:
		m.finish(sheet.OpGradient)
		state, err := m.state.ApplySuggestion(msg.Gradient)
		if err != nil {
			m.log.Error(err, "gradient suggestion rejected")
			m.notice = gradientFailureNotice
			return m, nil
		}
		m.state = state
		m.status = "Row gradient updated"
		m.log.Info("gradient applied")
		return m, nil

	case GradientErrorMsg:
		m.finish(sheet.OpGradient)
		m.log.Error(msg.Error, "gradient suggestion failed")
		m.notice = gradientFailureNotice
		return m, nil

	// Export messages
	case ExportCompleteMsg:
		m.finish(sheet.OpExport)
		m.actionsHidden = false
		m.status = fmt.Sprintf("Saved %s", msg.Path)
		return m, nil

	case ExportErrorMsg:
		m.finish(sheet.OpExport)
		m.actionsHidden = false
		m.log.Error(msg.Error, "export failed")
		m.notice = exportFailureNotice
		return m, nil
	}

	// Cursor blink and other input messages
	if m.editing {
		var cmd tea.Cmd
		m.field, _, cmd = m.field.Update(msg)
		return m, cmd
	}

	return m, nil
}

// finish clears the busy flag of op
func (m *Model) finish(op sheet.Op) {
	state, err := m.state.Finish(op)
	if err != nil {
		m.log.Error(err, "finish operation")
		return
	}
	m.state = state
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// The notice blocks everything until dismissed
	if m.notice != "" {
		if key.Matches(msg, m.keys.Dismiss) {
			m.notice = ""
		}
		return m, nil
	}

	if m.editing {
		return m.handleEditKeys(msg)
	}

	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Customize):
		if m.viewMode == ViewCustomize {
			m.viewMode = ViewTable
		} else {
			m.viewMode = ViewCustomize
		}
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.state = m.state.ResetColors().CancelDelete()
		m.status = "Colors reset to defaults"
		m.log.Info("theme reset")
		return m, nil

	case key.Matches(msg, m.keys.Palette):
		return m.startPalette()

	case key.Matches(msg, m.keys.Gradient):
		return m.startGradient()

	case key.Matches(msg, m.keys.Export):
		return m.startExport()
	}

	switch m.viewMode {
	case ViewCustomize:
		return m.handleCustomizeKeys(msg)
	default:
		return m.handleTableKeys(msg)
	}
}

// handleTableKeys handles keys in the table view
func (m Model) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.row--
		m.feature = 0
		m.clampCursor()

	case key.Matches(msg, m.keys.Down):
		m.row++
		m.feature = 0
		m.clampCursor()

	case key.Matches(msg, m.keys.Left):
		if m.row != rowTitle && m.col > colName {
			m.col--
			m.feature = 0
		}

	case key.Matches(msg, m.keys.Right):
		if m.row != rowTitle && m.col < colSellPrice {
			m.col++
			m.feature = 0
		}

	case key.Matches(msg, m.keys.PrevFeature):
		if m.col == colFeatures && m.feature > 0 {
			m.feature--
		}

	case key.Matches(msg, m.keys.NextFeature):
		if m.col == colFeatures {
			m.feature++
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.Edit):
		return m.beginEdit()

	case key.Matches(msg, m.keys.AddPackage):
		state, pkg := m.state.AddPackage()
		m.state = state
		m.row = m.lastRow()
		m.col = colName
		m.feature = 0
		m.log.WithFields(map[string]any{"package_id": pkg.ID}).Info("package added")

	case key.Matches(msg, m.keys.AddFeature):
		index, ok := m.packageIndex()
		if !ok {
			return m, nil
		}
		state, err := m.state.AddFeature(index)
		if err != nil {
			m.reportEditError(err)
			return m, nil
		}
		m.state = state
		pkg, _ := m.state.Packages.At(index)
		m.col = colFeatures
		m.feature = len(pkg.Features) - 1

	case key.Matches(msg, m.keys.DeleteFeature):
		index, ok := m.packageIndex()
		if !ok || m.col != colFeatures {
			return m, nil
		}
		if pkg, _ := m.state.Packages.At(index); len(pkg.Features) == 0 {
			return m, nil
		}
		state, err := m.state.DeleteFeature(index, m.feature)
		if err != nil {
			m.reportEditError(err)
			return m, nil
		}
		m.state = state
		m.clampCursor()

	case key.Matches(msg, m.keys.Delete):
		index, ok := m.packageIndex()
		if !ok {
			return m, nil
		}
		state, err := m.state.InitiateDelete(index)
		if err != nil {
			m.log.Error(err, "initiate delete")
			return m, nil
		}
		m.state = state

	case key.Matches(msg, m.keys.Confirm):
		id, pending := m.state.Deletion.Pending()
		if !pending {
			return m, nil
		}
		state, err := m.state.ConfirmDelete()
		if err != nil {
			m.log.Error(err, "confirm delete")
			return m, nil
		}
		m.state = state
		m.clampCursor()
		m.log.WithFields(map[string]any{"package_id": id}).Info("package deleted")

	case key.Matches(msg, m.keys.Cancel):
		m.state = m.state.CancelDelete()
	}

	return m, nil
}

// handleCustomizeKeys handles keys in the customize panel
func (m Model) handleCustomizeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	roles := theme.Roles()

	switch {
	case msg.String() == "esc":
		m.viewMode = ViewTable

	case key.Matches(msg, m.keys.Up):
		if m.roleCursor > 0 {
			m.roleCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.roleCursor < len(roles)-1 {
			m.roleCursor++
		}

	case key.Matches(msg, m.keys.Edit):
		return m.beginEdit()
	}

	return m, nil
}

// handleEditKeys feeds keys to the open draft
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Blur) {
		field, value, changed := m.field.Commit()
		m.field = field
		return m.endEdit(editable.Result{Done: true, Changed: changed, Value: value}), nil
	}

	field, result, cmd := m.field.Update(msg)
	m.field = field
	if result.Done {
		return m.endEdit(result), cmd
	}
	return m, cmd
}

// beginEdit opens a draft on the selected cell or color role
func (m Model) beginEdit() (Model, tea.Cmd) {
	var (
		target editTarget
		value  string
		opts   []editable.Option
	)

	switch {
	case m.viewMode == ViewCustomize:
		role := theme.Roles()[m.roleCursor]
		target = editTarget{kind: targetColor, role: role}
		value = m.state.Colors.Get(role)
		opts = append(opts, editable.WithFilter(editable.HexFilter), editable.WithCharLimit(7))

	case m.row == rowTitle:
		target = editTarget{kind: targetTitle}
		value = m.state.Title

	case m.row == rowHeaders:
		target = editTarget{kind: targetHeader, column: m.col}
		value = m.state.Headers[m.col]

	default:
		index, ok := m.packageIndex()
		if !ok {
			return m, nil
		}
		pkg, _ := m.state.Packages.At(index)

		if m.col == colFeatures {
			if len(pkg.Features) == 0 {
				return m, nil
			}
			target = editTarget{kind: targetFeature, index: index, column: m.col, feature: m.feature}
			value = pkg.Features[m.feature]
			break
		}

		field := columnFields[m.col]
		v, err := field.Value(pkg)
		if err != nil {
			m.log.Error(err, "read field")
			return m, nil
		}
		target = editTarget{kind: targetField, index: index, column: m.col}
		value = v
		if field.Numeric() {
			opts = append(opts, editable.WithFilter(editable.NumericFilter))
		}
	}

	field := editable.New(value, opts...)
	if target.kind == targetField || target.kind == targetFeature {
		field = field.SetDisabled(m.state.RowLocked(target.index))
	}

	field, cmd := field.Begin()
	if !field.Editing() {
		m.status = lockedStatus
		return m, nil
	}

	m.field = field
	m.target = target
	m.editing = true
	return m, cmd
}

// endEdit closes the draft and commits a changed value to its target
func (m Model) endEdit(result editable.Result) Model {
	m.editing = false
	if !result.Changed {
		return m
	}

	var err error
	switch m.target.kind {
	case targetTitle:
		m.state = m.state.SetTitle(result.Value)

	case targetHeader:
		m.state, err = m.state.SetHeader(m.target.column, result.Value)

	case targetField:
		m.state, err = m.state.UpdateField(m.target.index, columnFields[m.target.column], result.Value)

	case targetFeature:
		m.state, err = m.state.UpdateFeature(m.target.index, m.target.feature, result.Value)

	case targetColor:
		if !theme.ValidHex(result.Value) {
			m.status = fmt.Sprintf("%s: %q is not a hex color", m.target.role.Label(), result.Value)
			return m
		}
		m.state = m.state.SetColor(m.target.role, result.Value)
	}

	if err != nil {
		m.reportEditError(err)
	}
	return m
}

// reportEditError surfaces a refused transition in the status line
func (m *Model) reportEditError(err error) {
	if errors.Is(err, sheet.ErrRowLocked) {
		m.status = lockedStatus
		return
	}
	m.log.Error(err, "edit rejected")
	m.status = err.Error()
}

// startPalette requests a UI palette unless one is in flight
func (m Model) startPalette() (tea.Model, tea.Cmd) {
	state, err := m.state.Begin(sheet.OpPalette)
	if err != nil {
		return m, nil
	}
	m.state = state
	m.log.WithFields(map[string]any{"op": sheet.OpPalette.String()}).Info("requesting palette")
	return m, tea.Batch(paletteCmd(context.Background(), m.suggester), m.spinner.Tick)
}

// startGradient requests a row gradient unless one is in flight
func (m Model) startGradient() (tea.Model, tea.Cmd) {
	state, err := m.state.Begin(sheet.OpGradient)
	if err != nil {
		return m, nil
	}
	m.state = state
	m.log.WithFields(map[string]any{"op": sheet.OpGradient.String()}).Info("requesting gradient")
	return m, tea.Batch(gradientCmd(context.Background(), m.suggester), m.spinner.Tick)
}

// startExport hides the row controls and writes the table image
func (m Model) startExport() (tea.Model, tea.Cmd) {
	state, err := m.state.Begin(sheet.OpExport)
	if err != nil {
		return m, nil
	}
	m.state = state
	m.actionsHidden = true

	table := export.Snapshot(m.state, !m.actionsHidden)
	m.log.WithFields(map[string]any{"op": sheet.OpExport.String()}).Info("exporting table")
	return m, tea.Batch(exportCmd(context.Background(), m.exporter, table), m.spinner.Tick)
}
