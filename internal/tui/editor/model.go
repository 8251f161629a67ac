// Package editor is the terminal pricing-table editor: a bubbletea model
// over sheet.State with inline editing, the customize panel and the
// asynchronous AI and export operations.
package editor

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pricetable/internal/domain/pricing"
	"github.com/alexisbeaulieu97/pricetable/internal/domain/sheet"
	"github.com/alexisbeaulieu97/pricetable/internal/domain/theme"
	"github.com/alexisbeaulieu97/pricetable/internal/editable"
	"github.com/alexisbeaulieu97/pricetable/internal/logger"
)

// Cursor rows above the package rows
const (
	rowTitle = iota
	rowHeaders
	firstPackageRow
)

// Table columns
const (
	colName = iota
	colFeatures
	colDetails
	colPrice
	colSellPrice
)

// columnFields maps scalar columns to package fields
var columnFields = map[int]pricing.Field{
	colName:      pricing.FieldName,
	colDetails:   pricing.FieldDetails,
	colPrice:     pricing.FieldPrice,
	colSellPrice: pricing.FieldSellPrice,
}

type targetKind int

const (
	targetTitle targetKind = iota
	targetHeader
	targetField
	targetFeature
	targetColor
)

// editTarget records what an open draft will be committed to
type editTarget struct {
	kind    targetKind
	index   int
	column  int
	feature int
	role    theme.Role
}

// Options wires the collaborators into the model
type Options struct {
	Suggester Suggester
	Exporter  Exporter
	Logger    *logger.Logger
}

// Model is the main editor model
type Model struct {
	// Core data
	state     sheet.State
	suggester Suggester
	exporter  Exporter
	log       *logger.Logger

	// UI state
	viewMode   ViewMode
	row        int
	col        int
	feature    int
	roleCursor int
	showHelp   bool

	// Inline editing
	editing bool
	field   editable.Field
	target  editTarget

	// Component state
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	// Notices
	notice string
	status string

	// Export hides the row controls until it finishes
	actionsHidden bool

	// Dimensions
	width  int
	height int
}

// NewModel creates a new editor model over state
func NewModel(state sheet.State, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return Model{
		state:     state,
		suggester: opts.Suggester,
		exporter:  opts.Exporter,
		log:       log,
		viewMode:  ViewTable,
		row:       firstPackageRow,
		spinner:   s,
		help:      help.New(),
		keys:      defaultKeyMap(),
		width:     100,
		height:    30,
	}
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("pricetable: " + m.state.Title)
}

// Helper Methods

// State returns the current sheet state
func (m Model) State() sheet.State {
	return m.state
}

// GetViewMode returns the current view mode
func (m Model) GetViewMode() ViewMode {
	return m.viewMode
}

// Cursor returns the selected row and column
func (m Model) Cursor() (row, col int) {
	return m.row, m.col
}

// Notice returns the blocking notice, if any
func (m Model) Notice() string {
	return m.notice
}

// Status returns the transient status line
func (m Model) Status() string {
	return m.status
}

// Editing reports whether a draft is open
func (m Model) Editing() bool {
	return m.editing
}

// ActionsHidden reports whether row controls are hidden for an export
func (m Model) ActionsHidden() bool {
	return m.actionsHidden
}

// packageIndex returns the package under the cursor
func (m Model) packageIndex() (int, bool) {
	index := m.row - firstPackageRow
	if index < 0 || index >= m.state.Packages.Len() {
		return 0, false
	}
	return index, true
}

// lastRow returns the lowest selectable row
func (m Model) lastRow() int {
	return firstPackageRow + m.state.Packages.Len() - 1
}

// anyBusy reports whether an operation is in flight
func (m Model) anyBusy() bool {
	return m.state.Busy(sheet.OpPalette) || m.state.Busy(sheet.OpGradient) || m.state.Busy(sheet.OpExport)
}

// clampCursor keeps the cursor on an existing cell after rows change
func (m *Model) clampCursor() {
	if m.row > m.lastRow() {
		m.row = m.lastRow()
	}
	if m.row < rowTitle {
		m.row = rowTitle
	}
	if m.row == rowTitle {
		m.col = colName
	}

	index, ok := m.packageIndex()
	if !ok {
		m.feature = 0
		return
	}
	pkg, _ := m.state.Packages.At(index)
	if m.feature >= len(pkg.Features) {
		m.feature = max(len(pkg.Features)-1, 0)
	}
}
