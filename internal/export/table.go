// Package export renders a pricing table snapshot to a PNG image.
package export

import (
	"github.com/alexisbeaulieu97/pricetable/internal/domain/pricing"
	"github.com/alexisbeaulieu97/pricetable/internal/domain/sheet"
	"github.com/alexisbeaulieu97/pricetable/internal/domain/theme"
)

// ActionsHeader labels the column of row controls.
const ActionsHeader = "Actions"

// Table is everything visible in the rendered table at one moment.
type Table struct {
	Title   string
	Headers pricing.Headers
	Rows    []Row
	Colors  theme.Colors
	// ShowActions draws the row control column.
	ShowActions bool
}

// Row is one rendered package.
type Row struct {
	Name      string
	Features  []string
	Details   string
	Price     string
	SellPrice string
	Pending   bool
}

// Snapshot captures s for rendering.
func Snapshot(s sheet.State, showActions bool) Table {
	packages := s.Packages.Packages()
	rows := make([]Row, 0, len(packages))
	for _, p := range packages {
		rows = append(rows, Row{
			Name:      p.Name,
			Features:  p.Features,
			Details:   p.Details,
			Price:     pricing.FormatPrice(p.Price),
			SellPrice: pricing.FormatPrice(p.SellPrice),
			Pending:   s.Deletion.Blocks(p.ID),
		})
	}

	return Table{
		Title:       s.Title,
		Headers:     s.Headers,
		Rows:        rows,
		Colors:      s.Colors,
		ShowActions: showActions,
	}
}

// actionLabel is the control text drawn for a row when actions are shown.
func (r Row) actionLabel() string {
	if r.Pending {
		return "Confirm / Cancel"
	}
	return "Delete"
}
