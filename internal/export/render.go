package export

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/alexisbeaulieu97/pricetable/internal/domain/theme"
)

const (
	// DefaultScale multiplies every pixel of the rendered table.
	DefaultScale = 2
	// DefaultBackground fills the area around the table.
	DefaultBackground = "#f3f4f6"
	// PendingBackground is the fill of a row awaiting delete confirmation.
	PendingBackground = "#fee2e2"

	pillBackground = "#e5e7eb"
	dividerColor   = "#e5e7eb"
	actionColor    = "#dc2626"

	margin     = 24
	bannerPadX = 32
	bannerPadY = 12
	bannerGap  = 20
	cellPadX   = 12
	cellPadY   = 8
	pillPadX   = 6
	pillGap    = 4
)

// Options controls rasterization.
type Options struct {
	Scale      int
	Background string
}

// Renderer draws tables with a fixed bitmap face.
type Renderer struct {
	face font.Face
}

// NewRenderer returns a Renderer using the 7x13 basic font.
func NewRenderer() *Renderer {
	return &Renderer{face: basicfont.Face7x13}
}

type column struct {
	header string
	right  bool
	cells  []cell
	width  int
}

type cell struct {
	lines []string
	pills bool
	role  theme.Role
	// fg overrides role when set.
	fg color.Color
}

// Render lays out t and returns the scaled image.
func (r *Renderer) Render(t Table, opts Options) (image.Image, error) {
	if opts.Scale == 0 {
		opts.Scale = DefaultScale
	}
	if opts.Scale < 1 {
		return nil, fmt.Errorf("scale must be at least 1, got %d", opts.Scale)
	}

	metrics := r.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineH := metrics.Height.Ceil() + pillGap*2

	cols := r.columns(t)
	tableW := 0
	for i := range cols {
		tableW += cols[i].width
	}

	rowHeights := make([]int, len(t.Rows))
	for i := range t.Rows {
		lines := 1
		for _, c := range cols {
			if n := len(c.cells[i].lines); n > lines {
				lines = n
			}
		}
		rowHeights[i] = lines*lineH + cellPadY*2
	}
	headerH := lineH + cellPadY*2

	newW := r.measure("NEW")
	titleW := r.measure(t.Title)
	bannerW := max(newW, titleW) + bannerPadX*2
	bannerH := lineH*2 + bannerPadY*2

	width := max(tableW, bannerW) + margin*2
	height := margin + bannerH + bannerGap + headerH + margin
	for _, h := range rowHeights {
		height += h
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fill(img, img.Bounds(), parseColor(opts.Background, DefaultBackground))

	// banner
	bx := (width - bannerW) / 2
	by := margin
	fill(img, image.Rect(bx, by, bx+bannerW, by+bannerH), t.Colors.Color(theme.RolePrimary))
	headerFg := t.Colors.Color(theme.RoleHeaderText)
	r.text(img, "NEW", bx+(bannerW-newW)/2, by+bannerPadY+ascent, headerFg)
	r.text(img, t.Title, bx+(bannerW-titleW)/2, by+bannerPadY+lineH+ascent, headerFg)

	// header row
	tx := (width - tableW) / 2
	y := by + bannerH + bannerGap
	fill(img, image.Rect(tx, y, tx+tableW, y+headerH), t.Colors.Color(theme.RoleTableHeader))
	x := tx
	for _, c := range cols {
		r.alignedText(img, c.header, x, c.width, c.right, y+cellPadY+pillGap+ascent, headerFg)
		x += c.width
	}
	y += headerH

	// body
	for i, row := range t.Rows {
		rect := image.Rect(tx, y, tx+tableW, y+rowHeights[i])
		if row.Pending {
			fill(img, rect, parseColor(PendingBackground, PendingBackground))
		} else {
			r.gradient(img, rect, t.Colors)
		}

		x := tx
		for _, c := range cols {
			r.drawCell(img, c.cells[i], x, y, c, lineH, ascent, t.Colors)
			x += c.width
		}

		y += rowHeights[i]
		if i < len(t.Rows)-1 {
			fill(img, image.Rect(tx, y-1, tx+tableW, y), parseColor(dividerColor, dividerColor))
		}
	}

	return scale(img, opts.Scale), nil
}

func (r *Renderer) columns(t Table) []column {
	cols := []column{
		{header: t.Headers[0]},
		{header: t.Headers[1]},
		{header: t.Headers[2]},
		{header: t.Headers[3], right: true},
		{header: t.Headers[4], right: true},
	}
	if t.ShowActions {
		cols = append(cols, column{header: ActionsHeader, right: true})
	}

	for _, row := range t.Rows {
		cols[0].cells = append(cols[0].cells, cell{lines: []string{row.Name}, role: theme.RolePackageText})
		cols[1].cells = append(cols[1].cells, cell{lines: row.Features, pills: true, role: theme.RoleDetailsText})
		cols[2].cells = append(cols[2].cells, cell{lines: []string{row.Details}, role: theme.RoleDetailsText})
		cols[3].cells = append(cols[3].cells, cell{lines: []string{row.Price}, role: theme.RolePriceText})
		cols[4].cells = append(cols[4].cells, cell{lines: []string{row.SellPrice}, role: theme.RolePriceText})
		if t.ShowActions {
			cols[5].cells = append(cols[5].cells, cell{lines: []string{row.actionLabel()}, fg: parseColor(actionColor, actionColor)})
		}
	}

	for i := range cols {
		w := r.measure(cols[i].header)
		for _, c := range cols[i].cells {
			for _, line := range c.lines {
				lw := r.measure(line)
				if c.pills {
					lw += pillPadX * 2
				}
				w = max(w, lw)
			}
		}
		cols[i].width = w + cellPadX*2
	}
	return cols
}

func (r *Renderer) drawCell(img *image.RGBA, c cell, x, y int, col column, lineH, ascent int, colors theme.Colors) {
	var fg color.Color = colors.Color(c.role)
	if c.fg != nil {
		fg = c.fg
	}

	for i, line := range c.lines {
		top := y + cellPadY + i*lineH
		baseline := top + pillGap + ascent
		if c.pills {
			w := r.measure(line) + pillPadX*2
			fill(img, image.Rect(x+cellPadX, top+1, x+cellPadX+w, top+lineH-1), parseColor(pillBackground, pillBackground))
			r.text(img, line, x+cellPadX+pillPadX, baseline, fg)
			continue
		}
		r.alignedText(img, line, x, col.width, col.right, baseline, fg)
	}
}

func (r *Renderer) gradient(img *image.RGBA, rect image.Rectangle, colors theme.Colors) {
	span := rect.Dx() - 1
	for x := rect.Min.X; x < rect.Max.X; x++ {
		t := 0.0
		if span > 0 {
			t = float64(x-rect.Min.X) / float64(span)
		}
		fill(img, image.Rect(x, rect.Min.Y, x+1, rect.Max.Y), colors.GradientAt(t))
	}
}

func (r *Renderer) measure(s string) int {
	return font.MeasureString(r.face, s).Ceil()
}

func (r *Renderer) alignedText(img *image.RGBA, s string, x, width int, right bool, baseline int, fg color.Color) {
	if right {
		x += width - cellPadX - r.measure(s)
	} else {
		x += cellPadX
	}
	r.text(img, s, x, baseline, fg)
}

func (r *Renderer) text(img *image.RGBA, s string, x, baseline int, fg color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: r.face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

func fill(img *image.RGBA, rect image.Rectangle, c color.Color) {
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

func scale(src *image.RGBA, factor int) image.Image {
	if factor == 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func parseColor(v, fallback string) colorful.Color {
	if theme.ValidHex(v) {
		if c, err := colorful.Hex(v); err == nil {
			return c
		}
	}
	c, _ := colorful.Hex(fallback)
	return c
}
