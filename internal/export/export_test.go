package export

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pricetable/internal/domain/sheet"
	"github.com/alexisbeaulieu97/pricetable/internal/domain/theme"
	"github.com/alexisbeaulieu97/pricetable/internal/logger"
	pterrors "github.com/alexisbeaulieu97/pricetable/pkg/errors"
)

func hexAt(img image.Image, x, y int) string {
	r, g, b, _ := img.At(x, y).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func seededTable(t *testing.T) Table {
	t.Helper()
	return Snapshot(sheet.New("", theme.Defaults()), false)
}

func TestFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{title: "SALAM", want: "salam-packages.png"},
		{title: "Summer  Deals\t2025", want: "summer-deals-2025-packages.png"},
		{title: " Mixed Case ", want: "-mixed-case--packages.png"},
		{title: "Eid 1/2 Offers", want: "eid-1-2-offers-packages.png"},
		{title: "../Escaped Deals", want: "..-escaped-deals-packages.png"},
		{title: `Back\Slash`, want: "back-slash-packages.png"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.title), tt.title)
	}
}

func TestSnapshotMarksPendingRow(t *testing.T) {
	t.Parallel()

	s, err := sheet.New("", theme.Defaults()).InitiateDelete(1)
	require.NoError(t, err)

	table := Snapshot(s, true)
	require.Len(t, table.Rows, 9)
	assert.False(t, table.Rows[0].Pending)
	assert.True(t, table.Rows[1].Pending)
	assert.Equal(t, "50 SR", table.Rows[0].Price)
	assert.Equal(t, "60 SR", table.Rows[0].SellPrice)
	assert.Equal(t, "SALAM", table.Title)
	assert.True(t, table.ShowActions)
}

func TestRenderScalesOutput(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	table := seededTable(t)

	one, err := r.Render(table, Options{Scale: 1})
	require.NoError(t, err)
	two, err := r.Render(table, Options{Scale: 2})
	require.NoError(t, err)

	assert.Equal(t, one.Bounds().Dx()*2, two.Bounds().Dx())
	assert.Equal(t, one.Bounds().Dy()*2, two.Bounds().Dy())

	_, err = r.Render(table, Options{Scale: -1})
	require.Error(t, err)
}

func TestRenderActionsColumnOnlyWhenShown(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	hidden := seededTable(t)
	shown := hidden
	shown.ShowActions = true

	a, err := r.Render(hidden, Options{Scale: 1})
	require.NoError(t, err)
	b, err := r.Render(shown, Options{Scale: 1})
	require.NoError(t, err)

	assert.Greater(t, b.Bounds().Dx(), a.Bounds().Dx())
	assert.Equal(t, a.Bounds().Dy(), b.Bounds().Dy())
}

func TestRenderUsesThemeColors(t *testing.T) {
	t.Parallel()

	s, err := sheet.New("", theme.Defaults()).InitiateDelete(0)
	require.NoError(t, err)
	table := Snapshot(s, false)

	img, err := NewRenderer().Render(table, Options{Scale: 1, Background: "#101010"})
	require.NoError(t, err)

	assert.Equal(t, "#101010", hexAt(img, 0, 0))

	// Top padding of the banner is filled with the primary color.
	assert.Equal(t, "#16a34a", hexAt(img, img.Bounds().Dx()/2, margin+2))

	// Find the left edge of the table from the header row.
	lineH := basicFaceHeight() + pillGap*2
	headerY := margin + lineH*2 + bannerPadY*2 + bannerGap
	left := -1
	for x := 0; x < img.Bounds().Dx(); x++ {
		if hexAt(img, x, headerY+1) == "#2563eb" {
			left = x
			break
		}
	}
	require.GreaterOrEqual(t, left, 0)

	firstRowY := headerY + lineH + cellPadY*2
	assert.Equal(t, PendingBackground, hexAt(img, left+1, firstRowY+1))

	secondRowY := firstRowY + 2*lineH + cellPadY*2
	assert.Equal(t, "#f0fdf4", hexAt(img, left, secondRowY+1))
}

func basicFaceHeight() int {
	return NewRenderer().face.Metrics().Height.Ceil()
}

func TestExportWritesPNG(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	table := seededTable(t)
	table.Title = "Winter Deals"

	exp := NewExporter(dir, Options{Scale: 1, Background: DefaultBackground}, logger.Nop())
	path, err := exp.Export(context.Background(), table)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "winter-deals-packages.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
}

func TestExportStaysInsideDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := filepath.Join(root, "out")
	require.NoError(t, os.Mkdir(dir, 0o755))

	for _, title := range []string{"../Escaped Deals", "Eid 1/2 Offers"} {
		table := seededTable(t)
		table.Title = title

		path, err := NewExporter(dir, Options{Scale: 1}, nil).Export(context.Background(), table)
		require.NoError(t, err, title)
		assert.Equal(t, dir, filepath.Dir(path), title)

		_, statErr := os.Stat(path)
		require.NoError(t, statErr, title)
	}

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out", entries[0].Name())
}

func TestExportFailureLeavesNoFile(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "missing")
	exp := NewExporter(dir, Options{}, nil)

	_, err := exp.Export(context.Background(), seededTable(t))
	require.Error(t, err)

	var ce *pterrors.CollaboratorError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, Collaborator, ce.Collaborator)
	assert.Equal(t, "write", ce.Op)

	_, statErr := os.Stat(filepath.Join(dir, "salam-packages.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	_, err := NewExporter(dir, Options{}, nil).Export(ctx, seededTable(t))
	require.ErrorIs(t, err, context.Canceled)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
