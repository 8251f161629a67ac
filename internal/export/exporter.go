package export

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alexisbeaulieu97/pricetable/internal/logger"
	pterrors "github.com/alexisbeaulieu97/pricetable/pkg/errors"
)

// Collaborator names the exporter in errors and logs.
const Collaborator = "export"

// FileSuffix is appended to the slugged title.
const FileSuffix = "-packages.png"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	separatorRun  = regexp.MustCompile(`[/\\]+`)
)

// FileName derives the download name from the banner title: lowercased,
// whitespace runs and path separators replaced by a single hyphen, plus
// FileSuffix. The result is always a bare file name.
func FileName(title string) string {
	slug := whitespaceRun.ReplaceAllString(strings.ToLower(title), "-")
	slug = separatorRun.ReplaceAllString(slug, "-")
	return slug + FileSuffix
}

// Exporter writes rendered tables as PNG files into a directory.
type Exporter struct {
	dir      string
	opts     Options
	renderer *Renderer
	log      *logger.Logger
}

// NewExporter creates an Exporter writing into dir.
func NewExporter(dir string, opts Options, log *logger.Logger) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{
		dir:      dir,
		opts:     opts,
		renderer: NewRenderer(),
		log:      log,
	}
}

// Export renders t and writes it, returning the file path. A failed write
// leaves no file behind.
func (e *Exporter) Export(ctx context.Context, t Table) (string, error) {
	path := filepath.Join(e.dir, FileName(t.Title))
	log := e.log.WithFields(map[string]any{"op": "export", "path": path})

	if err := ctx.Err(); err != nil {
		return "", pterrors.NewCollaboratorError(Collaborator, "render", err)
	}

	img, err := e.renderer.Render(t, e.opts)
	if err != nil {
		log.Error(err, "render failed")
		return "", pterrors.NewCollaboratorError(Collaborator, "render", err)
	}

	if err := writePNG(path, img); err != nil {
		log.Error(err, "write failed")
		return "", pterrors.NewCollaboratorError(Collaborator, "write", err)
	}

	log.Info("table exported")
	return path, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
