package plot

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pplcc/plotext"
	log "github.com/sirupsen/logrus"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Default render configuration, matching the original chart dimensions.
const (
	DefaultWidth  = 6.0 // inches
	DefaultHeight = 9.0 // inches
	DefaultDPI    = 300
)

// Exporter serializes a composed figure to a PNG file at a fixed size and
// resolution. The write is atomic: the image is rendered to a temporary
// file in the target directory and renamed into place only after it is
// complete and non-empty, so a crash mid-export never leaves a truncated
// artifact. Re-exporting the same figure overwrites deterministically.
type Exporter struct {
	width  vg.Length
	height vg.Length
	dpi    int
}

// NewExporter creates an exporter with the figure size in inches and the
// raster resolution in DPI. Non-positive arguments fall back to the
// defaults.
func NewExporter(widthInches, heightInches float64, dpi int) *Exporter {
	if widthInches <= 0 {
		widthInches = DefaultWidth
	}
	if heightInches <= 0 {
		heightInches = DefaultHeight
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Exporter{
		width:  vg.Length(widthInches) * vg.Inch,
		height: vg.Length(heightInches) * vg.Inch,
		dpi:    dpi,
	}
}

// Export renders the figure and writes it to path. Errors are reported as
// *WriteError; on failure no file exists at path beyond what was already
// there.
func (e *Exporter) Export(fig *Figure, path string) error {
	if fig == nil || len(fig.panels) == 0 {
		return &WriteError{Path: path, Err: errors.New("figure has no panels")}
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(e.width, e.height),
		vgimg.UseDPI(e.dpi),
	)
	dc := draw.New(canvas)

	table := plotext.Table{
		RowHeights: fig.weights,
		ColWidths:  []float64{1},
	}
	plots := make([][]*gplot.Plot, len(fig.panels))
	for i, p := range fig.panels {
		plots[i] = []*gplot.Plot{p}
	}
	canvases := table.Align(plots, dc)
	for i, p := range fig.panels {
		p.Draw(canvases[i][0])
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".bandplot-*.png")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	cleanup := func(cause error) error {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: cause}
	}

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(tmp); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}

	info, err := tmp.Stat()
	if err != nil {
		return cleanup(err)
	}
	if info.Size() == 0 {
		return cleanup(errors.New("rendered image is empty"))
	}

	if err := tmp.Close(); err != nil {
		return cleanup(err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return cleanup(err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return cleanup(err)
	}

	log.WithFields(log.Fields{
		"path":   path,
		"bytes":  info.Size(),
		"panels": len(fig.panels),
		"dpi":    e.dpi,
	}).Info("figure exported")

	return nil
}
