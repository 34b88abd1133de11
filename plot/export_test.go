package plot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFigure(t *testing.T) *Figure {
	t.Helper()
	frame := testFrame(t, 30)
	fig, err := NewComposer(nil).Compose(frame,
		PanelSpec{Series: []SeriesStyle{{Column: "level", Color: Black}}, TightAxes: true},
		PanelSpec{Series: []SeriesStyle{{Column: "wave", Color: Red, Pattern: Dashed}}},
	)
	require.NoError(t, err)
	return fig
}

func TestExportWritesFile(t *testing.T) {
	fig := testFigure(t)
	path := filepath.Join(t.TempDir(), "chart.png")

	err := NewExporter(3, 2, 72).Export(fig, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportDeterministic(t *testing.T) {
	fig := testFigure(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "a.png")
	second := filepath.Join(dir, "b.png")

	exporter := NewExporter(3, 2, 72)
	require.NoError(t, exporter.Export(fig, first))
	require.NoError(t, exporter.Export(fig, second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExportOverwrites(t *testing.T) {
	fig := testFigure(t)
	path := filepath.Join(t.TempDir(), "chart.png")

	exporter := NewExporter(3, 2, 72)
	require.NoError(t, exporter.Export(fig, path))
	require.NoError(t, exporter.Export(fig, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportUnwritablePath(t *testing.T) {
	fig := testFigure(t)
	path := filepath.Join(t.TempDir(), "does", "not", "exist", "chart.png")

	err := NewExporter(3, 2, 72).Export(fig, path)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, path, writeErr.Path)

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestExportNilFigure(t *testing.T) {
	err := NewExporter(3, 2, 72).Export(nil, filepath.Join(t.TempDir(), "x.png"))
	var writeErr *WriteError
	assert.ErrorAs(t, err, &writeErr)
}

func TestExporterDefaults(t *testing.T) {
	e := NewExporter(0, 0, 0)
	assert.Equal(t, DefaultDPI, e.dpi)
}
