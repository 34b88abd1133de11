package bandplot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"

	"github.com/quantauri/bandplot/model"
	"github.com/quantauri/bandplot/notification"
	"github.com/quantauri/bandplot/plot"
	"github.com/quantauri/bandplot/storage"
	"github.com/quantauri/bandplot/tools/log"
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04",
	})
}

// Source provides the input table for a pipeline run.
type Source interface {
	Frame(ctx context.Context) (*model.Frame, error)
}

// FrameSource adapts a ready-made frame to the Source interface.
type FrameSource struct {
	frame *model.Frame
}

// NewFrameSource wraps an in-memory frame.
func NewFrameSource(frame *model.Frame) *FrameSource {
	return &FrameSource{frame: frame}
}

func (s *FrameSource) Frame(_ context.Context) (*model.Frame, error) {
	return s.frame, nil
}

// Pipeline runs one table through window selection, composition and export.
// One pipeline produces one artifact; build a second pipeline for a second
// chart.
type Pipeline struct {
	source   Source
	specs    []plot.PanelSpec
	window   func(index int) bool
	theme    *plot.Theme
	width    float64
	height   float64
	dpi      int
	output   string
	storage  storage.Storage
	notifier notification.Notifier

	lastRecord *model.RenderRecord
}

type Option func(*Pipeline)

// NewPipeline validates the fixed inputs and applies the options.
func NewPipeline(source Source, specs []plot.PanelSpec, options ...Option) (*Pipeline, error) {
	if source == nil {
		return nil, errors.New("bandplot: nil source")
	}
	if len(specs) == 0 {
		return nil, errors.New("bandplot: no panel specs")
	}

	pipeline := &Pipeline{
		source: source,
		specs:  specs,
		width:  plot.DefaultWidth,
		height: plot.DefaultHeight,
		dpi:    plot.DefaultDPI,
		output: "chart.png",
	}

	for _, option := range options {
		option(pipeline)
	}

	return pipeline, nil
}

// WithWindow restricts the run to rows whose index satisfies the predicate.
func WithWindow(pred func(index int) bool) Option {
	return func(pipeline *Pipeline) {
		pipeline.window = pred
	}
}

// WithTheme overrides the default figure theme.
func WithTheme(theme *plot.Theme) Option {
	return func(pipeline *Pipeline) {
		pipeline.theme = theme
	}
}

// WithFigureSize sets the artifact dimensions in inches.
func WithFigureSize(widthInches, heightInches float64) Option {
	return func(pipeline *Pipeline) {
		pipeline.width = widthInches
		pipeline.height = heightInches
	}
}

// WithDPI sets the artifact raster density.
func WithDPI(dpi int) Option {
	return func(pipeline *Pipeline) {
		pipeline.dpi = dpi
	}
}

// WithOutput sets the artifact path.
func WithOutput(path string) Option {
	return func(pipeline *Pipeline) {
		pipeline.output = path
	}
}

// WithStorage journals each successful export.
func WithStorage(store storage.Storage) Option {
	return func(pipeline *Pipeline) {
		pipeline.storage = store
	}
}

// WithNotifier delivers each successful export.
func WithNotifier(notifier notification.Notifier) Option {
	return func(pipeline *Pipeline) {
		pipeline.notifier = notifier
	}
}

// Run executes the stages in order: load, window, compose, export, journal,
// notify. The first error aborts the run; stages are never retried.
func (p *Pipeline) Run(ctx context.Context) error {
	frame, err := p.source.Frame(ctx)
	if err != nil {
		return err
	}

	if p.window != nil {
		frame, err = frame.Window(p.window)
		if err != nil {
			return err
		}
	}

	composer := plot.NewComposer(p.theme)
	figure, err := composer.Compose(frame, p.specs...)
	if err != nil {
		return err
	}

	exporter := plot.NewExporter(p.width, p.height, p.dpi)
	if err := exporter.Export(figure, p.output); err != nil {
		return err
	}

	info, err := os.Stat(p.output)
	if err != nil {
		return err
	}

	record := &model.RenderRecord{
		Path:      p.output,
		Panels:    figure.Panels(),
		Rows:      figure.Rows(),
		SizeBytes: info.Size(),
		CreatedAt: time.Now().UTC(),
	}
	p.lastRecord = record

	if p.storage != nil {
		if err := p.storage.SaveRender(record); err != nil {
			return err
		}
	}

	if p.notifier != nil {
		if err := p.notifier.NotifyRender(record); err != nil {
			return err
		}
	}

	return nil
}

// Summary prints a report of the panel layout and, after a successful run,
// the exported artifact, plus a histogram of the first column's values.
func (p *Pipeline) Summary(w io.Writer) error {
	frame, err := p.source.Frame(context.Background())
	if err != nil {
		return err
	}
	if p.window != nil {
		frame, err = frame.Window(p.window)
		if err != nil {
			return err
		}
	}

	buffer := bytes.NewBuffer(nil)
	table := tablewriter.NewWriter(buffer)
	table.SetHeader([]string{"Panel", "Series", "Ref. Lines", "Band", "Weight"})

	for i, spec := range p.specs {
		columns := make([]string, 0, len(spec.Series))
		for _, style := range spec.Series {
			columns = append(columns, style.Column)
		}
		band := "-"
		if spec.Band != nil {
			band = fmt.Sprintf("%s/%s", spec.Band.Upper, spec.Band.Lower)
		}
		weight := spec.Weight
		if weight <= 0 {
			weight = 1
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%v", columns),
			strconv.Itoa(len(spec.ReferenceLines)),
			band,
			fmt.Sprintf("%.1f", weight),
		})
	}

	footer := []string{"TOTAL", strconv.Itoa(len(p.specs)) + " panels",
		strconv.Itoa(frame.Len()) + " rows", "", ""}
	if p.lastRecord != nil {
		footer[3] = p.lastRecord.Path
		footer[4] = strconv.FormatInt(p.lastRecord.SizeBytes, 10) + " B"
	}
	table.SetFooter(footer)
	table.Render()

	fmt.Fprintln(w, buffer.String())

	columns := frame.Columns()
	if len(columns) == 0 {
		return nil
	}
	values, _ := frame.Column(columns[0])
	finite := model.Finite(values)
	if len(finite) == 0 {
		return nil
	}

	fmt.Fprintf(w, "------ %s -------\n", columns[0])
	hist := histogram.Hist(15, finite)
	return histogram.Fprint(w, hist, histogram.Linear(10))
}
