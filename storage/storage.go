package storage

import (
	"strings"
	"time"

	"github.com/quantauri/bandplot/model"
)

// RecordFilter narrows the result of Renders. Filters are combined with AND.
type RecordFilter func(model.RenderRecord) bool

// Storage keeps a journal of exported charts.
type Storage interface {
	SaveRender(record *model.RenderRecord) error
	Renders(filters ...RecordFilter) ([]*model.RenderRecord, error)
}

// WithPathPrefix keeps records whose output path starts with prefix.
func WithPathPrefix(prefix string) RecordFilter {
	return func(record model.RenderRecord) bool {
		return strings.HasPrefix(record.Path, prefix)
	}
}

// WithPanels keeps records with the given panel count.
func WithPanels(panels int) RecordFilter {
	return func(record model.RenderRecord) bool {
		return record.Panels == panels
	}
}

// Since keeps records created at or after the given time.
func Since(t time.Time) RecordFilter {
	return func(record model.RenderRecord) bool {
		return !record.CreatedAt.Before(t)
	}
}
