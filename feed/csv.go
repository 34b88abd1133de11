// Package feed loads and stores columnar tables as CSV files.
package feed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/quantauri/bandplot/model"
)

var (
	// ErrNoData is returned when the CSV file holds no rows.
	ErrNoData = errors.New("no data: csv file is empty")

	// ErrMissingHeader is returned when the first CSV row is not a header.
	ErrMissingHeader = errors.New("missing header: first csv row must name the columns")
)

// IndexColumn is the reserved column name carrying the row index. When
// absent, rows are indexed 0..n-1.
const IndexColumn = "index"

// CSV reads a columnar table from a CSV file. The first row names the
// columns; every other cell is a float64, with empty cells and "nan"
// parsed as missing values.
type CSV struct {
	file string
}

// NewCSV creates a reader for the given file path.
func NewCSV(file string) *CSV {
	return &CSV{file: file}
}

// Frame loads the whole table into memory.
func (c *CSV) Frame(ctx context.Context) (*model.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(c.file)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.file, err)
	}
	defer f.Close()

	lines, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.file, err)
	}
	if len(lines) == 0 {
		return nil, ErrNoData
	}

	headers := lines[0]
	if _, err := strconv.ParseFloat(headers[0], 64); err == nil {
		return nil, ErrMissingHeader
	}
	rows := lines[1:]
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	indexPos := lo.IndexOf(headers, IndexColumn)
	index := make([]int, len(rows))
	for i, row := range rows {
		if indexPos < 0 {
			index[i] = i
			continue
		}
		index[i], err = strconv.Atoi(row[indexPos])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad index %q: %w", i+1, row[indexPos], err)
		}
	}

	frame := model.NewFrame(index)
	for pos, name := range headers {
		if pos == indexPos {
			continue
		}
		values := make(model.Series[float64], len(rows))
		for i, row := range rows {
			values[i], err = parseCell(row[pos])
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", i+1, name, err)
			}
		}
		if err := frame.AddColumn(name, values); err != nil {
			return nil, err
		}
	}
	return frame, nil
}

// parseCell converts one CSV cell, treating empty and "nan" cells as
// missing values.
func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || strings.EqualFold(cell, "nan") {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(cell, 64)
}
