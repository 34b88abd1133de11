package feed

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/schollz/progressbar/v3"

	"github.com/quantauri/bandplot/model"
	"github.com/quantauri/bandplot/tools/log"
)

// Write stores the frame as a CSV file with an explicit index column.
// Missing values are written as empty cells.
func Write(frame *model.Frame, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	columns := frame.Columns()

	header := append([]string{IndexColumn}, columns...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	progressBar := progressbar.Default(int64(frame.Len()), "writing csv")
	row := make([]string, len(header))
	for i, idx := range frame.Index() {
		row[0] = strconv.Itoa(idx)
		for j, name := range columns {
			values, _ := frame.Column(name)
			row[j+1] = formatCell(values[i])
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
		log.CheckErr(log.WarnLevel, progressBar.Add(1))
	}

	writer.Flush()
	return writer.Error()
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
