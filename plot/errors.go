package plot

import (
	"errors"
	"fmt"
)

// ErrEmptyFrame is returned by Compose when the frame has no rows.
var ErrEmptyFrame = errors.New("empty frame: nothing to plot")

// UnknownColumnError reports a panel spec referencing a column the frame
// does not hold. It is raised before any drawing happens.
type UnknownColumnError struct {
	Column string
}

func (e UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q: not present in frame", e.Column)
}

// WriteError reports a failed export. The target path never receives a
// partial file: the exporter writes to a temporary file and renames it only
// on success.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
