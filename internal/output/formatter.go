// Package output renders analysis reports for the CLI.
package output

import (
	"io"

	"github.com/jeduden/textsmith"
)

// Report pairs an analysis result with the name of its source (a file
// path or "<stdin>").
type Report struct {
	Source string
	Result textsmith.Result
}

// Formatter defines the interface for rendering analysis reports.
type Formatter interface {
	Format(w io.Writer, reports []Report) error
}
