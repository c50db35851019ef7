// Package reportsink abstracts where finished report payloads go. The core
// builds the HTML/CSV/XLSX bytes; a sink delivers them to the user.
package reportsink

import (
	"context"
	"io"
)

type Sink interface {
	// Save delivers one finished payload under the given file name and
	// returns where it ended up.
	Save(ctx context.Context, filename, contentType string, r io.Reader) (location string, err error)
}
