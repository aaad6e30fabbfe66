package render

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// PageCount parses the generated artifact and returns its page count. Used
// for the render ledger and telemetry only; a malformed artifact is not a
// render failure.
func PageCount(b []byte) (int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return 0, err
	}
	return reader.NumPage(), nil
}
