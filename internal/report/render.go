// Package report renders a step report as text, JSON or YAML.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/flarebyte/builder/internal/step"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Render writes r to w in the given format. An empty format means text.
func Render(w io.Writer, r step.Report, format string) error {
	var (
		b   []byte
		err error
	)
	switch format {
	case "", FormatText:
		b = MarshalText(r)
	case FormatJSON:
		b, err = MarshalJSON(r)
	case FormatYAML:
		b, err = MarshalYAML(r)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// MarshalText returns one line per report line.
func MarshalText(r step.Report) []byte {
	var buf bytes.Buffer
	for _, l := range r.Lines {
		buf.WriteString(l.Text)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// MarshalJSON returns the compact JSON encoding of r with HTML escaping
// disabled and a trailing newline.
func MarshalJSON(r step.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
