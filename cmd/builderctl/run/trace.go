package run

import (
	"fmt"
	"io"

	"github.com/flarebyte/builder/internal/step"
)

type traceReporter struct {
	enabled bool
	w       io.Writer
}

func newTraceReporter(enabled bool, w io.Writer) *traceReporter {
	return &traceReporter{enabled: enabled && w != nil, w: w}
}

// after returns nil when tracing is disabled.
func (p *traceReporter) after() step.AfterFunc {
	if p == nil || !p.enabled {
		return nil
	}
	return p.emit
}

func (p *traceReporter) emit(name string, out step.Report) {
	_, _ = fmt.Fprintf(p.w, "trace step=%s lines=%d\n", name, len(out.Lines))
}
