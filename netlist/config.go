package netlist

import (
	"fmt"
	"io"
)

// Config holds the options threaded explicitly through Builder and DFA,
// replacing an ad hoc debug-print macro with an ordinary value every
// caller constructs and passes in.
type Config struct {
	// Debug enables the builder's trace output: each pending R-value it
	// queues, and each symbol it skips for having more than one port
	// back-reference. The DFA emits no trace output.
	Debug bool
	// Out receives debug output when Debug is true. Ignored otherwise; may
	// be nil.
	Out io.Writer
}

func (c Config) debugf(format string, args ...any) {
	if !c.Debug || c.Out == nil {
		return
	}
	fmt.Fprintf(c.Out, format+"\n", args...)
}
