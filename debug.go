package urdf

import (
	"fmt"
	"io"
	"os"
)

// debugOut receives debug lines. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// SetDebugMode enables or disables debug mode. When enabled, hover changes,
// grab/release transitions and rejected joint updates are logged to stderr.
func (c *DragControls) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// debugf prints one prefixed line when debug mode is on.
func (c *DragControls) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[urdf] "+format+"\n", args...)
}
