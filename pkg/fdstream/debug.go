package fdstream

import (
	"os"
)

// DebugEnabled controls whether or not debugging is enabled for fdstream. It
// is set automatically based on the FDSTREAM_DEBUG environment variable.
var DebugEnabled bool

func init() {
	// Check whether or not debugging should be enabled.
	DebugEnabled = os.Getenv("FDSTREAM_DEBUG") == "1"
}
