package fdstream

import (
	"fmt"
)

const (
	// VersionMajor represents the current major version of fdstream.
	VersionMajor = 0
	// VersionMinor represents the current minor version of fdstream.
	VersionMinor = 1
	// VersionPatch represents the current patch version of fdstream.
	VersionPatch = 0
	// VersionTag represents a tag to be appended to the fdstream version
	// string. It must not contain spaces. If empty, no tag is appended to the
	// version string.
	VersionTag = "dev"
)

// Version provides a stringified version of the current fdstream version.
var Version string

// init performs global initialization.
func init() {
	// Compute the stringified version.
	if VersionTag != "" {
		Version = fmt.Sprintf("%d.%d.%d-%s", VersionMajor, VersionMinor, VersionPatch, VersionTag)
	} else {
		Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
	}
}
