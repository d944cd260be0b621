package cli

import (
	"fmt"
	"runtime"
)

var (
	// Name represents the CLI name; used for invoking the CLI commands
	Name = "diagram-cli"

	// Version represents the CLI version
	Version = "0.0.0" // value will be injected at build-time
)

// VersionString returns the CLI version along with its build platform
func VersionString() string {
	return fmt.Sprintf("%s %s/%s", Version, runtime.GOOS, runtime.GOARCH)
}
