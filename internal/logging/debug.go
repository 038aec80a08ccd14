package logging

import (
	"fmt"
	"io"
	"os"
)

// DebugEnvVar turns on debug output when set to any non-empty value
const DebugEnvVar = "TM_DEBUG"

// Output is where debug lines go. Tests may swap it.
var Output io.Writer = os.Stderr

var verbose bool

// SetVerbose forces debug output on regardless of TM_DEBUG
func SetVerbose(on bool) {
	verbose = on
}

// DebugEnabled returns true if debug mode is enabled via TM_DEBUG environment variable
// or SetVerbose
func DebugEnabled() bool {
	return verbose || os.Getenv(DebugEnvVar) != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(Output, format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(Output, args...)
	}
}
