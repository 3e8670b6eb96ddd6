package config

import (
	"fmt"
	"io"
	"os"
)

var (
	osEnviron           = os.Environ
	stderr    io.Writer = os.Stderr
	exit                = os.Exit
)

// Exitf writes a formatted error message to stderr and exits with code 1.
// It provides a consistent fatal-exit pattern for CLI entry points.
func Exitf(format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exit(1)
}
