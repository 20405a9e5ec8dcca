// Package buildinfo reports the version stamped into the binaries with -ldflags.
package buildinfo

import (
	"fmt"
	"io"
)

var (
	BuildVersion string
	BuildDate    string
	BuildCommit  string
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Short is a one-line version string for CLI --version output.
func Short() string {
	return fmt.Sprintf("%s (%s, %s)", orNA(BuildVersion), orNA(BuildCommit), orNA(BuildDate))
}

// PrintBuildInfo writes version, date and commit, using "N/A" for unset values.
func PrintBuildInfo(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(BuildVersion))
	fmt.Fprintf(w, "Build date: %s\n", orNA(BuildDate))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(BuildCommit))
}
