package loadflags

import (
	"flag"
)

// LoadForCli sets command-line flags from the flags.default and flags.extra
// files in /etc/config/progName and then in $HOME/.config/progName. Missing
// files are ignored. Flags given on the command line override these values.
func LoadForCli(progName string) error {
	return loadForCli(flag.CommandLine, progName)
}
