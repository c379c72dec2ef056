package commands

import (
	"flag"
	"io"

	"github.com/pamac-go/alpmutil/lib/log"
)

type CommandFunc func([]string, log.DebugLogger) error

// Command describes a subcommand. A negative MaxArgs means there is no upper
// limit on the number of arguments.
type Command struct {
	Command string
	Args    string
	MinArgs int
	MaxArgs int
	CmdFunc CommandFunc
}

// PrintCommands writes a usage line for each command to writer.
func PrintCommands(writer io.Writer, commands []Command) {
	printCommands(writer, commands)
}

// RunCommands runs the command named by the first non-flag argument, passing
// it the remaining arguments. It returns an exit status: 0 on success, 1 if
// the command failed and 2 for a usage error.
func RunCommands(commands []Command, printUsage func(),
	logger log.DebugLogger) int {
	return runCommands(flag.CommandLine.Output(), flag.Args(), commands,
		printUsage, logger)
}
