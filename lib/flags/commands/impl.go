package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/pamac-go/alpmutil/lib/log"
)

func printCommands(writer io.Writer, commands []Command) {
	isSorted := sort.SliceIsSorted(commands, func(i, j int) bool {
		return commands[i].Command < commands[j].Command
	})
	if !isSorted {
		fmt.Fprintln(writer, "NOTE: COMMANDS ARE NOT SORTED!")
	}
	for _, command := range commands {
		if command.CmdFunc == nil {
			continue
		}
		if command.Args == "" {
			fmt.Fprintln(writer, " ", command.Command)
		} else {
			fmt.Fprintln(writer, " ", command.Command, command.Args)
		}
	}
}

func findCommand(commands []Command, name string) *Command {
	for index := range commands {
		if commands[index].CmdFunc != nil &&
			commands[index].Command == name {
			return &commands[index]
		}
	}
	return nil
}

func runCommands(errWriter io.Writer, args []string, commands []Command,
	printUsage func(), logger log.DebugLogger) int {
	if len(args) < 1 {
		printUsage()
		return 2
	}
	command := findCommand(commands, args[0])
	if command == nil {
		printUsage()
		return 2
	}
	numCommandArgs := len(args) - 1
	if numCommandArgs < command.MinArgs ||
		(command.MaxArgs >= 0 && numCommandArgs > command.MaxArgs) {
		printUsage()
		return 2
	}
	if err := command.CmdFunc(args[1:], logger); err != nil {
		fmt.Fprintln(errWriter, err)
		return 1
	}
	return 0
}
