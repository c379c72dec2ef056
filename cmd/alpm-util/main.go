package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pamac-go/alpmutil/lib/flags/commands"
	"github.com/pamac-go/alpmutil/lib/flags/loadflags"
	"github.com/pamac-go/alpmutil/lib/flagutil"
	"github.com/pamac-go/alpmutil/lib/log/cmdlogger"
	"github.com/pamac-go/alpmutil/lib/pacmanconf"
)

var (
	architecture = flag.String("arch", "",
		"Architecture (overrides configuration, auto uses uname)")
	cacheDirs  flagutil.StringList
	configFile = flag.String("config", pacmanconf.DefaultConfigFile,
		"Name of pacman configuration file")
	dbPath = flag.String("dbPath", "",
		"Database directory (overrides configuration)")
	full = flag.Bool("full", false,
		"If true, read the file list when showing a package")
	gpgDir = flag.String("gpgDir", "",
		"GnuPG directory containing the keyring (overrides configuration)")
	naturalSort = flag.Bool("naturalSort", false,
		"If true, sort file lists so that embedded numbers compare numerically")
	outputFormat = flag.String("outputFormat", "json",
		"Output format for structured data: json or yaml")
	rootDir = flag.String("rootDir", "",
		"Installation root (overrides configuration)")
	sigLevel = flag.String("sigLevel", "",
		"SigLevel directives for local package files (overrides configuration)")
)

func init() {
	flag.Var(&cacheDirs, "cacheDirs",
		"Comma separated list of package cache directories (overrides configuration)")
}

func printUsage() {
	w := flag.CommandLine.Output()
	fmt.Fprintln(w, "Usage: alpm-util [flags...] command [args...]")
	fmt.Fprintln(w, "Common flags:")
	flag.PrintDefaults()
	fmt.Fprintln(w, "Commands:")
	commands.PrintCommands(w, subcommands)
}

var subcommands = []commands.Command{
	{Command: "check-signature", Args: "pkgfile...", MinArgs: 1, MaxArgs: -1,
		CmdFunc: checkSignatureSubcommand},
	{Command: "list-cache", Args: "", MinArgs: 0, MaxArgs: 0,
		CmdFunc: listCacheSubcommand},
	{Command: "list-files", Args: "pkgfile", MinArgs: 1, MaxArgs: 1,
		CmdFunc: listFilesSubcommand},
	{Command: "show-config", Args: "", MinArgs: 0, MaxArgs: 0,
		CmdFunc: showConfigSubcommand},
	{Command: "show-package", Args: "pkgfile", MinArgs: 1, MaxArgs: 1,
		CmdFunc: showPackageSubcommand},
}

func doMain() int {
	if err := loadflags.LoadForCli("alpm-util"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		return 3
	}
	if err := checkOutputFormat(*outputFormat); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	logger := cmdlogger.New()
	return commands.RunCommands(subcommands, printUsage, logger)
}

func main() {
	os.Exit(doMain())
}
