package pacmanconf

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pamac-go/alpmutil/lib/alpm"
	"github.com/pamac-go/alpmutil/lib/list"
	"github.com/pamac-go/alpmutil/lib/log"
)

const maxIncludeDepth = 10

var (
	booleanOptions = map[string]func(*Options){
		"CheckSpace":      func(o *Options) { o.CheckSpace = true },
		"Color":           func(o *Options) { o.Color = true },
		"ILoveCandy":      func(o *Options) { o.ILoveCandy = true },
		"TotalDownload":   func(o *Options) { o.TotalDownload = true },
		"UseSyslog":       func(o *Options) { o.UseSyslog = true },
		"VerbosePkgLists": func(o *Options) { o.VerbosePkgLists = true },
	}
	listOptions = map[string]struct{}{
		"CacheDir":    {},
		"HoldPkg":     {},
		"IgnoreGroup": {},
		"IgnorePkg":   {},
		"NoExtract":   {},
		"NoUpgrade":   {},
		"Server":      {},
		"SyncFirst":   {},
	}
	singleOptions = map[string]func(*Options) *string{
		"Architecture":       func(o *Options) *string { return &o.Architecture },
		"CleanMethod":        func(o *Options) *string { return &o.CleanMethod },
		"DBPath":             func(o *Options) *string { return &o.DBPath },
		"GPGDir":             func(o *Options) *string { return &o.GPGDir },
		"LocalFileSigLevel":  func(o *Options) *string { return &o.LocalFileSigLevel },
		"LogFile":            func(o *Options) *string { return &o.LogFile },
		"RemoteFileSigLevel": func(o *Options) *string { return &o.RemoteFileSigLevel },
		"RootDir":            func(o *Options) *string { return &o.RootDir },
		"SigLevel":           func(o *Options) *string { return &o.SigLevel },
		"UseDelta":           func(o *Options) *string { return &o.UseDelta },
		"XferCommand":        func(o *Options) *string { return &o.XferCommand },
	}
)

type repositoryState struct {
	repository *Repository
	servers    *list.UniqueList[string]
}

type parserState struct {
	config       *Config
	listOptions  map[string]*list.UniqueList[string]
	logger       log.DebugLogger
	repositories map[string]*repositoryState
	section      string
}

func load(filename string, logger log.DebugLogger) (*Config, error) {
	state := &parserState{
		config: &Config{
			Options: Options{
				RootDir:      defaultRootDir,
				DBPath:       defaultDBPath,
				GPGDir:       defaultGPGDir,
				LogFile:      defaultLogFile,
				Architecture: "auto",
			},
			DefaultSigLevel: alpm.DefaultSigLevel,
		},
		listOptions:  make(map[string]*list.UniqueList[string]),
		logger:       logger,
		repositories: make(map[string]*repositoryState),
	}
	if err := state.parseFile(filename, 0); err != nil {
		return nil, err
	}
	if err := state.finish(); err != nil {
		return nil, err
	}
	return state.config, nil
}

func (state *parserState) parseFile(filename string, depth int) error {
	if depth > maxIncludeDepth {
		return fmt.Errorf("%s: includes nested too deeply", filename)
	}
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if len(line) < 1 || line[0] == '#' {
			continue
		}
		if line[0] == '[' && line[len(line)-1] == ']' {
			state.startSection(line[1 : len(line)-1])
			continue
		}
		if err := state.parseLine(line, depth); err != nil {
			return fmt.Errorf("%s:%d: %s", filename, lineNumber, err)
		}
	}
	return scanner.Err()
}

func (state *parserState) startSection(section string) {
	state.section = section
}

// getRepository returns the state for the current repository section,
// creating it on first use. A section with no keys creates no repository.
func (state *parserState) getRepository() *repositoryState {
	if repo, ok := state.repositories[state.section]; ok {
		return repo
	}
	repo := &repositoryState{
		repository: &Repository{
			Name:     state.section,
			SigLevel: state.config.DefaultSigLevel,
		},
		servers: list.NewUnique[string](),
	}
	state.repositories[state.section] = repo
	state.config.Repositories = append(state.config.Repositories,
		repo.repository)
	return repo
}

func (state *parserState) parseLine(line string, depth int) error {
	if state.section == "" {
		return fmt.Errorf("statement outside of a section: %s", line)
	}
	key, value, hasValue := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if hasValue && key == "Include" {
		return state.include(value, depth)
	}
	if state.section != "options" {
		return state.parseRepositoryLine(key, value, hasValue, line)
	}
	if !hasValue {
		if setOption, ok := booleanOptions[key]; ok {
			setOption(&state.config.Options)
		} else {
			state.logger.Printf("unrecognized option: %s\n", key)
		}
		return nil
	}
	if _, ok := listOptions[key]; ok {
		values, ok := state.listOptions[key]
		if !ok {
			values = list.NewUnique[string]()
			state.listOptions[key] = values
		}
		for _, field := range strings.Fields(value) {
			values.Add(field)
		}
		return nil
	}
	getOption, ok := singleOptions[key]
	if !ok {
		state.logger.Printf("unrecognized option: %s\n", key)
		return nil
	}
	if key == "Architecture" && value == "auto" {
		return nil
	}
	*getOption(&state.config.Options) = value
	if key == "SigLevel" {
		level, err := alpm.ParseSigLevel(state.config.DefaultSigLevel, value)
		if err != nil {
			return err
		}
		state.config.DefaultSigLevel = level
	}
	return nil
}

func (state *parserState) parseRepositoryLine(key, value string,
	hasValue bool, line string) error {
	switch {
	case hasValue && key == "Server":
		state.getRepository().servers.Add(value)
	case hasValue && key == "SigLevel":
		repo := state.getRepository()
		level, err := alpm.ParseSigLevel(repo.repository.SigLevel, value)
		if err != nil {
			return err
		}
		repo.repository.SigLevel = level
	default:
		return fmt.Errorf("invalid key for repository configuration: %s",
			line)
	}
	return nil
}

func (state *parserState) include(pattern string, depth int) error {
	filenames, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	if len(filenames) < 1 {
		state.logger.Debugf(0, "no include files match: %s\n", pattern)
	}
	sort.Strings(filenames)
	for _, filename := range filenames {
		if err := state.parseFile(filename, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (state *parserState) finish() error {
	options := &state.config.Options
	for key, values := range state.listOptions {
		switch key {
		case "CacheDir":
			options.CacheDirs = values.Values()
		case "HoldPkg":
			options.HoldPkgs = values.Values()
		case "IgnoreGroup":
			options.IgnoreGroups = values.Values()
		case "IgnorePkg":
			options.IgnorePkgs = values.Values()
		case "NoExtract":
			options.NoExtract = values.Values()
		case "NoUpgrade":
			options.NoUpgrade = values.Values()
		case "SyncFirst":
			options.SyncFirst = values.Values()
		}
	}
	if len(options.CacheDirs) < 1 {
		options.CacheDirs = []string{defaultCacheDir}
	}
	if options.Architecture == "auto" {
		options.Architecture = getMachine()
	}
	for _, repo := range state.repositories {
		repo.repository.Servers = repo.servers.Values()
	}
	var err error
	state.config.LocalFileSigLevel, err = resolveSigLevel(
		state.config.DefaultSigLevel, options.LocalFileSigLevel)
	if err != nil {
		return fmt.Errorf("LocalFileSigLevel: %s", err)
	}
	state.config.RemoteFileSigLevel, err = resolveSigLevel(
		state.config.DefaultSigLevel, options.RemoteFileSigLevel)
	if err != nil {
		return fmt.Errorf("RemoteFileSigLevel: %s", err)
	}
	return nil
}

func resolveSigLevel(base alpm.SigLevel,
	directives string) (alpm.SigLevel, error) {
	if directives == "" {
		return base, nil
	}
	level, err := alpm.ParseSigLevel(base, directives)
	if err != nil {
		return 0, err
	}
	return alpm.MergeSigLevel(base, level), nil
}
