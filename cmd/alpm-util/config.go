package main

import (
	"fmt"

	"github.com/pamac-go/alpmutil/lib/alpm"
	"github.com/pamac-go/alpmutil/lib/log"
	"github.com/pamac-go/alpmutil/lib/pacmanconf"
)

func getConfig(logger log.DebugLogger) (*pacmanconf.Config, error) {
	config, err := pacmanconf.Load(*configFile, logger)
	if err != nil {
		return nil, err
	}
	if err := applyOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

func applyOverrides(config *pacmanconf.Config) error {
	options := &config.Options
	if *architecture != "" {
		if *architecture == "auto" {
			options.Architecture = pacmanconf.GetMachine()
		} else {
			options.Architecture = *architecture
		}
	}
	if len(cacheDirs) > 0 {
		options.CacheDirs = cacheDirs
	}
	if *dbPath != "" {
		options.DBPath = *dbPath
	}
	if *gpgDir != "" {
		options.GPGDir = *gpgDir
	}
	if *rootDir != "" {
		options.RootDir = *rootDir
	}
	if *sigLevel != "" {
		level, err := alpm.ParseSigLevel(config.DefaultSigLevel, *sigLevel)
		if err != nil {
			return fmt.Errorf("error parsing -sigLevel: %s", err)
		}
		options.LocalFileSigLevel = *sigLevel
		config.LocalFileSigLevel = alpm.MergeSigLevel(config.DefaultSigLevel,
			level)
	}
	return nil
}

func getHandle(logger log.DebugLogger) (*alpm.Handle, error) {
	config, err := getConfig(logger)
	if err != nil {
		return nil, err
	}
	return config.NewHandle(logger)
}
