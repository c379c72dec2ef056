package main

import (
	"github.com/pamac-go/alpmutil/lib/log"
)

func showConfigSubcommand(args []string, logger log.DebugLogger) error {
	config, err := getConfig(logger)
	if err != nil {
		return err
	}
	return printValue(config)
}
