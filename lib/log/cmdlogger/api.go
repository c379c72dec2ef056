package cmdlogger

import (
	"flag"
	"log"
	"os"

	"github.com/pamac-go/alpmutil/lib/log/debuglogger"
)

var (
	logDebugLevel = flag.Int("logDebugLevel", -1, "Debug log level")
	logSubseconds = flag.Bool("logSubseconds", false,
		"If true, datestamps will have subsecond resolution")
	logTimestamps = flag.Bool("logTimestamps", false,
		"If true, prefix logs with timestamps")
)

// New will create a logger for command-line tools which writes to standard
// error. The log level and format are controlled by command-line flags, so
// New must be called after flag.Parse.
func New() *debuglogger.Logger {
	flags := 0
	if *logTimestamps {
		flags = log.LstdFlags
		if *logSubseconds {
			flags |= log.Lmicroseconds
		}
	}
	logger := debuglogger.New(log.New(os.Stderr, "", flags))
	logger.SetLevel(int16(*logDebugLevel))
	return logger
}
