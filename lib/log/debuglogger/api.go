package debuglogger

import (
	"log"
)

// Logger wraps a standard library *log.Logger, adding leveled debug output.
// Debug messages with a level above the configured level are discarded.
type Logger struct {
	*log.Logger
	level int16
}

// New will create a Logger with debugging disabled.
func New(logger *log.Logger) *Logger {
	return &Logger{Logger: logger, level: -1}
}

// Debug will print if level is not above the debug level.
func (l *Logger) Debug(level uint8, v ...interface{}) {
	if l.enabled(level) {
		l.Print(v...)
	}
}

// Debugf is similar to Debug, with formatting support.
func (l *Logger) Debugf(level uint8, format string, v ...interface{}) {
	if l.enabled(level) {
		l.Printf(format, v...)
	}
}

// Debugln is similar to Debug.
func (l *Logger) Debugln(level uint8, v ...interface{}) {
	if l.enabled(level) {
		l.Println(v...)
	}
}

// GetLevel returns the current debug level. -1 means debugging is disabled.
func (l *Logger) GetLevel() int16 {
	return l.level
}

// SetLevel sets the debug level. Supported range: -1 to 255.
func (l *Logger) SetLevel(level int16) {
	l.level = level
}
