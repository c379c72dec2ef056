package testlogger

// TestLogger defines the subset of testing.T (and testing.B) used for
// logging.
type TestLogger interface {
	Fatal(v ...interface{})
	Log(v ...interface{})
}

// Logger adapts a TestLogger to the log.DebugLogger interface, so that library
// code under test can log through testing.T. Every debug level is logged.
// Trailing newlines are removed before calling the TestLogger methods.
type Logger struct {
	logger TestLogger
}

// New will create a Logger from a TestLogger.
func New(logger TestLogger) *Logger {
	return &Logger{logger: logger}
}

func (l *Logger) Debug(level uint8, v ...interface{}) {
	l.logger.Log(sprint(v...))
}

func (l *Logger) Debugf(level uint8, format string, v ...interface{}) {
	l.logger.Log(sprintf(format, v...))
}

func (l *Logger) Debugln(level uint8, v ...interface{}) {
	l.logger.Log(sprint(v...))
}

func (l *Logger) Fatal(v ...interface{}) {
	l.logger.Fatal(sprint(v...))
}

func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.logger.Fatal(sprintf(format, v...))
}

func (l *Logger) Fatalln(v ...interface{}) {
	l.logger.Fatal(sprint(v...))
}

// Panic will call the Fatal method of the TestLogger and will then panic.
func (l *Logger) Panic(v ...interface{}) {
	l.panic(sprint(v...))
}

func (l *Logger) Panicf(format string, v ...interface{}) {
	l.panic(sprintf(format, v...))
}

func (l *Logger) Panicln(v ...interface{}) {
	l.panic(sprint(v...))
}

func (l *Logger) Print(v ...interface{}) {
	l.logger.Log(sprint(v...))
}

func (l *Logger) Printf(format string, v ...interface{}) {
	l.logger.Log(sprintf(format, v...))
}

func (l *Logger) Println(v ...interface{}) {
	l.logger.Log(sprint(v...))
}
