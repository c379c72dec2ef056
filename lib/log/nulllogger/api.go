package nulllogger

// Logger discards all log messages. Fatal and Panic methods still terminate.
type Logger struct{}

// New returns a Logger which satisfies the log.DebugLogger interface.
func New() *Logger {
	return &Logger{}
}

func (l *Logger) Debug(level uint8, v ...interface{}) {}

func (l *Logger) Debugf(level uint8, format string, v ...interface{}) {}

func (l *Logger) Debugln(level uint8, v ...interface{}) {}

func (l *Logger) Fatal(v ...interface{}) { l.fatal() }

func (l *Logger) Fatalf(format string, v ...interface{}) { l.fatal() }

func (l *Logger) Fatalln(v ...interface{}) { l.fatal() }

func (l *Logger) Panic(v ...interface{}) { panic("nulllogger.Panic") }

func (l *Logger) Panicf(format string, v ...interface{}) {
	panic("nulllogger.Panicf")
}

func (l *Logger) Panicln(v ...interface{}) { panic("nulllogger.Panicln") }

func (l *Logger) Print(v ...interface{}) {}

func (l *Logger) Printf(format string, v ...interface{}) {}

func (l *Logger) Println(v ...interface{}) {}
