package logger

import (
	"log"
	"os"
)

type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	error *log.Logger
}

func New() *Logger {
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		info:  log.New(os.Stdout, "INFO: ", flags),
		warn:  log.New(os.Stdout, "WARN: ", flags),
		error: log.New(os.Stderr, "ERROR: ", flags),
	}
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.info.Printf(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.warn.Printf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.error.Printf(format, v...)
}

// Writer exposes the info stream so other components (gorm) can share it.
func (l *Logger) Writer() *log.Logger {
	return l.info
}
