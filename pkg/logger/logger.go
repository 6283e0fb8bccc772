package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	error *log.Logger
}

func New() *Logger {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriters sends info to out and warnings/errors to errOut.
func NewWithWriters(out, errOut io.Writer) *Logger {
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		info:  log.New(out, "INFO: ", flags),
		warn:  log.New(errOut, "WARN: ", flags),
		error: log.New(errOut, "ERROR: ", flags),
	}
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.info.Output(2, fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.warn.Output(2, fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.error.Output(2, fmt.Sprintf(format, v...))
}
