package oledcounter

import (
	"fmt"
)

type Logger interface {
	Debug(msg string)
	Debugf(format string, v ...any)
	Info(msg string)
	Infof(format string, v ...any)
	Warn(msg string)
	Warnf(format string, v ...any)
	Error(msg string)
	Errorf(format string, v ...any)
}

// PrintLogger is a bare-bones logger that outputs to whatever println is hooked up to (the USB or UART console
// on a board, stderr on a host). Every line is prefixed with the level and Tag. Debug output is dropped unless
// Verbose is set.
type PrintLogger struct {
	Tag     string
	Verbose bool
}

func (l PrintLogger) line(level, msg string) {
	if l.Tag == "" {
		println(level, msg)
		return
	}
	println(level, l.Tag+":", msg)
}

func (l PrintLogger) Debug(msg string) {
	if l.Verbose {
		l.line("D", msg)
	}
}

func (l PrintLogger) Debugf(format string, v ...any) {
	if l.Verbose {
		l.line("D", fmt.Sprintf(format, v...))
	}
}

func (l PrintLogger) Info(msg string) {
	l.line("I", msg)
}

func (l PrintLogger) Infof(format string, v ...any) {
	l.line("I", fmt.Sprintf(format, v...))
}

func (l PrintLogger) Warn(msg string) {
	l.line("W", msg)
}

func (l PrintLogger) Warnf(format string, v ...any) {
	l.line("W", fmt.Sprintf(format, v...))
}

func (l PrintLogger) Error(msg string) {
	l.line("E", msg)
}

func (l PrintLogger) Errorf(format string, v ...any) {
	l.line("E", fmt.Sprintf(format, v...))
}

type nopLogger struct{}

func (nopLogger) Debug(string)          {}
func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Info(string)           {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warn(string)           {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Error(string)          {}
func (nopLogger) Errorf(string, ...any) {}
