package migrator

import (
	"io"

	"github.com/fatih/color"
)

// logger writes the colored progress lines of a run.
type logger struct {
	out io.Writer
}

func newLogger(out io.Writer) *logger {
	if out == nil {
		out = color.Output
	}
	return &logger{out: out}
}

func (l *logger) print(c *color.Color, format string, a ...interface{}) {
	c.Fprintf(l.out, format+"\n", a...)
}

func (l *logger) info(format string, a ...interface{}) {
	l.print(color.New(color.FgCyan), format, a...)
}

func (l *logger) success(format string, a ...interface{}) {
	l.print(color.New(color.FgGreen), format, a...)
}

func (l *logger) warn(format string, a ...interface{}) {
	l.print(color.New(color.FgYellow), format, a...)
}

func (l *logger) detail(format string, a ...interface{}) {
	l.print(color.New(color.FgWhite), format, a...)
}
