package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// timeLayout matches the classic "2006-01-02 15:04:05,000" log timestamp.
const timeLayout = "2006-01-02 15:04:05,000"

// style is an ANSI SGR sequence. Attributes are emitted in order, so
// style{color.FgGreen, color.Bold} renders as ESC[32;1m.
type style []color.Attribute

func (s style) sequence() string {
	codes := make([]string, len(s))
	for i, a := range s {
		codes[i] = strconv.Itoa(int(a))
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

var (
	reset       = style{color.Reset}.sequence()
	dim         = style{color.FgBlack, color.Bold}.sequence()
	magenta     = style{color.FgMagenta}.sequence()
	tracebackFg = style{color.FgRed}.sequence()

	levelColours = map[Level]string{
		DebugLevel:    style{color.FgGreen, color.Bold}.sequence(),
		VerboseLevel:  style{color.FgCyan, color.Bold}.sequence(),
		InfoLevel:     style{color.FgBlue, color.Bold}.sequence(),
		WarningLevel:  style{color.FgYellow, color.Bold}.sequence(),
		ErrorLevel:    style{color.FgRed}.sequence(),
		CriticalLevel: style{color.BgRed}.sequence(),
	}
)

// ColourFormatter renders console entries:
//
//	[timestamp] [LEVEL] function: message
//
// with the timestamp dimmed, the level tag coloured by severity and the
// function in magenta. Levels without a colour of their own, TRACE and custom
// levels included, use the DEBUG colour. An error attached by
// Logger.Exception is rendered in red on the following lines.
type ColourFormatter struct{}

// Format implements Formatter.
func (ColourFormatter) Format(r slog.Record) string {
	colour, ok := levelColours[Level(r.Level)]
	if !ok {
		colour = levelColours[DebugLevel]
	}

	var b strings.Builder
	b.WriteString(dim + "[" + r.Time.Format(timeLayout) + "]" + reset + " ")
	b.WriteString(colour + "[" + Level(r.Level).String() + "] " + reset)
	b.WriteString(magenta + fmt.Sprintf("%8s:", funcName(r.PC)) + reset)
	b.WriteString(" " + r.Message)

	if err := recordError(r); err != nil {
		b.WriteString("\n" + tracebackFg + fmt.Sprintf("%+v", err) + reset)
	}
	return b.String()
}

// PlainFormatter renders file entries without escape sequences:
//
//	[timestamp] [LEVEL] function: message
type PlainFormatter struct{}

// Format implements Formatter.
func (PlainFormatter) Format(r slog.Record) string {
	line := fmt.Sprintf("[%s] [%s] %s: %s",
		r.Time.Format(timeLayout), Level(r.Level), funcName(r.PC), r.Message)
	if err := recordError(r); err != nil {
		line += "\n" + fmt.Sprintf("%+v", err)
	}
	return line
}

// recordError returns the error attached to r by Logger.Exception, if any.
func recordError(r slog.Record) error {
	var err error
	r.Attrs(func(a slog.Attr) bool {
		if a.Key != errorKey {
			return true
		}
		err, _ = a.Value.Any().(error)
		return false
	})
	return err
}
