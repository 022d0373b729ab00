package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"
)

// Stack levels handed to log: the number of frames between the user's call
// site and log itself.
const (
	// directStackLevel is used by methods that call log directly.
	directStackLevel = 2
	// indirectStackLevel is used by methods that go through logAt.
	indirectStackLevel = 3
)

// errorKey is the record attribute that carries the error of Exception.
const errorKey = "exc_info"

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// Logger is a named logger. Obtain one through Get; the zero value is not usable.
type Logger struct {
	name    string
	level   *slog.LevelVar
	slogger *slog.Logger
	file    *writerHandler
}

func newLogger(name string, config Config) (*Logger, error) {
	level := config.Level
	if level == 0 {
		level = InfoLevel
	}
	lv := new(slog.LevelVar)
	lv.Set(level.slog())

	handlers := fanoutHandler{newWriterHandler(outStdout, ColourFormatter{}, lv)}

	var file *writerHandler
	if config.OutputFile != "" {
		f, err := os.OpenFile(config.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, err
		}
		file = newWriterHandler(f, PlainFormatter{}, lv)
		handlers = append(handlers, file)
	}

	return &Logger{
		name:    name,
		level:   lv,
		slogger: slog.New(handlers),
		file:    file,
	}, nil
}

// Name returns the name the Logger was registered under.
func (l *Logger) Name() string {
	return l.name
}

// Level returns the current threshold.
func (l *Logger) Level() Level {
	return Level(l.level.Level())
}

// SetLevel changes the threshold at runtime.
func (l *Logger) SetLevel(level Level) {
	l.level.Set(level.slog())
}

// Enabled reports whether a record at level would reach the handlers.
func (l *Logger) Enabled(level Level) bool {
	return l.slogger.Enabled(context.Background(), level.slog())
}

// Slog returns the underlying *slog.Logger. Records logged through it are
// attributed to the frame slog reports, and their attributes are ignored.
func (l *Logger) Slog() *slog.Logger {
	return l.slogger
}

// Close releases the output file, if any. Console output keeps working; file
// output stops. Calling Close more than once is safe.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.close()
}

// --- Level methods (printf style, arguments are optional) ---

// Trace logs at TRACE.
func (l *Logger) Trace(msg string, args ...any) {
	l.logAt(TraceLevel, msg, args)
}

// Verbose logs at VERBOSE.
func (l *Logger) Verbose(msg string, args ...any) {
	l.logAt(VerboseLevel, msg, args)
}

// Debug logs at DEBUG.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(directStackLevel, DebugLevel, nil, msg, args)
}

// Info logs at INFO.
func (l *Logger) Info(msg string, args ...any) {
	l.log(directStackLevel, InfoLevel, nil, msg, args)
}

// Warning logs at WARNING.
func (l *Logger) Warning(msg string, args ...any) {
	l.log(directStackLevel, WarningLevel, nil, msg, args)
}

// Error logs at ERROR.
func (l *Logger) Error(msg string, args ...any) {
	l.log(directStackLevel, ErrorLevel, nil, msg, args)
}

// Exception logs at ERROR and renders err below the message, in red on the
// console. A nil err logs the message alone.
func (l *Logger) Exception(err error, msg string, args ...any) {
	l.log(directStackLevel, ErrorLevel, err, msg, args)
}

// Critical logs at CRITICAL.
func (l *Logger) Critical(msg string, args ...any) {
	l.log(directStackLevel, CriticalLevel, nil, msg, args)
}

// Log logs at an arbitrary level, registered or not.
func (l *Logger) Log(level Level, msg string, args ...any) {
	l.log(directStackLevel, level, nil, msg, args)
}

// Method returns the convenience method bound to methodName by RegisterLevel.
// Built-in levels are reachable under their lower-cased names too.
func (l *Logger) Method(methodName string) (func(msg string, args ...any), bool) {
	rank, ok := lookupMethod(methodName)
	if !ok {
		return nil, false
	}
	return func(msg string, args ...any) {
		l.logAt(rank, msg, args)
	}, true
}

func (l *Logger) logAt(level Level, msg string, args []any) {
	l.log(indirectStackLevel, level, nil, msg, args)
}

// log builds the record. stackLevel frames above log is the call site the
// record is attributed to.
func (l *Logger) log(stackLevel int, level Level, err error, msg string, args []any) {
	if !l.Enabled(level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(stackLevel+1, pcs[:])
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.emit(pcs[0], level, err, msg)
}

func (l *Logger) emit(pc uintptr, level Level, err error, msg string) {
	r := slog.NewRecord(time.Now(), level.slog(), msg, pc)
	if err != nil {
		r.AddAttrs(slog.Any(errorKey, err))
	}
	if herr := l.slogger.Handler().Handle(context.Background(), r); herr != nil {
		fmt.Fprintf(outStderr, "logger %s: failed to write record: %v\n", l.name, herr)
	}
}

// funcName returns the function name for pc without its import path and
// package qualifier, e.g. "(*Server).Start" or "main".
func funcName(pc uintptr) string {
	if pc == 0 {
		return "?"
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.Function == "" {
		return "?"
	}
	return shortFuncName(frame.Function)
}

func shortFuncName(full string) string {
	// Strip package path, then the package name
	if lastSlash := strings.LastIndex(full, "/"); lastSlash >= 0 {
		full = full[lastSlash+1:]
	}
	if dot := strings.Index(full, "."); dot >= 0 && dot+1 < len(full) {
		full = full[dot+1:]
	}
	return full
}

// encodeFields formats key-value pairs as " key=value" strings.
func encodeFields(keyvals ...any) string {
	if len(keyvals) == 0 {
		return ""
	}
	parts := make([]string, 0, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", key, keyvals[i+1]))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}
