package logger

import (
	"io"
	"reflect"
	"runtime"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Hclog converts the level to the nearest hclog level. VERBOSE maps to Debug,
// CRITICAL to Error.
func (l Level) Hclog() hclog.Level {
	switch {
	case l < DebugLevel:
		return hclog.Trace
	case l < InfoLevel:
		return hclog.Debug
	case l < WarningLevel:
		return hclog.Info
	case l < ErrorLevel:
		return hclog.Warn
	default:
		return hclog.Error
	}
}

// LevelFromHclog converts an hclog level. Unknown levels become InfoLevel.
func LevelFromHclog(level hclog.Level) Level {
	switch level {
	case hclog.Trace:
		return TraceLevel
	case hclog.Debug:
		return DebugLevel
	case hclog.Info:
		return InfoLevel
	case hclog.Warn:
		return WarningLevel
	case hclog.Error:
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Hclog returns an hclog.Logger that feeds l, for libraries that take one.
// Records go through l's threshold and handlers; key/value arguments are
// appended to the message as key=value pairs and sub-logger names prefix it.
func (l *Logger) Hclog() hclog.InterceptLogger {
	il := hclog.NewInterceptLogger(&hclog.LoggerOptions{
		Name:   l.name,
		Level:  hclog.Trace,
		Output: io.Discard,
	})
	il.RegisterSink(&hclogSink{target: l})
	return il
}

// hclogSink adapts hclog records to a Logger.
type hclogSink struct {
	target *Logger
}

var _ hclog.SinkAdapter = &hclogSink{}

// sinkFuncPrefix identifies the sink's own frames when looking for the caller.
var sinkFuncPrefix = reflect.TypeOf(hclogSink{}).PkgPath() + ".(*hclogSink)"

const hclogFuncPrefix = "github.com/hashicorp/go-hclog."

func (s *hclogSink) Accept(name string, level hclog.Level, msg string, args ...interface{}) {
	lvl := LevelFromHclog(level)
	if !s.target.Enabled(lvl) {
		return
	}
	if name != "" && name != s.target.name {
		msg = strings.TrimPrefix(name, s.target.name+".") + ": " + msg
	}
	s.target.emit(hclogCaller(), lvl, nil, msg+encodeFields(args...))
}

// hclogCaller returns the pc of the first frame outside hclog and the sink.
func hclogCaller() uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, hclogFuncPrefix) && !strings.HasPrefix(frame.Function, sinkFuncPrefix) {
			// frame.PC points into the call instruction, pcs hold return
			// addresses: convert back so funcName resolves it the same way.
			return frame.PC + 1
		}
		if !more {
			return 0
		}
	}
}
