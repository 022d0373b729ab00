package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedTime = time.Date(2024, 6, 1, 10, 0, 0, 123_000_000, time.Local)

func TestColourFormatter_Layout(t *testing.T) {
	r := slog.NewRecord(fixedTime, InfoLevel.slog(), "hello", 0)

	got := ColourFormatter{}.Format(r)
	want := "\x1b[30;1m[2024-06-01 10:00:00,123]\x1b[0m \x1b[34;1m[INFO] \x1b[0m\x1b[35m       ?:\x1b[0m hello"
	assert.Equal(t, want, got)
}

func TestColourFormatter_LevelColours(t *testing.T) {
	ensureExtraLevels()

	testCases := []struct {
		level Level
		want  string
	}{
		{DebugLevel, "\x1b[32;1m[DEBUG] "},
		{VerboseLevel, "\x1b[36;1m[VERBOSE] "},
		{InfoLevel, "\x1b[34;1m[INFO] "},
		{WarningLevel, "\x1b[33;1m[WARNING] "},
		{ErrorLevel, "\x1b[31m[ERROR] "},
		{CriticalLevel, "\x1b[41m[CRITICAL] "},
		{TraceLevel, "\x1b[32;1m[TRACE] "},
		{Level(42), "\x1b[32;1m[Level 42] "},
	}

	for _, test := range testCases {
		t.Run(test.level.String(), func(t *testing.T) {
			r := slog.NewRecord(fixedTime, test.level.slog(), "msg", 0)
			assert.Contains(t, ColourFormatter{}.Format(r), test.want)
		})
	}
}

func TestColourFormatter_FunctionName(t *testing.T) {
	r := slog.NewRecord(fixedTime, InfoLevel.slog(), "msg", callerPC())
	assert.Contains(t, ColourFormatter{}.Format(r), "\x1b[35mTestColourFormatter_FunctionName:\x1b[0m msg")
}

func TestColourFormatter_Exception(t *testing.T) {
	withErr := slog.NewRecord(fixedTime, ErrorLevel.slog(), "failed", 0)
	withErr.AddAttrs(slog.Any(errorKey, fmt.Errorf("outer: %w", errors.New("inner"))))
	plain := slog.NewRecord(fixedTime, ErrorLevel.slog(), "fine", 0)

	f := ColourFormatter{}
	first := f.Format(withErr)
	assert.Contains(t, first, " failed\n\x1b[31mouter: inner\x1b[0m")

	// nothing carries over to other records or repeated calls
	assert.NotContains(t, f.Format(plain), "outer: inner")
	assert.Equal(t, first, f.Format(withErr))
}

func TestPlainFormatter(t *testing.T) {
	r := slog.NewRecord(fixedTime, WarningLevel.slog(), "careful", 0)
	assert.Equal(t, "[2024-06-01 10:00:00,123] [WARNING] ?: careful", PlainFormatter{}.Format(r))

	r.AddAttrs(slog.Any(errorKey, errors.New("boom")))
	assert.Equal(t, "[2024-06-01 10:00:00,123] [WARNING] ?: careful\nboom", PlainFormatter{}.Format(r))
}

func TestShortFuncName(t *testing.T) {
	testCases := map[string]string{
		"github.com/acme/app/server.(*Server).Start": "(*Server).Start",
		"main.main":                                  "main",
		"github.com/acme/app/pkg.Run.func1":          "Run.func1",
		"nodots":                                     "nodots",
	}
	for full, want := range testCases {
		assert.Equal(t, want, shortFuncName(full), full)
	}
}
