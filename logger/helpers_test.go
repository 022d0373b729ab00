package logger

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

// captureConsole points the console of loggers created by the test at a
// buffer, and forgets every logger once the test ends.
func captureConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	resetRegistry()

	var buf bytes.Buffer
	oldStdout := outStdout
	outStdout = &buf
	t.Cleanup(func() {
		resetRegistry()
		outStdout = oldStdout
	})
	return &buf
}

func outputLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// callerPC returns the pc of the function calling it.
func callerPC() uintptr {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:])
	return pcs[0]
}

// unregisterLevel removes a level registered by the test once it ends.
func unregisterLevel(t *testing.T, name, method string) {
	t.Helper()
	t.Cleanup(func() {
		levels.mu.Lock()
		defer levels.mu.Unlock()
		if rank, ok := levels.ranks[name]; ok {
			delete(levels.names, rank)
		}
		delete(levels.ranks, name)
		delete(levels.methods, method)
	})
}
