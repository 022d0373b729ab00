package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"
)

// Level is a severity rank. Higher ranks are more severe.
type Level int

const (
	// TraceLevel is the most detailed level. It is registered on the first Get.
	TraceLevel Level = 5
	// DebugLevel enables debug logging.
	DebugLevel Level = 10
	// VerboseLevel sits between debug and info. It is registered on the first Get.
	VerboseLevel Level = 15
	// InfoLevel enables informational logging.
	InfoLevel Level = 20
	// WarningLevel enables warning logging.
	WarningLevel Level = 30
	// ErrorLevel enables error logging.
	ErrorLevel Level = 40
	// CriticalLevel enables critical logging.
	CriticalLevel Level = 50
)

// ErrDuplicateLevel is matched by every *DuplicateLevelError.
var ErrDuplicateLevel = errors.New("duplicate level")

// DuplicateLevelError is returned by RegisterLevel when a level name or a
// method name is already taken.
type DuplicateLevelError struct {
	// Name is the clashing level or method name.
	Name string
	// Owner describes where Name is already defined.
	Owner string
}

func (e *DuplicateLevelError) Error() string {
	return fmt.Sprintf("%s already defined in %s", e.Name, e.Owner)
}

// Is reports whether target is ErrDuplicateLevel.
func (e *DuplicateLevelError) Is(target error) bool {
	return target == ErrDuplicateLevel
}

// levelTable is the process-wide set of known levels.
type levelTable struct {
	mu      sync.RWMutex
	names   map[Level]string
	ranks   map[string]Level
	methods map[string]Level
}

var levels = newLevelTable()

// extraLevels are installed once per process by Get.
var extraLevels = []struct {
	name string
	rank Level
}{
	{"VERBOSE", VerboseLevel},
	{"TRACE", TraceLevel},
}

// loggerMethods holds the lower-cased method names of *Logger, except for the
// methods that belong to extraLevels: those are bound when the levels register.
var loggerMethods = func() map[string]bool {
	m := map[string]bool{}
	t := reflect.TypeOf((*Logger)(nil))
	for i := 0; i < t.NumMethod(); i++ {
		m[strings.ToLower(t.Method(i).Name)] = true
	}
	for _, l := range extraLevels {
		delete(m, strings.ToLower(l.name))
	}
	return m
}()

func newLevelTable() *levelTable {
	t := &levelTable{
		names:   map[Level]string{},
		ranks:   map[string]Level{},
		methods: map[string]Level{},
	}
	for _, l := range []struct {
		name string
		rank Level
	}{
		{"DEBUG", DebugLevel},
		{"INFO", InfoLevel},
		{"WARNING", WarningLevel},
		{"ERROR", ErrorLevel},
		{"CRITICAL", CriticalLevel},
	} {
		t.names[l.rank] = l.name
		t.ranks[l.name] = l.rank
		t.methods[strings.ToLower(l.name)] = l.rank
	}
	return t
}

// RegisterLevel adds a named rank to the process-wide level table and binds
// a convenience method, reachable through Logger.Method, under methodName.
// methodName defaults to the lower-cased name.
//
// To avoid clobbering existing levels, RegisterLevel returns a
// *DuplicateLevelError when name is already a level, or when methodName is
// already a level method or a method of *Logger. The table is left untouched
// on error.
//
// Example:
//
//	logger.RegisterLevel("NOTICE", 25)
//	log, _ := logger.Get("app", logger.Config{})
//	notice, _ := log.Method("notice")
//	notice("that worked")
func RegisterLevel(name string, rank Level, methodName ...string) error {
	if name == "" {
		return errors.New("level name must not be empty")
	}
	method := strings.ToLower(name)
	if len(methodName) > 0 && methodName[0] != "" {
		method = methodName[0]
	}

	levels.mu.Lock()
	defer levels.mu.Unlock()

	if _, ok := levels.ranks[name]; ok {
		return &DuplicateLevelError{Name: name, Owner: "level table"}
	}
	if _, ok := levels.ranks[method]; ok {
		return &DuplicateLevelError{Name: method, Owner: "level table"}
	}
	if _, ok := levels.methods[method]; ok {
		return &DuplicateLevelError{Name: method, Owner: "level methods"}
	}
	if loggerMethods[strings.ToLower(method)] {
		return &DuplicateLevelError{Name: method, Owner: "logger class"}
	}

	levels.names[rank] = name
	levels.ranks[name] = rank
	levels.methods[method] = rank
	return nil
}

// registerExtraLevels installs TRACE and VERBOSE unless something already did.
func registerExtraLevels() {
	for _, l := range extraLevels {
		if _, ok := lookupLevel(l.name); ok {
			continue
		}
		// A clash here means the caller took the method name first; the
		// level methods keep working with the bare rank.
		_ = RegisterLevel(l.name, l.rank)
	}
}

func lookupLevel(name string) (Level, bool) {
	levels.mu.RLock()
	defer levels.mu.RUnlock()
	rank, ok := levels.ranks[name]
	return rank, ok
}

func lookupMethod(method string) (Level, bool) {
	levels.mu.RLock()
	defer levels.mu.RUnlock()
	rank, ok := levels.methods[method]
	return rank, ok
}

// String returns the registered name of the level, or "Level <n>".
func (l Level) String() string {
	levels.mu.RLock()
	name, ok := levels.names[l]
	levels.mu.RUnlock()
	if ok {
		return name
	}
	return fmt.Sprintf("Level %d", int(l))
}

// ParseLevel resolves a registered level name, ignoring case.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARN" {
		name = "WARNING"
	}
	ensureExtraLevels()
	if rank, ok := lookupLevel(name); ok {
		return rank, nil
	}
	return 0, fmt.Errorf("unknown level %q", s)
}

// LevelFromString is ParseLevel that falls back to InfoLevel.
func LevelFromString(s string) Level {
	if rank, err := ParseLevel(s); err == nil {
		return rank
	}
	return InfoLevel
}

func (l Level) slog() slog.Level {
	return slog.Level(l)
}
