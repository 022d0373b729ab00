package logger

import "sync"

// global state
var (
	// registry maps logger names to their singleton Logger.
	registry   = map[string]*Logger{}
	registryMu sync.Mutex

	extraLevelsOnce sync.Once
)

// Config defines the options used the first time a name is requested from Get.
type Config struct {
	// Level is the minimum severity that reaches the handlers.
	// Default: InfoLevel
	Level Level
	// OutputFile mirrors every record to this file in plain text. The file is
	// truncated when opened; empty disables file logging.
	// Default: "" (file logging disabled)
	OutputFile string
}

// Get returns the Logger registered under name, creating it on first use.
//
// Creation registers the TRACE and VERBOSE levels (once per process), attaches
// a colourized console handler and, if config.OutputFile is set, a plain file
// handler. Once a name exists, config is ignored and the existing Logger is
// returned unchanged, so two calls with the same name always return the same
// pointer.
//
// The error from opening config.OutputFile is returned as-is; nothing is
// registered in that case.
// Safe for concurrent use.
func Get(name string, config Config) (*Logger, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if l, ok := registry[name]; ok {
		return l, nil
	}

	ensureExtraLevels()
	l, err := newLogger(name, config)
	if err != nil {
		return nil, err
	}
	registry[name] = l
	return l, nil
}

// CurrentLevel returns the threshold of the named logger.
// The boolean is false when no logger has been created under name.
func CurrentLevel(name string) (Level, bool) {
	registryMu.Lock()
	l, ok := registry[name]
	registryMu.Unlock()
	if !ok {
		return 0, false
	}
	return l.Level(), true
}

func ensureExtraLevels() {
	extraLevelsOnce.Do(registerExtraLevels)
}

// resetRegistry closes and forgets every Logger. Levels are left as they are.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	for name, l := range registry {
		_ = l.Close()
		delete(registry, name)
	}
}
