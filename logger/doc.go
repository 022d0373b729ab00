// Package logger provides named singleton loggers with colourized console
// output and optional file mirroring, built on log/slog.
//
// # Named Loggers
//
// Get returns one *Logger per name for the life of the process:
//
//	log, err := logger.Get("app", logger.Config{Level: logger.DebugLevel})
//	same, _ := logger.Get("app", logger.Config{}) // same == log, config ignored
//
// The first Get registers two levels on top of the conventional set, giving
// TRACE(5) < DEBUG(10) < VERBOSE(15) < INFO(20) < WARNING(30) < ERROR(40) < CRITICAL(50).
//
// # Console Output
//
// Every logger writes to stdout with ANSI colours:
//
//	[2024-06-01 10:00:00,000] [INFO]     main: server started
//
// # File Output
//
// Config.OutputFile mirrors records to a file, truncated on open, without colours:
//
//	[2024-06-01 10:00:00,000] [INFO] main: server started
//
// # Usage
//
// Level methods take printf-style arguments and attribute the record to the
// function that called them:
//
//	log.Info("listening on %s", addr)
//	log.Exception(err, "request %d failed", id)
//
// Additional levels can be registered process-wide:
//
//	logger.RegisterLevel("NOTICE", 25)
//	notice, _ := log.Method("notice")
//	notice("disk at %d%%", 91)
//
// Libraries that expect an hclog.Logger can be handed log.Hclog().
package logger
