// Package logger provides a small leveled logging facade with a terminal
// sink, an optional file sink and severity-colored terminal output.
//
// # Output
//
// Every accepted event becomes one line:
//
//	[<package path> - <line>] <LEVEL>: <message>
//
// The terminal copy is wrapped in an ANSI color when Config.Colorize is set
// (TRACE green, DEBUG blue, INFO purple, WARN yellow, ERROR red). The file copy
// is always plain text.
//
// # Features
//
//   - Global package-level functions (no dependency injection needed)
//   - Five levels, TRACE < DEBUG < INFO < WARN < ERROR, filtered by Config.MaxLevel
//   - Disabled levels cost a single atomic load
//   - Optional buffered file output, created or truncated at Init
//   - Custom sinks through InitWithHandler
//
// # Usage
//
// Initialize once at startup and release at shutdown:
//
//	cfg := logger.DefaultConfig()
//	cfg.LogToFile = true
//	cfg.FilePath = "app.log"
//	cfg.MaxLevel = logger.InfoLevel
//	if err := logger.Init(cfg); err != nil {
//	    panic(err)
//	}
//	defer logger.Release()
//
// Or with the chained setters:
//
//	cfg := logger.DefaultConfig()
//	err := cfg.WithFile(true).WithFilePath("app.log").WithColor(false).Finalize()
//
// Log from anywhere:
//
//	logger.Infof("server started on port %d", 8080)
//	logger.Errorf("failed to connect: %v", err)
//
// Calls made while no logger is installed are dropped. Init fails while a
// logger is installed, and Release fails while none is.
//
// This package has no external dependencies.
package logger
