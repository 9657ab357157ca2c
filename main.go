package main

import (
	"fmt"
	"os"

	"github.com/mordilloSan/ionlog/logger"
)

// Example demonstrating ionlog usage.
func main() {
	// Usage: ./ionlog [logfile] [level]
	// Example: ./ionlog ./app.log info
	cfg := logger.DefaultConfig()
	if len(os.Args) > 1 {
		cfg.WithFile(true).WithFilePath(os.Args[1])
	}
	if len(os.Args) > 2 {
		level, err := logger.ParseLevel(os.Args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg.WithMaxLevel(level)
	}

	if err := cfg.Finalize(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() {
		if err := logger.Release(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()

	if cfg.LogToFile {
		logger.Infof("Logging to file: %s", cfg.FilePath)
	} else {
		logger.Infof("Logging to console only (provide a log file path to enable file logging)")
	}

	logger.Tracef("entering main with %d args", len(os.Args))
	logger.Debugf("max level is %s", cfg.MaxLevel)
	logger.Infof("hello %s", "world")
	logger.Warnf("be careful")
	logger.Errorf("oops: %v", "something happened")
}
