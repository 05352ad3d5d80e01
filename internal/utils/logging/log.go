// Package logging provides tiktokdl's leveled console and file logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"tiktokdl/internal/domain/consts"

	"github.com/rs/zerolog"
)

// LoggingConfig configures SetupLogging.
type LoggingConfig struct {
	Verbosity   int       // 0: warnings and errors, 1: info, 2+: debug
	Console     io.Writer // defaults to os.Stderr
	LogFilePath string    // optional, appended to
	NoColor     bool
}

var (
	// Level is the verbosity the logger was set up with.
	Level int

	logger  = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).Level(zerolog.WarnLevel)
	logFile *os.File
	mu      sync.Mutex
)

// SetupLogging (re)configures the package logger.
func SetupLogging(cfg LoggingConfig) error {
	mu.Lock()
	defer mu.Unlock()

	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    cfg.NoColor,
	}}

	if cfg.LogFilePath != "" {
		f, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, consts.PermsLogFile)
		if err != nil {
			return fmt.Errorf("failed to open log file %q: %w", cfg.LogFilePath, err)
		}
		if logFile != nil {
			logFile.Close()
		}
		logFile = f
		writers = append(writers, f)
	}

	Level = cfg.Verbosity
	logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(levelFor(cfg.Verbosity)).
		With().
		Timestamp().
		Str("program", consts.ProgramName).
		Logger()
	return nil
}

// Close releases the log file, if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// levelFor maps a -v count onto a zerolog level.
func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// E logs an error.
func E(format string, args ...any) {
	logger.Error().Msgf(format, args...)
}

// W logs a warning.
func W(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

// I logs an informational message.
func I(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

// S logs a success message.
func S(format string, args ...any) {
	logger.Info().Bool("success", true).Msgf(format, args...)
}

// D logs a debug message when the verbosity is above l.
func D(l int, format string, args ...any) {
	if l >= Level {
		return
	}
	logger.Debug().Int("debug_level", l).Msgf(format, args...)
}
