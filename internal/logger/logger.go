package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Until InitLogger runs, records are dropped so library code and tests stay quiet.
var defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options controls where and how verbosely the launcher logs.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// ToFile writes records to the state-directory log file.
	ToFile bool
	// ToStderr writes records to stderr. Never enable this while the menu
	// owns the terminal.
	ToStderr bool
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", name)
	}
}

// LogFilePath determines the path for the application log file based on XDG spec.
func LogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, "ttr", "ttr.log"), nil
}

func openLogFile() (*os.File, error) {
	logFilePath, err := LogFilePath()
	if err != nil {
		return nil, err
	}
	// 0750: user rwx, group rx, others ---
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}
	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("could not open log file %s: %w", logFilePath, err)
	}
	return file, nil
}

// InitLogger configures the package logger. It should be called once, early
// in main. File logging failures are reported on stderr and otherwise ignored
// so a read-only state directory never prevents running tasks.
func InitLogger(opts Options) error {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}

	var writers []io.Writer
	if opts.ToFile {
		file, err := openLogFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v. File logging disabled.\n", err)
		} else {
			// Closed by the OS on exit.
			writers = append(writers, file)
		}
	}
	if opts.ToStderr {
		writers = append(writers, os.Stderr)
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	// JSON keeps the file greppable with jq.
	defaultLogger = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	return nil
}

// SetLogger replaces the package logger, mainly for tests.
func SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	defaultLogger = l
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}
