// Package logging writes component-tagged log lines to a per-run file under
// ~/.pagefetch/logs. Every component in one process shares the same run id
// and therefore the same file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel accepts debug, info, warn or error in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger tags every line with a timestamp, component and level. Lines below
// the minimum level are dropped.
type Logger struct {
	runID     string
	component string
	out       io.Writer
	file      *os.File
	logger    *log.Logger
	path      string
	minLevel  Level
	mu        sync.Mutex
	closeOnce sync.Once
}

var (
	runID     string
	runIDOnce sync.Once

	logDir  string
	dirOnce sync.Once
	dirErr  error
)

func currentRunID() string {
	runIDOnce.Do(func() {
		runID = uuid.NewString()
	})
	return runID
}

func ensureLogDir() error {
	dirOnce.Do(func() {
		if logDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				dirErr = fmt.Errorf("failed to get home directory: %w", err)
				return
			}
			logDir = filepath.Join(home, ".pagefetch", "logs")
		}
		if err := os.MkdirAll(logDir, 0750); err != nil {
			dirErr = fmt.Errorf("failed to create log directory: %w", err)
		}
	})
	return dirErr
}

// NewLogger returns a logger for component writing to
// ~/.pagefetch/logs/<run-id>-pagefetch.log.
//
// When the file cannot be prepared, a stderr logger is returned together with
// the error so callers can keep going and report the degraded mode.
func NewLogger(component string) (*Logger, error) {
	if err := ensureLogDir(); err != nil {
		return stderrLogger(component, err), err
	}

	id := currentRunID()
	path := filepath.Join(logDir, id+"-pagefetch.log")

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		err = fmt.Errorf("failed to open log file: %w", err)
		return stderrLogger(component, err), err
	}

	l := NewWriterLogger(component, file)
	l.file = file
	l.path = path
	return l, nil
}

// NewWriterLogger returns a logger writing to w. It never owns w.
func NewWriterLogger(component string, w io.Writer) *Logger {
	return &Logger{
		runID:     currentRunID(),
		component: component,
		out:       w,
		logger:    log.New(w, "", 0),
		minLevel:  LevelDebug,
	}
}

func stderrLogger(component string, cause error) *Logger {
	l := NewWriterLogger(component, os.Stderr)
	l.Warnf("file logging unavailable, using stderr: %v", cause)
	return l
}

// SetLevel drops subsequent lines below min.
func (l *Logger) SetLevel(min Level) {
	l.mu.Lock()
	l.minLevel = min
	l.mu.Unlock()
}

func (l *Logger) write(level Level, format string, v []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.minLevel {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05.000")
	l.logger.Printf("[%s] [%s] [%s] %s", ts, l.component, level, fmt.Sprintf(format, v...))
}

// Printf logs at info level.
func (l *Logger) Printf(format string, v ...interface{}) { l.write(LevelInfo, format, v) }

func (l *Logger) Debugf(format string, v ...interface{}) { l.write(LevelDebug, format, v) }

func (l *Logger) Infof(format string, v ...interface{}) { l.write(LevelInfo, format, v) }

func (l *Logger) Warnf(format string, v ...interface{}) { l.write(LevelWarn, format, v) }

func (l *Logger) Errorf(format string, v ...interface{}) { l.write(LevelError, format, v) }

// Writer exposes the underlying destination, e.g. for the playwright driver's
// output.
func (l *Logger) Writer() io.Writer {
	return l.out
}

// RunID is shared by every logger in the process.
func (l *Logger) RunID() string {
	return l.runID
}

// Path is empty unless the logger writes to a file it opened.
func (l *Logger) Path() string {
	return l.path
}

// Close closes the log file if this logger opened one. Safe to call more
// than once.
func (l *Logger) Close() error {
	var err error
	l.closeOnce.Do(func() {
		if l.file != nil {
			err = l.file.Close()
		}
	})
	return err
}

// RunID returns the process-wide run id.
func RunID() string {
	return currentRunID()
}

// Directory returns the log directory, creating it if needed.
func Directory() (string, error) {
	if err := ensureLogDir(); err != nil {
		return "", err
	}
	return logDir, nil
}
