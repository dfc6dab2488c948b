// Package logger provides leveled console logging for screener.
//
// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines and implements the
// session lifecycle events consumed by the session package. Events carry
// session ids, instrument ids and question ids only: recorded answer values
// never reach a log line.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/harrison/screener/internal/models"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger logs to a writer with timestamps and level filtering.
// Color output is enabled when writing to a terminal stdout or stderr.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
	now         func() time.Time
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
		now:         time.Now,
	}
}

// isTerminal reports whether w is stdout or stderr with color allowed.
// color.NoColor already accounts for NO_COLOR and non-TTY output.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout || w == os.Stderr {
		return !color.NoColor
	}
	return false
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	default:
		return "info"
	}
}

// Level returns the effective log level.
func (cl *ConsoleLogger) Level() string {
	return cl.logLevel
}

func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := cl.now().Format("15:04:05")
	var formatted string
	if cl.colorOutput {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, colorLevel(level), message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

func colorLevel(level string) string {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		return color.New(color.FgRed).Sprint(level)
	default:
		return level
	}
}

// shortID trims a session uuid to its first block for readable log lines.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// LogSessionStart logs the start of a session at INFO level.
// Format: "session <id> started <instrument> (<n> questions)"
func (cl *ConsoleLogger) LogSessionStart(sessionID string, in *models.Instrument) {
	cl.LogInfo(fmt.Sprintf("session %s started %s (%d questions)", shortID(sessionID), in.ID, len(in.Questions)))
}

// LogCrisisIndicator logs that a crisis option was selected at WARN level.
// Only the question id is recorded.
func (cl *ConsoleLogger) LogCrisisIndicator(sessionID, questionID string) {
	cl.LogWarn(fmt.Sprintf("session %s crisis indicator selected on %s", shortID(sessionID), questionID))
}

// LogSessionComplete logs a completed session with its result label.
func (cl *ConsoleLogger) LogSessionComplete(sessionID string, result models.Result) {
	cl.LogInfo(fmt.Sprintf("session %s completed %s: %s", shortID(sessionID), result.InstrumentID, result.Label))
}

// LogSessionReset logs that a session was discarded.
func (cl *ConsoleLogger) LogSessionReset(sessionID string, from string) {
	cl.LogDebug(fmt.Sprintf("session %s reset from %s; answers discarded", shortID(sessionID), from))
}

// LogExportWritten logs a written report.
func (cl *ConsoleLogger) LogExportWritten(path, format string) {
	cl.LogInfo(fmt.Sprintf("wrote %s report to %s", format, path))
}

// LogCatalogLoaded logs which catalog is in use.
func (cl *ConsoleLogger) LogCatalogLoaded(source string, instruments int) {
	cl.LogDebug(fmt.Sprintf("loaded %d instruments from %s", instruments, source))
}

// NoOpLogger discards all log messages.
// Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(string)                            {}
func (n *NoOpLogger) LogDebug(string)                            {}
func (n *NoOpLogger) LogInfo(string)                             {}
func (n *NoOpLogger) LogWarn(string)                             {}
func (n *NoOpLogger) LogError(string)                            {}
func (n *NoOpLogger) LogSessionStart(string, *models.Instrument) {}
func (n *NoOpLogger) LogCrisisIndicator(string, string)          {}
func (n *NoOpLogger) LogSessionComplete(string, models.Result)   {}
func (n *NoOpLogger) LogSessionReset(string, string)             {}
func (n *NoOpLogger) LogExportWritten(string, string)            {}
func (n *NoOpLogger) LogCatalogLoaded(string, int)               {}
