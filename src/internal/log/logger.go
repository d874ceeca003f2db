package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

const timeLayout = "2006-01-02 15:04:05"

var mu sync.Mutex

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	verbose     = false
	disableLogs = false
	colors      = true
	logPrefixes = map[int][2]string{
		levelDebug: {"\033[37m[DBG]\033[0m", "[DBG]"}, // White
		levelInfo:  {"\033[36m[INF]\033[0m", "[INF]"}, // Cyan
		levelWarn:  {"\033[33m[WRN]\033[0m", "[WRN]"}, // Yellow
		levelError: {"\033[31m[ERR]\033[0m", "[ERR]"}, // Red
	}
)

// SetVerbose sets the logging verbosity. If true, debug messages are displayed.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose logging is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// DisableLogs disables all logging.
func DisableLogs() {
	mu.Lock()
	defer mu.Unlock()
	disableLogs = true
}

// EnableLogs re-enables logging after DisableLogs.
func EnableLogs() {
	mu.Lock()
	defer mu.Unlock()
	disableLogs = false
}

// SetOutput redirects all levels to w and turns colors off.
// Passing nil restores stdout/stderr with colors.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		stdout, stderr, colors = os.Stdout, os.Stderr, true
		return
	}
	stdout, stderr, colors = w, w, false
}

// Debugf logs a debug message if verbose is true.
func Debugf(format string, args ...interface{}) {
	logMessage(levelDebug, format, args...)
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	logMessage(levelInfo, format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	logMessage(levelWarn, format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
}

// Fatalf logs an error message and exits the program.
func Fatalf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
	os.Exit(1)
}

func logMessage(level int, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if disableLogs || (level == levelDebug && !verbose) {
		return
	}

	prefix := logPrefixes[level][1]
	if colors {
		prefix = logPrefixes[level][0]
	}
	output := time.Now().Format(timeLayout) + " " + prefix + " " + fmt.Sprintf(format, args...) + "\n"

	if level == levelError {
		_, _ = io.WriteString(stderr, output)
	} else {
		_, _ = io.WriteString(stdout, output)
	}
}
