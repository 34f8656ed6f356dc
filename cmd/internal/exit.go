package internal

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Fatal will Echo the message and os.Exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(1)
}

// Echo will emit the given message without any logging formatting.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, msg, args...)
}

// NewLogger creates a logger writing to stderr at the given level name.
// Verbose forces the debug level regardless of level.
func NewLogger(level string, verbose bool) (*log.Logger, error) {
	l := log.New()
	l.Out = os.Stderr
	l.Formatter = &log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	}
	if verbose {
		l.SetLevel(log.DebugLevel)
		return l, nil
	}
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level '%s': %w", level, err)
	}
	l.SetLevel(lvl)
	return l, nil
}
