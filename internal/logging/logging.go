// Package logging builds the logrus logger shared by every command.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnvLevel sets the default log level when --log-level is not given.
const EnvLevel = "RUNWAY_LOG_LEVEL"

// Field names for structured log entries.
const (
	FieldCommand      = "command"
	FieldPath         = "path"
	FieldFormat       = "format"
	FieldTransactions = "transactions"
	FieldWindow       = "window_months"
	FieldMonthsAhead  = "months_ahead"
	FieldAsOf         = "as_of"
	FieldIndex        = "index"
	FieldField        = "field"
	FieldScore        = "score"
)

// New returns a logger writing to w. format "json" selects the JSON
// formatter; anything else is text. An unknown level falls back to info.
func New(w io.Writer, level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
