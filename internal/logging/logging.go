// Package logging sets up the logrus logger shared by the CLI and the
// pipeline, grounded on the donor cli/cmd package's use of
// logrus.StandardLogger()/logrus.FieldLogger.
package logging

import (
	"github.com/sirupsen/logrus"
)

// New returns a text-formatted logger at the given level name (any name
// logrus.ParseLevel accepts, e.g. "debug", "info", "warn", "error";
// anything else, including "", defaults to "info").
func New(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(parseLevel(level))
	return logger
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
