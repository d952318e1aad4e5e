// Package logger configures the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// LogFilePath is the path to the game log file, relative to the working
// directory (project root when run via go run ./cmd/game).
const LogFilePath = "logs/game.log"

// New returns a logrus logger writing to stderr and to logs/game.log. If
// the log file cannot be opened, stderr alone is used; logging never blocks
// the game from starting.
func New() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := os.MkdirAll(filepath.Dir(LogFilePath), 0755); err != nil {
		return log
	}
	f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
	return log
}
