// Package logger provides the process-wide structured logger.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger instance. Init must be called before use;
// the zero state falls back to logrus defaults.
var Log = logrus.New()

// Init configures the shared logger with the given level.
// An unparseable level falls back to info.
func Init(levelStr string) {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
	Log.SetOutput(os.Stdout)
}
