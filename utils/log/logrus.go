package log

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// SetUpLogrus configures the global logrus logger. format is either
// "text" or "json", level is any level logrus understands.
func SetUpLogrus(level string, format string) error {
	switch format {
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	default:
		return fmt.Errorf("unknown log format: %q", format)
	}

	logrusLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(logrusLevel)

	return nil
}
