package logging

import (
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger. prod gets JSON output, every
// other environment gets text. Unknown levels fall back to info.
func Setup(w io.Writer, env, level string) {
	log.SetOutput(w)

	parsed, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		log.WithField("value", level).Warn("invalid log level, using info")
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)

	switch env {
	case "prod":
		log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	default:
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
