package app

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger installs the default logger used by every package
func SetupLogger(logLevel string, logJSON bool) {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		level = log.InfoLevel
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
	if logJSON {
		logger.SetFormatter(log.JSONFormatter)
	}
	log.SetDefault(logger)
}
