// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"os"
	"strings"

	"github.com/labstack/gommon/log"
)

var Logger = newLogger()

func newLogger() *log.Logger {
	logger := log.New("mineeast")
	logger.SetLevel(ParseLevel(os.Getenv("LOG_LEVEL")))
	logger.SetHeader("${time_rfc3339} ${level} ${short_file}:${line} -")
	return logger
}

// InitLogger re-reads LOG_LEVEL once an env file has been loaded.
func InitLogger() {
	Logger.SetLevel(ParseLevel(GetEnv("LOG_LEVEL")))
}

func ParseLevel(level string) log.Lvl {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return log.DEBUG
	case "INFO":
		return log.INFO
	case "WARN":
		return log.WARN
	case "ERROR":
		return log.ERROR
	case "OFF":
		return log.OFF
	default:
		return log.INFO
	}
}
