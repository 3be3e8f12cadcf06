package momentum

import (
	"os"
	"strconv"
	"strings"

	"github.com/raykavin/momentum/pkg/logger"
	logrusadapter "github.com/raykavin/momentum/pkg/logger/logrus"
	"github.com/raykavin/momentum/pkg/logger/zerolog"
	"github.com/sirupsen/logrus"
)

const (
	// Default configuration values
	defaultLogLevel      = "info"
	defaultLogTimeFormat = "2006-01-02 15:04:05"
	defaultLogColored    = "true"
	defaultLogJSON       = "false"
	defaultLogBackend    = "zerolog"
)

// Environment variable names
const (
	envLogLevel      = "MOMENTUM_LOG_LEVEL"
	envLogTimeFormat = "MOMENTUM_LOG_TIME_FORMAT"
	envLogColor      = "MOMENTUM_LOG_COLOR"
	envLogJSON       = "MOMENTUM_LOG_JSON"
	envLogBackend    = "MOMENTUM_LOG_BACKEND"
)

// DefaultLog is the process-wide logger used by the CLI
var DefaultLog logger.Logger

func init() {
	log, err := initLogger()
	if err != nil {
		panic(err)
	}

	DefaultLog = log
}

// initLogger creates a new logger instance configured from environment variables
func initLogger() (logger.Logger, error) {
	logLevel := getEnvWithDefault(envLogLevel, defaultLogLevel)
	logTimeFormat := getEnvWithDefault(envLogTimeFormat, defaultLogTimeFormat)

	logColored, err := parseBoolEnv(envLogColor, defaultLogColored)
	if err != nil {
		return nil, err
	}

	logJSON, err := parseBoolEnv(envLogJSON, defaultLogJSON)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(getEnvWithDefault(envLogBackend, defaultLogBackend)) {
	case "logrus":
		return newLogrus(logLevel, logTimeFormat, logColored, logJSON)
	default:
		return zerolog.New(zerolog.Options{
			Level:          logLevel,
			DateTimeLayout: logTimeFormat,
			Colored:        logColored,
			JSON:           logJSON,
		})
	}
}

func newLogrus(level, timeFormat string, colored, jsonFormat bool) (logger.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	base := logrus.New()
	base.SetOutput(os.Stdout)
	base.SetLevel(lvl)
	if jsonFormat {
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: timeFormat})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timeFormat,
			ForceColors:     colored,
			DisableColors:   !colored,
		})
	}

	return logrusadapter.New(base), nil
}

// getEnvWithDefault returns the value of the environment variable or the default if not set
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseBoolEnv gets a boolean environment variable with a default value
func parseBoolEnv(key, defaultValue string) (bool, error) {
	value := getEnvWithDefault(key, defaultValue)
	return strconv.ParseBool(value)
}
