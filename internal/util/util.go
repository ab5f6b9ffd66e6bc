package util

import (
	"os"
	"strings"

	"github.com/aws/smithy-go/logging"
	"github.com/rs/zerolog"
)

func InLambda() bool {
	_, inLambda := os.LookupEnv("AWS_LAMBDA_FUNCTION_NAME")
	return inLambda
}

func OtelConfigPresent() bool {
	_, present := os.LookupEnv("OTEL_EXPORTER_OTLP_ENDPOINT")
	return present
}

// SetLogLevel applies LOG_LEVEL to the global logger, defaulting to warn.
func SetLogLevel() {
	zerolog.SetGlobalLevel(ParseLogLevel(os.Getenv("LOG_LEVEL")))
}

func ParseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(Chomp(level)) {
	case "panic":
		return zerolog.PanicLevel
	case "fatal":
		return zerolog.FatalLevel
	case "error":
		return zerolog.ErrorLevel
	case "info":
		return zerolog.InfoLevel
	case "debug":
		return zerolog.DebugLevel
	case "trace":
		return zerolog.TraceLevel
	default:
		return zerolog.WarnLevel
	}
}

func Chomp(s string) string {
	return strings.TrimSpace(s)
}

// RetryLogger routes AWS SDK client logs through zerolog.
type RetryLogger struct {
	Log *zerolog.Logger
}

var _ logging.Logger = (*RetryLogger)(nil)

func (l *RetryLogger) Logf(classification logging.Classification, format string, v ...interface{}) {
	switch classification {
	case logging.Warn:
		l.Log.Warn().Msgf(format, v...)
	case logging.Debug:
		if strings.Contains(format, "retrying request") {
			l.Log.Info().Msgf(format, v...)
		} else {
			l.Log.Debug().Msgf(format, v...)
		}
	default:
		l.Log.Error().Msgf(format, v...)
	}
}
