// Package log provides structured logging helpers for the whiskers library.
//
// The package configures Go's standard log/slog with a JSON handler whose
// attribute keys follow the CloudLogging naming convention, and wraps it
// with a handler that extracts stack traces from cockroachdb/errors values
// passed via ErrAttr.
package log

import (
	"fmt"
	"log/slog"
	"os"

	werrors "github.com/YuminosukeSato/whiskers/pkg/errors"
)

// SetupLogger function setup logger.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
		// Replace attributes to convert to CloudLogging format.
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{
					Key:   "severity",
					Value: attr.Value,
				}
			case slog.MessageKey:
				attr = slog.Attr{
					Key:   "message",
					Value: attr.Value,
				}
			case slog.SourceKey:
				attr = slog.Attr{
					Key:   "logging.googleapis.com/sourceLocation",
					Value: attr.Value,
				}
			}
			return attr
		},
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// RouteWarningsToLogger sends library warnings raised through errors.Warn
// (for example UndefinedBoundsWarning during Fit) to the default slog
// logger at warn level instead of the package-level log fallback.
func RouteWarningsToLogger() {
	werrors.SetWarningHandler(func(w error) {
		slog.Warn("whiskers warning", ErrAttr(w))
	})
}
