package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// SetupLogger configures the process-wide slog default used by the
// library. Output is JSON with a stacktrace attribute extracted from
// cockroachdb/errors values logged under ErrAttrKey.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

// ToLogLevel converts a level name to a slog.Level.
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

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(msg string, fields ...any) { l.logger.Debug(msg, fields...) }
func (l *slogLogger) Info(msg string, fields ...any)  { l.logger.Info(msg, fields...) }
func (l *slogLogger) Warn(msg string, fields ...any)  { l.logger.Warn(msg, fields...) }
func (l *slogLogger) Error(msg string, fields ...any) { l.logger.Error(msg, fields...) }

func (l *slogLogger) With(fields ...any) Logger {
	return &slogLogger{logger: l.logger.With(fields...)}
}

func (l *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return l.logger.Enabled(ctx, slog.Level(level))
}

var (
	providerMutex   sync.RWMutex
	currentProvider LoggerProvider = &slogProvider{}
)

// slogProvider is the default LoggerProvider backed by slog.Default.
type slogProvider struct{}

func (p *slogProvider) GetLogger() Logger {
	return &slogLogger{logger: slog.Default()}
}

func (p *slogProvider) GetLoggerWithName(name string) Logger {
	return &slogLogger{logger: slog.Default().With(ComponentKey, name)}
}

func (p *slogProvider) SetLevel(Level) {
	// Level is controlled through SetupLogger for the slog backend.
}

// SetLoggerProvider replaces the provider used by GetLogger and
// GetLoggerWithName. Intended for tests and for embedding applications
// that bring their own logging backend.
func SetLoggerProvider(p LoggerProvider) {
	providerMutex.Lock()
	defer providerMutex.Unlock()
	currentProvider = p
}

// GetLogger returns the default logger instance.
func GetLogger() Logger {
	providerMutex.RLock()
	defer providerMutex.RUnlock()
	return currentProvider.GetLogger()
}

// GetLoggerWithName returns a logger tagged with a component name, e.g.
// "smooth.lowess".
func GetLoggerWithName(name string) Logger {
	providerMutex.RLock()
	defer providerMutex.RUnlock()
	return currentProvider.GetLoggerWithName(name)
}
