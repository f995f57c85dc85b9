package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/klwxsrx/parcelshare/pkg/env"
	"github.com/klwxsrx/parcelshare/pkg/log"
)

const (
	defaultLogFileMaxSizeMB = 10
	logFileMaxBackups       = 3
)

var logLevelMap = map[string]log.Level{
	"disabled": log.LevelDisabled,
	"debug":    log.LevelDebug,
	"info":     log.LevelInfo,
	"warn":     log.LevelWarn,
	"error":    log.LevelError,
}

// HandleAppPanic must be deferred directly: it logs a panic and exits.
func HandleAppPanic(ctx context.Context, logger log.Logger) {
	msg := recover()
	if msg == nil {
		return
	}

	logger.WithField("panic", log.Fields{
		"message": fmt.Sprintf("%v", msg),
		"stack":   string(debug.Stack()),
	}).Error(ctx, "app failed with panic")
	os.Exit(1)
}

// LogLevel reads LOG_LEVEL, falling back to def when unset or unknown.
func LogLevel(def log.Level) log.Level {
	logLevelStr, err := env.Parse[string]("LOG_LEVEL")
	if err != nil {
		return def
	}

	logLevel, ok := logLevelMap[logLevelStr]
	if !ok {
		return def
	}
	return logLevel
}

func InitLogger(def log.Level, opts ...log.Option) log.Logger {
	return log.New(LogLevel(def), opts...)
}

// InitFileLogger writes logs to a rotated file, for programs owning the
// terminal. The returned closer flushes the file.
func InitFileLogger(path string, def log.Level) (log.Logger, io.Closer, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	maxSize, err := env.ParseDefault[int]("LOG_FILE_MAX_SIZE_MB", defaultLogFileMaxSizeMB)
	if err != nil {
		return nil, nil, err
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: logFileMaxBackups,
	}
	return InitLogger(def, log.WithOutput(writer)), writer, nil
}
