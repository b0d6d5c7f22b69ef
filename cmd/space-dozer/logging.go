package main

import (
	"io"
	"log"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logDir      = "logs"
	logFileName = "space-dozer.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a file-backed logger in debug mode and a no-op logger
// otherwise. The terminal is in raw mode while playing, so nothing may reach
// stdout or stderr. The returned func flushes and closes the log file.
func setupLogging(debug bool) (*zap.SugaredLogger, func()) {
	if !debug {
		log.SetOutput(io.Discard)
		return zap.NewNop().Sugar(), func() {}
	}

	sink := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, logFileName),
		MaxSize:    maxLogSize / (1024 * 1024),
		MaxBackups: 3,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(sink),
		zap.DebugLevel,
	)
	logger := zap.New(core).Named("space-dozer")
	undo := zap.RedirectStdLog(logger)

	// First write opens the file and rotates an oversized one
	logger.Info("logging started", zap.String("file", sink.Filename))

	return logger.Sugar(), func() {
		_ = logger.Sync()
		undo()
		_ = sink.Close()
	}
}
