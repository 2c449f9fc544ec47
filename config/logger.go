package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is replaced by InitLogger; the no-op default keeps tests quiet.
var Logger = zap.NewNop()

// InitLogger writes to stdout and to a rotating file under dir.
func InitLogger(dir, level string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02"))),
		MaxSize:    10, // megabytes
		MaxBackups: 7,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(logFile), lvl),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stdout), lvl),
	)

	Logger = zap.New(core, zap.AddCaller())
	return nil
}
