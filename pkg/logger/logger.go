package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/huynhanx03/go-ringqueue/pkg/settings"
)

// New builds a JSON zap logger from cfg.
// Logs go to stderr unless FileLogName is set, in which case the file is rotated by lumberjack.
func New(cfg settings.Logger) (*zap.Logger, error) {
	var out io.Writer = os.Stderr
	if cfg.FileLogName != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.FileLogName,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
	}
	return NewWithWriter(cfg, out)
}

// NewWithWriter builds a JSON zap logger writing to w.
func NewWithWriter(cfg settings.Logger, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", cfg.LogLevel)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core, zap.AddCaller()), nil
}
