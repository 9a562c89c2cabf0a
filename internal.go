package logfacade

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// rollingFileLogger builds the rotating file sink. Relative directories are
// resolved against baseDir.
func rollingFileLogger(cfg *Config, baseDir string) (*lumberjack.Logger, error) {
	const op errors.Op = "logfacade.rollingFileLogger"

	dir := cfg.LogFileDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(baseDir, dir)
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgLogDir)
	}

	name := cfg.LogFileName
	if name == emptyString {
		name = execName() + ".log"
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, name),
		MaxBackups: cfg.LogFileMaxBackups,
		MaxAge:     cfg.LogFileMaxAgeDays,
		MaxSize:    cfg.LogFileMaxSizeMB,
		Compress:   cfg.LogFileCompress,
	}, nil
}

// buildWriters returns the configured sinks plus any extra writers. The
// rolling file, if any, is returned separately so it can be closed.
func buildWriters(cfg *Config, baseDir string, extra []io.Writer) ([]io.Writer, *lumberjack.Logger, error) {
	var writers []io.Writer
	var file *lumberjack.Logger

	if cfg.FileLogging {
		f, err := rollingFileLogger(cfg, baseDir)
		if err != nil {
			return nil, nil, err
		}
		file = f
		writers = append(writers, f)
	}
	if cfg.ConsoleLogging {
		// Colour codes only help when stderr is a terminal.
		noColor := cfg.ConsoleNoColor || !term.IsTerminal(int(os.Stderr.Fd()))
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor})
	}
	writers = append(writers, extra...)

	return writers, file, nil
}

// newBaseLogger builds the zerolog logger every named logger derives from.
// With no sinks configured it writes nowhere.
func newBaseLogger(cfg *Config, writers []io.Writer, hooks []zerolog.Hook) zerolog.Logger {
	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = zerolog.MultiLevelWriter(writers...)
	}

	// Thresholds are applied by the façade per named logger.
	logger := zerolog.New(out).Level(zerolog.TraceLevel)
	if !cfg.DisableTimestamp {
		logger = logger.With().Timestamp().Logger()
	}
	if len(hooks) > 0 {
		logger = logger.Hook(hooks...)
	}
	return logger
}

func execName() string {
	exe, err := os.Executable()
	if err != nil || exe == emptyString {
		return "app"
	}
	base := filepath.Base(exe)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
