package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Types int

const (
	Info Types = iota
	Error
	Warn
)

// Logger is a tagged logger. When a debug view is set every line is mirrored into it.
type Logger struct {
	view io.Writer
	tag  string
	z    *zap.Logger
}

var (
	base    = zap.NewNop()
	view    io.Writer
	logFile *fileSink
	once    sync.Once
)

// InitLogger sets up the shared sinks. Only the first call has an effect.
// With a logPath a timestamped JSON log file is written. Without a debug view,
// warnings and errors go to stderr, and in dev mode everything does.
func InitLogger(devMode bool, logPath string, debugView io.Writer) error {
	var initErr error
	once.Do(func() {
		view = debugView
		base, logFile, initErr = build(devMode, logPath, debugView)
	})
	return initErr
}

func build(devMode bool, logPath string, debugView io.Writer) (*zap.Logger, *fileSink, error) {
	var cores []zapcore.Core
	var sink *fileSink
	if logPath != "" {
		timestamp := time.Now().Format("20060102_150405")
		fileName := fmt.Sprintf("tavish_log_%s.log", timestamp)
		filePath := filepath.Join(logPath, fileName)

		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return zap.NewNop(), nil, fmt.Errorf("open log file: %w", err)
		}
		sink = &fileSink{file: file}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			sink,
			zap.DebugLevel,
		))
	}

	if debugView == nil {
		level := zap.WarnLevel
		if devMode {
			level = zap.DebugLevel
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.Lock(os.Stderr),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...)), sink, nil
}

// NewLogger returns a logger on the shared sinks set up by InitLogger.
func NewLogger(tag string) *Logger {
	return &Logger{
		view: view,
		tag:  tag,
		z:    base.Named(tag),
	}
}

// New returns a logger writing to z only.
func New(tag string, z *zap.Logger) *Logger {
	return &Logger{tag: tag, z: z.Named(tag)}
}

// With returns a copy of the logger carrying an extra structured field.
func (l *Logger) With(key string, value interface{}) *Logger {
	c := *l
	c.z = l.z.With(zap.Any(key, value))
	return &c
}

func (l *Logger) log(logTypes Types, v ...interface{}) {
	message := strings.TrimSuffix(fmt.Sprintln(v...), "\n")
	if l.view != nil {
		fmt.Fprintf(l.view, "[%s]%s (%s): %s[-]\n", logTypes.color(), logTypes.toString(), l.tag, message)
	}

	switch logTypes {
	case Info:
		l.z.Info(message)
	case Warn:
		l.z.Warn(message)
	case Error:
		l.z.Error(message)
	}
}

func (l *Logger) Info(v ...interface{}) {
	l.log(Info, v...)
}

func (l *Logger) Error(v ...interface{}) {
	l.log(Error, v...)
}

func (l *Logger) Warn(v ...interface{}) {
	l.log(Warn, v...)
}

// Close flushes the shared sinks and closes the log file. Loggers created
// before Close stop writing to the file.
func Close() {
	_ = base.Sync()
	base = zap.NewNop()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// fileSink drops writes once closed.
type fileSink struct {
	mu   sync.Mutex
	file *os.File
}

func (s *fileSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return len(p), nil
	}
	return s.file.Write(p)
}

func (s *fileSink) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	return s.file.Sync()
}

func (s *fileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

func (t Types) color() string {
	switch t {
	case Info:
		return "green"
	case Warn:
		return "yellow"
	default:
		return "red"
	}
}

func (t Types) toString() string {
	switch t {
	case Info:
		return "INFO"
	case Error:
		return "ERROR"
	case Warn:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}
