package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	instance *slog.Logger
	once     sync.Once
	file     *os.File
	setupErr error
)

// Config 日志配置
type Config struct {
	Debug    bool      // 打开 debug 级别
	FilePath string    // 写入文件，优先于 Output
	Output   io.Writer // 未指定文件时的输出，nil 表示 stderr
}

// Setup 初始化全局 logger，只生效一次
// 日志文件打不开时仍然输出到 Output，并返回打开失败的错误
func Setup(cfg Config) error {
	once.Do(func() {
		ops := &slog.HandlerOptions{
			AddSource: cfg.Debug,
			Level:     slog.LevelInfo,
		}
		if cfg.Debug {
			ops.Level = slog.LevelDebug
		}

		var out io.Writer = os.Stderr
		if cfg.Output != nil {
			out = cfg.Output
		}
		if cfg.FilePath != "" {
			f, err := openLogFile(cfg.FilePath)
			if err != nil {
				setupErr = fmt.Errorf("open log file %s: %w", cfg.FilePath, err)
			} else {
				file = f
				out = f
			}
		}

		instance = slog.New(slog.NewTextHandler(out, ops))
		slog.SetDefault(instance)
	})
	return setupErr
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// Close 关闭日志文件（如果有）
func Close() error {
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

func get() *slog.Logger {
	if instance == nil {
		Setup(Config{})
	}
	return instance
}

func Info(msg string, args ...any)  { get().Info(msg, args...) }
func Warn(msg string, args ...any)  { get().Warn(msg, args...) }
func Error(msg string, args ...any) { get().Error(msg, args...) }
func Debug(msg string, args ...any) { get().Debug(msg, args...) }
