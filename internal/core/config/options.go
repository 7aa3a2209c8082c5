package config

import (
	"fmt"
	"time"
)

// Options warptui 的运行参数
// 既可以来自 YAML 配置文件，也可以被命令行参数覆盖
type Options struct {
	Binary          string        `yaml:"binary"`           // warp-cli 路径
	CommandTimeout  time.Duration `yaml:"command_timeout"`  // 带超时调用的上限
	RefreshInterval time.Duration `yaml:"refresh_interval"` // 界面自动刷新间隔
	PollInterval    time.Duration `yaml:"poll_interval"`    // 后台 manager 轮询间隔
	LogFile         string        `yaml:"log_file"`         // 日志文件，空表示不写文件
}

// DefaultOptions 返回默认运行参数
func DefaultOptions() Options {
	return Options{
		Binary:          "warp-cli",
		CommandTimeout:  30 * time.Second,
		RefreshInterval: time.Second,
		PollInterval:    5 * time.Second,
	}
}

// Validate 基础校验
func (o Options) Validate() error {
	if o.Binary == "" {
		return fmt.Errorf("binary must not be empty")
	}
	if o.CommandTimeout <= 0 {
		return fmt.Errorf("command_timeout must be positive, got %s", o.CommandTimeout)
	}
	if o.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be positive, got %s", o.RefreshInterval)
	}
	if o.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", o.PollInterval)
	}
	return nil
}
