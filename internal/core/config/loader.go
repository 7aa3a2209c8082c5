package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load 从指定路径读取 YAML 配置，未出现的字段保留默认值
// configPath 为空时直接返回默认值
func Load(configPath string) (Options, error) {
	opts := DefaultOptions()
	if configPath == "" {
		return opts, nil
	}

	//1. 检查文件是否存在
	if _, err := os.Stat(configPath); err != nil {
		return opts, fmt.Errorf("config file not found at: %s", configPath)
	}

	//2. 读取文件内容
	content, err := os.ReadFile(configPath)
	if err != nil {
		return opts, fmt.Errorf("failed to read config file: %w", err)
	}

	//3. 解析，未知字段直接报错，避免拼写错误被静默忽略
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return DefaultOptions(), fmt.Errorf("failed to parse config file: %w", err)
	}

	//4. 基础校验
	if err := opts.Validate(); err != nil {
		return DefaultOptions(), fmt.Errorf("invalid config file: %w", err)
	}

	return opts, nil
}
