package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bargavjillella/resume-analyzer/internal/logger"
)

// ServerConfig HTTP服务配置
type ServerConfig struct {
	Address string `yaml:"address"`           // 监听地址，如 ":8080"
	APIKey  string `yaml:"api_key,omitempty"` // 可选的API Key，为空时不启用鉴权
}

// PDFConfig PDF解析配置
type PDFConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"` // 单次PDF解析超时(秒)
}

// RecommendConfig 建议引擎配置
type RecommendConfig struct {
	// 随机种子，0表示使用系统随机源；测试中可固定种子以获得可复现输出
	SampleSeed int64 `yaml:"sample_seed"`
}

// Config 应用程序配置
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	PDF       PDFConfig       `yaml:"pdf"`
	Recommend RecommendConfig `yaml:"recommend"`
	Logger    logger.Config   `yaml:"logger"`
}

// DefaultConfig 返回各字段的默认值
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address: ":8080",
		},
		PDF: PDFConfig{
			TimeoutSeconds: 30,
		},
		Logger: logger.Config{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadConfig 加载配置文件
// configPath为空时在常见位置查找；找不到配置文件时返回默认配置而不报错
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
			filepath.Join(os.Getenv("HOME"), ".resume-analyzer", "config.yaml"),
		}

		// 可执行文件所在目录也纳入查找范围
		execPath, err := os.Executable()
		if err == nil {
			execDir := filepath.Dir(execPath)
			searchPaths = append(searchPaths, filepath.Join(execDir, "config.yaml"))
		}

		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}

		if configPath == "" {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if cfg.PDF.TimeoutSeconds <= 0 {
		cfg.PDF.TimeoutSeconds = 30
	}

	return cfg, nil
}
