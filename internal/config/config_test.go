package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigFromFile 验证配置文件能被正确加载并覆盖默认值
func TestLoadConfigFromFile(t *testing.T) {
	yamlContent := `
server:
  address: ":9090"
  api_key: "secret"
pdf:
  timeout_seconds: 10
recommend:
  sample_seed: 42
logger:
  level: "debug"
  format: "pretty"
`
	tmpDir, err := os.MkdirTemp("", "config-test")
	require.NoError(t, err, "无法创建临时目录")
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	err = os.WriteFile(configPath, []byte(yamlContent), 0644)
	require.NoError(t, err, "无法写入临时配置文件")

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err, "加载合法配置不应返回错误")
	require.NotNil(t, cfg)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "secret", cfg.Server.APIKey)
	assert.Equal(t, 10, cfg.PDF.TimeoutSeconds)
	assert.Equal(t, int64(42), cfg.Recommend.SampleSeed)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

// TestLoadConfigDefaults 验证部分字段缺失时使用默认值
func TestLoadConfigDefaults(t *testing.T) {
	yamlContent := `
server:
  address: ":9090"
`
	tmpDir, err := os.MkdirTemp("", "config-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 30, cfg.PDF.TimeoutSeconds, "PDF超时应使用默认值")
	assert.Equal(t, "info", cfg.Logger.Level, "日志级别应使用默认值")
	assert.Empty(t, cfg.Server.APIKey)
}

// TestLoadConfigMissingFile 验证指定的配置文件不存在时返回错误
func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	assert.Error(t, err)
}
