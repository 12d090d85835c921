package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "3001"
  mode: debug
storage:
  db_file: `+filepath.Join(t.TempDir(), "data", "db.json")+`
client:
  base_url: http://localhost:3001/api
  timeout_seconds: 10
  data_dir: data/local
  latency_ms: 300
cors:
  allowed_origins:
    - http://localhost:5173
rate_limit:
  max_requests: 100
  window_minutes: 1
log:
  file: logs/app.log
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "http://localhost:3001/api", cfg.Client.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout())
	assert.Equal(t, 300*time.Millisecond, cfg.Client.Latency())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)

	// 数据库文件所在目录自动创建
	_, err = os.Stat(filepath.Dir(cfg.Storage.DBFile))
	assert.NoError(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
