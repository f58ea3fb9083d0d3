package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "")
	t.Setenv("EXPORT_PATH", "/tmp/yard_sale_data.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "", cfg.DBPath, "empty DB_PATH selects the memory store")
	assert.Equal(t, "/tmp/yard_sale_data.json", cfg.ExportPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}
