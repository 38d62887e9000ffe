package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pathfind-labs/pathfind/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PATHFIND_ADDR", ":9090")
	t.Setenv("PATHFIND_DB", "/tmp/runs.db")
	t.Setenv("PATHFIND_CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg := config.Load()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/runs.db", cfg.DBPath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_EmptyListFallsBack(t *testing.T) {
	t.Setenv("PATHFIND_CORS_ORIGINS", " , ")
	assert.Equal(t, []string{"*"}, config.Load().CORSOrigins)
}
