package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.port)
	assert.Equal(t, "development", cfg.environment)
	assert.Equal(t, "info", cfg.logLevel)
	assert.Equal(t, "", cfg.seedFile)
	assert.True(t, cfg.limiter.enabled)
	assert.Equal(t, 2.0, cfg.limiter.rps)
	assert.Equal(t, 4, cfg.limiter.burst)
}

func Test_LoadConfig_EnvThenFlags(t *testing.T) {
	t.Setenv("BOOKS_PORT", "8081")
	t.Setenv("BOOKS_ENV", "staging")
	t.Setenv("BOOKS_LIMITER_ENABLED", "false")

	cfg, err := loadConfig([]string{"-port", "9090"})

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.port, "flag should override env")
	assert.Equal(t, "staging", cfg.environment, "env should provide the default")
	assert.False(t, cfg.limiter.enabled)
}

func Test_LoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		want string
	}{
		{name: "bad env int", env: map[string]string{"BOOKS_PORT": "not-an-int"}, want: "parse env:"},
		{name: "unknown environment", args: []string{"-env", "qa"}, want: "env must be development, staging or production"},
		{name: "bad port", args: []string{"-port", "0"}, want: "port must be between 1 and 65535"},
		{name: "bad log level", args: []string{"-log-level", "trace"}, want: "log level must be debug, info, warn or error"},
		{name: "bad limiter", args: []string{"-limiter-burst", "0"}, want: "limiter burst must be greater than zero"},
		{name: "unknown flag", args: []string{"-nope"}, want: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := loadConfig(tt.args)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func Test_LoadSeed_FromFileOrDefault(t *testing.T) {
	var cfg serverConfig

	books, err := loadSeed(cfg)
	require.NoError(t, err)
	assert.Len(t, books, 3)

	path := filepath.Join(t.TempDir(), "books.yml")
	require.NoError(t, os.WriteFile(path, []byte("books:\n  - title: Go\n    author: Kernighan\n    year: 2015\n"), 0o600))
	cfg.seedFile = path

	books, err = loadSeed(cfg)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Go", books[0].Title)
	assert.Equal(t, int64(1), books[0].ID)
}

func Test_ParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelInfo, parseLevel("garbage"))
}
