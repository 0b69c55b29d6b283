package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	bindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Addr:            ":8080",
		Router:          "chi",
		LogLevel:        "info",
		LogFormat:       "text",
		MetricsPath:     "/metrics",
		ShutdownTimeout: 10 * time.Second,
	}, cfg)
}

func TestLoadConfigSources(t *testing.T) {
	t.Setenv("BISTRO_LOG_FORMAT", "json")
	t.Setenv("BISTRO_ADDR", ":9000")

	file := filepath.Join(t.TempDir(), "bistro.yaml")
	require.NoError(t, os.WriteFile(file, []byte("router: std\nshutdown-timeout: 3s\n"), 0o600))

	cfg, err := loadConfig(testFlags(t, "--addr", ":7000", "--config", file))
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr, "flag wins over env")
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "std", cfg.Router)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfigInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"--router", "gorilla"},
		{"--log-format", "xml"},
		{"--metrics-path", "metrics"},
		{"--addr", ""},
		{"--config", "/does/not/exist.yaml"},
	} {
		_, err := loadConfig(testFlags(t, args...))
		assert.Error(t, err, "args %v", args)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, Config{LogLevel: "warn", LogFormat: "json"})
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = newLogger(&buf, Config{LogLevel: "loud", LogFormat: "text"})
	assert.Error(t, err)
}

func TestNewHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, router := range []string{"chi", "std"} {
		t.Run(router, func(t *testing.T) {
			cfg := Config{Router: router, MetricsPath: "/metrics"}
			h, err := newHandler(cfg, logger, prometheus.NewRegistry())
			require.NoError(t, err)

			for path, code := range map[string]int{
				"/":        http.StatusOK,
				"/menu":    http.StatusOK,
				"/about":   http.StatusOK,
				"/contact": http.StatusNotFound,
			} {
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
				assert.Equal(t, code, rec.Code, path)
				assert.Contains(t, rec.Body.String(), `<nav id="navbar"`, path)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `navshell_page_views_total{mode="full",route="menu",status="200"} 1`)

			for path, code := range map[string]int{
				"/menu":    http.StatusOK,
				"/contact": http.StatusNotFound,
			} {
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, path, http.NoBody))
				assert.Equal(t, code, rec.Code, "HEAD "+path)
			}
		})
	}
}

func TestNewHandlerWithoutMetrics(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h, err := newHandler(Config{Router: "chi"}, logger, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutesCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := routesCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "/ "))
	assert.True(t, strings.HasPrefix(lines[2], "/menu "))
	assert.True(t, strings.HasPrefix(lines[3], "/about "))
}
