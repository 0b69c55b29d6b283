package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the serve command's configuration. Values come from flags, then
// BISTRO_* environment variables, then the optional config file.
type Config struct {
	Addr            string
	Router          string
	LogLevel        string
	LogFormat       string
	MetricsPath     string
	ShutdownTimeout time.Duration
}

func bindFlags(fs *pflag.FlagSet) {
	fs.String("addr", ":8080", "listen address")
	fs.String("router", "chi", "router implementation: chi or std")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("log-format", "text", "log format: text or json")
	fs.String("metrics-path", "/metrics", "path serving Prometheus metrics, empty to disable")
	fs.Duration("shutdown-timeout", 10*time.Second, "time allowed for in-flight requests on shutdown")
	fs.String("config", "", "optional config file (yaml, toml or json)")
}

func loadConfig(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("bistro")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := Config{
		Addr:            v.GetString("addr"),
		Router:          strings.ToLower(v.GetString("router")),
		LogLevel:        v.GetString("log-level"),
		LogFormat:       strings.ToLower(v.GetString("log-format")),
		MetricsPath:     v.GetString("metrics-path"),
		ShutdownTimeout: v.GetDuration("shutdown-timeout"),
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	switch c.Router {
	case "chi", "std":
	default:
		return fmt.Errorf("unknown router %q", c.Router)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.MetricsPath != "" && !strings.HasPrefix(c.MetricsPath, "/") {
		return fmt.Errorf("metrics path %q must start with /", c.MetricsPath)
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("shutdown timeout must not be negative")
	}
	return nil
}

func newLogger(w io.Writer, c Config) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
