package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// settings holds the CLI's own configuration.
// Precedence: flags > ENVCONF_* environment variables > defaults.
type settings struct {
	ProjectDir string
	File       string
	Env        string
	EnvPrefix  string
	Format     string
	LogLevel   string
}

// loadSettings parses args and returns the settings plus the remaining
// positional arguments (command and its operands).
func loadSettings(args []string, stderr io.Writer) (*settings, []string, error) {
	fs := pflag.NewFlagSet("envconf", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}

	fs.String("project-dir", ".", "project root; config file and path values resolve against it")
	fs.String("file", "config.yml", "configuration file relative to the project root")
	fs.String("env", "", "active environment (empty: default section only)")
	fs.String("env-prefix", "", "enable environment variable overrides with this prefix, e.g. MYAPP_")
	fs.String("format", "yaml", "dump output format: yaml, json or toml")
	fs.String("log-level", "warn", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("ENVCONF")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, nil, fmt.Errorf("bind flags: %w", err)
	}

	s := &settings{
		ProjectDir: v.GetString("project-dir"),
		File:       v.GetString("file"),
		Env:        v.GetString("env"),
		EnvPrefix:  v.GetString("env-prefix"),
		Format:     v.GetString("format"),
		LogLevel:   v.GetString("log-level"),
	}
	return s, fs.Args(), nil
}

// setupLogger installs a text logger on w at the given level.
// Unknown levels fall back to warn.
func setupLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}
