// Command envconf inspects environment-aware configuration files.
//
// Usage:
//
//	envconf [flags] get [section] <key>
//	envconf [flags] path [section] <key>
//	envconf [flags] envs
//	envconf [flags] dump
//
// Flags can also be set through ENVCONF_* environment variables
// (ENVCONF_PROJECT_DIR, ENVCONF_FILE, ENVCONF_ENV, ...).
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/randalmurphal/envconf/config"
	"github.com/randalmurphal/envconf/environment"
	clierrors "github.com/randalmurphal/envconf/errors"
)

const usage = `Usage: envconf [flags] <command> [args]

Commands:
  get [section] <key>    print a setting
  path [section] <key>   print a path setting resolved against the project root
  envs                   list declared environments and their alias/extends chains
  dump                   print the effective configuration

Flags:`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	s, rest, err := loadSettings(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", clierrors.NewUsageError(err.Error()))
		return 2
	}

	logger := setupLogger(s.LogLevel, stderr)

	if err := execute(s, rest, stdout, logger); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", clierrors.WrapConfigError(err))
		if clierrors.IsUsageError(err) {
			return 2
		}
		return 1
	}
	return 0
}

func execute(s *settings, args []string, stdout io.Writer, logger *slog.Logger) error {
	if len(args) == 0 {
		return clierrors.NewUsageError("missing command")
	}
	cmd, operands := args[0], args[1:]

	if cmd == "dump" && !config.IsExportFormat(s.Format) {
		return clierrors.NewUsageError(fmt.Sprintf("unsupported dump format %q (valid: %s)",
			s.Format, strings.Join(config.ExportFormats, ", ")))
	}

	logger.Debug("opening config",
		slog.String("project_dir", s.ProjectDir),
		slog.String("file", s.File),
		slog.String("environment", s.Env))

	store, err := config.New(config.Options{
		ProjectDir:  s.ProjectDir,
		ConfigFile:  s.File,
		Environment: s.Env,
		EnvPrefix:   s.EnvPrefix,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	switch cmd {
	case "get":
		section, key, err := sectionKey(operands)
		if err != nil {
			return err
		}
		v, src, err := store.Lookup(section, key)
		if err != nil {
			return err
		}
		logger.Debug("value resolved", slog.String("source", string(src)))
		return printValue(stdout, v)

	case "path":
		section, key, err := sectionKey(operands)
		if err != nil {
			return err
		}
		p, err := store.Path(section, key)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, p)
		return err

	case "envs":
		if len(operands) != 0 {
			return clierrors.NewUsageError("envs takes no arguments")
		}
		return printEnvironments(stdout, store)

	case "dump":
		if len(operands) != 0 {
			return clierrors.NewUsageError("dump takes no arguments")
		}
		return store.Export(stdout, s.Format)

	default:
		return clierrors.NewUsageError(fmt.Sprintf("unknown command %q", cmd))
	}
}

// sectionKey parses "[section] <key>" operands.
func sectionKey(operands []string) (string, string, error) {
	switch len(operands) {
	case 1:
		return config.NoSection, operands[0], nil
	case 2:
		return operands[0], operands[1], nil
	default:
		return "", "", clierrors.NewUsageError("expected [section] <key>")
	}
}

func printValue(w io.Writer, v any) error {
	switch val := v.(type) {
	case map[string]any:
		return config.Export(w, val, "yaml")
	case []any:
		data, err := json.Marshal(val)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case nil:
		_, err := fmt.Fprintln(w, "null")
		return err
	default:
		_, err := fmt.Fprintln(w, val)
		return err
	}
}

// printEnvironments writes one line per environment: a marker for the
// active one, the name, and its resolution chain or error.
func printEnvironments(w io.Writer, store *config.Store) error {
	names, err := store.Environments()
	if err != nil {
		return err
	}
	doc, err := store.Document()
	if err != nil {
		return err
	}

	active := store.Environment()
	for _, name := range names {
		marker := " "
		if name == active {
			marker = "*"
		}

		var line string
		links, err := environment.Describe(doc, name)
		if err != nil {
			line = "error: " + err.Error()
		} else {
			var hops []string
			for _, l := range links[1:] {
				hops = append(hops, l.Via+" "+l.Name)
			}
			line = strings.Join(hops, ", ")
		}

		if _, err := fmt.Fprintf(w, "%s %s\t%s\n", marker, name, line); err != nil {
			return err
		}
	}
	return nil
}
