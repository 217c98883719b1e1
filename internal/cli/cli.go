package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/richardbladh/rushstack/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("rush", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
rush - deterministic, critical-path-first build ordering for monorepo workspaces.

Usage:
  rush [options] [COMMAND] [WORKSPACE_PATH]

Commands:
  plan   Validate the dependency graph and print the ordered build plan (default).
  check  Report dependency version mismatches across project manifests.
  tag    Check out a release branch, tag it, and push the tag.

Arguments:
  WORKSPACE_PATH
    Path to a workspace .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	workspaceFlag := flagSet.String("workspace", "", "Path to the workspace file or directory.")
	wFlag := flagSet.String("w", "", "Path to the workspace file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	quietFlag := flagSet.Bool("quiet", false, "Suppress per-task registration notices.")
	branchFlag := flagSet.String("branch", "", "Branch to check out before tagging (tag command).")
	tagFlag := flagSet.String("tag", "", "Name of the release tag to create (tag command).")
	remoteFlag := flagSet.String("remote", "origin", "Remote to push the release tag to (tag command).")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	command := app.CommandPlan
	rest := flagSet.Args()
	if len(rest) > 0 && isCommand(rest[0]) {
		command = rest[0]
		rest = rest[1:]
	}

	path := ""
	if *workspaceFlag != "" {
		path = *workspaceFlag
	} else if *wFlag != "" {
		path = *wFlag
	} else if len(rest) > 0 {
		path = rest[0]
	}
	slog.Debug("Workspace path determined.", "path", path, "command", command)

	if path == "" {
		slog.Debug("No workspace path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Command:       command,
		WorkspacePath: path,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		Quiet:         *quietFlag,
		Branch:        *branchFlag,
		TagName:       *tagFlag,
		Remote:        *remoteFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func isCommand(arg string) bool {
	switch arg {
	case app.CommandPlan, app.CommandCheck, app.CommandTag:
		return true
	}
	return false
}
