package app

import (
	"errors"
	"fmt"
)

// Commands understood by the application.
const (
	CommandPlan  = "plan"
	CommandCheck = "check"
	CommandTag   = "tag"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command       string
	WorkspacePath string

	LogFormat string
	LogLevel  string
	Quiet     bool

	// Release tagging (tag command only).
	Branch  string
	TagName string
	Remote  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.WorkspacePath == "" {
		return nil, errors.New("WorkspacePath is a required configuration field and cannot be empty")
	}
	switch cfg.Command {
	case CommandPlan, CommandCheck, CommandTag:
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}
	if cfg.Command == CommandTag && cfg.TagName == "" {
		return nil, errors.New("the tag command requires a tag name")
	}
	return &cfg, nil
}
