// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

// Package config handles loading and merging gc2gh configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/similigh/gc2gh/internal/migration"
	"github.com/similigh/gc2gh/internal/source"
)

// Default values applied when a field is unset.
const (
	DefaultWorkers   = 1
	DefaultOutputDir = "out/github-import"
)

// Config is the root configuration structure.
type Config struct {
	// Extends allows inheriting from a shared config (e.g., "org/repo@branch").
	Extends string `yaml:"extends,omitempty"`

	// Source describes the tracker being migrated from.
	Source SourceConfig `yaml:"source"`

	// Target describes the repository being migrated to.
	Target TargetConfig `yaml:"target"`

	// Milestones are the target milestones of this batch.
	// Ignored when Source.MilestonesFile is set.
	Milestones []source.Milestone `yaml:"milestones,omitempty"`

	// Output controls where exported bundles are written.
	Output OutputConfig `yaml:"output"`

	// Workers is the number of issues transformed concurrently.
	Workers int `yaml:"workers,omitempty"`

	// Workflow is a preset workflow name (e.g., "migrate").
	Workflow string `yaml:"workflow,omitempty"`

	// Steps is a custom list of pipeline steps (overrides workflow).
	Steps []string `yaml:"steps,omitempty"`
}

// SourceConfig holds source tracker settings.
type SourceConfig struct {
	Project        string `yaml:"project"`
	Username       string `yaml:"username,omitempty"`
	IssuesFile     string `yaml:"issues_file"`
	MilestonesFile string `yaml:"milestones_file,omitempty"`
	ClosingStatus  string `yaml:"closing_status,omitempty"`
}

// TargetConfig holds target repository settings.
type TargetConfig struct {
	Repo            string `yaml:"repo"`
	Owner           string `yaml:"owner,omitempty"`
	StartingIssueID int    `yaml:"starting_issue_id"`
	Token           string `yaml:"token,omitempty"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Dir string `yaml:"dir,omitempty"`
	Tar string `yaml:"tar,omitempty"`
}

// Default returns a config with only the defaults set, for runs without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a config file from the given path and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := parseRaw(data)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

// parseRaw expands environment variables and decodes YAML without applying defaults.
func parseRaw(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// LoadWithInheritance loads a config and resolves the 'extends' chain.
// The fetcher function is used to retrieve remote configs.
func LoadWithInheritance(path string, fetcher func(ref string) ([]byte, error)) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := parseRaw(data)
	if err != nil {
		return nil, err
	}

	if cfg.Extends == "" {
		cfg.applyDefaults()
		return cfg, nil
	}
	if fetcher == nil {
		return nil, fmt.Errorf("config extends '%s' but no fetcher is available", cfg.Extends)
	}

	parentData, err := fetcher(cfg.Extends)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parent config '%s': %w", cfg.Extends, err)
	}

	parentCfg, err := parseRaw(parentData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse parent config: %w", err)
	}

	// Merge: child overrides parent
	merged := mergeConfigs(parentCfg, cfg)
	merged.applyDefaults()

	return merged, nil
}

// FindConfigPath searches for a config file in standard locations.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	candidates := []string{
		".gc2gh.yaml",
		".gc2gh.yml",
		".github/gc2gh.yaml",
		".github/gc2gh.yml",
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			abs, _ := filepath.Abs(c)
			return abs
		}
	}

	return ""
}

// applyDefaults sets default values for unset fields.
func (c *Config) applyDefaults() {
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Source.ClosingStatus == "" {
		c.Source.ClosingStatus = migration.DefaultClosingStatus
	}
}

// Validate checks the settings every workflow depends on.
// Problems are reported as migration.ErrConfiguration.
func (c *Config) Validate() error {
	if c.Target.StartingIssueID < 1 {
		return fmt.Errorf("%w: target.starting_issue_id must be a positive integer, got %d",
			migration.ErrConfiguration, c.Target.StartingIssueID)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", migration.ErrConfiguration, c.Workers)
	}
	if c.Target.Repo != "" {
		if _, _, err := c.Target.Ref(); err != nil {
			return err
		}
	}
	return nil
}

// Ref returns the target repository as owner and name.
func (t TargetConfig) Ref() (owner, name string, err error) {
	return ParseRepoRef(t.Repo, t.Owner)
}

// FullName returns the target repository in owner/name form.
func (t TargetConfig) FullName() (string, error) {
	owner, name, err := t.Ref()
	if err != nil {
		return "", err
	}
	return owner + "/" + name, nil
}

// ParseRepoRef accepts "owner/name", or a bare name together with a separate owner.
func ParseRepoRef(repo, owner string) (string, string, error) {
	if repo == "" {
		return "", "", fmt.Errorf("%w: target repository is not set", migration.ErrConfiguration)
	}

	parts := strings.Split(repo, "/")
	switch len(parts) {
	case 1:
		if owner == "" {
			return "", "", fmt.Errorf("%w: target repository %q needs an owner (use owner/name or set target.owner)",
				migration.ErrConfiguration, repo)
		}
		return owner, repo, nil
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return "", "", fmt.Errorf("%w: invalid target repository %q", migration.ErrConfiguration, repo)
		}
		if owner != "" && owner != parts[0] {
			return "", "", fmt.Errorf("%w: target.owner %q conflicts with repository %q",
				migration.ErrConfiguration, owner, repo)
		}
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("%w: invalid target repository %q (expected owner/name)", migration.ErrConfiguration, repo)
	}
}

// mergeConfigs merges a child config onto a parent config.
// Non-zero values in child override parent.
func mergeConfigs(parent, child *Config) *Config {
	result := *parent
	result.Extends = ""

	if child.Workflow != "" {
		result.Workflow = child.Workflow
	}
	if len(child.Steps) > 0 {
		result.Steps = child.Steps
	}
	if child.Workers != 0 {
		result.Workers = child.Workers
	}

	// Source: override if any field is set
	if child.Source.Project != "" {
		result.Source.Project = child.Source.Project
	}
	if child.Source.Username != "" {
		result.Source.Username = child.Source.Username
	}
	if child.Source.IssuesFile != "" {
		result.Source.IssuesFile = child.Source.IssuesFile
	}
	if child.Source.MilestonesFile != "" {
		result.Source.MilestonesFile = child.Source.MilestonesFile
	}
	if child.Source.ClosingStatus != "" {
		result.Source.ClosingStatus = child.Source.ClosingStatus
	}

	// Target: override if any field is set
	if child.Target.Repo != "" {
		result.Target.Repo = child.Target.Repo
		// A child repo comes with its own owner, or none.
		result.Target.Owner = child.Target.Owner
	} else if child.Target.Owner != "" {
		result.Target.Owner = child.Target.Owner
	}
	if child.Target.StartingIssueID != 0 {
		result.Target.StartingIssueID = child.Target.StartingIssueID
	}
	if child.Target.Token != "" {
		result.Target.Token = child.Target.Token
	}

	if child.Output.Dir != "" {
		result.Output.Dir = child.Output.Dir
	}
	if child.Output.Tar != "" {
		result.Output.Tar = child.Output.Tar
	}

	// Milestones: child completely overrides if non-empty
	if len(child.Milestones) > 0 {
		result.Milestones = child.Milestones
	}

	return &result
}

// ParseExtendsRef parses "org/repo@branch" into components.
func ParseExtendsRef(ref string) (org, repo, branch, path string, err error) {
	// Format: org/repo@branch or org/repo@branch:path
	parts := strings.SplitN(ref, "@", 2)
	if len(parts) != 2 {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo@branch)", ref)
	}

	orgRepo := strings.SplitN(parts[0], "/", 2)
	if len(orgRepo) != 2 {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo)", ref)
	}

	org = orgRepo[0]
	repo = orgRepo[1]

	branchPath := strings.SplitN(parts[1], ":", 2)
	branch = branchPath[0]
	if len(branchPath) == 2 {
		path = branchPath[1]
	} else {
		path = ".github/gc2gh.yaml"
	}

	return org, repo, branch, path, nil
}
