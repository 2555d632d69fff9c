package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Config drives one digest run. Values come from the YAML config file and
// can be overridden per run through environment variables (SEARCH_QUERIES,
// PR_QUERIES, PRIORITY_LABELS, EXCLUDE_LABELS, EXCLUDE_ASSIGNEES,
// MAX_ISSUES, MAX_PRS). The token is env-only.
type Config struct {
	IssueQueries     []string `yaml:"issue_queries"`
	PRQueries        []string `yaml:"pr_queries"`
	PriorityLabels   []string `yaml:"priority_labels"`
	ExcludeLabels    []string `yaml:"exclude_labels"`
	ExcludeAssignees []string `yaml:"exclude_assignees"`
	MaxIssues        int      `yaml:"max_issues,omitempty"`
	MaxPRs           int      `yaml:"max_prs,omitempty"`
	APIBase          string   `yaml:"api_base,omitempty"`
}

// Token returns the GitHub token from GH_TOKEN. Secrets live in the
// environment, never in the config file.
func Token() string {
	return strings.TrimSpace(os.Getenv("GH_TOKEN"))
}

// GetMaxIssues returns the issue result budget, defaulting to 100.
func (c *Config) GetMaxIssues() int {
	if c.MaxIssues <= 0 {
		return 100
	}
	return c.MaxIssues
}

// GetMaxPRs returns the pull request result budget, defaulting to 100.
func (c *Config) GetMaxPRs() int {
	if c.MaxPRs <= 0 {
		return 100
	}
	return c.MaxPRs
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "ghdigest", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config file, overlays environment variables, and validates
// the result. A missing file falls back to the embedded defaults and writes
// them to the config path for the next run.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			defaults, derr := loadDefaults()
			if derr != nil {
				return nil, derr
			}
			// Write defaults to the config path on first run; non-fatal
			// if the directory is not writable.
			writeDefaults(path)
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

// applyEnv overlays environment variables onto the file config. List
// variables are comma-separated; a set variable replaces the file value
// wholesale.
func applyEnv(cfg *Config) error {
	if v, ok := envList("SEARCH_QUERIES"); ok {
		cfg.IssueQueries = v
	}
	if v, ok := envList("PR_QUERIES"); ok {
		cfg.PRQueries = v
	}
	if v, ok := envList("PRIORITY_LABELS"); ok {
		cfg.PriorityLabels = v
	}
	if v, ok := envList("EXCLUDE_LABELS"); ok {
		cfg.ExcludeLabels = v
	}
	if v, ok := envList("EXCLUDE_ASSIGNEES"); ok {
		cfg.ExcludeAssignees = v
	}

	var err error
	if cfg.MaxIssues, err = envInt("MAX_ISSUES", cfg.MaxIssues); err != nil {
		return err
	}
	if cfg.MaxPRs, err = envInt("MAX_PRS", cfg.MaxPRs); err != nil {
		return err
	}
	return nil
}

// envList splits a comma-separated variable, trimming entries and dropping
// empties. The second return reports whether the variable was set.
func envList(name string) ([]string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return nil, false
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out, true
}

func envInt(name string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return n, nil
}

func validate(cfg *Config) error {
	if cfg.MaxIssues < 0 {
		return fmt.Errorf("max_issues must not be negative, got %d", cfg.MaxIssues)
	}
	if cfg.MaxPRs < 0 {
		return fmt.Errorf("max_prs must not be negative, got %d", cfg.MaxPRs)
	}
	if cfg.APIBase != "" {
		u, err := url.Parse(cfg.APIBase)
		if err != nil {
			return fmt.Errorf("invalid api_base: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("api_base scheme must be http or https, got %q", u.Scheme)
		}
	}
	return nil
}
