package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/pomupdate/domain"
)

// Config is the top-level configuration for pomupdate.
type Config struct {
	Sources    []SourceConfig    `yaml:"sources"`
	Desired    DesiredConfig     `yaml:"desired"`
	Properties map[string]string `yaml:"properties"`
	Mode       string            `yaml:"mode"` // "literal" (default) or "all"
}

// SourceConfig describes a single POM source instance.
type SourceConfig struct {
	Type string `yaml:"type"` // "local", "git"
	Path string `yaml:"path"` // Directory or repository path; supports ${ENV_VAR}
}

// DesiredConfig describes where the desired-version table comes from.
// Inline entries override entries loaded from the file.
type DesiredConfig struct {
	File   string         `yaml:"file"`   // JSON document mapping lookup keys to versions
	Inline map[string]any `yaml:"inline"` // Ad-hoc entries merged over the file
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment variables
// in source and desired-file paths.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	for i := range cfg.Sources {
		cfg.Sources[i].Path = expandEnv(cfg.Sources[i].Path)
	}
	cfg.Desired.File = expandEnv(cfg.Desired.File)

	if cfg.Mode == "" {
		cfg.Mode = string(domain.ModeLiteral)
	}

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".pomupdate.yaml",
		".pomupdate.yml",
		"pomupdate.yaml",
		"pomupdate.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// DesiredVersions builds the normalized desired-version table from the
// configured JSON document plus inline entries.
func (c *Config) DesiredVersions() (domain.DesiredVersionTable, error) {
	raw := make(map[string]any)

	if c.Desired.File != "" {
		data, err := os.ReadFile(c.Desired.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read desired-version file %q: %w", c.Desired.File, err)
		}
		text := string(data)
		if !gjson.Valid(text) {
			return nil, fmt.Errorf("desired-version file %q is not valid JSON", c.Desired.File)
		}

		doc := gjson.Parse(text)
		if !doc.IsObject() {
			return nil, fmt.Errorf("desired-version file %q must be a JSON object", c.Desired.File)
		}
		doc.ForEach(func(key, value gjson.Result) bool {
			raw[key.String()] = value.Value()
			return true
		})
	}

	for k, v := range c.Desired.Inline {
		raw[k] = v
	}

	table := domain.NormalizeDesired(raw)
	logger.Debugf("Loaded %d desired-version entries", len(table))
	return table, nil
}

// PropertyTable returns the configured Maven property table.
func (c *Config) PropertyTable() domain.PropertyTable {
	props := make(domain.PropertyTable, len(c.Properties))
	for k, v := range c.Properties {
		props[k] = v
	}
	return props
}

// expandEnv replaces ${ENV_VAR} references with their environment values,
// warning on unset variables.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	if len(cfg.Sources) == 0 {
		return errors.New("at least one source must be configured")
	}

	for i, s := range cfg.Sources {
		if s.Type == "" {
			return fmt.Errorf("sources[%d].type is required", i)
		}
		if s.Path == "" {
			return fmt.Errorf("sources[%d].path is required", i)
		}
	}

	if cfg.Desired.File == "" && len(cfg.Desired.Inline) == 0 {
		return errors.New("desired.file or desired.inline must be configured")
	}

	if _, err := domain.ParseMode(cfg.Mode); err != nil {
		return err
	}

	return nil
}
