package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel     = "gemini-1.5-flash"
	DefaultBaseURL   = "https://generativelanguage.googleapis.com/v1beta"
	defaultAPIKeyEnv = "GEMINI_API_KEY"
)

type Config struct {
	WorkspacePath string
	DBPath        string
	StatePath     string
	NotesDir      string
	ExportsDir    string
	ExportersPath string

	Model   string
	BaseURL string
	APIKey  string
}

// fileConfig is the optional on-disk shape at <workspace>/.synmap/config.yaml.
type fileConfig struct {
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	APIKeyEnv string `yaml:"api_key_env"`
}

func New(workspacePath, apiKeyFlag string) (Config, error) {
	if workspacePath == "" {
		return Config{}, fmt.Errorf("workspace path is required")
	}
	cfg := Config{
		WorkspacePath: workspacePath,
		DBPath:        filepath.Join(workspacePath, ".synmap", "synmap.db"),
		StatePath:     filepath.Join(workspacePath, ".synmap", "mindmap.json"),
		NotesDir:      filepath.Join(workspacePath, "notes"),
		ExportsDir:    filepath.Join(workspacePath, "exports"),
		ExportersPath: filepath.Join(workspacePath, "exporters", "exporters.yaml"),
		Model:         DefaultModel,
		BaseURL:       DefaultBaseURL,
	}

	fc, err := loadFile(filepath.Join(workspacePath, ".synmap", "config.yaml"))
	if err != nil {
		return Config{}, err
	}
	if fc.Model != "" {
		cfg.Model = fc.Model
	}
	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}

	cfg.APIKey = resolveAPIKey(apiKeyFlag, fc)
	return cfg, nil
}

// HasAPIKey reports whether a credential was resolved from flag, config file,
// or environment. Callers must check this before any provider call.
func (c Config) HasAPIKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

func loadFile(path string) (fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("read config: %w", err)
	}
	fc := fileConfig{}
	dec := yaml.NewDecoder(strings.NewReader(string(raw)))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return fileConfig{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return fc, nil
}

func resolveAPIKey(flagValue string, fc fileConfig) string {
	if strings.TrimSpace(flagValue) != "" {
		return strings.TrimSpace(flagValue)
	}
	if fc.APIKey != "" {
		return fc.APIKey
	}
	envName := fc.APIKeyEnv
	if envName == "" {
		envName = defaultAPIKeyEnv
	}
	return strings.TrimSpace(os.Getenv(envName))
}
