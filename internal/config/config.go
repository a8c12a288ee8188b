package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"multipick/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version        int        `toml:"version"`
	Candidates     []string   `toml:"candidates"`
	CandidatesFile string     `toml:"candidates_file,omitempty"` // .yaml/.yml list or plain text
	Match          string     `toml:"match"`                     // "prefix" or "fuzzy"
	UISettings     UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp  bool `toml:"show_help"`
	Mouse     bool `toml:"mouse"`
	AltScreen bool `toml:"alt_screen"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/multipick/config.toml or the
// platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "multipick", "config.toml")
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceForPath creates a config service for a specific file
func NewConfigServiceForPath(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{bus: bus, filePath: path}
}

// Path returns the file this service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the
// default configuration.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	// Publish ConfigLoaded event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:       cs.filePath,
			Candidates: len(cfg.Candidates),
			Match:      cfg.Match,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted keys keep their default values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Candidates == nil {
		cfg.Candidates = []string{}
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		Candidates: []string{"Apple", "Banana", "Cherry", "Date", "Elderberry", "Fig"},
		Match:      "prefix",
		UISettings: UISettings{
			ShowHelp:  true,
			Mouse:     true,
			AltScreen: true,
		},
	}
}

// ResolveCandidatesFile returns the candidates file path, resolved against
// baseDir when relative. It returns "" when no file is configured.
func ResolveCandidatesFile(cfg *Config, baseDir string) string {
	if cfg.CandidatesFile == "" {
		return ""
	}
	if filepath.IsAbs(cfg.CandidatesFile) || baseDir == "" {
		return cfg.CandidatesFile
	}
	return filepath.Join(baseDir, cfg.CandidatesFile)
}

// LoadCandidates returns the candidate list for cfg. When a candidates
// file is configured it replaces the inline list.
func LoadCandidates(cfg *Config, baseDir string) ([]string, error) {
	path := ResolveCandidatesFile(cfg, baseDir)
	if path == "" {
		return append([]string(nil), cfg.Candidates...), nil
	}
	return ReadCandidatesFile(path)
}

// ReadCandidatesFile reads a YAML list (.yaml/.yml) or a plain-text file
// with one label per line
func ReadCandidatesFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var labels []string
		if err := yaml.Unmarshal(data, &labels); err != nil {
			return nil, fmt.Errorf("failed to parse candidates file %s: %w", path, err)
		}
		if labels == nil {
			labels = []string{}
		}
		return labels, nil
	default:
		return parsePlainCandidates(data)
	}
}

func parsePlainCandidates(data []byte) ([]string, error) {
	labels := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		labels = append(labels, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan candidates: %w", err)
	}
	return labels, nil
}
