package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Sound    SoundConfig    `yaml:"sound"`
	Log      LogConfig      `yaml:"log"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type SoundConfig struct {
	SaveChime bool   `yaml:"save_chime"`
	ChimePath string `yaml:"chime_path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:         "QuickNote Timer",
			WindowWidth:  480,
			WindowHeight: 640,
		},
		Database: DatabaseConfig{
			Path: "quicknote.db",
		},
		Sound: SoundConfig{
			SaveChime: true,
			ChimePath: "assets/save_complete.wav",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

type Manager struct {
	config     *Config
	configPath string
}

func NewManager() (*Manager, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, err
	}
	return NewManagerAt(filepath.Join(configDir, "config.yaml"))
}

// NewManagerAt loads the config at the given path, writing the defaults
// there when nothing loadable exists yet.
func NewManagerAt(configPath string) (*Manager, error) {
	manager := &Manager{configPath: configPath}

	if err := manager.loadConfig(); err != nil {
		manager.config = DefaultConfig()
		if err := manager.SaveConfig(); err != nil {
			return nil, err
		}
	}

	manager.applyEnvOverrides()
	return manager, nil
}

func (m *Manager) loadConfig() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) SaveConfig() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(m.configPath, data, 0644)
}

func (m *Manager) GetConfig() *Config {
	return m.config
}

// QUICKNOTE_DB points the database somewhere else without touching the
// config file. Useful when running several instances side by side.
func (m *Manager) applyEnvOverrides() {
	if path := os.Getenv("QUICKNOTE_DB"); path != "" {
		m.config.Database.Path = path
	}
}

// The config lives in a dot-directory under the user's home. QUICKNOTE_CONFIG
// overrides the directory.
func getConfigDir() (string, error) {
	if dir := os.Getenv("QUICKNOTE_CONFIG"); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".quicknote-timer"), nil
}
