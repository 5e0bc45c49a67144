package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Export  ExportConfig  `yaml:"export" envconfig:"EXPORT"`
}

// PathsConfig contains the input and output directories
type PathsConfig struct {
	InputDir  string `yaml:"input_dir" envconfig:"INPUT_DIR" default:"data"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"processed_data"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/f1stats.log"`
}

// ExportConfig controls optional output formats
type ExportConfig struct {
	BOMPrefix     bool `yaml:"bom_prefix" envconfig:"BOM_PREFIX" default:"false"`
	WriteWorkbook bool `yaml:"write_workbook" envconfig:"WRITE_WORKBOOK" default:"false"`
}

// Load loads configuration from environment variables and an optional
// f1stats.yaml config file. Environment variables take precedence.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("F1", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := getConfigFilePath()
	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence).
// An env value equal to its default is treated as unset so the file wins.
func mergeConfigs(fileConfig, envConfig Config) Config {
	def := Default()

	if envConfig.Paths.InputDir == def.Paths.InputDir && fileConfig.Paths.InputDir != "" {
		envConfig.Paths.InputDir = fileConfig.Paths.InputDir
	}
	if envConfig.Paths.OutputDir == def.Paths.OutputDir && fileConfig.Paths.OutputDir != "" {
		envConfig.Paths.OutputDir = fileConfig.Paths.OutputDir
	}
	if envConfig.Logging.Level == def.Logging.Level && fileConfig.Logging.Level != "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Output == def.Logging.Output && fileConfig.Logging.Output != "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == def.Logging.FilePath && fileConfig.Logging.FilePath != "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if !envConfig.Export.BOMPrefix && fileConfig.Export.BOMPrefix {
		envConfig.Export.BOMPrefix = true
	}
	if !envConfig.Export.WriteWorkbook && fileConfig.Export.WriteWorkbook {
		envConfig.Export.WriteWorkbook = true
	}

	return envConfig
}

// validate validates the configuration
func (c *Config) validate() error {
	if c.Paths.InputDir == "" {
		return fmt.Errorf("input directory must not be empty")
	}
	if c.Paths.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}

	if c.Logging.Format != "json" {
		c.Logging.Format = "json"
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		c.Logging.Output = "console"
	}

	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/f1stats.log"
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"f1stats.yaml",
		"configs/f1stats.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			InputDir:  "data",
			OutputDir: "processed_data",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/f1stats.log",
		},
		Export: ExportConfig{
			BOMPrefix:     false,
			WriteWorkbook: false,
		},
	}
}
