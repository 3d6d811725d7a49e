package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/yiblet/quotegen/internal/outfs"
)

const (
	DefaultImageSize = 1080
	MaxImageSize     = 4096 // matches the image_size validate tag
	DefaultLogLevel  = "info"
	EnvPrefix        = "QUOTEGEN_"
	FileName         = "config.yaml"
	unsetValue       = "[default]"
)

// Config represents the quotegen configuration
type Config struct {
	DataPath  string `koanf:"data_path"  yaml:"data_path,omitempty"`
	OutputDir string `koanf:"output_dir" yaml:"output_dir,omitempty"`
	ImageSize int    `koanf:"image_size" yaml:"image_size" validate:"min=324,max=4096"`
	LogLevel  string `koanf:"log_level"  yaml:"log_level"  validate:"required,oneof=trace debug info warn error"`
	LogFile   string `koanf:"log_file"   yaml:"log_file,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ImageSize: DefaultImageSize,
		LogLevel:  DefaultLogLevel,
	}
}

func defaults() map[string]any {
	return map[string]any{
		"data_path":  "",
		"output_dir": "",
		"image_size": DefaultImageSize,
		"log_level":  DefaultLogLevel,
		"log_file":   "",
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})
	return v
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, formatFieldError(e))
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// ConfigManager manages configuration persistence
type ConfigManager struct {
	configPath string
}

// NewConfigManager creates a config manager for ~/.config/quotegen/config.yaml
func NewConfigManager() (*ConfigManager, error) {
	configPath, err := outfs.ConfigPath(FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return &ConfigManager{configPath: configPath}, nil
}

// NewConfigManagerWithPath creates a config manager with custom config path
func NewConfigManagerWithPath(configPath string) *ConfigManager {
	return &ConfigManager{configPath: configPath}
}

// Load layers defaults, the YAML file (if present) and QUOTEGEN_* environment
// variables, then validates the result.
func (cm *ConfigManager) Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := loadFileIfExists(k, cm.configPath); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Keys are flat, so underscores stay underscores.
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}

// Save writes the configuration to file
func (cm *ConfigManager) Save(config *Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yamlv3.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func (cm *ConfigManager) GetConfigPath() string {
	return cm.configPath
}

// Update modifies a specific configuration value
func (cm *ConfigManager) Update(key, value string) error {
	config, err := cm.Load()
	if err != nil {
		return err
	}

	switch key {
	case "image-size":
		size, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for image-size: %s", value)
		}
		config.ImageSize = size
	case "log-level":
		config.LogLevel = strings.ToLower(value)
	case "data-path":
		config.DataPath = value
	case "output-dir":
		config.OutputDir = value
	case "log-file":
		config.LogFile = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	return cm.Save(config)
}

// Get returns the value for a specific configuration key
func (cm *ConfigManager) Get(key string) (string, error) {
	values, err := cm.List()
	if err != nil {
		return "", err
	}

	value, ok := values[key]
	if !ok {
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
	return value, nil
}

// List returns all configuration keys and values
func (cm *ConfigManager) List() (map[string]string, error) {
	config, err := cm.Load()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"image-size": strconv.Itoa(config.ImageSize),
		"log-level":  config.LogLevel,
		"data-path":  orDefault(config.DataPath),
		"output-dir": orDefault(config.OutputDir),
		"log-file":   orDefault(config.LogFile),
	}, nil
}

func orDefault(s string) string {
	if s == "" {
		return unsetValue
	}
	return s
}
