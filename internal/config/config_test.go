package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.ImageSize != 1080 {
		t.Errorf("Expected default image size 1080, got %d", config.ImageSize)
	}
	if config.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", config.LogLevel)
	}
	if config.OutputDir != "" || config.DataPath != "" {
		t.Errorf("Expected empty paths by default, got %+v", config)
	}
}

func TestConfigManager_LoadNonExistent(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	cm := NewConfigManagerWithPath(configPath)

	config, err := cm.Load()
	if err != nil {
		t.Fatalf("Expected no error loading non-existent config, got: %v", err)
	}

	if *config != *DefaultConfig() {
		t.Errorf("Expected default config, got %+v", config)
	}
}

func TestConfigManager_SaveAndLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	cm := NewConfigManagerWithPath(configPath)

	testConfig := &Config{
		DataPath:  "/data/quotes.db",
		OutputDir: "/tmp/cards",
		ImageSize: 2048,
		LogLevel:  "debug",
		LogFile:   "/tmp/quotegen.log",
	}

	if err := cm.Save(testConfig); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loadedConfig, err := cm.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if *loadedConfig != *testConfig {
		t.Errorf("Expected %+v, got %+v", testConfig, loadedConfig)
	}
}

// writeConfig writes a YAML config file into a temp dir and returns its path
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return configPath
}

func TestConfigManager_PartialFileKeepsDefaults(t *testing.T) {
	configPath := writeConfig(t, "output_dir: /tmp/out\n")

	config, err := NewConfigManagerWithPath(configPath).Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.OutputDir != "/tmp/out" {
		t.Errorf("Expected output dir /tmp/out, got %s", config.OutputDir)
	}
	if config.ImageSize != DefaultImageSize {
		t.Errorf("Expected default image size %d, got %d", DefaultImageSize, config.ImageSize)
	}
	if config.LogLevel != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, config.LogLevel)
	}
}

func TestConfigManager_EnvOverrides(t *testing.T) {
	configPath := writeConfig(t, "image_size: 800\nlog_level: warn\n")

	t.Setenv("QUOTEGEN_IMAGE_SIZE", "1500")
	t.Setenv("QUOTEGEN_OUTPUT_DIR", "/env/out")

	config, err := NewConfigManagerWithPath(configPath).Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.ImageSize != 1500 {
		t.Errorf("Expected image size 1500 from env, got %d", config.ImageSize)
	}
	if config.OutputDir != "/env/out" {
		t.Errorf("Expected output dir /env/out from env, got %s", config.OutputDir)
	}
	if config.LogLevel != "warn" {
		t.Errorf("Expected log level warn from file, got %s", config.LogLevel)
	}
}

func TestConfigManager_TraceLevel(t *testing.T) {
	configPath := writeConfig(t, "log_level: trace\n")

	config, err := NewConfigManagerWithPath(configPath).Load()
	if err != nil {
		t.Fatalf("Expected trace to be accepted, got: %v", err)
	}
	if config.LogLevel != "trace" {
		t.Errorf("Expected log level trace, got %s", config.LogLevel)
	}
}

func TestConfigManager_InvalidFile(t *testing.T) {
	configPath := writeConfig(t, "image_size: [\n")

	_, err := NewConfigManagerWithPath(configPath).Load()
	if err == nil {
		t.Fatal("Expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("Expected parse error, got: %v", err)
	}
}

func TestConfigManager_Validation(t *testing.T) {
	cm := NewConfigManagerWithPath(filepath.Join(t.TempDir(), "config.yaml"))

	tests := []struct {
		name     string
		config   *Config
		errorMsg string
	}{
		{
			name:   "valid config",
			config: &Config{ImageSize: 1080, LogLevel: "info"},
		},
		{
			name:   "trace level",
			config: &Config{ImageSize: 1080, LogLevel: "trace"},
		},
		{
			name:   "largest image",
			config: &Config{ImageSize: MaxImageSize, LogLevel: "info"},
		},
		{
			name:     "image too small",
			config:   &Config{ImageSize: 100, LogLevel: "info"},
			errorMsg: "image_size must be at least 324",
		},
		{
			name:     "image too large",
			config:   &Config{ImageSize: 5000, LogLevel: "info"},
			errorMsg: "image_size must be at most 4096",
		},
		{
			name:     "unknown log level",
			config:   &Config{ImageSize: 1080, LogLevel: "verbose"},
			errorMsg: "log_level must be one of: trace debug info warn error",
		},
		{
			name:     "missing log level",
			config:   &Config{ImageSize: 1080},
			errorMsg: "log_level is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cm.Save(tt.config)
			if tt.errorMsg == "" {
				if err != nil {
					t.Errorf("Expected no error, got: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q, got none", tt.errorMsg)
			}
			if !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("Expected error containing %q, got: %v", tt.errorMsg, err)
			}
		})
	}
}

func TestConfigManager_Update(t *testing.T) {
	cm := NewConfigManagerWithPath(filepath.Join(t.TempDir(), "config.yaml"))

	tests := []struct {
		name        string
		key         string
		value       string
		expectError bool
	}{
		{"valid image-size", "image-size", "2048", false},
		{"valid log-level", "log-level", "debug", false},
		{"trace log-level", "log-level", "trace", false},
		{"valid output-dir", "output-dir", "/custom/cards", false},
		{"valid data-path", "data-path", "/custom/quotes.db", false},
		{"valid log-file", "log-file", "/custom/quotegen.log", false},
		{"invalid key", "invalid-key", "value", true},
		{"invalid image-size", "image-size", "not-a-number", true},
		{"out of range image-size", "image-size", "10", true},
		{"invalid log-level", "log-level", "loud", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cm.Update(tt.key, tt.value)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %s, but got none", tt.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %s: %v", tt.name, err)
			}

			retrievedValue, err := cm.Get(tt.key)
			if err != nil {
				t.Errorf("Failed to get value after update: %v", err)
			} else if retrievedValue != tt.value {
				t.Errorf("Expected retrieved value %s, got %s", tt.value, retrievedValue)
			}
		})
	}
}

func TestConfigManager_Get(t *testing.T) {
	cm := NewConfigManagerWithPath(filepath.Join(t.TempDir(), "config.yaml"))

	err := cm.Save(&Config{ImageSize: 720, LogLevel: "error", OutputDir: "/test/out"})
	if err != nil {
		t.Fatalf("Failed to save test config: %v", err)
	}

	tests := []struct {
		name          string
		key           string
		expectedValue string
		expectError   bool
	}{
		{"get image-size", "image-size", "720", false},
		{"get log-level", "log-level", "error", false},
		{"get output-dir", "output-dir", "/test/out", false},
		{"get unset data-path", "data-path", "[default]", false},
		{"get invalid key", "invalid-key", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := cm.Get(tt.key)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %s, but got none", tt.name)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error for %s: %v", tt.name, err)
			} else if value != tt.expectedValue {
				t.Errorf("Expected value %s, got %s", tt.expectedValue, value)
			}
		})
	}
}

func TestConfigManager_List(t *testing.T) {
	cm := NewConfigManagerWithPath(filepath.Join(t.TempDir(), "config.yaml"))

	values, err := cm.List()
	if err != nil {
		t.Fatalf("Failed to list default config: %v", err)
	}

	for _, key := range []string{"image-size", "log-level", "data-path", "output-dir", "log-file"} {
		if _, exists := values[key]; !exists {
			t.Errorf("Expected key %s to exist in list output", key)
		}
	}

	if values["image-size"] != "1080" {
		t.Errorf("Expected default image-size 1080, got %s", values["image-size"])
	}
	if values["output-dir"] != "[default]" {
		t.Errorf("Expected default output-dir [default], got %s", values["output-dir"])
	}
}

func TestConfigManager_GetConfigPath(t *testing.T) {
	configPath := "/test/config/path.yaml"
	cm := NewConfigManagerWithPath(configPath)

	if cm.GetConfigPath() != configPath {
		t.Errorf("Expected config path %s, got %s", configPath, cm.GetConfigPath())
	}
}

func TestNewConfigManager(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cm, err := NewConfigManager()
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}

	configPath := cm.GetConfigPath()
	if !filepath.IsAbs(configPath) {
		t.Errorf("Expected absolute config path, got %s", configPath)
	}
	if !strings.HasSuffix(configPath, ".config/quotegen/config.yaml") {
		t.Errorf("Expected config path to end with .config/quotegen/config.yaml, got %s", configPath)
	}
}
