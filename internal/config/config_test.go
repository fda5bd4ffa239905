package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Users != 10 {
		t.Errorf("Expected users to be 10, got %d", config.Users)
	}
	if config.Schools != 5 {
		t.Errorf("Expected schools to be 5, got %d", config.Schools)
	}
	if config.Courses != 10 {
		t.Errorf("Expected courses to be 10, got %d", config.Courses)
	}
	if config.Lessons != 20 {
		t.Errorf("Expected lessons to be 20, got %d", config.Lessons)
	}
	if config.Tests != 50 {
		t.Errorf("Expected tests to be 50, got %d", config.Tests)
	}
	if config.Output != "output.sql" {
		t.Errorf("Expected output to be 'output.sql', got '%s'", config.Output)
	}
	if config.Dialect != "postgres" {
		t.Errorf("Expected dialect to be 'postgres', got '%s'", config.Dialect)
	}
	if config.Schema != "public" {
		t.Errorf("Expected schema to be 'public', got '%s'", config.Schema)
	}
}

func TestLoadFromAppliesDefaults(t *testing.T) {
	v := viper.New()
	v.Set("users", 3)
	v.Set("courses", 0)

	cfg, err := LoadFrom(v)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Users != 3 {
		t.Errorf("Expected users to be 3, got %d", cfg.Users)
	}
	// An explicit zero must survive default handling.
	if cfg.Courses != 0 {
		t.Errorf("Expected courses to be 0, got %d", cfg.Courses)
	}
	if cfg.Tests != 50 {
		t.Errorf("Expected default tests 50, got %d", cfg.Tests)
	}
	if cfg.Dialect != "postgres" {
		t.Errorf("Expected default dialect 'postgres', got '%s'", cfg.Dialect)
	}
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := `{"users": 7, "dialect": "sqlite", "schema": "", "output": "seed.sql"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	cfg, err := LoadFrom(v)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Users != 7 || cfg.Dialect != "sqlite" || cfg.Output != "seed.sql" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.Schema != "" {
		t.Errorf("Expected empty schema from file, got '%s'", cfg.Schema)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "mysql dialect", mutate: func(c *Config) { c.Dialect = "mysql" }},
		{name: "unqualified tables", mutate: func(c *Config) { c.Schema = "" }},
		{name: "unknown dialect", mutate: func(c *Config) { c.Dialect = "oracle" }, wantErr: "unsupported dialect"},
		{name: "empty output", mutate: func(c *Config) { c.Output = "" }, wantErr: "output cannot be empty"},
		{name: "bad schema", mutate: func(c *Config) { c.Schema = "public; drop" }, wantErr: "invalid schema name"},
		{name: "negative users", mutate: func(c *Config) { c.Users = -1 }, wantErr: "users cannot be negative"},
		{name: "negative tests", mutate: func(c *Config) { c.Tests = -5 }, wantErr: "tests cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	if err := DefaultConfig().WriteFile(path, false); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("Config file was not created at %s", path)
	}

	// Second write without force must fail.
	if err := DefaultConfig().WriteFile(path, false); err == nil {
		t.Error("Expected second write to fail, but it succeeded")
	}
	if err := DefaultConfig().WriteFile(path, true); err != nil {
		t.Errorf("Expected forced write to succeed, got %v", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("Written config is not readable: %v", err)
	}
	cfg, err := LoadFrom(v)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Round-tripped config differs: %+v", cfg)
	}
}
