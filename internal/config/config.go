package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/spf13/viper"
)

const FileName = "benchseed.config.json"

// validIdentifier matches a bare SQL identifier usable as a schema name
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

var supportedDialects = []string{"postgres", "postgresql", "mysql", "sqlite", "sqlite3"}

type Config struct {
	Users   int    `json:"users" mapstructure:"users"`
	Schools int    `json:"schools" mapstructure:"schools"`
	Courses int    `json:"courses" mapstructure:"courses"`
	Lessons int    `json:"lessons" mapstructure:"lessons"` // total lesson budget, split across courses
	Tests   int    `json:"tests" mapstructure:"tests"`     // per practice lesson
	Output  string `json:"output" mapstructure:"output"`
	Dialect string `json:"dialect" mapstructure:"dialect"`
	Schema  string `json:"schema" mapstructure:"schema"`
	Seed    int64  `json:"seed,omitempty" mapstructure:"seed"`
	Report  string `json:"report,omitempty" mapstructure:"report"`
}

func DefaultConfig() *Config {
	return &Config{
		Users:   10,
		Schools: 5,
		Courses: 10,
		Lessons: 20,
		Tests:   50,
		Output:  "output.sql",
		Dialect: "postgres",
		Schema:  "public",
	}
}

// SetDefaults registers the default values on v so that unset keys resolve
// to them during Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("users", d.Users)
	v.SetDefault("schools", d.Schools)
	v.SetDefault("courses", d.Courses)
	v.SetDefault("lessons", d.Lessons)
	v.SetDefault("tests", d.Tests)
	v.SetDefault("output", d.Output)
	v.SetDefault("dialect", d.Dialect)
	v.SetDefault("schema", d.Schema)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("report", d.Report)
}

func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Output == "" {
		cfg.Output = "output.sql"
	}
	if cfg.Dialect == "" {
		cfg.Dialect = "postgres"
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	supported := false
	for _, dialect := range supportedDialects {
		if c.Dialect == dialect {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported dialect: %s. Supported dialects: %v", c.Dialect, supportedDialects)
	}

	if c.Output == "" {
		return fmt.Errorf("output cannot be empty")
	}

	if c.Schema != "" && !validIdentifier.MatchString(c.Schema) {
		return fmt.Errorf("invalid schema name: %q", c.Schema)
	}

	counts := map[string]int{
		"users":   c.Users,
		"schools": c.Schools,
		"courses": c.Courses,
		"lessons": c.Lessons,
		"tests":   c.Tests,
	}
	for _, key := range []string{"users", "schools", "courses", "lessons", "tests"} {
		if counts[key] < 0 {
			return fmt.Errorf("%s cannot be negative (got %d)", key, counts[key])
		}
	}

	return nil
}

// WriteFile writes c to path as JSON. It refuses to overwrite an existing
// file unless force is set.
func (c *Config) WriteFile(path string, force bool) error {
	v := viper.New()
	v.SetConfigType("json")
	v.Set("users", c.Users)
	v.Set("schools", c.Schools)
	v.Set("courses", c.Courses)
	v.Set("lessons", c.Lessons)
	v.Set("tests", c.Tests)
	v.Set("output", c.Output)
	v.Set("dialect", c.Dialect)
	v.Set("schema", c.Schema)
	v.Set("seed", c.Seed)
	v.Set("report", c.Report)

	if force {
		if err := v.WriteConfigAs(path); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	}

	if err := v.SafeWriteConfigAs(path); err != nil {
		var exists viper.ConfigFileAlreadyExistsError
		if errors.As(err, &exists) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
