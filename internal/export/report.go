package export

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Report records what a run was asked for and what it produced, so the same
// dataset can be regenerated from its seed.
type Report struct {
	GeneratedAt time.Time      `yaml:"generated_at"`
	Seed        int64          `yaml:"seed"`
	Dialect     string         `yaml:"dialect"`
	Schema      string         `yaml:"schema"`
	Output      string         `yaml:"output"`
	Requested   RequestedRows  `yaml:"requested"`
	Rows        map[string]int `yaml:"rows"`
}

type RequestedRows struct {
	Users   int `yaml:"users"`
	Schools int `yaml:"schools"`
	Courses int `yaml:"courses"`
	Lessons int `yaml:"lessons"`
	Tests   int `yaml:"tests"`
}

func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	if r.Seed == 0 {
		return nil, fmt.Errorf("report %s has no seed", path)
	}
	return &r, nil
}
