package cmd

import (
	"fmt"
	"time"

	"github.com/Rana718/benchseed/internal/config"
	"github.com/Rana718/benchseed/internal/export"
	"github.com/Rana718/benchseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var replayFile string

func registerGenerateFlags(cmd *cobra.Command) {
	d := config.DefaultConfig()
	flags := cmd.Flags()

	flags.Int("users", d.Users, "Number of users to generate")
	flags.Int("schools", d.Schools, "Number of schools to generate")
	flags.Int("courses", d.Courses, "Number of courses to generate")
	flags.Int("lessons", d.Lessons, "Total lesson budget, divided across courses")
	flags.Int("tests", d.Tests, "Number of tests per practice lesson")
	flags.StringP("output", "o", d.Output, "Output SQL file")
	flags.String("dialect", d.Dialect, "SQL dialect for quoting (postgres, mysql, sqlite)")
	flags.String("schema", d.Schema, "Schema that qualifies every table (empty for none)")
	flags.Int64("seed", d.Seed, "Random seed; 0 picks one from the clock")
	flags.String("report", d.Report, "Write a YAML run report to this path")
	flags.StringVar(&replayFile, "replay", "", "Regenerate the dataset described by a run report")

	for _, key := range []string{"users", "schools", "courses", "lessons", "tests", "output", "dialect", "schema", "seed", "report"} {
		viper.BindPFlag(key, flags.Lookup(key))
	}
}

func runGenerate(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if replayFile != "" {
		if err := applyReport(cfg, replayFile); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	dialect, err := export.DialectFor(cfg.Dialect)
	if err != nil {
		return err
	}

	counts := seeder.Counts{
		Users:   cfg.Users,
		Schools: cfg.Schools,
		Courses: cfg.Courses,
		Lessons: cfg.Lessons,
		Tests:   cfg.Tests,
	}
	if err := counts.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	s := seeder.New(counts, seeder.WithSeed(cfg.Seed))

	w, err := export.Create(cfg.Output, dialect, cfg.Schema)
	if err != nil {
		return err
	}

	start := time.Now()
	summary, runErr := s.Run(cmd.Context(), w)
	if err := w.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		color.Yellow("⚠️  %s may be incomplete", cfg.Output)
		return runErr
	}

	color.Green("📄 Wrote %s (%s dialect) in %s", cfg.Output, dialect.Name(), time.Since(start).Round(time.Millisecond))
	color.Cyan("🎲 Seed: %d", summary.Seed)

	if cfg.Report != "" {
		report := export.Report{
			GeneratedAt: time.Now().UTC(),
			Seed:        summary.Seed,
			Dialect:     dialect.Name(),
			Schema:      cfg.Schema,
			Output:      cfg.Output,
			Requested: export.RequestedRows{
				Users:   counts.Users,
				Schools: counts.Schools,
				Courses: counts.Courses,
				Lessons: counts.Lessons,
				Tests:   counts.Tests,
			},
			Rows: w.Rows(),
		}
		if err := export.WriteReport(cfg.Report, report); err != nil {
			return err
		}
		color.Cyan("📋 Report written to %s", cfg.Report)
	}

	return nil
}

// applyReport overrides the generation inputs with the ones recorded in a
// report. The output path still comes from the current configuration.
func applyReport(cfg *config.Config, path string) error {
	report, err := export.ReadReport(path)
	if err != nil {
		return err
	}

	cfg.Seed = report.Seed
	cfg.Dialect = report.Dialect
	cfg.Schema = report.Schema
	cfg.Users = report.Requested.Users
	cfg.Schools = report.Requested.Schools
	cfg.Courses = report.Requested.Courses
	cfg.Lessons = report.Requested.Lessons
	cfg.Tests = report.Requested.Tests

	color.Cyan("🔁 Replaying %s (seed %d)", path, report.Seed)
	return nil
}
