package cmd

import (
	"fmt"
	"strings"

	"github.com/Rana718/benchseed/internal/config"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "0.3.0"
)

var rootCmd = &cobra.Command{
	Use:   "benchseed",
	Short: "Generate synthetic SQL seed data for benchmarking",
	Long: `
benchseed generates users, schools, courses, lessons and tests with plausible
fake values and writes them as multi-row INSERT statements, one per table,
in foreign-key order:

  user -> school -> course -> lesson -> test

Counts, dialect and output can come from flags, BENCHSEED_* environment
variables, a .env file or benchseed.config.json.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("benchseed version %s\n", Version)
			return nil
		}
		return runGenerate(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./benchseed.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")

	registerGenerateFlags(rootCmd)
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName(strings.TrimSuffix(config.FileName, ".json"))
	}

	viper.SetEnvPrefix("BENCHSEED")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			color.Yellow("⚠️  Could not read config file: %v", err)
		}
	}
}
