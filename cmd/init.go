package cmd

import (
	"fmt"

	"github.com/Rana718/benchseed/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default benchseed.config.json",
	Long:  `Write a benchseed.config.json with the default counts, dialect and output path to the current directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.FileName
		if cfgFile != "" {
			path = cfgFile
		}

		if err := config.DefaultConfig().WriteFile(path, initForce); err != nil {
			return err
		}

		color.Green("✅ Created %s", path)
		fmt.Println()
		fmt.Printf("🚀 Next steps:\n")
		fmt.Printf("   benchseed                     # Generate output.sql\n")
		fmt.Printf("   benchseed --users 1000 --seed 42 --report run.yaml\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}
