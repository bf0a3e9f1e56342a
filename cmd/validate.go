package cmd

import (
	"fmt"
	"os"

	"github.com/cardpro/iconsmith/internal/config"
	"github.com/cardpro/iconsmith/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate an appiconset directory",
	Long: `Validate checks that an AppIcon.appiconset directory is consistent:
the descriptor parses, every referenced image exists, decodes as PNG and is
square, and no stray images sit beside the set. Without a path it checks
the configured output directory.

Examples:
  iconsmith validate
  iconsmith validate ./AppIcon.appiconset`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var setPath string
		if len(args) == 1 {
			setPath = args[0]
		} else {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("error loading config: %v", err)
			}
			setPath = cfg.OutputDir
		}

		// Check if path exists
		if _, err := os.Stat(setPath); os.IsNotExist(err) {
			return fmt.Errorf("appiconset directory not found: %s", setPath)
		}

		// Create validator and run validation
		v := validator.NewValidator(setPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Icon set '%s' is consistent.\n", setPath)
		} else {
			fmt.Printf("❌ Icon set '%s' has %d validation errors:\n", setPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
