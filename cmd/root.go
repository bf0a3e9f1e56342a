package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "iconsmith",
	Short: "Tool for generating and checking the CardPro app icon",
	Long: `Iconsmith procedurally renders the CardPro app icon -- two overlapping
business cards on a gradient background with a wireless indicator -- and
writes it, together with its asset-catalog descriptor, into an
AppIcon.appiconset directory consumed by the app's asset pipeline.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
