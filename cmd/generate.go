package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/cardpro/iconsmith/internal/catalog"
	"github.com/cardpro/iconsmith/internal/config"
	"github.com/cardpro/iconsmith/internal/icon"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the app icon and write the appiconset",
	Long: `Generate renders the CardPro app icon at the requested size and writes
AppIcon.png plus Contents.json into the output directory, overwriting any
prior contents.

The design constants (colors, card geometry, rotation angles) come from the
built-in spec; pass --spec to override them with a TOML file.

Examples:
  iconsmith generate
  iconsmith generate --size 512 --out ./AppIcon.appiconset
  iconsmith generate --spec ./icon.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		size, _ := cmd.Flags().GetInt("size")
		outDir, _ := cmd.Flags().GetString("out")
		specFile, _ := cmd.Flags().GetString("spec")

		if size == 0 {
			size = cfg.Size
		}
		if outDir == "" {
			outDir = cfg.OutputDir
		}
		if specFile == "" {
			specFile = cfg.SpecFile
		}

		spec := config.DefaultSpec()
		if specFile != "" {
			spec, err = config.LoadSpec(specFile)
			if err != nil {
				return err
			}
		}

		renderer, err := icon.NewRenderer(spec)
		if err != nil {
			return err
		}

		fmt.Println("Generating CardPro app icon...")

		img, err := renderer.Render(size)
		if err != nil {
			return err
		}

		if err := catalog.Write(outDir, img); err != nil {
			return err
		}

		fmt.Printf("Saved: %s\n", filepath.Join(outDir, catalog.IconFilename))
		fmt.Printf("Updated: %s\n", filepath.Join(outDir, catalog.ContentsFilename))
		fmt.Println("Done! App icon generated successfully.")

		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntP("size", "s", 0, "Icon size in pixels (default from config, 1024)")
	generateCmd.Flags().StringP("out", "o", "", "Output appiconset directory")
	generateCmd.Flags().String("spec", "", "Path to an icon spec TOML file")
}
