package cmd

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nfnt/resize"

	"github.com/cardpro/iconsmith/internal/config"
	"github.com/cardpro/iconsmith/internal/icon"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export additional raster sizes of the icon",
	Long: `Export renders the icon once at full resolution and downscales it to
each requested size, writing icon_<size>.png files. Useful for marketing
pages and platforms that want fixed small sizes instead of an appiconset.

Examples:
  iconsmith export --sizes 16,32,64,128,256
  iconsmith export --sizes 512 --out ./dist`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sizesFlag, _ := cmd.Flags().GetString("sizes")
		outDir, _ := cmd.Flags().GetString("out")
		specFile, _ := cmd.Flags().GetString("spec")

		sizes, err := parseSizes(sizesFlag)
		if err != nil {
			return err
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

		// Render once at the largest size needed, never below the
		// nominal resolution, and downscale from there.
		renderSize := config.DefaultSize
		for _, s := range sizes {
			if s > renderSize {
				renderSize = s
			}
		}

		fmt.Printf("Rendering at %dx%d...\n", renderSize, renderSize)
		img, err := renderer.Render(renderSize)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %v", err)
		}

		for _, s := range sizes {
			scaled := resize.Resize(uint(s), uint(s), img, resize.Lanczos3)
			path := filepath.Join(outDir, fmt.Sprintf("icon_%d.png", s))

			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("error creating %s: %v", path, err)
			}
			if err := png.Encode(file, scaled); err != nil {
				file.Close()
				return fmt.Errorf("error encoding %s: %v", path, err)
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("error writing %s: %v", path, err)
			}

			fmt.Printf("Saved: %s\n", path)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("sizes", "16,32,64,128,256,512", "Comma-separated list of pixel sizes to export")
	exportCmd.Flags().StringP("out", "o", "export", "Output directory for the exported images")
	exportCmd.Flags().String("spec", "", "Path to an icon spec TOML file")
}

// parseSizes parses a comma-separated list of positive pixel sizes.
func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %v", part, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("sizes must be positive, got %d", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}
