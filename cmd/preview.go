package cmd

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/cardpro/iconsmith/internal/ansi"
	"github.com/cardpro/iconsmith/internal/config"
	"github.com/cardpro/iconsmith/internal/icon"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// previewRenderSize is the pixel size the icon is rendered at before
// being downscaled into terminal cells. Large enough that the card
// edges survive the resample, small enough to stay instant.
const previewRenderSize = 256

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the icon and display it in the terminal",
	Long: `Preview renders the CardPro app icon in memory and displays it as
truecolor ANSI art without touching the asset catalog.

Examples:
  iconsmith preview
  iconsmith preview --width 64
  iconsmith preview --spec ./icon.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")
		specFile, _ := cmd.Flags().GetString("spec")

		spec := config.DefaultSpec()
		specLabel := "default"
		if specFile != "" {
			var err error
			spec, err = config.LoadSpec(specFile)
			if err != nil {
				return err
			}
			specLabel = specFile
		}

		if width <= 0 {
			width = previewWidth()
		}

		// The icon is square and each character cell covers two image
		// rows, so half as many rows as columns keeps it square.
		art, err := cachedArt(spec, width, width/2)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Print("  " + colorize.CyanString("Icon: ") + colorize.HiWhiteString("CardPro AppIcon"))
		fmt.Println("   " + colorize.CyanString("Spec: ") + colorize.HiWhiteString(specLabel))
		fmt.Println()
		for _, line := range strings.Split(strings.TrimRight(art, "\n"), "\n") {
			fmt.Println("  " + line)
		}
		fmt.Println()

		return nil
	},
}

func init() {
	RootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntP("width", "w", 0, "Preview width in terminal cells (default fits the terminal)")
	previewCmd.Flags().String("spec", "", "Path to an icon spec TOML file")
}

// cachedArt returns the ANSI art for the spec at the given cell
// dimensions, rendering and converting only when no cached copy
// exists for that spec and size.
func cachedArt(spec *config.Spec, width, height int) (string, error) {
	cacheDir := filepath.Join(config.GetCacheDir(), "ansi_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create ANSI cache directory: %v", err)
	}

	// Create a cache filename from everything the art depends on
	key := fmt.Sprintf("%+v|%dx%d|%d", *spec, width, height, previewRenderSize)
	cachePath := filepath.Join(cacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))

	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data), nil
	}

	renderer, err := icon.NewRenderer(spec)
	if err != nil {
		return "", err
	}

	img, err := renderer.Render(previewRenderSize)
	if err != nil {
		return "", err
	}

	art := ansi.Render(img, width, height)

	if err := os.WriteFile(cachePath, []byte(art), 0644); err != nil {
		return "", fmt.Errorf("failed to write ANSI art to cache: %v", err)
	}

	return art, nil
}

// previewWidth picks a preview width that fits the terminal, falling
// back to a fixed width when the size cannot be determined.
func previewWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 40
	}

	width -= 4 // side padding
	if width > 48 {
		width = 48
	}
	if width < 8 {
		width = 8
	}
	return width
}
