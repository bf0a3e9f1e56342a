package cmd

import (
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cardpro/iconsmith/internal/catalog"
)

// TestGenerateEndToEnd runs the generate command against a temp
// directory and checks both files it writes.
func TestGenerateEndToEnd(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	outDir := filepath.Join(t.TempDir(), "AppIcon.appiconset")

	RootCmd.SetArgs([]string{"generate", "--size", "128", "--out", outDir})
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	file, err := os.Open(filepath.Join(outDir, catalog.IconFilename))
	if err != nil {
		t.Fatalf("icon missing: %v", err)
	}
	defer file.Close()

	cfg, err := png.DecodeConfig(file)
	if err != nil {
		t.Fatalf("icon is not a PNG: %v", err)
	}
	if cfg.Width != 128 || cfg.Height != 128 {
		t.Errorf("icon is %dx%d, want 128x128", cfg.Width, cfg.Height)
	}

	contents, err := catalog.ReadContents(outDir)
	if err != nil {
		t.Fatalf("ReadContents: %v", err)
	}
	if want := catalog.DefaultContents(); !reflect.DeepEqual(*contents, want) {
		t.Errorf("contents = %+v, want %+v", *contents, want)
	}
}
