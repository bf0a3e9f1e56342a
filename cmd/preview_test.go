package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cardpro/iconsmith/internal/config"
)

func TestPreviewCachesArt(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	RootCmd.SetArgs([]string{"preview", "--width", "8"})
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("preview: %v", err)
	}

	cacheDir := filepath.Join(config.GetCacheDir(), "ansi_cache")
	entries, err := os.ReadDir(cacheDir)
	if err != nil {
		t.Fatalf("cache directory missing: %v", err)
	}
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), ".ansi") {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("cache contains %v, want one .ansi file", names)
	}

	// A second run must reuse the cached art, not add another file.
	RootCmd.SetArgs([]string{"preview", "--width", "8"})
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("second preview: %v", err)
	}

	entries, err = os.ReadDir(cacheDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("cache grew to %d files after an identical run", len(entries))
	}
}

func TestCachedArtDimensions(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	art, err := cachedArt(config.DefaultSpec(), 16, 8)
	if err != nil {
		t.Fatalf("cachedArt: %v", err)
	}

	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	if len(lines) != 8 {
		t.Errorf("got %d art lines, want 8", len(lines))
	}

	// The cached copy must match what a fresh call returns.
	again, err := cachedArt(config.DefaultSpec(), 16, 8)
	if err != nil {
		t.Fatalf("cachedArt (cached): %v", err)
	}
	if art != again {
		t.Error("cached art differs from freshly rendered art")
	}
}
