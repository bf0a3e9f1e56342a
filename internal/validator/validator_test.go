package validator

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cardpro/iconsmith/internal/catalog"
)

func writeSet(t *testing.T, size int) string {
	t.Helper()

	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	if err := catalog.Write(dir, img); err != nil {
		t.Fatalf("writing test set: %v", err)
	}
	return dir
}

func hasMessage(msgs []string, substr string) bool {
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestValidateFreshSet(t *testing.T) {
	dir := writeSet(t, 1024)

	results, err := NewValidator(dir).Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(results.Errors) != 0 {
		t.Errorf("unexpected errors: %v", results.Errors)
	}
	if len(results.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", results.Warnings)
	}
}

func TestValidateReducedSizeWarns(t *testing.T) {
	dir := writeSet(t, 64)

	results, err := NewValidator(dir).Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(results.Errors) != 0 {
		t.Errorf("unexpected errors: %v", results.Errors)
	}
	if !hasMessage(results.Warnings, "1024x1024") {
		t.Errorf("expected a size warning, got %v", results.Warnings)
	}
}

func TestValidateMissingContents(t *testing.T) {
	if _, err := NewValidator(t.TempDir()).Validate(); err == nil {
		t.Error("expected error for missing descriptor, got none")
	}
}

func TestValidateMissingImage(t *testing.T) {
	dir := writeSet(t, 64)
	if err := os.Remove(filepath.Join(dir, catalog.IconFilename)); err != nil {
		t.Fatal(err)
	}

	results, err := NewValidator(dir).Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !hasMessage(results.Errors, "image not found") {
		t.Errorf("expected a missing-image error, got %v", results.Errors)
	}
}

func TestValidateCorruptImage(t *testing.T) {
	dir := writeSet(t, 64)
	if err := os.WriteFile(filepath.Join(dir, catalog.IconFilename), []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	results, err := NewValidator(dir).Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !hasMessage(results.Errors, "not a valid PNG") {
		t.Errorf("expected a corrupt-image error, got %v", results.Errors)
	}
}

func TestValidateNonSquareImage(t *testing.T) {
	dir := writeSet(t, 64)

	wide := image.NewRGBA(image.Rect(0, 0, 64, 32))
	file, err := os.Create(filepath.Join(dir, catalog.IconFilename))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(file, wide); err != nil {
		file.Close()
		t.Fatal(err)
	}
	file.Close()

	results, err := NewValidator(dir).Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !hasMessage(results.Errors, "not square") {
		t.Errorf("expected a non-square error, got %v", results.Errors)
	}
}

func TestValidateStrayImageWarns(t *testing.T) {
	dir := writeSet(t, 1024)
	if err := os.WriteFile(filepath.Join(dir, "leftover.png"), []byte{}, 0644); err != nil {
		t.Fatal(err)
	}

	results, err := NewValidator(dir).Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !hasMessage(results.Warnings, "leftover.png") {
		t.Errorf("expected a stray-file warning, got %v", results.Warnings)
	}
}

func TestValidateBadDescriptorFields(t *testing.T) {
	dir := writeSet(t, 1024)

	contents := catalog.DefaultContents()
	contents.Info.Version = 2
	contents.Images[0].Idiom = "mac"
	if err := catalog.WriteContents(dir, contents); err != nil {
		t.Fatal(err)
	}

	results, err := NewValidator(dir).Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !hasMessage(results.Errors, "unsupported info.version") {
		t.Errorf("expected a version error, got %v", results.Errors)
	}
	if !hasMessage(results.Warnings, "idiom") {
		t.Errorf("expected an idiom warning, got %v", results.Warnings)
	}
}
