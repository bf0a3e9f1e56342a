package validator

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/cardpro/iconsmith/internal/catalog"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks an AppIcon.appiconset directory for consistency
// between the descriptor and the image files it references.
type Validator struct {
	SetPath string
	Results ValidationResults
}

func NewValidator(setPath string) *Validator {
	return &Validator{
		SetPath: setPath,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	contents, err := v.validateContents()
	if err != nil {
		return v.Results, err
	}

	v.validateImages(contents)
	v.validateStrayFiles(contents)

	return v.Results, nil
}

// validateContents checks that the descriptor exists, parses, and has
// well-formed entries. A missing or unparsable descriptor aborts the
// run; field problems accumulate as errors.
func (v *Validator) validateContents() (*catalog.Contents, error) {
	contentsPath := filepath.Join(v.SetPath, catalog.ContentsFilename)
	if _, err := os.Stat(contentsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s not found in %s", catalog.ContentsFilename, v.SetPath)
	}

	contents, err := catalog.ReadContents(v.SetPath)
	if err != nil {
		return nil, err
	}

	if len(contents.Images) == 0 {
		v.Results.Errors = append(v.Results.Errors, "descriptor lists no images")
	}

	for i, entry := range contents.Images {
		if entry.Filename == "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("images[%d].filename is required", i))
		}
		if entry.Idiom != "universal" {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("images[%d].idiom is %q (expected universal)", i, entry.Idiom))
		}
		if entry.Platform != "ios" {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("images[%d].platform is %q (expected ios)", i, entry.Platform))
		}
	}

	if contents.Info.Author == "" {
		v.Results.Warnings = append(v.Results.Warnings, "info.author is empty")
	}
	if contents.Info.Version != 1 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("unsupported info.version: %d (supported: 1)", contents.Info.Version))
	}

	return contents, nil
}

// validateImages checks that every referenced image exists, decodes as
// PNG, and is square. A non-1024 universal icon is only a warning
// since the set may have been generated at a reduced size on purpose.
func (v *Validator) validateImages(contents *catalog.Contents) {
	for _, entry := range contents.Images {
		if entry.Filename == "" {
			continue
		}

		imagePath := filepath.Join(v.SetPath, entry.Filename)
		file, err := os.Open(imagePath)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("image not found: %s", entry.Filename))
			continue
		}

		cfg, err := png.DecodeConfig(file)
		file.Close()
		if err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s is not a valid PNG: %v", entry.Filename, err))
			continue
		}

		if cfg.Width != cfg.Height {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s is not square: %dx%d", entry.Filename, cfg.Width, cfg.Height))
		}

		if entry.Idiom == "universal" && cfg.Width != 1024 {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s is %dx%d (App Store submission expects 1024x1024)",
					entry.Filename, cfg.Width, cfg.Height))
		}
	}
}

// validateStrayFiles warns about PNG files in the set that the
// descriptor does not reference; the asset pipeline ignores them.
func (v *Validator) validateStrayFiles(contents *catalog.Contents) {
	referenced := make(map[string]bool)
	for _, entry := range contents.Images {
		referenced[entry.Filename] = true
	}

	entries, err := os.ReadDir(v.SetPath)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".png") || referenced[name] {
			continue
		}
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("unreferenced image in set: %s", name))
	}
}
