package catalog

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// IconFilename is the raster asset written into the appiconset.
const IconFilename = "AppIcon.png"

// ContentsFilename is the asset-catalog descriptor next to the icon.
const ContentsFilename = "Contents.json"

// Contents models an asset catalog Contents.json descriptor.
type Contents struct {
	Images []ImageEntry `json:"images"`
	Info   Info         `json:"info"`
}

// ImageEntry describes one image asset in the catalog.
type ImageEntry struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Platform string `json:"platform"`
	Size     string `json:"size"`
}

// Info identifies the tool that authored the catalog entry.
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// DefaultContents returns the descriptor the CardPro asset pipeline
// expects: a single universal ios icon at the nominal 1024 point size.
// The nominal size is fixed regardless of the rendered pixel size.
func DefaultContents() Contents {
	return Contents{
		Images: []ImageEntry{
			{
				Filename: IconFilename,
				Idiom:    "universal",
				Platform: "ios",
				Size:     "1024x1024",
			},
		},
		Info: Info{
			Author:  "xcode",
			Version: 1,
		},
	}
}

// Write persists the composited icon and its descriptor into dir,
// creating the directory if needed and overwriting prior contents.
// Each file is written to a temp file first and renamed into place so
// a failed run never leaves a half-written asset behind.
func Write(dir string, img image.Image) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %v", err)
	}

	if err := writeIcon(filepath.Join(dir, IconFilename), img); err != nil {
		return err
	}

	return WriteContents(dir, DefaultContents())
}

// WriteContents writes the descriptor file into dir.
func WriteContents(dir string, contents Contents) error {
	data, err := json.MarshalIndent(contents, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding %s: %v", ContentsFilename, err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, ContentsFilename)
	if err := replaceFile(path, data); err != nil {
		return fmt.Errorf("error writing %s: %v", ContentsFilename, err)
	}
	return nil
}

// ReadContents parses the descriptor file found in dir.
func ReadContents(dir string) (*Contents, error) {
	path := filepath.Join(dir, ContentsFilename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %v", ContentsFilename, err)
	}

	var contents Contents
	if err := json.Unmarshal(data, &contents); err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", ContentsFilename, err)
	}
	return &contents, nil
}

func writeIcon(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".appicon-*.png")
	if err != nil {
		return fmt.Errorf("error creating icon file: %v", err)
	}

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("error encoding icon: %v", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error writing icon: %v", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error replacing %s: %v", filepath.Base(path), err)
	}
	return nil
}

// replaceFile writes data to path atomically via a sibling temp file.
func replaceFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".contents-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
