package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefaultSpecIsValid(t *testing.T) {
	if err := DefaultSpec().Validate(); err != nil {
		t.Errorf("DefaultSpec does not validate: %v", err)
	}
}

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Spec)
		wantErr string
	}{
		{
			name:    "bad gradient color",
			mutate:  func(s *Spec) { s.Gradient.Top = "deep blue" },
			wantErr: "invalid hex color",
		},
		{
			name:    "bad accent color",
			mutate:  func(s *Spec) { s.Front.Accent = "#12345" },
			wantErr: "invalid hex color",
		},
		{
			name:    "truncated indicator color",
			mutate:  func(s *Spec) { s.Indicator.Color = "#fffff" },
			wantErr: "invalid hex color",
		},
		{
			name:    "missing hash",
			mutate:  func(s *Spec) { s.Bars.Color = "b4b4be" },
			wantErr: "invalid hex color",
		},
		{
			name:    "zero card width",
			mutate:  func(s *Spec) { s.Card.WidthScale = 0 },
			wantErr: "must be positive",
		},
		{
			name:    "darken out of range",
			mutate:  func(s *Spec) { s.Overlay.Darken = 1.5 },
			wantErr: "within [0, 1]",
		},
		{
			name:    "no indicator arcs",
			mutate:  func(s *Spec) { s.Indicator.Radii = nil },
			wantErr: "at least one arc",
		},
		{
			name:    "negative arc radius",
			mutate:  func(s *Spec) { s.Indicator.Radii = []float64{0.3, -0.5} },
			wantErr: "must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := DefaultSpec()
			tt.mutate(spec)

			err := spec.Validate()
			if err == nil {
				t.Fatal("expected validation error, got none")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSpecValidateAcceptsShortHex(t *testing.T) {
	spec := DefaultSpec()
	spec.Gradient.Top = "#fff"
	spec.Back.Accent = "#6ac"

	if err := spec.Validate(); err != nil {
		t.Errorf("short-form hex colors should validate: %v", err)
	}
}

func TestLoadSpecRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.toml")

	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := toml.NewEncoder(file).Encode(DefaultSpec()); err != nil {
		file.Close()
		t.Fatal(err)
	}
	file.Close()

	spec, err := LoadSpec(path)
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}

	want := DefaultSpec()
	if spec.Gradient != want.Gradient {
		t.Errorf("gradient = %+v, want %+v", spec.Gradient, want.Gradient)
	}
	if spec.Front != want.Front {
		t.Errorf("front card = %+v, want %+v", spec.Front, want.Front)
	}
	if len(spec.Indicator.Radii) != len(want.Indicator.Radii) {
		t.Errorf("indicator radii = %v, want %v", spec.Indicator.Radii, want.Indicator.Radii)
	}
}

func TestLoadSpecMissingFile(t *testing.T) {
	if _, err := LoadSpec(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing spec file, got none")
	}
}

func TestLoadSpecRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.toml")

	spec := DefaultSpec()
	spec.Gradient.Bottom = "not-a-color"
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := toml.NewEncoder(file).Encode(spec); err != nil {
		file.Close()
		t.Fatal(err)
	}
	file.Close()

	if _, err := LoadSpec(path); err == nil {
		t.Error("expected error for invalid spec, got none")
	}
}
