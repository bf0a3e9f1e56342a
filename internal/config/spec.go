package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

// Spec holds every tunable of the icon composition: colors, card
// geometry, rotation angles and indicator layout. All linear measures
// are fractions of the rendered size (or of the card box where noted)
// so one spec scales to any output resolution.
type Spec struct {
	Gradient  GradientSection  `toml:"gradient"`
	Overlay   OverlaySection   `toml:"overlay"`
	Card      CardSection      `toml:"card"`
	Back      PlacementSection `toml:"back_card"`
	Front     PlacementSection `toml:"front_card"`
	Bars      BarSection       `toml:"text_bars"`
	Indicator IndicatorSection `toml:"indicator"`
}

// GradientSection defines the vertical background gradient.
type GradientSection struct {
	Top    string `toml:"top"`
	Bottom string `toml:"bottom"`
}

// OverlaySection defines the radial lightening pass applied over the
// gradient. RadiusScale is a fraction of size/2; pixels farther from
// the center than that radius are untouched.
type OverlaySection struct {
	RadiusScale float64 `toml:"radius_scale"`
	Darken      float64 `toml:"darken"`
	Lift        float64 `toml:"lift"`
}

// CardSection defines geometry shared by both cards.
type CardSection struct {
	WidthScale  float64 `toml:"width_scale"`  // card width, fraction of size
	Aspect      float64 `toml:"aspect"`       // card height, fraction of card width
	CornerScale float64 `toml:"corner_scale"` // corner radius, fraction of size
	ShadowScale float64 `toml:"shadow_scale"` // shadow offset, fraction of size
}

// PlacementSection positions and styles one card layer. Angle is in
// degrees, counterclockwise on screen. The back card's accent is a
// strip across the top edge sized by AccentScale of the card height;
// the front card's accent is a bar down the left edge sized by
// AccentScale of the card width.
type PlacementSection struct {
	X            float64 `toml:"x"`
	Y            float64 `toml:"y"`
	Angle        float64 `toml:"angle"`
	Body         string  `toml:"body"`
	Accent       string  `toml:"accent"`
	AccentScale  float64 `toml:"accent_scale"`
	ShadowAlpha  uint8   `toml:"shadow_alpha"`
	ShadowFactor float64 `toml:"shadow_factor"`
}

// BarSection styles the placeholder text bars on the front card.
// Offsets are fractions of the card box.
type BarSection struct {
	X         float64 `toml:"x"`
	Y         float64 `toml:"y"`
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	NameColor string  `toml:"name_color"`
	Color     string  `toml:"color"`
}

// IndicatorSection lays out the wireless-fan glyph: concentric arcs
// around a dot, swept clockwise from StartAngle to EndAngle (degrees,
// wrapping through zero).
type IndicatorSection struct {
	X           float64   `toml:"x"`
	Y           float64   `toml:"y"`
	SizeScale   float64   `toml:"size_scale"`
	Radii       []float64 `toml:"radii"` // fractions of the indicator box
	StartAngle  float64   `toml:"start_angle"`
	EndAngle    float64   `toml:"end_angle"`
	StrokeScale float64   `toml:"stroke_scale"`
	DotScale    float64   `toml:"dot_scale"`
	Color       string    `toml:"color"`
	Alpha       uint8     `toml:"alpha"`
}

// DefaultSpec returns the stock CardPro icon design: deep blue to teal
// gradient, two near-white cards rotated against each other, white
// wireless fan in the upper right.
func DefaultSpec() *Spec {
	return &Spec{
		Gradient: GradientSection{
			Top:    "#143c78",
			Bottom: "#288ca0",
		},
		Overlay: OverlaySection{
			RadiusScale: 1.2,
			Darken:      0.3,
			Lift:        30,
		},
		Card: CardSection{
			WidthScale:  0.55,
			Aspect:      0.6,
			CornerScale: 0.03,
			ShadowScale: 0.015,
		},
		Back: PlacementSection{
			X:            0.28,
			Y:            0.32,
			Angle:        -8,
			Body:         "#f0f0f5",
			Accent:       "#64a0c8",
			AccentScale:  0.15,
			ShadowAlpha:  60,
			ShadowFactor: 1,
		},
		Front: PlacementSection{
			X:            0.22,
			Y:            0.38,
			Angle:        5,
			Body:         "#ffffff",
			Accent:       "#1e64a0",
			AccentScale:  0.04,
			ShadowAlpha:  80,
			ShadowFactor: 2,
		},
		Bars: BarSection{
			X:         0.15,
			Y:         0.25,
			Width:     0.5,
			Height:    0.08,
			NameColor: "#3c3c46",
			Color:     "#b4b4be",
		},
		Indicator: IndicatorSection{
			X:           0.78,
			Y:           0.12,
			SizeScale:   0.12,
			Radii:       []float64{0.3, 0.5, 0.7},
			StartAngle:  300,
			EndAngle:    60,
			StrokeScale: 0.012,
			DotScale:    0.015,
			Color:       "#ffffff",
			Alpha:       180,
		},
	}
}

// LoadSpec loads an icon spec from a TOML file
func LoadSpec(path string) (*Spec, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("spec file not found: %s", path)
	}

	var spec Spec
	if _, err := toml.DecodeFile(path, &spec); err != nil {
		return nil, fmt.Errorf("error parsing spec file: %v", err)
	}

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid spec file %s: %v", path, err)
	}

	return &spec, nil
}

// Validate checks colors and proportions for values the compositor
// cannot render.
func (s *Spec) Validate() error {
	colors := map[string]string{
		"gradient.top":         s.Gradient.Top,
		"gradient.bottom":      s.Gradient.Bottom,
		"back_card.body":       s.Back.Body,
		"back_card.accent":     s.Back.Accent,
		"front_card.body":      s.Front.Body,
		"front_card.accent":    s.Front.Accent,
		"text_bars.name_color": s.Bars.NameColor,
		"text_bars.color":      s.Bars.Color,
		"indicator.color":      s.Indicator.Color,
	}
	for field, value := range colors {
		if !isHexColor(value) {
			return fmt.Errorf("%s: invalid hex color %q", field, value)
		}
	}

	scales := map[string]float64{
		"overlay.radius_scale": s.Overlay.RadiusScale,
		"card.width_scale":     s.Card.WidthScale,
		"card.aspect":          s.Card.Aspect,
	}
	for field, value := range scales {
		if value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", field, value)
		}
	}

	if s.Overlay.Darken < 0 || s.Overlay.Darken > 1 {
		return fmt.Errorf("overlay.darken must be within [0, 1], got %v", s.Overlay.Darken)
	}

	if len(s.Indicator.Radii) == 0 {
		return fmt.Errorf("indicator.radii must list at least one arc radius")
	}
	for _, r := range s.Indicator.Radii {
		if r <= 0 {
			return fmt.Errorf("indicator.radii entries must be positive, got %v", r)
		}
	}

	return nil
}

// isHexColor reports whether value is a #rgb or #rrggbb color.
// colorful.Hex alone is too lenient here: its Sscanf parse accepts
// odd-length strings like "#12345" without error.
func isHexColor(value string) bool {
	if len(value) != 4 && len(value) != 7 {
		return false
	}
	_, err := colorful.Hex(value)
	return err == nil
}
