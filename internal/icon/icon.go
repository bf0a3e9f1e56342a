package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/cardpro/iconsmith/internal/config"
)

// Renderer composites the CardPro icon from a spec. It performs no
// I/O; Render builds the whole image in memory.
type Renderer struct {
	spec *config.Spec
	pal  palette
}

// palette holds the spec's colors parsed once up front.
type palette struct {
	gradTop     colorful.Color
	gradBottom  colorful.Color
	backBody    color.Color
	backAccent  color.Color
	frontBody   color.Color
	frontAccent color.Color
	nameBar     color.Color
	textBar     color.Color
	wave        color.Color
}

// NewRenderer validates the spec and prepares a renderer for it.
func NewRenderer(spec *config.Spec) (*Renderer, error) {
	if spec == nil {
		spec = config.DefaultSpec()
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid icon spec: %v", err)
	}

	top, _ := colorful.Hex(spec.Gradient.Top)
	bottom, _ := colorful.Hex(spec.Gradient.Bottom)

	pal := palette{
		gradTop:     top,
		gradBottom:  bottom,
		backBody:    opaque(spec.Back.Body),
		backAccent:  opaque(spec.Back.Accent),
		frontBody:   opaque(spec.Front.Body),
		frontAccent: opaque(spec.Front.Accent),
		nameBar:     opaque(spec.Bars.NameColor),
		textBar:     opaque(spec.Bars.Color),
		wave:        withAlpha(spec.Indicator.Color, spec.Indicator.Alpha),
	}

	return &Renderer{spec: spec, pal: pal}, nil
}

// Render produces the fully composited square icon at the requested
// pixel size. The result is deterministic for a given spec and size,
// and every pixel of it is opaque.
func (r *Renderer) Render(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size must be positive, got %d", size)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r.drawGradient(img, size)
	r.applyOverlay(img, size)

	geo := newGeometry(size, r.spec.Card)
	center := float64(size) / 2

	back := r.cardLayer(size, geo, r.spec.Back, r.pal.backBody, r.pal.backAccent, false)
	back = rotateAbout(back, r.spec.Back.Angle, center, center)
	draw.Draw(img, img.Bounds(), back, image.Point{}, draw.Over)

	front := r.cardLayer(size, geo, r.spec.Front, r.pal.frontBody, r.pal.frontAccent, true)
	front = rotateAbout(front, r.spec.Front.Angle, center, center)
	draw.Draw(img, img.Bounds(), front, image.Point{}, draw.Over)

	r.drawIndicator(img, size)

	return img, nil
}

// geometry holds the pixel measures both cards share at one render
// size. Values truncate to whole pixels the way the layout was tuned.
type geometry struct {
	cardW  int
	cardH  int
	corner int
	shadow int
}

func newGeometry(size int, card config.CardSection) geometry {
	w := int(float64(size) * card.WidthScale)
	return geometry{
		cardW:  w,
		cardH:  int(float64(w) * card.Aspect),
		corner: int(float64(size) * card.CornerScale),
		shadow: int(float64(size) * card.ShadowScale),
	}
}

// drawGradient fills img with the vertical background gradient,
// blending linearly in RGB from the top color to the bottom color.
func (r *Renderer) drawGradient(img *image.RGBA, size int) {
	for y := 0; y < size; y++ {
		ratio := float64(y) / float64(size)
		cr, cg, cb := r.pal.gradTop.BlendRgb(r.pal.gradBottom, ratio).RGB255()
		row := img.Pix[y*img.Stride : y*img.Stride+size*4]
		for x := 0; x < size; x++ {
			row[x*4+0] = cr
			row[x*4+1] = cg
			row[x*4+2] = cb
			row[x*4+3] = 255
		}
	}
}

// applyOverlay lightens pixels toward the canvas center, decaying
// linearly out to RadiusScale of the half-size. Pixels beyond that
// radius keep their gradient color. This is the per-pixel hot path.
func (r *Renderer) applyOverlay(img *image.RGBA, size int) {
	ov := r.spec.Overlay
	cx := float64(size / 2)
	cy := float64(size / 2)
	maxDist := float64(size/2) * ov.RadiusScale
	if maxDist <= 0 {
		return
	}

	for y := 0; y < size; y++ {
		dy := float64(y) - cy
		row := img.Pix[y*img.Stride : y*img.Stride+size*4]
		for x := 0; x < size; x++ {
			dist := math.Hypot(float64(x)-cx, dy)
			if dist >= maxDist {
				continue
			}
			falloff := 1 - dist/maxDist
			factor := 1 - (dist/maxDist)*ov.Darken
			lift := ov.Lift * falloff
			for c := 0; c < 3; c++ {
				v := float64(row[x*4+c])*factor + lift
				if v > 255 {
					v = 255
				}
				row[x*4+c] = uint8(v)
			}
			row[x*4+3] = 255
		}
	}
}

// cardLayer draws one card (shadow, body, accent, and for the front
// card the placeholder text bars) onto a fresh transparent canvas of
// the full icon size, ready to be rotated and composited.
func (r *Renderer) cardLayer(size int, geo geometry, place config.PlacementSection, body, accent color.Color, withBars bool) image.Image {
	dc := gg.NewContext(size, size)

	x := float64(int(float64(size) * place.X))
	y := float64(int(float64(size) * place.Y))
	w := float64(geo.cardW)
	h := float64(geo.cardH)
	corner := float64(geo.corner)
	off := float64(int(float64(geo.shadow) * place.ShadowFactor))

	// Drop shadow
	dc.SetRGBA255(0, 0, 0, int(place.ShadowAlpha))
	dc.DrawRoundedRectangle(x+off, y+off, w, h, corner)
	dc.Fill()

	// Card body
	dc.SetColor(body)
	dc.DrawRoundedRectangle(x, y, w, h, corner)
	dc.Fill()

	dc.SetColor(accent)
	if withBars {
		// Left accent bar, right edge squared off
		barW := float64(int(w * place.AccentScale))
		dc.DrawRoundedRectangle(x, y, barW+corner, h, corner)
		dc.Fill()
		dc.DrawRectangle(x+barW, y, corner, h)
		dc.Fill()

		r.drawBars(dc, x, y, w, h)
	} else {
		// Top accent strip, bottom corners squared off
		accH := float64(int(h * place.AccentScale))
		dc.DrawRoundedRectangle(x, y, w, accH, corner)
		dc.Fill()
		dc.DrawRectangle(x, y+accH-corner, w, corner)
		dc.Fill()
	}

	return dc.Image()
}

// drawBars lays out the placeholder content: a thick name bar, then a
// title bar and two contact bars, each shorter and thinner, at the
// stock card's row spacing.
func (r *Renderer) drawBars(dc *gg.Context, cardX, cardY, cardW, cardH float64) {
	bars := r.spec.Bars
	lineX := cardX + float64(int(cardW*bars.X))
	lineY := cardY + float64(int(cardH*bars.Y))
	lineW := float64(int(cardW * bars.Width))
	lineH := float64(int(cardH * bars.Height))

	dc.SetColor(r.pal.nameBar)
	dc.DrawRoundedRectangle(lineX, lineY, lineW, lineH, lineH/2)
	dc.Fill()

	dc.SetColor(r.pal.textBar)
	lineY += float64(int(cardH * 0.18))
	dc.DrawRoundedRectangle(lineX, lineY, lineW*0.7, lineH*0.6, lineH/3)
	dc.Fill()

	lineY += float64(int(cardH * 0.22))
	dc.DrawRoundedRectangle(lineX, lineY, lineW*0.6, lineH*0.5, lineH/4)
	dc.Fill()

	lineY += float64(int(cardH * 0.12))
	dc.DrawRoundedRectangle(lineX, lineY, lineW*0.75, lineH*0.5, lineH/4)
	dc.Fill()
}

// drawIndicator strokes the wireless-fan glyph directly onto the
// composited image: concentric arcs opening down-right, plus a filled
// dot at their center.
func (r *Renderer) drawIndicator(img *image.RGBA, size int) {
	ind := r.spec.Indicator
	box := float64(size) * ind.SizeScale
	cx := float64(size) * ind.X
	cy := float64(size)*ind.Y + box/2

	start := gg.Radians(ind.StartAngle)
	end := gg.Radians(ind.EndAngle)
	if end <= start {
		end += 2 * math.Pi
	}

	dc := gg.NewContextForRGBA(img)
	dc.SetColor(r.pal.wave)
	dc.SetLineWidth(float64(size) * ind.StrokeScale)
	for _, rf := range ind.Radii {
		dc.DrawArc(cx, cy, box*rf, start, end)
		dc.Stroke()
	}

	dc.DrawCircle(cx, cy, float64(size)*ind.DotScale)
	dc.Fill()
}

// rotateAbout rotates src by angle degrees (counterclockwise on
// screen) around (cx, cy) with bicubic resampling, preserving the
// semi-transparent edge pixels for later compositing.
func rotateAbout(src image.Image, angle, cx, cy float64) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	if angle == 0 {
		draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)
		return dst
	}

	sin, cos := math.Sincos(gg.Radians(angle))
	// Screen coordinates have y pointing down, so a counterclockwise
	// rotation negates the usual sign of sin.
	m := f64.Aff3{
		cos, sin, cx - cos*cx - sin*cy,
		-sin, cos, cy + sin*cx - cos*cy,
	}
	xdraw.CatmullRom.Transform(dst, m, src, src.Bounds(), xdraw.Src, nil)
	return dst
}

func opaque(hex string) color.Color {
	c, _ := colorful.Hex(hex)
	cr, cg, cb := c.RGB255()
	return color.NRGBA{R: cr, G: cg, B: cb, A: 255}
}

func withAlpha(hex string, alpha uint8) color.Color {
	c, _ := colorful.Hex(hex)
	cr, cg, cb := c.RGB255()
	return color.NRGBA{R: cr, G: cg, B: cb, A: alpha}
}
