package drawlib

import (
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	mt "github.com/rustyoz/Mtransform"
)

// arcStep is the largest angle covered by one flattened arc segment.
const arcStep = math.Pi / 32

// Canvas is a Surface that rasterizes onto a gg context. Styles are hex
// strings as produced by HexStyle.
type Canvas struct {
	dc          *gg.Context
	fillStyle   string
	strokeStyle string
	lineWidth   float64
}

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// WithStrokeStyle sets the initial stroke style. The default is opaque black.
func WithStrokeStyle(style string) CanvasOption {
	return func(c *Canvas) {
		c.strokeStyle = style
	}
}

// WithLineWidth sets the stroke width. The default is 1.
func WithLineWidth(width float64) CanvasOption {
	return func(c *Canvas) {
		c.lineWidth = width
	}
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	c := &Canvas{
		dc:          gg.NewContext(width, height),
		fillStyle:   "#000000ff",
		strokeStyle: "#000000ff",
		lineWidth:   1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetStrokeStyle sets the style used by Stroke.
func (c *Canvas) SetStrokeStyle(style string) {
	c.strokeStyle = style
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the rendered pixels as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close releases the underlying context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

// Size implements Surface
func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// BeginPath implements Surface
func (c *Canvas) BeginPath() { c.dc.ClearPath() }

// MoveTo implements Surface
func (c *Canvas) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }

// LineTo implements Surface
func (c *Canvas) LineTo(x, y float64) { c.dc.LineTo(x, y) }

// ClosePath implements Surface
func (c *Canvas) ClosePath() { c.dc.ClosePath() }

// SetFillStyle implements Surface
func (c *Canvas) SetFillStyle(style string) { c.fillStyle = style }

// Fill implements Surface. The path is kept for a following Stroke.
func (c *Canvas) Fill() error {
	c.dc.SetFillBrush(gg.Solid(gg.Hex(c.fillStyle)))
	return c.dc.FillPreserve()
}

// Stroke implements Surface. The path is kept for a following Fill.
func (c *Canvas) Stroke() error {
	c.dc.SetStrokeBrush(gg.Solid(gg.Hex(c.strokeStyle)))
	c.dc.SetLineWidth(c.lineWidth)
	return c.dc.StrokePreserve()
}

// Ellipse implements Surface. Unrotated full ellipses use gg's cubic
// approximation; anything else is flattened into line segments. A sweep
// wider than a full turn draws the whole ellipse once; non-finite arguments
// draw nothing.
func (c *Canvas) Ellipse(x, y, rx, ry, rotation, startAngle, endAngle float64) {
	if !finite(x, y, rx, ry, rotation, startAngle, endAngle) {
		Logger().Warn("ellipse skipped: non-finite argument",
			"x", x, "y", y, "rx", rx, "ry", ry, "rotation", rotation, "start", startAngle, "end", endAngle)
		return
	}

	sweep := endAngle - startAngle
	if sweep < 0 {
		sweep = math.Mod(sweep, 2*math.Pi)
		if sweep < 0 {
			sweep += 2 * math.Pi
		}
	}
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	}

	if rotation == 0 && sweep >= 2*math.Pi {
		c.dc.DrawEllipse(x, y, rx, ry)
		return
	}

	t := ellipseTransform(x, y, rx, ry, rotation)
	n := int(math.Ceil(sweep / arcStep))
	if n < 1 {
		n = 1
	}

	for i := 0; i <= n; i++ {
		a := startAngle + sweep*float64(i)/float64(n)
		px, py := t.Apply(math.Cos(a), math.Sin(a))
		if i == 0 {
			if _, _, ok := c.dc.GetCurrentPoint(); ok {
				c.dc.LineTo(px, py)
			} else {
				c.dc.MoveTo(px, py)
			}
			continue
		}
		c.dc.LineTo(px, py)
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ellipseTransform maps the unit circle onto an ellipse: scale by the radii,
// rotate, then move to the center.
func ellipseTransform(x, y, rx, ry, rotation float64) mt.Transform {
	sin, cos := math.Sincos(rotation)

	translate := mt.Transform{
		{1, 0, x},
		{0, 1, y},
		{0, 0, 1},
	}
	rotate := mt.Transform{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
	scale := mt.Transform{
		{rx, 0, 0},
		{0, ry, 0},
		{0, 0, 1},
	}
	return mt.MultiplyTransforms(mt.MultiplyTransforms(translate, rotate), scale)
}
