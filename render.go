package drawlib

import (
	"fmt"
	"math"
)

// Renderer paints shapes onto a Surface. The zero value is not usable; use
// NewRenderer.
type Renderer struct {
	style       StyleFunc
	polygonMode PolygonMode
}

// NewRenderer creates a renderer. Without options, colors are rendered with
// HexStyle and polygons are stroked.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		style:       HexStyle,
		polygonMode: PolygonStroke,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRenderer = NewRenderer()

// RenderCentered renders s with the default renderer. See
// (*Renderer).RenderCentered.
func RenderCentered(s Shape, surf Surface) error {
	return defaultRenderer.RenderCentered(s, surf)
}

// Render renders s with the default renderer. See (*Renderer).Render.
func Render(s Shape, surf Surface) error {
	return defaultRenderer.Render(s, surf)
}

// RenderCentered moves s by half the size of surf, so that the origin lands
// on the center of the surface, then renders it.
//
// The move is applied to s itself: rendering the same shape twice moves it
// twice. Render a Clone to keep the original in place.
func (r *Renderer) RenderCentered(s Shape, surf Surface) error {
	width, height := surf.Size()
	dx, dy := float64(width)/2, float64(height)/2

	Logger().Debug("render centered", "kind", Kind(s), "dx", dx, "dy", dy)

	if _, err := Move(dx, dy, s); err != nil {
		return err
	}
	return r.Render(s, surf)
}

// Render walks s and paints it onto surf. Group children are painted in
// order. s is only read.
func (r *Renderer) Render(s Shape, surf Surface) error {
	if isNilVariant(s) {
		return unhandled("render", s)
	}

	switch v := s.(type) {
	case *Circle:
		return r.renderCircle(v, surf)
	case *Square:
		return r.renderSquare(v, surf)
	case *Polygon:
		return r.renderPolygon(v, surf)
	case *Group:
		for _, child := range v.Shapes {
			if err := r.Render(child, surf); err != nil {
				return err
			}
		}
		return nil
	default:
		return unhandled("render", s)
	}
}

func (r *Renderer) renderCircle(c *Circle, surf Surface) error {
	surf.BeginPath()
	surf.Ellipse(c.XCenter, c.YCenter, c.Radius, c.Radius, 0, 0, 2*math.Pi)
	if err := surf.Stroke(); err != nil {
		return paintError("Circle", "stroke", err)
	}
	surf.SetFillStyle(r.style(c.Color))
	if err := surf.Fill(); err != nil {
		return paintError("Circle", "fill", err)
	}
	surf.ClosePath()
	return nil
}

func (r *Renderer) renderSquare(sq *Square, surf Surface) error {
	half := sq.Side / 2

	surf.BeginPath()
	surf.MoveTo(sq.XCenter-half, sq.YCenter-half)
	surf.LineTo(sq.XCenter+half, sq.YCenter-half)
	surf.LineTo(sq.XCenter+half, sq.YCenter+half)
	surf.LineTo(sq.XCenter-half, sq.YCenter+half)
	surf.ClosePath()
	surf.SetFillStyle(r.style(sq.Color))
	if err := surf.Fill(); err != nil {
		return paintError("Square", "fill", err)
	}
	return nil
}

func (r *Renderer) renderPolygon(p *Polygon, surf Surface) error {
	if len(p.Points) == 0 {
		Logger().Warn("polygon has no points")
		return ErrEmptyPolygon
	}

	surf.BeginPath()
	surf.MoveTo(p.Points[0].X, p.Points[0].Y)
	for _, pt := range p.Points[1:] {
		surf.LineTo(pt.X, pt.Y)
	}
	surf.ClosePath()

	if r.polygonMode == PolygonOutline {
		return nil
	}
	if err := surf.Stroke(); err != nil {
		return paintError("Polygon", "stroke", err)
	}
	return nil
}

func paintError(kind, op string, err error) error {
	Logger().Warn("paint failed", "kind", kind, "op", op, "err", err)
	return fmt.Errorf("drawlib: %s %s: %w", op, kind, err)
}
