package drawlib

// PolygonMode selects how a polygon path is painted.
type PolygonMode int

const (
	// PolygonStroke outlines polygons with the surface's stroke style.
	PolygonStroke PolygonMode = iota

	// PolygonOutline builds the polygon path and leaves it unpainted.
	PolygonOutline
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyle sets the function turning shape colors into fill styles.
// A nil StyleFunc keeps HexStyle.
func WithStyle(style StyleFunc) Option {
	return func(r *Renderer) {
		if style != nil {
			r.style = style
		}
	}
}

// WithPolygonMode sets how polygons are painted.
func WithPolygonMode(mode PolygonMode) Option {
	return func(r *Renderer) {
		r.polygonMode = mode
	}
}
