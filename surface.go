package drawlib

// Surface is the 2D drawing target shapes are rendered onto. It follows the
// canvas model: a single current path built with BeginPath, MoveTo, LineTo,
// ClosePath and Ellipse, then painted by Fill and Stroke. Painting does not
// clear the path; BeginPath does.
//
// A Surface is not safe for concurrent use. Callers serialize renders that
// share one.
type Surface interface {
	// Size returns the dimensions of the surface in pixels
	Size() (width, height int)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	// Ellipse adds an elliptical arc centered on (x, y) with radii rx and ry,
	// rotated by rotation radians, from startAngle to endAngle.
	Ellipse(x, y, rx, ry, rotation, startAngle, endAngle float64)

	// SetFillStyle sets the style used by the next Fill.
	SetFillStyle(style string)

	// Fill paints the interior of the current path with the fill style.
	Fill() error

	// Stroke outlines the current path with the surface's stroke style.
	Stroke() error
}
