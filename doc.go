// Package drawlib describes vector shapes and renders them onto 2D drawing
// surfaces.
//
// A shape is one of *Square, *Circle, *Polygon or *Group. Shapes are built
// with the New* constructors, positioned with Move and painted with Render
// or RenderCentered:
//
//	red := color.NRGBA{R: 255, A: 255}
//	scene := drawlib.NewGroup(
//		drawlib.NewSquare(red, 40),
//		drawlib.NewCircle(color.Black, 10),
//	)
//	canvas := drawlib.NewCanvas(200, 200)
//	defer canvas.Close()
//	if err := drawlib.RenderCentered(scene, canvas); err != nil {
//		return err
//	}
//
// Shapes are mutable records. Move changes them in place and RenderCentered
// moves the shape it is given, so centering the same shape twice shifts it
// twice. Use Clone to keep an original untouched.
//
// Nothing in this package is safe for concurrent use.
package drawlib
