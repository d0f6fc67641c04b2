package drawlib

import "reflect"

// Shape is a drawable primitive or a composite of them. The set of variants
// is closed: *Square, *Circle, *Group and *Polygon.
type Shape interface {
	isShape()
}

// Point is an X,Y coordinate
type Point struct {
	X, Y float64
}

// Square is a filled square centered on (XCenter, YCenter)
type Square struct {
	Color   Color
	Side    float64
	XCenter float64
	YCenter float64
}

// Circle is a filled and stroked circle centered on (XCenter, YCenter)
type Circle struct {
	Color   Color
	Radius  float64
	XCenter float64
	YCenter float64
}

// Group holds shapes painted in order, later shapes over earlier ones.
type Group struct {
	Shapes []Shape
}

// Polygon is a closed path through Points. It has no separate center: its
// position is the position of its points.
type Polygon struct {
	Points []Point
}

func (*Square) isShape()  {}
func (*Circle) isShape()  {}
func (*Group) isShape()   {}
func (*Polygon) isShape() {}

// NewSquare returns a square of the given side centered at the origin.
func NewSquare(c Color, side float64) *Square {
	return &Square{Color: c, Side: side}
}

// NewCircle returns a circle of the given radius centered at the origin.
func NewCircle(c Color, radius float64) *Circle {
	return &Circle{Color: c, Radius: radius}
}

// NewGroup wraps shapes without copying them. Passing an existing slice with
// NewGroup(s...) shares its backing array with the group.
func NewGroup(shapes ...Shape) *Group {
	return &Group{Shapes: shapes}
}

// NewPolygon returns a polygon through points, in order.
func NewPolygon(points ...Point) *Polygon {
	return &Polygon{Points: points}
}

// Kind names the variant of s
func Kind(s Shape) string {
	switch s.(type) {
	case *Square:
		return "Square"
	case *Circle:
		return "Circle"
	case *Group:
		return "Group"
	case *Polygon:
		return "Polygon"
	case nil:
		return "nil"
	default:
		return reflect.TypeOf(s).String()
	}
}

// Clone returns a deep copy of s. Rendering a centered clone leaves the
// original where it was.
func Clone(s Shape) (Shape, error) {
	if isNilVariant(s) {
		return nil, unhandled("clone", s)
	}

	switch v := s.(type) {
	case *Square:
		c := *v
		return &c, nil
	case *Circle:
		c := *v
		return &c, nil
	case *Polygon:
		points := make([]Point, len(v.Points))
		copy(points, v.Points)
		return &Polygon{Points: points}, nil
	case *Group:
		g := &Group{Shapes: make([]Shape, 0, len(v.Shapes))}
		for _, child := range v.Shapes {
			c, err := Clone(child)
			if err != nil {
				return nil, err
			}
			g.Shapes = append(g.Shapes, c)
		}
		return g, nil
	default:
		return nil, unhandled("clone", s)
	}
}

// isNilVariant reports a nil interface or a nil pointer of a known variant.
func isNilVariant(s Shape) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *Square:
		return v == nil
	case *Circle:
		return v == nil
	case *Group:
		return v == nil
	case *Polygon:
		return v == nil
	}
	return false
}
