package drawlib

// Move adds dx and dy to the position of s, in place, and returns s. Squares
// and circles move their center, polygons every point, and groups move each
// of their children once.
//
// A shape outside the known variants, including a nil one anywhere in the
// tree, stops the traversal with an *UnhandledVariantError. Children visited
// before it stay moved.
func Move(dx, dy float64, s Shape) (Shape, error) {
	if isNilVariant(s) {
		return s, unhandled("move", s)
	}

	switch v := s.(type) {
	case *Square:
		v.XCenter = translate(v.XCenter, dx)
		v.YCenter = translate(v.YCenter, dy)
	case *Circle:
		v.XCenter = translate(v.XCenter, dx)
		v.YCenter = translate(v.YCenter, dy)
	case *Polygon:
		for i := range v.Points {
			v.Points[i].X = translate(v.Points[i].X, dx)
			v.Points[i].Y = translate(v.Points[i].Y, dy)
		}
	case *Group:
		for _, child := range v.Shapes {
			if _, err := Move(dx, dy, child); err != nil {
				return s, err
			}
		}
	default:
		return s, unhandled("move", s)
	}

	return s, nil
}

// translate keeps v bit-identical for a zero offset; -0 + 0 would yield +0.
func translate(v, d float64) float64 {
	if d == 0 {
		return v
	}
	return v + d
}
