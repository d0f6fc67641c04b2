package drawlib

import (
	"fmt"
	"strconv"

	gl "github.com/rustyoz/genericlexer"
)

// ParsePoints reads a point list in the format of the SVG "points"
// attribute: coordinates separated by whitespace and/or commas, taken two at
// a time, e.g. "0,0 10,0 10 10". The list must hold at least one point.
func ParsePoints(s string) ([]Point, error) {
	l, items := gl.Lex("points", s)
	// the lexer goroutine blocks on its channel until it reaches the end
	defer func() {
		for range items {
		}
	}()

	var points []Point
	for {
		l.ConsumeWhiteSpace()
		i := l.PeekItem()
		switch i.Type {
		case gl.ItemEOS:
			if len(points) == 0 {
				return nil, fmt.Errorf("%w: no points in %q", ErrInvalidPoints, s)
			}
			return points, nil
		case gl.ItemNumber:
			p, err := parsePoint(l)
			if err != nil {
				return nil, fmt.Errorf("%w: point %d: %s", ErrInvalidPoints, len(points), err)
			}
			points = append(points, p)
			l.ConsumeWhiteSpace()
			l.ConsumeComma()
		default:
			return nil, fmt.Errorf("%w: unexpected %q at point %d", ErrInvalidPoints, i.Value, len(points))
		}
	}
}

// ParsePolygon builds a polygon from a point list. See ParsePoints.
func ParsePolygon(s string) (*Polygon, error) {
	points, err := ParsePoints(s)
	if err != nil {
		return nil, err
	}
	return NewPolygon(points...), nil
}

func parsePoint(l *gl.Lexer) (Point, error) {
	x, err := parseNumber(l.NextItem())
	if err != nil {
		return Point{}, err
	}

	l.ConsumeWhiteSpace()
	l.ConsumeComma()
	l.ConsumeWhiteSpace()

	y, err := parseNumber(l.NextItem())
	if err != nil {
		return Point{}, fmt.Errorf("missing y coordinate: %s", err)
	}
	return Point{X: x, Y: y}, nil
}

func parseNumber(i gl.Item) (float64, error) {
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("expected a number, got %q", i.Value)
	}
	return strconv.ParseFloat(i.Value, 64)
}
