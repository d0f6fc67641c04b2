package drawlib

import (
	"fmt"
	"image/color"
)

// Color is the paint of a shape. drawlib never looks inside it; a StyleFunc
// turns it into something a Surface understands.
type Color = color.Color

// StyleFunc converts a Color into a surface style descriptor.
type StyleFunc func(Color) string

// HexStyle renders c as a non-premultiplied "#rrggbbaa" string. A nil color
// renders fully transparent.
func HexStyle(c Color) string {
	if c == nil {
		return "#00000000"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
