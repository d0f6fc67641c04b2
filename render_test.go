package drawlib

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type RenderTest struct {
	Description string
	Shape       Shape
	Kinds       []InstructionType
	XCoords     []float64
	YCoords     []float64
}

var renderTests = []RenderTest{
	{
		"square",
		&Square{Color: red, Side: 10},
		[]InstructionType{BeginInstruction, MoveInstruction, LineInstruction, LineInstruction, LineInstruction, CloseInstruction, FillStyleInstruction, FillInstruction},
		[]float64{0, -5, 5, 5, -5},
		[]float64{0, -5, -5, 5, 5},
	},
	{
		"offset square",
		&Square{Color: red, Side: 4, XCenter: 10, YCenter: 20},
		[]InstructionType{BeginInstruction, MoveInstruction, LineInstruction, LineInstruction, LineInstruction, CloseInstruction, FillStyleInstruction, FillInstruction},
		[]float64{0, 8, 12, 12, 8},
		[]float64{0, 18, 18, 22, 22},
	},
	{
		"circle",
		&Circle{Color: red, Radius: 5},
		[]InstructionType{BeginInstruction, EllipseInstruction, StrokeInstruction, FillStyleInstruction, FillInstruction, CloseInstruction},
		[]float64{0, 0},
		[]float64{0, 0},
	},
	{
		"polygon",
		NewPolygon(Point{1, 2}, Point{3, 4}, Point{5, 0}),
		[]InstructionType{BeginInstruction, MoveInstruction, LineInstruction, LineInstruction, CloseInstruction, StrokeInstruction},
		[]float64{0, 1, 3, 5},
		[]float64{0, 2, 4, 0},
	},
	{
		"single point polygon",
		NewPolygon(Point{7, 7}),
		[]InstructionType{BeginInstruction, MoveInstruction, CloseInstruction, StrokeInstruction},
		[]float64{0, 7},
		[]float64{0, 7},
	},
	{
		"group paints in order",
		NewGroup(
			NewPolygon(Point{1, 1}),
			&Square{Color: red, Side: 2},
		),
		[]InstructionType{
			BeginInstruction, MoveInstruction, CloseInstruction, StrokeInstruction,
			BeginInstruction, MoveInstruction, LineInstruction, LineInstruction, LineInstruction, CloseInstruction, FillStyleInstruction, FillInstruction,
		},
		[]float64{0, 1, 0, 0, 0, -1, 1, 1, -1},
		[]float64{0, 1, 0, 0, 0, -1, -1, 1, 1},
	},
	{
		"empty group",
		NewGroup(),
		[]InstructionType{},
		nil,
		nil,
	},
}

func TestRenderInstructions(t *testing.T) {
	for _, test := range renderTests {
		rec := NewRecorder(0, 0)
		require.NoError(t, Render(test.Shape, rec), test.Description)

		strux := rec.Instructions()
		if len(strux) != len(test.Kinds) {
			t.Fatalf("expected %d instructions for test %s, but received %d", len(test.Kinds), test.Description, len(strux))
		}

		for i, kind := range test.Kinds {
			if strux[i].Kind != kind {
				t.Fatalf("expected instruction %d for test %s to be %s, but was %s", i, test.Description, kind, strux[i].Kind)
			}
		}

		for i, x := range test.XCoords {
			if strux[i].M == nil {
				continue
			}
			if strux[i].M[0] != x {
				t.Fatalf("expected X coordinate %d for test %s to be %f, but was %f", i, test.Description, x, strux[i].M[0])
			}
		}

		for i, y := range test.YCoords {
			if strux[i].M == nil {
				continue
			}
			if strux[i].M[1] != y {
				t.Fatalf("expected Y coordinate %d for test %s to be %f, but was %f", i, test.Description, y, strux[i].M[1])
			}
		}
	}
}

func TestRenderCircleArc(t *testing.T) {
	rec := NewRecorder(0, 0)
	require.NoError(t, Render(NewCircle(red, 5), rec))

	di := rec.Instructions()[1]
	require.Equal(t, EllipseInstruction, di.Kind)
	require.Equal(t, &Tuple{0, 0}, di.M)
	require.Equal(t, &Arc{RX: 5, RY: 5, Rotation: 0, StartAngle: 0, EndAngle: 2 * math.Pi}, di.Arc)
	require.Equal(t, "#ff0000ff", rec.Instructions()[3].Style)
}

func TestRenderFillStyle(t *testing.T) {
	r := NewRenderer(WithStyle(func(c Color) string {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		if n.R == 255 {
			return "red"
		}
		return "other"
	}))

	rec := NewRecorder(0, 0)
	require.NoError(t, r.Render(NewGroup(NewSquare(red, 1), NewCircle(color.Black, 1)), rec))

	var styles []string
	for _, di := range rec.Instructions() {
		if di.Kind == FillStyleInstruction {
			styles = append(styles, di.Style)
		}
	}
	require.Equal(t, []string{"red", "other"}, styles)
}

func TestRenderPolygonOutline(t *testing.T) {
	r := NewRenderer(WithPolygonMode(PolygonOutline))
	rec := NewRecorder(0, 0)
	require.NoError(t, r.Render(NewPolygon(Point{0, 0}, Point{1, 0}), rec))
	require.Equal(t, []InstructionType{BeginInstruction, MoveInstruction, LineInstruction, CloseInstruction}, rec.Kinds())
}

func TestRenderEmptyPolygon(t *testing.T) {
	rec := NewRecorder(0, 0)
	err := Render(NewGroup(NewPolygon()), rec)
	require.ErrorIs(t, err, ErrEmptyPolygon)
	require.Empty(t, rec.Instructions())
}

func TestRenderDoesNotMutate(t *testing.T) {
	g, sq, c, p := sampleTree()
	before, err := Clone(g)
	require.NoError(t, err)

	require.NoError(t, Render(g, NewRecorder(10, 10)))

	require.Equal(t, before, Shape(g))
	require.Equal(t, 1.0, sq.XCenter)
	require.Equal(t, -5.0, c.XCenter)
	require.Equal(t, Point{10, 0}, p.Points[1])
}

func TestRenderCentered(t *testing.T) {
	sq := NewSquare(red, 10)
	rec := NewRecorder(100, 80)

	require.NoError(t, RenderCentered(sq, rec))
	require.Equal(t, 50.0, sq.XCenter)
	require.Equal(t, 40.0, sq.YCenter)

	first := rec.Instructions()[1]
	require.Equal(t, MoveInstruction, first.Kind)
	require.Equal(t, &Tuple{45, 35}, first.M)
}

func TestRenderCenteredTwiceMovesTwice(t *testing.T) {
	c := NewCircle(red, 1)
	rec := NewRecorder(100, 80)

	require.NoError(t, RenderCentered(c, rec))
	require.NoError(t, RenderCentered(c, rec))
	require.Equal(t, 100.0, c.XCenter)
	require.Equal(t, 80.0, c.YCenter)
}

func TestRenderCenteredClone(t *testing.T) {
	c := NewCircle(red, 1)
	clone, err := Clone(c)
	require.NoError(t, err)

	require.NoError(t, RenderCentered(clone, NewRecorder(100, 80)))
	require.Equal(t, 0.0, c.XCenter)
	require.Equal(t, 50.0, clone.(*Circle).XCenter)
}

func TestRenderUnhandledVariant(t *testing.T) {
	rec := NewRecorder(10, 10)

	err := Render(NewGroup(NewSquare(red, 1), &hexagon{}), rec)
	require.True(t, errors.Is(err, ErrUnhandledVariant))

	var uv *UnhandledVariantError
	require.ErrorAs(t, err, &uv)
	require.Equal(t, "render", uv.Op)

	err = RenderCentered(&hexagon{}, rec)
	require.ErrorIs(t, err, ErrUnhandledVariant)
}

var errBrokenSurface = errors.New("broken surface")

// failingSurface records like a Recorder but fails every paint.
type failingSurface struct {
	*Recorder
}

func (failingSurface) Fill() error   { return errBrokenSurface }
func (failingSurface) Stroke() error { return errBrokenSurface }

func TestRenderPaintError(t *testing.T) {
	surf := failingSurface{NewRecorder(10, 10)}

	err := Render(NewSquare(red, 1), surf)
	require.ErrorIs(t, err, errBrokenSurface)
	require.Contains(t, err.Error(), "fill Square")

	err = Render(NewCircle(red, 1), surf)
	require.ErrorIs(t, err, errBrokenSurface)
	require.Contains(t, err.Error(), "stroke Circle")
}

func TestRecorderReplay(t *testing.T) {
	src := NewRecorder(0, 0)
	require.NoError(t, Render(NewGroup(NewCircle(red, 2), NewSquare(red, 2), NewPolygon(Point{1, 1})), src))

	dst := NewRecorder(0, 0)
	require.NoError(t, src.Replay(dst))
	require.Equal(t, src.Instructions(), dst.Instructions())

	src.Reset()
	require.Empty(t, src.Instructions())
}

func TestRecorderReplayUnknownInstruction(t *testing.T) {
	src := NewRecorder(0, 0)
	src.BeginPath()
	src.add(&DrawingInstruction{Kind: InstructionType(42)})
	src.MoveTo(1, 1)

	dst := NewRecorder(0, 0)
	err := src.Replay(dst)
	require.ErrorIs(t, err, ErrUnknownInstruction)
	require.Equal(t, []InstructionType{BeginInstruction}, dst.Kinds())
}
