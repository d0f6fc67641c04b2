package drawlib

import "fmt"

// InstructionType tells which Surface call a DrawingInstruction stands for
type InstructionType int

// These are the instruction types a Recorder emits
const (
	BeginInstruction InstructionType = iota
	MoveInstruction
	LineInstruction
	CloseInstruction
	EllipseInstruction
	FillStyleInstruction
	FillInstruction
	StrokeInstruction
)

func (k InstructionType) String() string {
	switch k {
	case BeginInstruction:
		return "begin"
	case MoveInstruction:
		return "move"
	case LineInstruction:
		return "line"
	case CloseInstruction:
		return "close"
	case EllipseInstruction:
		return "ellipse"
	case FillStyleInstruction:
		return "fill-style"
	case FillInstruction:
		return "fill"
	case StrokeInstruction:
		return "stroke"
	}
	return "unknown"
}

// Tuple is an X,Y coordinate
type Tuple [2]float64

// Arc holds the parameters of an ellipse instruction
type Arc struct {
	RX, RY     float64
	Rotation   float64
	StartAngle float64
	EndAngle   float64
}

// DrawingInstruction is one recorded Surface call. M is set for move, line
// and ellipse instructions (the ellipse center); Arc only for ellipses; Style
// only for fill style instructions.
type DrawingInstruction struct {
	Kind  InstructionType
	M     *Tuple
	Arc   *Arc
	Style string
}

// Recorder is a Surface that records the calls made on it instead of
// painting. The recorded instructions can be inspected or replayed onto
// another Surface.
type Recorder struct {
	width, height int
	instructions  []*DrawingInstruction
}

// NewRecorder creates a Recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Instructions returns the instructions recorded so far, in call order.
func (r *Recorder) Instructions() []*DrawingInstruction {
	return r.instructions
}

// Kinds returns the kind of each recorded instruction.
func (r *Recorder) Kinds() []InstructionType {
	kinds := make([]InstructionType, len(r.instructions))
	for i, di := range r.instructions {
		kinds[i] = di.Kind
	}
	return kinds
}

// Reset drops the recorded instructions.
func (r *Recorder) Reset() {
	r.instructions = nil
}

// Replay issues the recorded instructions on surf, in order. It stops at
// the first instruction of an unknown kind.
func (r *Recorder) Replay(surf Surface) error {
	for _, di := range r.instructions {
		switch di.Kind {
		case BeginInstruction:
			surf.BeginPath()
		case MoveInstruction:
			surf.MoveTo(di.M[0], di.M[1])
		case LineInstruction:
			surf.LineTo(di.M[0], di.M[1])
		case CloseInstruction:
			surf.ClosePath()
		case EllipseInstruction:
			surf.Ellipse(di.M[0], di.M[1], di.Arc.RX, di.Arc.RY, di.Arc.Rotation, di.Arc.StartAngle, di.Arc.EndAngle)
		case FillStyleInstruction:
			surf.SetFillStyle(di.Style)
		case FillInstruction:
			if err := surf.Fill(); err != nil {
				return err
			}
		case StrokeInstruction:
			if err := surf.Stroke(); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %d", ErrUnknownInstruction, int(di.Kind))
		}
	}
	return nil
}

func (r *Recorder) add(di *DrawingInstruction) {
	r.instructions = append(r.instructions, di)
}

// Size implements Surface
func (r *Recorder) Size() (int, int) { return r.width, r.height }

// BeginPath implements Surface
func (r *Recorder) BeginPath() { r.add(&DrawingInstruction{Kind: BeginInstruction}) }

// MoveTo implements Surface
func (r *Recorder) MoveTo(x, y float64) {
	r.add(&DrawingInstruction{Kind: MoveInstruction, M: &Tuple{x, y}})
}

// LineTo implements Surface
func (r *Recorder) LineTo(x, y float64) {
	r.add(&DrawingInstruction{Kind: LineInstruction, M: &Tuple{x, y}})
}

// ClosePath implements Surface
func (r *Recorder) ClosePath() { r.add(&DrawingInstruction{Kind: CloseInstruction}) }

// Ellipse implements Surface
func (r *Recorder) Ellipse(x, y, rx, ry, rotation, startAngle, endAngle float64) {
	r.add(&DrawingInstruction{
		Kind: EllipseInstruction,
		M:    &Tuple{x, y},
		Arc: &Arc{
			RX:         rx,
			RY:         ry,
			Rotation:   rotation,
			StartAngle: startAngle,
			EndAngle:   endAngle,
		},
	})
}

// SetFillStyle implements Surface
func (r *Recorder) SetFillStyle(style string) {
	r.add(&DrawingInstruction{Kind: FillStyleInstruction, Style: style})
}

// Fill implements Surface
func (r *Recorder) Fill() error {
	r.add(&DrawingInstruction{Kind: FillInstruction})
	return nil
}

// Stroke implements Surface
func (r *Recorder) Stroke() error {
	r.add(&DrawingInstruction{Kind: StrokeInstruction})
	return nil
}
