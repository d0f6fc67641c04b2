package drawlib

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnhandledVariant is matched by every *UnhandledVariantError.
	ErrUnhandledVariant = errors.New("drawlib: unhandled shape variant")

	// ErrEmptyPolygon is returned when rendering a polygon without points.
	ErrEmptyPolygon = errors.New("drawlib: polygon has no points")

	// ErrInvalidPoints is returned by ParsePoints for malformed point lists.
	ErrInvalidPoints = errors.New("drawlib: invalid point list")

	// ErrUnknownInstruction is returned by Replay for an instruction kind it
	// cannot map onto a Surface call.
	ErrUnknownInstruction = errors.New("drawlib: unknown drawing instruction")
)

// UnhandledVariantError reports a shape outside the closed variant set met
// during a traversal. It means the model and the traversal disagree and is
// not meant to be recovered from.
type UnhandledVariantError struct {
	Op   string
	Type string
}

func (e *UnhandledVariantError) Error() string {
	return fmt.Sprintf("drawlib: %s: unhandled shape variant %s", e.Op, e.Type)
}

// Is makes errors.Is(err, ErrUnhandledVariant) hold.
func (e *UnhandledVariantError) Is(target error) bool {
	return target == ErrUnhandledVariant
}

func unhandled(op string, s Shape) error {
	typ := "<nil>"
	if s != nil {
		typ = reflect.TypeOf(s).String()
	}
	err := &UnhandledVariantError{Op: op, Type: typ}
	Logger().Warn("unhandled shape variant", "op", op, "type", typ)
	return err
}
