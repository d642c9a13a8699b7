package frame

import "fmt"

// UnsupportedInputError reports an input that is not one of the accepted
// tabular shapes.
type UnsupportedInputError struct {
	// Value is the rejected input.
	Value any
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("frame: unsupported input type %T (want *frame.Frame, frame.Column, or map[string][]any)", e.Value)
}

// Coerce normalizes an input dataset into a Frame. It accepts a *Frame
// (returned as-is), a single Column, or a map of column name to value
// sequence. Any other input yields an *UnsupportedInputError.
func Coerce(data any) (*Frame, error) {
	switch v := data.(type) {
	case *Frame:
		if v == nil {
			return nil, &UnsupportedInputError{Value: data}
		}
		return v, nil
	case Column:
		return New(v)
	case map[string][]any:
		return FromMap(v), nil
	default:
		return nil, &UnsupportedInputError{Value: data}
	}
}
