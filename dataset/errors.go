package dataset

import (
	"fmt"
)

type Kind int

const (
	TemplateRead Kind = iota + 1
	InputRead
	Encode
	OutputWrite
)

func (k Kind) String() string {
	switch k {
	case TemplateRead:
		return "template read"
	case InputRead:
		return "input read"
	case Encode:
		return "encode"
	case OutputWrite:
		return "output write"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is returned by every Builder stage. Any Error ends the run.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Cause() error  { return e.Err }
func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}
