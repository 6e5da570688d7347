package layout

import "errors"

// Configuration errors are returned at construction time. ErrDragActive is
// returned to callers that try to mutate a model owned by a drag gesture.
var (
	ErrInvalidBounds      = errors.New("invalid flex bounds")
	ErrInvalidID          = errors.New("splitter id required")
	ErrInvalidSide        = errors.New("invalid collapse side")
	ErrInvalidRoles       = errors.New("splitter needs exactly one flexer and one anti-flexer")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrDragActive         = errors.New("drag in progress")
)
