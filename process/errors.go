package process

import "errors"

var (
	ErrProcessNotFound = errors.New("process not found")
	ErrModuleNotFound  = errors.New("module not found")
	ErrWindowNotFound  = errors.New("window not found")
)

// Rect is a window client area in screen coordinates.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
