//go:build !windows

package process

func WindowRect(title string) (Rect, error) {
	return Rect{}, ErrWindowNotFound
}
