package process

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32             = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW    = user32.NewProc("FindWindowW")
	procGetClientRect  = user32.NewProc("GetClientRect")
	procClientToScreen = user32.NewProc("ClientToScreen")
)

type winRect struct {
	Left, Top, Right, Bottom int32
}

type winPoint struct {
	X, Y int32
}

func FindWindow(title string) (windows.HWND, error) {
	ptr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}
	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(ptr)))
	if hwnd == 0 {
		return 0, fmt.Errorf("%q: %w", title, ErrWindowNotFound)
	}
	return windows.HWND(hwnd), nil
}

// WindowRect returns the client area of the titled window in screen coordinates.
func WindowRect(title string) (Rect, error) {
	hwnd, err := FindWindow(title)
	if err != nil {
		return Rect{}, err
	}

	var rc winRect
	ret, _, _ := procGetClientRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&rc)))
	if ret == 0 {
		return Rect{}, fmt.Errorf("GetClientRect %q failed", title)
	}

	var origin winPoint
	ret, _, _ = procClientToScreen.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&origin)))
	if ret == 0 {
		return Rect{}, fmt.Errorf("ClientToScreen %q failed", title)
	}

	return Rect{
		X: int(origin.X),
		Y: int(origin.Y),
		W: int(rc.Right - rc.Left),
		H: int(rc.Bottom - rc.Top),
	}, nil
}
