package input

import (
	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

func isKeyDown(vk uint8) bool {
	ret, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return ret&0x8000 != 0
}

// IsComboDown polls the keyboard globally, so the hotkey works while the
// game has focus.
func IsComboDown(combo KeyCombo) bool {
	if combo.MainKey == 0 || !isKeyDown(combo.MainKey) {
		return false
	}
	for _, mod := range combo.Modifiers {
		if !isKeyDown(mod) {
			return false
		}
	}
	return true
}
