package input

import "github.com/hajimehoshi/ebiten/v2"

var vkToEbiten = map[uint8]ebiten.Key{
	0x70: ebiten.KeyF1, 0x71: ebiten.KeyF2, 0x72: ebiten.KeyF3, 0x73: ebiten.KeyF4,
	0x74: ebiten.KeyF5, 0x75: ebiten.KeyF6, 0x76: ebiten.KeyF7, 0x77: ebiten.KeyF8,
	0x78: ebiten.KeyF9, 0x79: ebiten.KeyF10, 0x7A: ebiten.KeyF11, 0x7B: ebiten.KeyF12,
	0x30: ebiten.KeyDigit0, 0x31: ebiten.KeyDigit1, 0x32: ebiten.KeyDigit2, 0x33: ebiten.KeyDigit3,
	0x34: ebiten.KeyDigit4, 0x35: ebiten.KeyDigit5, 0x36: ebiten.KeyDigit6, 0x37: ebiten.KeyDigit7,
	0x38: ebiten.KeyDigit8, 0x39: ebiten.KeyDigit9,
	0x41: ebiten.KeyA, 0x42: ebiten.KeyB, 0x43: ebiten.KeyC, 0x44: ebiten.KeyD, 0x45: ebiten.KeyE,
	0x46: ebiten.KeyF, 0x47: ebiten.KeyG, 0x48: ebiten.KeyH, 0x49: ebiten.KeyI, 0x4A: ebiten.KeyJ,
	0x4B: ebiten.KeyK, 0x4C: ebiten.KeyL, 0x4D: ebiten.KeyM, 0x4E: ebiten.KeyN, 0x4F: ebiten.KeyO,
	0x50: ebiten.KeyP, 0x51: ebiten.KeyQ, 0x52: ebiten.KeyR, 0x53: ebiten.KeyS, 0x54: ebiten.KeyT,
	0x55: ebiten.KeyU, 0x56: ebiten.KeyV, 0x57: ebiten.KeyW, 0x58: ebiten.KeyX, 0x59: ebiten.KeyY,
	0x5A: ebiten.KeyZ,
	0x20: ebiten.KeySpace, 0x0D: ebiten.KeyEnter, 0x09: ebiten.KeyTab, 0x1B: ebiten.KeyEscape,
	0x08: ebiten.KeyBackspace, 0x2E: ebiten.KeyDelete, 0x2D: ebiten.KeyInsert,
	0x24: ebiten.KeyHome, 0x23: ebiten.KeyEnd, 0x21: ebiten.KeyPageUp, 0x22: ebiten.KeyPageDown,
	0x26: ebiten.KeyArrowUp, 0x28: ebiten.KeyArrowDown, 0x25: ebiten.KeyArrowLeft, 0x27: ebiten.KeyArrowRight,
	0x60: ebiten.KeyNumpad0, 0x61: ebiten.KeyNumpad1, 0x62: ebiten.KeyNumpad2, 0x63: ebiten.KeyNumpad3,
	0x64: ebiten.KeyNumpad4, 0x65: ebiten.KeyNumpad5, 0x66: ebiten.KeyNumpad6, 0x67: ebiten.KeyNumpad7,
	0x68: ebiten.KeyNumpad8, 0x69: ebiten.KeyNumpad9,
	0xC0: ebiten.KeyBackquote, 0xBD: ebiten.KeyMinus, 0xBB: ebiten.KeyEqual,
	0xDB: ebiten.KeyBracketLeft, 0xDD: ebiten.KeyBracketRight, 0xDC: ebiten.KeyBackslash,
	0xBA: ebiten.KeySemicolon, 0xDE: ebiten.KeyQuote,
	0xBC: ebiten.KeyComma, 0xBE: ebiten.KeyPeriod, 0xBF: ebiten.KeySlash,
	VK_SHIFT: ebiten.KeyShift, VK_CONTROL: ebiten.KeyControl, VK_ALT: ebiten.KeyAlt,
	VK_LSHIFT: ebiten.KeyShiftLeft, VK_RSHIFT: ebiten.KeyShiftRight,
	VK_LCONTROL: ebiten.KeyControlLeft, VK_RCONTROL: ebiten.KeyControlRight,
	VK_LALT: ebiten.KeyAltLeft, VK_RALT: ebiten.KeyAltRight,
}

// IsComboDownFocused checks the combo against the overlay window's
// keyboard state, which only sees keys while the overlay has focus.
func IsComboDownFocused(combo KeyCombo) bool {
	main, ok := vkToEbiten[combo.MainKey]
	if !ok || !ebiten.IsKeyPressed(main) {
		return false
	}
	for _, mod := range combo.Modifiers {
		k, ok := vkToEbiten[mod]
		if !ok || !ebiten.IsKeyPressed(k) {
			return false
		}
	}
	return true
}
