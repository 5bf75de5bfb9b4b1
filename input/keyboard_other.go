//go:build !windows

package input

// IsComboDown falls back to the overlay window's own keyboard state.
func IsComboDown(combo KeyCombo) bool {
	return IsComboDownFocused(combo)
}
