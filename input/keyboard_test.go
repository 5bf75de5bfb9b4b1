package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyCombo(t *testing.T) {
	combo, err := ParseKeyCombo("F12")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x7B), combo.MainKey)
	assert.Empty(t, combo.Modifiers)

	combo, err = ParseKeyCombo(" ctrl + shift+5 ")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x35), combo.MainKey)
	assert.Equal(t, []uint8{VK_CONTROL, VK_SHIFT}, combo.Modifiers)
	assert.Equal(t, " ctrl + shift+5 ", combo.String())

	combo, err = ParseKeyCombo("Q+E")
	require.NoError(t, err)
	assert.Equal(t, []uint8{0x51}, combo.Modifiers)
}

func TestParseKeyComboErrors(t *testing.T) {
	for _, in := range []string{"", "  ", "F13", "HYPER+F1", "CTRL+", "+F1"} {
		_, err := ParseKeyCombo(in)
		assert.Error(t, err, in)
	}
}

func TestEveryKeyMapsToEbiten(t *testing.T) {
	for name, vk := range keyCodeMap {
		_, ok := vkToEbiten[vk]
		assert.True(t, ok, name)
	}
	for name, vk := range modifierMap {
		_, ok := vkToEbiten[vk]
		assert.True(t, ok, name)
	}
}

func TestToggle(t *testing.T) {
	var tg Toggle
	assert.True(t, tg.Pressed(true))
	assert.False(t, tg.Pressed(true))
	assert.False(t, tg.Pressed(false))
	assert.True(t, tg.Pressed(true))
}
