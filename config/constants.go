package config

import "time"

// Memory offsets (64-bit client). Update per game patch.
const (
	PTR_GAME_STATE     = 0x3A1F8D0
	OFF_INGAME_STATE   = 0x20
	OFF_AREA_INSTANCE  = 0x948
	OFF_LOCALPLAYER    = 0xA10
	OFF_ENTITY_LIST    = 0xAC0
	OFF_ENTITY_COUNT   = 0xAC8
	MAX_ENTITY_COUNT   = 4096
	ENTITY_NODE_SIZE   = 0x8
	OFF_ENTITY_ID      = 0x80
	OFF_ENTITY_PATH    = 0x08
	OFF_ENTITY_RENDER  = 0x1A0
	OFF_ENTITY_FLAGS   = 0x84
	OFF_ENTITY_KIND    = 0x88
	OFF_ENTITY_RARITY  = 0x13C
	OFF_ENTITY_HP      = 0x1D4
	OFF_POS_X          = 0x2B0
	OFF_POS_Y          = 0x2B4
	OFF_POS_Z          = 0x2B8
	OFF_MAGIC_PROPS    = 0x140
	OFF_MODS_ARRAY     = 0x00
	OFF_MODS_COUNT     = 0x08
	MOD_ENTRY_SIZE     = 0x08
	MAX_MOD_COUNT      = 32
	OFF_MINIMAP_ICON   = 0x148
	OFF_ICON_NAME      = 0x20
	MAX_STRING_LEN     = 128
	MAX_NAME_LEN       = 64
	FLAG_HOSTILE       = 1 << 0
	FLAG_HIDDEN        = 1 << 1
	FLAG_TARGETABLE    = 1 << 2
)

// Screen settings
const (
	SCREEN_WIDTH  = 1024
	SCREEN_HEIGHT = 768

	RADAR_RADIUS = 280
	RADAR_RANGE  = 1000.0
	SCAN_RANGE   = 1500.0
)

// Scan settings
const (
	SCAN_INTERVAL = 100 * time.Millisecond
	TPS           = 60
)

// Defaults for the command line
const (
	DEFAULT_PROCESS       = "PathOfExile.exe"
	DEFAULT_WINDOW_TITLE  = "Path of Exile 2"
	DEFAULT_SETTINGS_FILE = "minimapicons_settings.json"
	DEFAULT_MENU_HOTKEY   = "F12"
	ICONS_ATLAS           = "Icons.png"
	SPRITES_ATLAS         = "sprites.png"
)
