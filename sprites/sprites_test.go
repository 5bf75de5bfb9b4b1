package sprites

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesRoundTrip(t *testing.T) {
	assert.Equal(t, "NPC", NPC.String())
	assert.Equal(t, "LootFilterSmallGreenCircle", LootFilterSmallGreenCircle.String())
	assert.Equal(t, "LootFilterLargeGreenHexagon", LootFilterLargeGreenHexagon.String())
	assert.Equal(t, "LootFilterLargeWhiteStar", LootFilterLargeWhiteStar.String())
	assert.Equal(t, LootFilterMediumWhiteDiamond, LootFilter(LootMedium, LootWhite, LootDiamond))

	seen := make(map[string]bool, Count)
	for _, idx := range AllMapIcons() {
		name := idx.String()
		require.False(t, seen[name], "duplicate icon name %s", name)
		seen[name] = true

		parsed, err := ParseMapIconsIndex(name)
		require.NoError(t, err)
		assert.Equal(t, idx, parsed)
	}
	assert.Len(t, seen, Count)
}

func TestTextMarshalling(t *testing.T) {
	b, err := LootFilterLargeWhiteCircle.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "LootFilterLargeWhiteCircle", string(b))

	var idx MapIconsIndex
	require.NoError(t, idx.UnmarshalText([]byte("lootfilterlargewhitecircle")))
	assert.Equal(t, LootFilterLargeWhiteCircle, idx)

	assert.Error(t, idx.UnmarshalText([]byte("NotAnIcon")))
	_, err = MapIconsIndex(-1).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "MapIconsIndex(100000)", MapIconsIndex(100000).String())
}

func TestFilterMapIcons(t *testing.T) {
	assert.Len(t, FilterMapIcons("  "), Count)

	got := FilterMapIcons("green hexagon")
	require.Len(t, got, 3)
	for _, idx := range got {
		assert.Contains(t, idx.String(), "GreenHexagon")
	}

	assert.Equal(t, []MapIconsIndex{Waypoint}, FilterMapIcons("WAYPOINT"))
	assert.Empty(t, FilterMapIcons("zzz"))
}

func TestUVForIcon(t *testing.T) {
	uv := UVForIcon(NPC)
	assert.Equal(t, float32(0), uv.X)
	assert.Equal(t, float32(0), uv.Y)
	assert.InDelta(t, 1.0/AtlasColumns, uv.W, 1e-6)

	uv = UVForIcon(MapIconsIndex(AtlasColumns + 2))
	assert.InDelta(t, 2.0/AtlasColumns, uv.X, 1e-6)
	assert.InDelta(t, 1.0/float32(AtlasRows), uv.Y, 1e-6)
	assert.InDelta(t, 1.0/float32(AtlasRows), uv.H, 1e-6)

	assert.True(t, UVForIcon(MapIconsIndex(Count)).Empty())
}

func TestUVForIconLastCellInsideAtlas(t *testing.T) {
	last := MapIconsIndex(Count - 1)
	uv := UVForIcon(last)
	require.False(t, uv.Empty())

	row := (Count - 1) / AtlasColumns
	assert.Equal(t, AtlasRows-1, row)
	assert.InDelta(t, float32(row)/float32(AtlasRows), uv.Y, 1e-6)
	assert.LessOrEqual(t, uv.Y+uv.H, float32(1)+1e-6)
	assert.LessOrEqual(t, uv.X+uv.W, float32(1)+1e-6)
}

func TestUVForCell(t *testing.T) {
	uv := UVForCell(Vector2i{X: 1, Y: 1}, ModSpriteGrid)
	assert.Equal(t, UV{X: 0, Y: 0, W: 1.0 / 7, H: 1.0 / 8}, uv)

	uv = UVForCell(Vector2i{X: 7, Y: 8}, ModSpriteGrid)
	assert.InDelta(t, 6.0/7, uv.X, 1e-6)
	assert.InDelta(t, 7.0/8, uv.Y, 1e-6)

	assert.True(t, UVForCell(Vector2i{X: 0, Y: 1}, ModSpriteGrid).Empty())
	assert.True(t, UVForCell(Vector2i{X: 8, Y: 1}, ModSpriteGrid).Empty())
}

func TestUVRect(t *testing.T) {
	uv := UVForCell(Vector2i{X: 2, Y: 3}, Vector2i{X: 4, Y: 4})
	assert.Equal(t, image.Rect(64, 128, 128, 192), uv.Rect(256, 256))
}

func TestLootFilterParts(t *testing.T) {
	size, clr, shape, ok := LootFilterLargeWhiteStar.LootFilterParts()
	require.True(t, ok)
	assert.Equal(t, LootLarge, size)
	assert.Equal(t, LootWhite, clr)
	assert.Equal(t, LootStar, shape)

	size, clr, shape, ok = LootFilter(LootSmall, LootPurple, LootUpsideDownHouse).LootFilterParts()
	require.True(t, ok)
	assert.Equal(t, LootSmall, size)
	assert.Equal(t, LootPurple, clr)
	assert.Equal(t, LootUpsideDownHouse, shape)
	assert.Equal(t, MapIconsIndex(Count-1), LootFilter(LootSmall, LootPurple, LootUpsideDownHouse))

	_, _, _, ok = Shrine.LootFilterParts()
	assert.False(t, ok)
	_, _, _, ok = MapIconsIndex(Count).LootFilterParts()
	assert.False(t, ok)
}
