package sprites

import "image"

// AtlasColumns is the width of Icons.png in cells.
const AtlasColumns = 14

// AtlasRows is the height of Icons.png in cells.
const AtlasRows = (Count + AtlasColumns - 1) / AtlasColumns

// ModSpriteGrid is the layout of sprites.png.
var ModSpriteGrid = Vector2i{X: 7, Y: 8}

type Vector2i struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// UV is a normalized rectangle inside a texture.
type UV struct {
	X, Y, W, H float32
}

// Rect converts the UV to pixels of a texture of the given size.
func (uv UV) Rect(width, height int) image.Rectangle {
	x0 := int(uv.X*float32(width) + 0.5)
	y0 := int(uv.Y*float32(height) + 0.5)
	x1 := int((uv.X+uv.W)*float32(width) + 0.5)
	y1 := int((uv.Y+uv.H)*float32(height) + 0.5)
	return image.Rect(x0, y0, x1, y1)
}

func (uv UV) Empty() bool {
	return uv.W <= 0 || uv.H <= 0
}

// UVForIcon locates an icon on the Icons.png grid.
func UVForIcon(index MapIconsIndex) UV {
	if !index.Valid() {
		return UV{}
	}
	col := int(index) % AtlasColumns
	row := int(index) / AtlasColumns
	return UV{
		X: float32(col) / AtlasColumns,
		Y: float32(row) / float32(AtlasRows),
		W: 1.0 / AtlasColumns,
		H: 1.0 / float32(AtlasRows),
	}
}

// UVForCell locates a 1-based cell on a sprite sheet split into grid.
func UVForCell(cell, grid Vector2i) UV {
	if grid.X <= 0 || grid.Y <= 0 || cell.X < 1 || cell.Y < 1 || cell.X > grid.X || cell.Y > grid.Y {
		return UV{}
	}
	return UV{
		X: float32(cell.X-1) / float32(grid.X),
		Y: float32(cell.Y-1) / float32(grid.Y),
		W: 1 / float32(grid.X),
		H: 1 / float32(grid.Y),
	}
}
