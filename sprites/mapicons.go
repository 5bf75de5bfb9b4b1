package sprites

import (
	"fmt"
	"image/color"
	"strings"
)

// MapIconsIndex is a cell of the Icons.png atlas, in row-major order.
type MapIconsIndex int

const (
	NPC MapIconsIndex = iota
	Player
	PartyMember
	Waypoint
	Portal
	AreaTransition
	Checkpoint
	Stash
	QuestObject
	QuestItem
	Shrine
	Chest
	StrongBox
	Breach
	Ritual
	Expedition
	Delirium
	Essence
	BossArena
	Hideout
	LabyrinthDoor
	SanctumRelic
	HeistChest
	Abyss
	Harvest
	Incursion
	Legion
	Blight
	Sulphite
	Metamorph
	Ultimatum
	Mirror
	lootFilterBase
)

type LootSize int

const (
	LootLarge LootSize = iota
	LootMedium
	LootSmall
	lootSizeCount
)

type LootColor int

const (
	LootRed LootColor = iota
	LootGreen
	LootBlue
	LootBrown
	LootWhite
	LootYellow
	LootCyan
	LootGrey
	LootOrange
	LootPink
	LootPurple
	lootColorCount
)

type LootShape int

const (
	LootCircle LootShape = iota
	LootDiamond
	LootHexagon
	LootSquare
	LootStar
	LootTriangle
	LootCross
	LootMoon
	LootRaindrop
	LootKite
	LootPentagon
	LootUpsideDownHouse
	lootShapeCount
)

const (
	lootFilterCount = int(lootSizeCount) * int(lootColorCount) * int(lootShapeCount)

	// Count is the number of icons in the atlas.
	Count = int(lootFilterBase) + lootFilterCount
)

// Loot filter icons referenced by name in code.
const (
	LootFilterSmallGreenCircle   = lootFilterBase + MapIconsIndex((int(LootSmall)*int(lootColorCount)+int(LootGreen))*int(lootShapeCount)+int(LootCircle))
	LootFilterLargeGreenHexagon  = lootFilterBase + MapIconsIndex((int(LootLarge)*int(lootColorCount)+int(LootGreen))*int(lootShapeCount)+int(LootHexagon))
	LootFilterSmallWhiteCircle   = lootFilterBase + MapIconsIndex((int(LootSmall)*int(lootColorCount)+int(LootWhite))*int(lootShapeCount)+int(LootCircle))
	LootFilterMediumWhiteCircle  = lootFilterBase + MapIconsIndex((int(LootMedium)*int(lootColorCount)+int(LootWhite))*int(lootShapeCount)+int(LootCircle))
	LootFilterLargeWhiteCircle   = lootFilterBase + MapIconsIndex((int(LootLarge)*int(lootColorCount)+int(LootWhite))*int(lootShapeCount)+int(LootCircle))
	LootFilterLargeWhiteStar     = lootFilterBase + MapIconsIndex((int(LootLarge)*int(lootColorCount)+int(LootWhite))*int(lootShapeCount)+int(LootStar))
	LootFilterMediumWhiteDiamond = lootFilterBase + MapIconsIndex((int(LootMedium)*int(lootColorCount)+int(LootWhite))*int(lootShapeCount)+int(LootDiamond))
)

var (
	namedIcons = []string{
		"NPC", "Player", "PartyMember", "Waypoint", "Portal", "AreaTransition",
		"Checkpoint", "Stash", "QuestObject", "QuestItem", "Shrine", "Chest",
		"StrongBox", "Breach", "Ritual", "Expedition", "Delirium", "Essence",
		"BossArena", "Hideout", "LabyrinthDoor", "SanctumRelic", "HeistChest",
		"Abyss", "Harvest", "Incursion", "Legion", "Blight", "Sulphite",
		"Metamorph", "Ultimatum", "Mirror",
	}
	lootSizeNames  = []string{"Large", "Medium", "Small"}
	lootColorNames = []string{"Red", "Green", "Blue", "Brown", "White", "Yellow", "Cyan", "Grey", "Orange", "Pink", "Purple"}
	lootShapeNames = []string{"Circle", "Diamond", "Hexagon", "Square", "Star", "Triangle", "Cross", "Moon", "Raindrop", "Kite", "Pentagon", "UpsideDownHouse"}

	iconNames   []string
	iconsByName map[string]MapIconsIndex
)

func init() {
	iconNames = make([]string, 0, Count)
	iconNames = append(iconNames, namedIcons...)
	for _, size := range lootSizeNames {
		for _, clr := range lootColorNames {
			for _, shape := range lootShapeNames {
				iconNames = append(iconNames, "LootFilter"+size+clr+shape)
			}
		}
	}

	iconsByName = make(map[string]MapIconsIndex, len(iconNames))
	for i, name := range iconNames {
		iconsByName[strings.ToLower(name)] = MapIconsIndex(i)
	}
}

// LootFilter returns the loot filter icon of the given size, colour and shape.
func LootFilter(size LootSize, clr LootColor, shape LootShape) MapIconsIndex {
	return lootFilterBase + MapIconsIndex((int(size)*int(lootColorCount)+int(clr))*int(lootShapeCount)+int(shape))
}

// LootFilterParts splits a loot filter icon into its size, colour and shape.
func (i MapIconsIndex) LootFilterParts() (LootSize, LootColor, LootShape, bool) {
	if i < lootFilterBase || !i.Valid() {
		return 0, 0, 0, false
	}
	n := int(i - lootFilterBase)
	shape := LootShape(n % int(lootShapeCount))
	n /= int(lootShapeCount)
	clr := LootColor(n % int(lootColorCount))
	size := LootSize(n / int(lootColorCount))
	return size, clr, shape, true
}

var lootColors = [...]color.NRGBA{
	LootRed:    {250, 50, 50, 255},
	LootGreen:  {60, 220, 60, 255},
	LootBlue:   {70, 110, 255, 255},
	LootBrown:  {150, 100, 50, 255},
	LootWhite:  {255, 255, 255, 255},
	LootYellow: {255, 240, 60, 255},
	LootCyan:   {60, 230, 230, 255},
	LootGrey:   {150, 150, 150, 255},
	LootOrange: {255, 150, 30, 255},
	LootPink:   {255, 130, 200, 255},
	LootPurple: {170, 80, 230, 255},
}

func (c LootColor) NRGBA() color.NRGBA {
	if c < 0 || c >= lootColorCount {
		return lootColors[LootWhite]
	}
	return lootColors[c]
}

// Scale is the icon size factor of a loot filter size class.
func (s LootSize) Scale() float32 {
	switch s {
	case LootLarge:
		return 1
	case LootMedium:
		return 0.8
	default:
		return 0.6
	}
}

func (i MapIconsIndex) Valid() bool {
	return i >= 0 && int(i) < Count
}

func (i MapIconsIndex) String() string {
	if !i.Valid() {
		return fmt.Sprintf("MapIconsIndex(%d)", int(i))
	}
	return iconNames[i]
}

func (i MapIconsIndex) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("invalid map icon %d", int(i))
	}
	return []byte(iconNames[i]), nil
}

func (i *MapIconsIndex) UnmarshalText(b []byte) error {
	idx, err := ParseMapIconsIndex(string(b))
	if err != nil {
		return err
	}
	*i = idx
	return nil
}

// ParseMapIconsIndex looks an icon up by name, ignoring case.
func ParseMapIconsIndex(name string) (MapIconsIndex, error) {
	idx, ok := iconsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown map icon %q", name)
	}
	return idx, nil
}

func AllMapIcons() []MapIconsIndex {
	all := make([]MapIconsIndex, Count)
	for i := range all {
		all[i] = MapIconsIndex(i)
	}
	return all
}

// FilterMapIcons keeps icons whose name contains every space-separated term of filter.
func FilterMapIcons(filter string) []MapIconsIndex {
	terms := strings.Fields(strings.ToLower(filter))
	if len(terms) == 0 {
		return AllMapIcons()
	}

	out := make([]MapIconsIndex, 0, 64)
	for i, name := range iconNames {
		lower := strings.ToLower(name)
		match := true
		for _, term := range terms {
			if !strings.Contains(lower, term) {
				match = false
				break
			}
		}
		if match {
			out = append(out, MapIconsIndex(i))
		}
	}
	return out
}
