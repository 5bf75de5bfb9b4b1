package settings

import (
	"fmt"
	"minimapicons/entity"
	"minimapicons/sprites"
	"regexp"
)

// IconsBuilderSettings configures how entities turn into minimap icons.
type IconsBuilderSettings struct {
	RunEveryXTicks RangeNode[int] `json:"RunEveryXTicks"`

	// Debug information about entities
	LogDebugInformation ToggleNode `json:"LogDebugInformation"`

	HidePlayers         ToggleNode `json:"HidePlayers"`
	HideMinions         ToggleNode `json:"HideMinions"`
	DeliriumText        ToggleNode `json:"DeliriumText"`
	HideBurriedMonsters ToggleNode `json:"HideBurriedMonsters"`

	SizeDefaultIcon RangeNode[int] `json:"SizeDefaultIcon"`
	SizeNpcIcon     RangeNode[int] `json:"SizeNpcIcon"`
	SizePlayerIcon  RangeNode[int] `json:"SizePlayerIcon"`

	SizeBreachChestIcon     RangeNode[int] `json:"SizeBreachChestIcon"`
	SizeHeistChestIcon      RangeNode[int] `json:"SizeHeistChestIcon"`
	ExpeditionChestIconSize RangeNode[int] `json:"ExpeditionChestIconSize"`
	SanctumChestIconSize    RangeNode[int] `json:"SanctumChestIconSize"`
	SizeChestIcon           RangeNode[int] `json:"SizeChestIcon"`
	ShowSmallChest          ToggleNode     `json:"ShowSmallChest"`
	SizeSmallChestIcon      RangeNode[int] `json:"SizeSmallChestIcon"`
	SizeMiscIcon            RangeNode[int] `json:"SizeMiscIcon"`
	SizeShrineIcon          RangeNode[int] `json:"SizeShrineIcon"`

	ResetIcons ButtonNode `json:"-"`

	CustomIcons  ContentNode[*CustomIconSettings] `json:"CustomIcons"`
	MonsterIcons *MonsterIconSettings             `json:"MonsterIcons"`
}

func Default() *IconsBuilderSettings {
	s := &IconsBuilderSettings{
		RunEveryXTicks:      NewRangeNode(10, 1, 20),
		LogDebugInformation: NewToggleNode(true),
		HidePlayers:         NewToggleNode(false),
		HideMinions:         NewToggleNode(false),
		DeliriumText:        NewToggleNode(false),
		HideBurriedMonsters: NewToggleNode(false),
		SizeDefaultIcon:     NewRangeNode(16, 1, 50),
		SizeNpcIcon:         NewRangeNode(10, 1, 50),
		SizePlayerIcon:      NewRangeNode(12, 1, 50),

		SizeBreachChestIcon:     NewRangeNode(10, 1, 50),
		SizeHeistChestIcon:      NewRangeNode(30, 1, 50),
		ExpeditionChestIconSize: NewRangeNode(30, 1, 50),
		SanctumChestIconSize:    NewRangeNode(30, 1, 50),
		SizeChestIcon:           NewRangeNode(10, 1, 50),
		ShowSmallChest:          NewToggleNode(false),
		SizeSmallChestIcon:      NewRangeNode(10, 1, 50),
		SizeMiscIcon:            NewRangeNode(10, 1, 50),
		SizeShrineIcon:          NewRangeNode(10, 1, 50),
		CustomIcons: ContentNode[*CustomIconSettings]{
			ItemFactory: NewCustomIconSettings,
		},
		MonsterIcons: NewMonsterIconSettings(),
	}
	s.ResetIcons.OnPressed(func() {
		s.MonsterIcons.Reset()
	})
	return s
}

// MonsterIconSettings holds per-rarity appearance of monster icons.
type MonsterIconSettings struct {
	WhiteMonsterTint  Color `json:"WhiteMonsterTint"`
	MagicMonsterTint  Color `json:"MagicMonsterTint"`
	RareMonsterTint   Color `json:"RareMonsterTint"`
	UniqueMonsterTint Color `json:"UniqueMonsterTint"`

	WhiteMonsterSize  int `json:"WhiteMonsterSize"`
	MagicMonsterSize  int `json:"MagicMonsterSize"`
	RareMonsterSize   int `json:"RareMonsterSize"`
	UniqueMonsterSize int `json:"UniqueMonsterSize"`

	ShowUniqueNames bool `json:"ShowUniqueNames"`

	WhiteMonsterIcon  sprites.MapIconsIndex `json:"WhiteMonsterIcon"`
	MagicMonsterIcon  sprites.MapIconsIndex `json:"MagicMonsterIcon"`
	RareMonsterIcon   sprites.MapIconsIndex `json:"RareMonsterIcon"`
	UniqueMonsterIcon sprites.MapIconsIndex `json:"UniqueMonsterIcon"`
}

func NewMonsterIconSettings() *MonsterIconSettings {
	m := &MonsterIconSettings{}
	m.Reset()
	return m
}

func (m *MonsterIconSettings) Reset() {
	*m = MonsterIconSettings{
		WhiteMonsterTint:  ColorRed,
		MagicMonsterTint:  ColorBlue,
		RareMonsterTint:   ColorYellow,
		UniqueMonsterTint: ColorOrange,

		WhiteMonsterSize:  10,
		MagicMonsterSize:  13,
		RareMonsterSize:   16,
		UniqueMonsterSize: 21,

		ShowUniqueNames: true,

		WhiteMonsterIcon:  sprites.LootFilterSmallWhiteCircle,
		MagicMonsterIcon:  sprites.LootFilterMediumWhiteCircle,
		RareMonsterIcon:   sprites.LootFilterLargeWhiteCircle,
		UniqueMonsterIcon: sprites.LootFilterLargeWhiteStar,
	}
}

// Appearance is the per-rarity slice of the monster icon settings.
type Appearance struct {
	Tint *Color
	Size *int
	Icon *sprites.MapIconsIndex
}

// ForRarity exposes the fields of one rarity for reading and editing.
func (m *MonsterIconSettings) ForRarity(r entity.Rarity) (Appearance, error) {
	switch r {
	case entity.White:
		return Appearance{&m.WhiteMonsterTint, &m.WhiteMonsterSize, &m.WhiteMonsterIcon}, nil
	case entity.Magic:
		return Appearance{&m.MagicMonsterTint, &m.MagicMonsterSize, &m.MagicMonsterIcon}, nil
	case entity.Rare:
		return Appearance{&m.RareMonsterTint, &m.RareMonsterSize, &m.RareMonsterIcon}, nil
	case entity.Unique:
		return Appearance{&m.UniqueMonsterTint, &m.UniqueMonsterSize, &m.UniqueMonsterIcon}, nil
	default:
		return Appearance{}, fmt.Errorf("no monster icon settings for %s", r)
	}
}

// CustomIconSettings draws an icon for every entity whose metadata path matches.
type CustomIconSettings struct {
	MetadataRegex TextNode              `json:"MetadataRegex"`
	Tint          ColorNode             `json:"Tint"`
	Size          RangeNode[float32]    `json:"Size"`
	Icon          sprites.MapIconsIndex `json:"Icon"`

	compiled *regexp.Regexp
	source   string
}

func NewCustomIconSettings() *CustomIconSettings {
	return &CustomIconSettings{
		MetadataRegex: NewTextNode("^$"),
		Tint:          NewColorNode(ColorWhite),
		Size:          NewRangeNode[float32](5, 1, 60),
		Icon:          sprites.LootFilterMediumWhiteDiamond,
	}
}

// Regexp compiles MetadataRegex, caching until the text changes.
func (c *CustomIconSettings) Regexp() (*regexp.Regexp, error) {
	if c.compiled != nil && c.source == c.MetadataRegex.Value {
		return c.compiled, nil
	}
	re, err := regexp.Compile(c.MetadataRegex.Value)
	if err != nil {
		c.compiled = nil
		return nil, fmt.Errorf("custom icon regex %q: %w", c.MetadataRegex.Value, err)
	}
	c.compiled = re
	c.source = c.MetadataRegex.Value
	return re, nil
}

// Matches reports whether path is selected by this custom icon. Invalid patterns match nothing.
func (c *CustomIconSettings) Matches(path string) bool {
	re, err := c.Regexp()
	if err != nil {
		return false
	}
	return re.MatchString(path)
}
