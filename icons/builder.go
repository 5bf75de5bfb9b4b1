package icons

import (
	"errors"
	"minimapicons/entity"
	"minimapicons/settings"
	"sort"
	"sync"
)

type tracked struct {
	entity *entity.Entity
	icon   Icon
	custom *settings.CustomIconSettings
	failed bool
}

// Builder keeps one icon per entity address across scans.
type Builder struct {
	mutex    sync.RWMutex
	modIcons ModIcons
	entries  map[uint64]*tracked
	ticks    int
}

func NewBuilder(modIcons ModIcons) *Builder {
	if modIcons == nil {
		modIcons = DefaultModIcons()
	}
	return &Builder{
		modIcons: modIcons,
		entries:  make(map[uint64]*tracked),
	}
}

// Sync creates icons for new entities, refreshes known ones in place and
// forgets entities that left the scan.
func (b *Builder) Sync(entities []entity.Entity, s *settings.IconsBuilderSettings) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	seen := make(map[uint64]struct{}, len(entities))
	for i := range entities {
		fresh := entities[i]
		seen[fresh.Address] = struct{}{}

		t, ok := b.entries[fresh.Address]
		if ok && t.entity.Kind == fresh.Kind && t.entity.Path == fresh.Path {
			t.entity.Update(fresh)
			continue
		}

		e := fresh
		t = &tracked{entity: &e}
		b.entries[e.Address] = t
		b.build(t, s)
	}

	for addr := range b.entries {
		if _, ok := seen[addr]; !ok {
			delete(b.entries, addr)
		}
	}
}

// Tick re-runs Update on every icon each RunEveryXTicks calls.
func (b *Builder) Tick(s *settings.IconsBuilderSettings) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.ticks++
	if b.ticks < s.RunEveryXTicks.Value {
		return
	}
	b.ticks = 0

	for _, t := range b.entries {
		if t.icon == nil || MatchCustom(s, t.entity.Path) != t.custom {
			b.build(t, s)
			continue
		}
		if err := t.icon.Update(t.entity, s, b.modIcons); err != nil {
			b.fail(t, err)
		}
	}
}

func (b *Builder) build(t *tracked, s *settings.IconsBuilderSettings) {
	t.custom = MatchCustom(s, t.entity.Path)
	icon, err := b.create(t.entity, t.custom, s)
	if err != nil {
		b.fail(t, err)
		return
	}
	t.icon = icon
	t.failed = false

	if icon != nil && s.LogDebugInformation.Value {
		base := icon.Base()
		iconLog.Debug().
			Str("path", t.entity.Path).
			Str("kind", t.entity.Kind.String()).
			Str("rarity", base.Rarity.String()).
			Str("priority", base.Priority.String()).
			Str("file", base.MainTexture.File).
			Msg("icon created")
	}
}

// fail drops the icon and logs the first failure for the entity.
func (b *Builder) fail(t *tracked, err error) {
	t.icon = nil
	if t.failed {
		return
	}
	t.failed = true

	ev := iconLog.Warn()
	if errors.Is(err, ErrUnknownRarity) {
		ev = iconLog.Error()
	}
	ev.Err(err).Uint64("address", t.entity.Address).Msg("icon update failed")
}

func (b *Builder) create(e *entity.Entity, custom *settings.CustomIconSettings, s *settings.IconsBuilderSettings) (Icon, error) {
	if custom != nil {
		return NewCustomIcon(e, s, custom), nil
	}

	switch e.Kind {
	case entity.KindMonster:
		return NewMonsterIcon(e, s, b.modIcons)
	case entity.KindNPC:
		return NewNpcIcon(e, s), nil
	case entity.KindPlayer:
		return NewPlayerIcon(e, s), nil
	default:
		if e.HasMinimapIcon() {
			if icon := NewIngameIcon(e, s); icon.HasIngameIcon {
				return icon, nil
			}
		}
		if isSmallChest(e) {
			return NewChestIcon(e, s), nil
		}
		return nil, nil
	}
}

// Len is the number of tracked entities, including those without an icon.
func (b *Builder) Len() int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return len(b.entries)
}

// Visible returns the icons to draw, lowest priority first so important
// icons end up on top.
func (b *Builder) Visible() []*BaseIcon {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	out := make([]*BaseIcon, 0, len(b.entries))
	for _, t := range b.entries {
		if t.icon == nil {
			continue
		}
		if base := t.icon.Base(); base.Visible() {
			out = append(out, base)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].Entity.Address < out[j].Entity.Address
	})
	return out
}
