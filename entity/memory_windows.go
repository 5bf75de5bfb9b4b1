package entity

import (
	"context"
	"fmt"
	"minimapicons/config"
	"minimapicons/memory"
	"minimapicons/process"
	"strings"
)

// MemorySource walks the client's entity list.
type MemorySource struct {
	proc *memory.Process
}

func NewMemorySource(processName string) (Source, error) {
	pid, err := process.FindProcess(processName)
	if err != nil {
		return nil, err
	}

	base, err := process.GetModuleBase(pid, processName)
	if err != nil {
		return nil, err
	}

	proc, err := memory.Open(pid, base)
	if err != nil {
		return nil, err
	}

	entLog.Info().
		Uint32("pid", pid).
		Str("base", fmt.Sprintf("0x%X", base)).
		Msg("attached to game process")

	return &MemorySource{proc: proc}, nil
}

func (m *MemorySource) Close() error {
	return m.proc.Close()
}

func (m *MemorySource) areaInstance() (uintptr, bool) {
	state, ok := m.proc.ReadPtr(m.proc.Base + config.PTR_GAME_STATE)
	if !ok {
		return 0, false
	}
	ingame, ok := m.proc.ReadPtr(state + config.OFF_INGAME_STATE)
	if !ok {
		return 0, false
	}
	return m.proc.ReadPtr(ingame + config.OFF_AREA_INSTANCE)
}

func (m *MemorySource) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	area, ok := m.areaInstance()
	if !ok {
		return snap, fmt.Errorf("area instance not available")
	}

	playerAddr, ok := m.proc.ReadPtr(area + config.OFF_LOCALPLAYER)
	if !ok {
		return snap, fmt.Errorf("local player not available")
	}
	snap.Player = m.readEntity(playerAddr)
	snap.Player.Kind = KindPlayer

	list, ok := m.proc.ReadPtr(area + config.OFF_ENTITY_LIST)
	if !ok {
		return snap, nil
	}
	count := m.proc.ReadU32(area + config.OFF_ENTITY_COUNT)
	if count > config.MAX_ENTITY_COUNT {
		entLog.Warn().Uint32("count", count).Msg("entity count out of range")
		count = config.MAX_ENTITY_COUNT
	}

	buf := make([]byte, int(count)*config.ENTITY_NODE_SIZE)
	if err := m.proc.ReadBytes(list, buf); err != nil {
		return snap, fmt.Errorf("read entity list: %w", err)
	}

	snap.Entities = make([]Entity, 0, count)
	for i := 0; i < int(count); i++ {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return snap, err
			}
		}

		addr := memory.BytesToUint64(buf[i*config.ENTITY_NODE_SIZE:])
		if !memory.IsValidPtr(addr) || addr == uint64(playerAddr) {
			continue
		}

		e := m.readEntity(uintptr(addr))
		if e.Path == "" || !memory.IsValidCoord(e.Pos.X) || !memory.IsValidCoord(e.Pos.Y) {
			continue
		}
		snap.Entities = append(snap.Entities, e)
	}

	return snap, nil
}

func (m *MemorySource) readEntity(addr uintptr) Entity {
	e := Entity{Address: uint64(addr)}

	e.ID = m.proc.ReadU32(addr + config.OFF_ENTITY_ID)
	if pathPtr, ok := m.proc.ReadPtr(addr + config.OFF_ENTITY_PATH); ok {
		e.Path = m.proc.ReadWString(pathPtr, config.MAX_STRING_LEN)
	}
	if namePtr, ok := m.proc.ReadPtr(addr + config.OFF_ENTITY_RENDER); ok {
		name := m.proc.ReadWString(namePtr, config.MAX_NAME_LEN)
		if IsValidEntityName(name) {
			e.RenderName = name
		}
	}

	flags := m.proc.ReadU8(addr + config.OFF_ENTITY_FLAGS)
	e.IsHostile = flags&config.FLAG_HOSTILE != 0
	e.IsHidden = flags&config.FLAG_HIDDEN != 0
	e.IsAlive = m.proc.ReadU32(addr+config.OFF_ENTITY_HP) > 0
	e.Kind = Kind(m.proc.ReadU8(addr + config.OFF_ENTITY_KIND))

	e.Pos.X = m.proc.ReadF32(addr + config.OFF_POS_X)
	e.Pos.Y = m.proc.ReadF32(addr + config.OFF_POS_Y)
	e.Pos.Z = m.proc.ReadF32(addr + config.OFF_POS_Z)

	if propsPtr, ok := m.proc.ReadPtr(addr + config.OFF_MAGIC_PROPS); ok {
		e.MagicProperties = m.readMagicProperties(addr, propsPtr)
	}
	if iconPtr, ok := m.proc.ReadPtr(addr + config.OFF_MINIMAP_ICON); ok {
		icon := &MinimapIconComponent{}
		if namePtr, ok := m.proc.ReadPtr(iconPtr + config.OFF_ICON_NAME); ok {
			icon.Name = m.proc.ReadWString(namePtr, config.MAX_NAME_LEN)
		}
		e.MinimapIcon = icon
	}

	return e
}

func (m *MemorySource) readMagicProperties(entityAddr, props uintptr) *MagicProperties {
	mp := &MagicProperties{
		Rarity: Rarity(m.proc.ReadU8(entityAddr + config.OFF_ENTITY_RARITY)),
	}

	arr, ok := m.proc.ReadPtr(props + config.OFF_MODS_ARRAY)
	if !ok {
		return mp
	}
	count := m.proc.ReadU32(props + config.OFF_MODS_COUNT)
	if count == 0 || count > config.MAX_MOD_COUNT {
		return mp
	}

	mp.Mods = make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		namePtr, ok := m.proc.ReadPtr(arr + uintptr(i)*config.MOD_ENTRY_SIZE)
		if !ok {
			continue
		}
		if id := m.proc.ReadWString(namePtr, config.MAX_NAME_LEN); id != "" {
			mp.Mods = append(mp.Mods, id)
		}
	}
	return mp
}

// IsValidEntityName rejects garbage reads of the render name.
func IsValidEntityName(name string) bool {
	if len(name) < 2 || len(name) > config.MAX_NAME_LEN {
		return false
	}
	return !strings.ContainsFunc(name, func(c rune) bool {
		return c < 32
	})
}
