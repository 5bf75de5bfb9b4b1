package entity

import (
	"context"
	"errors"
	"fmt"
	"minimapicons/logger"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var entLog zerolog.Logger = logger.Module("entity")

var ErrUnsupportedPlatform = errors.New("live memory reading is only supported on windows")

// Snapshot is one read of the area: the local player and everything around it.
type Snapshot struct {
	Player   Entity   `yaml:"player"`
	Entities []Entity `yaml:"entities"`
}

// Source produces snapshots of the running game.
type Source interface {
	Snapshot(ctx context.Context) (Snapshot, error)
	Close() error
}

// ReplaySource serves a snapshot recorded in a YAML file.
type ReplaySource struct {
	path string
	snap Snapshot
}

func NewReplaySource(path string) (*ReplaySource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replay %s: %w", path, err)
	}

	snap, err := ParseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("parse replay %s: %w", path, err)
	}

	entLog.Info().
		Str("path", path).
		Int("entities", len(snap.Entities)).
		Msg("replay loaded")

	return &ReplaySource{path: path, snap: snap}, nil
}

// ParseSnapshot decodes a YAML snapshot and assigns addresses to entries that lack one.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}

	for i := range snap.Entities {
		if snap.Entities[i].Address == 0 {
			snap.Entities[i].Address = uint64(i + 1)
		}
	}
	if snap.Player.Address == 0 {
		snap.Player.Address = ^uint64(0)
	}
	return snap, nil
}

func (r *ReplaySource) Snapshot(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	out := Snapshot{Player: r.snap.Player, Entities: make([]Entity, len(r.snap.Entities))}
	copy(out.Entities, r.snap.Entities)
	return out, nil
}

func (r *ReplaySource) Close() error {
	return nil
}
