package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"minimapicons/logger"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
)

var jsonAPI = sonic.ConfigStd

var setLog zerolog.Logger = logger.Module("settings")

// Store owns the settings file and the live settings value.
type Store struct {
	path     string
	mutex    sync.Mutex
	cur      *IconsBuilderSettings
	lastData []byte
}

func NewStore(path string) *Store {
	return &Store{path: path, cur: Default()}
}

func (s *Store) Path() string {
	return s.path
}

// Settings returns the live settings. Callers on the render goroutine mutate it directly.
func (s *Store) Settings() *IconsBuilderSettings {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.cur
}

// Load reads the file, falling back to defaults and writing them out when it is missing.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		setLog.Info().Str("path", s.path).Msg("settings not found, writing defaults")
		s.mutex.Lock()
		s.cur = Default()
		s.mutex.Unlock()
		return s.Save()
	}
	if err != nil {
		return err
	}
	_, err = s.apply(data)
	return err
}

// Reload re-reads the file and reports whether the settings changed.
func (s *Store) Reload() (bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false, err
	}
	return s.apply(data)
}

func (s *Store) apply(data []byte) (bool, error) {
	s.mutex.Lock()
	same := bytes.Equal(data, s.lastData)
	s.mutex.Unlock()
	if same {
		return false, nil
	}

	loaded, err := Decode(data)
	if err != nil {
		return false, fmt.Errorf("parse settings %s: %w", s.path, err)
	}

	s.mutex.Lock()
	s.cur = loaded
	s.lastData = data
	s.mutex.Unlock()

	setLog.Info().
		Str("path", s.path).
		Int("runEveryXTicks", loaded.RunEveryXTicks.Value).
		Int("customIcons", len(loaded.CustomIcons.Content)).
		Msg("settings loaded")
	return true, nil
}

func (s *Store) Save() error {
	s.mutex.Lock()
	cur := s.cur
	s.mutex.Unlock()

	data, err := Encode(cur)
	if err != nil {
		return err
	}
	if err := writeFile(s.path, data); err != nil {
		return err
	}

	s.mutex.Lock()
	s.lastData = data
	s.mutex.Unlock()
	setLog.Debug().Str("path", s.path).Msg("settings saved")
	return nil
}

// Decode parses settings on top of the defaults.
func Decode(data []byte) (*IconsBuilderSettings, error) {
	loaded := Default()
	if err := jsonAPI.Unmarshal(data, loaded); err != nil {
		return nil, err
	}
	if loaded.MonsterIcons == nil {
		loaded.MonsterIcons = NewMonsterIconSettings()
	}
	return loaded, nil
}

func Encode(s *IconsBuilderSettings) ([]byte, error) {
	data, err := jsonAPI.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return data, nil
}

// writeFile goes through a temp file so a crash never leaves half a file behind.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
