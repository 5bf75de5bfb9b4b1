package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var early = Module("early")

func TestSetupRetargetsEarlyLoggers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.log")

	f, err := Setup(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		Setup("")
		f.Close()
	})

	early.Info().Str("k", "v").Msg("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"module":"early"`)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestSetupBadPath(t *testing.T) {
	_, err := Setup(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	assert.Error(t, err)
}
