package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// switchWriter lets Setup retarget loggers created during package init.
type switchWriter struct {
	mutex sync.Mutex
	w     io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.w.Write(p)
}

func (s *switchWriter) set(w io.Writer) {
	s.mutex.Lock()
	s.w = w
	s.mutex.Unlock()
}

var output = &switchWriter{w: console()}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

func console() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}
}

// Module returns the logger of one package, tagged with its name. It writes
// through output directly so it is safe to call from package-level vars.
func Module(name string) zerolog.Logger {
	return zerolog.New(output).With().Timestamp().Str("module", name).Logger()
}

// Setup sends logs to the console and, when path is set, appends them to
// that file as JSON. The returned file must be closed by the caller.
func Setup(path string) (*os.File, error) {
	if path == "" {
		output.set(console())
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	output.set(zerolog.MultiLevelWriter(console(), f))
	return f, nil
}
