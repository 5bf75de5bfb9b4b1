package ui

import (
	"minimapicons/logger"

	"github.com/rs/zerolog"
)

var uiLog zerolog.Logger = logger.Module("ui")
