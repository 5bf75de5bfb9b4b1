package icons

import (
	"minimapicons/logger"

	"github.com/rs/zerolog"
)

var iconLog zerolog.Logger = logger.Module("icons")
