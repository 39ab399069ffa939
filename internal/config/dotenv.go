package config

import (
	"errors"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/subosito/gotenv"
)

// DotEnvTryLoad loads KEY=VALUE pairs from the given file into the process
// environment. Variables that are already set win. A missing file is not an error.
func DotEnvTryLoad(path string) {
	err := gotenv.Load(path)
	if err == nil {
		log.Debug().Str("path", path).Msg("Loaded env file")
		return
	}

	if !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("path", path).Msg("Failed to load env file")
	}
}
