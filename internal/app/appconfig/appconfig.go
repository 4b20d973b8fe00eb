package appconfig

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"exusiai.dev/equipsorter/internal/app/appcontext"
	"exusiai.dev/equipsorter/internal/pkg/apperr"
	"exusiai.dev/equipsorter/internal/pkg/projectpath"
)

const EnvPrefix = "equipsorter"

func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load(filepath.Join(projectpath.Root, ".env"))
	if err != nil {
		log.Trace().Err(err).Msg("no .env file loaded")
	}

	var config ConfigSpec
	err = envconfig.Process(EnvPrefix, &config)
	if err != nil {
		_ = envconfig.Usage(EnvPrefix, &config)
		return nil, apperr.ErrInvalidConfig.Msg("failed to parse configuration: %s. More info on how to configure equipsorter is located at https://pkg.go.dev/exusiai.dev/equipsorter/internal/app/appconfig#ConfigSpec", err)
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}
