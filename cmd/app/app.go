package app

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"exusiai.dev/equipsorter/cmd/app/cli/classify"
	"exusiai.dev/equipsorter/cmd/app/cli/export"
	"exusiai.dev/equipsorter/cmd/app/cli/summary"
	"exusiai.dev/equipsorter/internal/pkg/apperr"
	"exusiai.dev/equipsorter/internal/pkg/bininfo"
)

func New() *cli.App {
	return &cli.App{
		Name:        "equipsorter",
		Usage:       "label equipment stat lines and export them to csv",
		Description: "Reads an equipment csv export, derives a stat profile label such as \"pure attack\" or \"2/1 strength\" for every row and writes the augmented table back to csv.",
		Version:     bininfo.Version + " (built " + bininfo.BuildTime + ")",
		Commands: []*cli.Command{
			export.Command(),
			summary.Command(),
			classify.Command(),
		},
	}
}

func Run() {
	if err := New().Run(os.Args); err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			log.Error().Err(err).Str("code", appErr.ErrorCode).Msg("command failed")
			os.Exit(appErr.ExitCode)
		}
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
