package export

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "exusiai.dev/equipsorter/cmd/app/cli"
	"exusiai.dev/equipsorter/internal/service"
)

type CommandDeps struct {
	fx.In

	ExportService *service.Export
}

func Command() *cli.Command {
	return command(cliapp.DepsFn[CommandDeps]())
}

func command(depsFn func() (CommandDeps, error)) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "label every row of an equipment csv and write the augmented table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "equipment csv `FILE` to read",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "existing `FOLDER` to write the export to",
			},
			&cli.BoolFlag{
				Name:  "minimal",
				Usage: "only write rarity, rank, name, stats, processed stats and id",
			},
			&cli.StringFlag{
				Name:  "label-header",
				Usage: "header `NAME` of the derived label column",
			},
			&cli.IntFlag{
				Name:  "stats-column",
				Usage: "zero-based `INDEX` of the stats column; -1 detects it from the header",
			},
			&cli.BoolFlag{
				Name:  "publish",
				Usage: "upload the written file to the configured s3 bucket",
			},
		},
		Action: func(ctx *cli.Context) error {
			deps, err := depsFn()
			if err != nil {
				return err
			}
			return run(ctx, deps)
		},
	}
}
