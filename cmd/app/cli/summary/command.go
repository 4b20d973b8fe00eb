package summary

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "exusiai.dev/equipsorter/cmd/app/cli"
	"exusiai.dev/equipsorter/internal/app/appconfig"
	"exusiai.dev/equipsorter/internal/pkg/apperr"
	"exusiai.dev/equipsorter/internal/service"
)

type CommandDeps struct {
	fx.In

	Config         *appconfig.Config
	SummaryService *service.Summary
}

func Command() *cli.Command {
	return command(cliapp.DepsFn[CommandDeps]())
}

func command(depsFn func() (CommandDeps, error)) *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "print the stat profile distribution of an equipment csv as json",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "equipment csv `FILE` to read",
			},
			&cli.IntFlag{
				Name:  "stats-column",
				Usage: "zero-based `INDEX` of the stats column; -1 detects it from the header",
			},
		},
		Action: func(ctx *cli.Context) error {
			deps, err := depsFn()
			if err != nil {
				return err
			}

			input := deps.Config.InputPath
			if ctx.IsSet("input") {
				input = ctx.String("input")
			}
			if input == "" {
				return apperr.ErrInvalidConfig.Msg("no input file selected")
			}
			statsColumn := deps.Config.StatsColumn
			if ctx.IsSet("stats-column") {
				statsColumn = ctx.Int("stats-column")
			}

			summary, err := deps.SummaryService.Summarize(ctx.Context, input, statsColumn)
			if err != nil {
				return err
			}
			return deps.SummaryService.Render(ctx.App.Writer, summary)
		},
	}
}
