package classify

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/equipsorter/internal/pkg/statprofile"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Usage:     "print the stat profile label of each stat string argument",
		ArgsUsage: "STATS...",
		Action: func(ctx *cli.Context) error {
			for _, stats := range ctx.Args().Slice() {
				fmt.Fprintln(ctx.App.Writer, statprofile.Classify(null.StringFrom(stats)))
			}
			return nil
		},
	}
}
