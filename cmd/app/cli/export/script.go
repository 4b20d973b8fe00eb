package export

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"exusiai.dev/equipsorter/internal/service"
)

func run(ctx *cli.Context, deps CommandDeps) error {
	job := jobFromFlags(ctx, deps.ExportService.JobFromConfig())

	log.Info().
		Str("input", job.InputPath).
		Str("output", job.OutputDir).
		Bool("minimal", job.Minimal).
		Msg("running export")

	result, err := deps.ExportService.Run(ctx.Context, job)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "New %s CSV file has been saved to %s\n", kind(job), result.OutputPath)
	if result.PublishedKey != "" {
		fmt.Fprintf(ctx.App.Writer, "Published as %s\n", result.PublishedKey)
	}
	return nil
}

func jobFromFlags(ctx *cli.Context, job service.ExportJob) service.ExportJob {
	if ctx.IsSet("input") {
		job.InputPath = ctx.String("input")
	}
	if ctx.IsSet("output") {
		job.OutputDir = ctx.String("output")
	}
	if ctx.IsSet("minimal") {
		job.Minimal = ctx.Bool("minimal")
	}
	if ctx.IsSet("label-header") {
		job.LabelHeader = ctx.String("label-header")
	}
	if ctx.IsSet("stats-column") {
		job.StatsColumn = ctx.Int("stats-column")
	}
	if ctx.IsSet("publish") {
		job.Publish = ctx.Bool("publish")
	}
	return job
}

func kind(job service.ExportJob) string {
	if job.Minimal {
		return "minimal"
	}
	return "full"
}
