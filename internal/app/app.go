package app

import (
	"time"

	"go.uber.org/fx"

	"exusiai.dev/equipsorter/internal/app/appconfig"
	"exusiai.dev/equipsorter/internal/app/appcontext"
	"exusiai.dev/equipsorter/internal/infra"
	"exusiai.dev/equipsorter/internal/pkg/logger"
	"exusiai.dev/equipsorter/internal/repo"
	"exusiai.dev/equipsorter/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		// fx returns err from Start
		return append([]fx.Option{fx.WithLogger(logger.Fx), fx.Error(err)}, additionalOpts...)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
		fx.StopTimeout(30 * time.Second),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
