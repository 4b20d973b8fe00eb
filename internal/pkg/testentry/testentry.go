package testentry

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"exusiai.dev/equipsorter/internal/app"
	"exusiai.dev/equipsorter/internal/app/appcontext"
)

func Populate(t zerolog.TestingLog, targets ...any) {
	// for testing, logger is too annoying. therefore, we use a NopLogger here
	opts := []fx.Option{fx.NopLogger}
	opts = append(opts, fx.Populate(targets...))
	opts = append(opts, fx.Invoke(func() {
		log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))
	}))

	fxApp := app.New(appcontext.Declare(appcontext.EnvTest), opts...)

	if err := fxApp.Start(context.Background()); err != nil {
		panic(err)
	}
}
