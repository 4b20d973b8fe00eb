package cli

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"exusiai.dev/equipsorter/internal/app"
	"exusiai.dev/equipsorter/internal/app/appcontext"
)

func Start(module fx.Option) error {
	return app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}

// DepsFn returns a function that builds the application graph and populates
// a command's dependency struct from it.
func DepsFn[T any]() func() (T, error) {
	return func() (T, error) {
		var deps T
		if err := Start(fx.Populate(&deps)); err != nil {
			return deps, errors.Wrap(err, "failed to start application")
		}
		return deps, nil
	}
}
