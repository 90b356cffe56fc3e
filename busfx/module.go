// Package busfx integrates busbar into go.uber.org/fx applications.
package busfx

import (
	"context"

	"go.uber.org/fx"

	"github.com/busworks/busbar"
	"github.com/busworks/busbar/core"
)

// Module provides a *core.Bus to the fx graph. The bus is seeded from the
// process-wide defaults exactly like busbar.New, with opts applied on top,
// and is destroyed when the application stops.
func Module(opts ...core.Option) fx.Option {
	return fx.Module("busbar",
		fx.Provide(func() *core.Bus { return busbar.New(opts...) }),
		fx.Invoke(registerLifecycle),
	)
}

func registerLifecycle(lc fx.Lifecycle, b *core.Bus) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			b.Destroy()
			return nil
		},
	})
}
