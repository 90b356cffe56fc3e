package busfx_test

import (
	"context"
	"testing"

	"go.uber.org/fx"

	"github.com/busworks/busbar/busfx"
	"github.com/busworks/busbar/core"
)

func TestModule_ProvidesBus(t *testing.T) {
	var bus *core.Bus

	app := fx.New(
		busfx.Module(core.WithName("app-bus")),
		fx.Invoke(func(b *core.Bus) { bus = b }),
		fx.NopLogger,
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		t.Fatalf("app.Start() failed: %v", err)
	}

	if bus == nil {
		t.Fatal("bus not injected")
	}
	if bus.Name() != "app-bus" {
		t.Errorf("bus name = %q, want %q", bus.Name(), "app-bus")
	}

	bus.On("x", func(any) {})
	if !bus.Active() {
		t.Error("bus not active after registration")
	}

	if err := app.Stop(ctx); err != nil {
		t.Fatalf("app.Stop() failed: %v", err)
	}

	// the stop hook destroys the bus
	if bus.Active() || bus.HasListeners() {
		t.Error("bus not destroyed on shutdown")
	}
}

func TestModule_Defaults(t *testing.T) {
	var bus *core.Bus

	app := fx.New(
		busfx.Module(),
		fx.Invoke(func(b *core.Bus) { bus = b }),
		fx.NopLogger,
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		t.Fatalf("app.Start() failed: %v", err)
	}
	defer app.Stop(ctx)

	if bus.Name() != core.DefaultName {
		t.Errorf("bus name = %q, want %q", bus.Name(), core.DefaultName)
	}
}
