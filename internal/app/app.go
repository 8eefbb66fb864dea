package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/barista/internal/domain/brew"
	"github.com/xenking/barista/internal/domain/drink"
	"github.com/xenking/barista/internal/menu"
)

// Run loads the configured menus (or the house samples), brews them and
// prints one numbered description per drink to stdout. It is the single
// wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	return run(ctx, lg, m.TracerProvider(), m.MeterProvider(), cfg, os.Stdout)
}

func run(
	ctx context.Context,
	lg *zap.Logger,
	tp trace.TracerProvider,
	mp metric.MeterProvider,
	cfg *Config,
	out io.Writer,
) error {
	ctx = zctx.Base(ctx, lg)

	locale := drink.MatchLocale(cfg.Locale)
	lg.Info("Initializing",
		zap.Stringer("locale", locale.Tag()),
		zap.Strings("menu_files", cfg.MenuFiles),
	)

	specs, err := loadSpecs(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "load menus")
	}

	svc, err := brew.NewService(lg, locale, tp, mp)
	if err != nil {
		return errors.Wrap(err, "create brew service")
	}

	tickets := svc.Brew(ctx, specs)

	rejected := 0
	for i, t := range tickets {
		if t.OK() {
			_, err = fmt.Fprintf(out, "%d. %s\n", i+1, t.Description)
		} else {
			rejected++
			_, err = fmt.Fprintf(out, "%d. rejected: %v\n", i+1, t.Err)
		}
		if err != nil {
			return errors.Wrap(err, "write ticket")
		}
	}

	lg.Info("Brewed",
		zap.Int("drinks", len(tickets)),
		zap.Int("rejected", rejected),
	)

	if cfg.Strict && rejected > 0 {
		return errors.Errorf("%d of %d drinks rejected", rejected, len(tickets))
	}
	return nil
}

func loadSpecs(ctx context.Context, cfg *Config) ([]drink.Spec, error) {
	if len(cfg.MenuFiles) == 0 {
		return brew.Samples(), nil
	}

	entries, err := menu.LoadAll(ctx, cfg.MenuFiles)
	if err != nil {
		return nil, err
	}

	specs := make([]drink.Spec, len(entries))
	for i, e := range entries {
		specs[i] = e.Spec
	}
	return specs, nil
}
