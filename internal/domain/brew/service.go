// Package brew turns batches of drink specs into tickets: built drinks with
// their descriptions, or the reason a drink was refused.
package brew

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/barista/internal/domain/drink"
)

const instrumentationName = "github.com/xenking/barista/internal/domain/brew"

// Ticket is the outcome of brewing one spec. Exactly one of Drink and Err is
// set.
type Ticket struct {
	ID          uuid.UUID
	Spec        drink.Spec
	Drink       *drink.Drink
	Description string
	Err         error
}

// OK reports whether the drink was built.
func (t Ticket) OK() bool {
	return t.Err == nil
}

// Service builds drinks and renders their descriptions.
type Service struct {
	lg     *zap.Logger
	locale *drink.Locale
	tracer trace.Tracer
	newID  func() uuid.UUID

	built    metric.Int64Counter
	rejected metric.Int64Counter
}

// NewService creates a Service rendering descriptions in locale. A nil locale
// means English.
func NewService(
	lg *zap.Logger,
	locale *drink.Locale,
	tp trace.TracerProvider,
	mp metric.MeterProvider,
) (*Service, error) {
	if locale == nil {
		locale = drink.LocaleEnglish
	}

	meter := mp.Meter(instrumentationName)
	built, err := meter.Int64Counter("barista.drinks.built",
		metric.WithDescription("Drinks that passed validation"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create built counter")
	}
	rejected, err := meter.Int64Counter("barista.drinks.rejected",
		metric.WithDescription("Drinks refused at construction"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create rejected counter")
	}

	return &Service{
		lg:       lg,
		locale:   locale,
		tracer:   tp.Tracer(instrumentationName),
		newID:    uuid.New,
		built:    built,
		rejected: rejected,
	}, nil
}

// Brew builds every spec independently. A spec that fails validation yields
// a ticket carrying the error; it never stops the batch.
func (s *Service) Brew(ctx context.Context, specs []drink.Spec) []Ticket {
	ctx, span := s.tracer.Start(ctx, "Brew",
		trace.WithAttributes(attribute.Int("barista.batch_size", len(specs))),
	)
	defer span.End()

	tickets := make([]Ticket, len(specs))
	rejected := 0
	for i, spec := range specs {
		tickets[i] = s.brewOne(ctx, spec)
		if !tickets[i].OK() {
			rejected++
		}
	}

	span.SetAttributes(attribute.Int("barista.rejected", rejected))
	if rejected > 0 {
		span.SetStatus(codes.Error, "some drinks were rejected")
	}
	return tickets
}

func (s *Service) brewOne(ctx context.Context, spec drink.Spec) Ticket {
	t := Ticket{ID: s.newID(), Spec: spec}
	kind := metric.WithAttributes(attribute.String("kind", string(spec.Kind)))

	d, err := drink.Build(spec)
	if err != nil {
		t.Err = err
		s.rejected.Add(ctx, 1, kind)
		s.lg.Warn("Drink rejected",
			zap.Stringer("ticket", t.ID),
			zap.String("kind", string(spec.Kind)),
			zap.Error(err),
		)
		return t
	}

	t.Drink = d
	t.Description = drink.Render(d, s.locale)
	s.built.Add(ctx, 1, kind)
	s.lg.Debug("Drink built",
		zap.Stringer("ticket", t.ID),
		zap.String("kind", string(spec.Kind)),
		zap.String("description", t.Description),
	)
	return t
}
