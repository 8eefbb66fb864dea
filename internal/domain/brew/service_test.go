package brew

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap/zaptest"

	"github.com/xenking/barista/internal/domain/drink"
)

// --- Helpers ---

func newTestService(t *testing.T, locale *drink.Locale) *Service {
	t.Helper()

	svc, err := NewService(zaptest.NewLogger(t), locale,
		tracenoop.NewTracerProvider(),
		metricnoop.NewMeterProvider(),
	)
	require.NoError(t, err)
	return svc
}

// --- Tests ---

func TestBrew_Samples(t *testing.T) {
	svc := newTestService(t, nil)

	tickets := svc.Brew(context.Background(), Samples())
	require.Len(t, tickets, 3)

	want := []string{
		"Espresso, single, 30ml",
		"Cappuccino with oat milk with extra foam, syrup Caramel (2 doses), 300ml",
		"Latte with almond milk, syrup Vanilla (1 doses), 300ml, with latte art",
	}
	for i, ticket := range tickets {
		require.True(t, ticket.OK(), "ticket %d: %v", i, ticket.Err)
		assert.Equal(t, want[i], ticket.Description)
		assert.NotEqual(t, uuid.Nil, ticket.ID)
	}
	assert.Equal(t, drink.DecorLatteArt, tickets[2].Drink.Decor())
}

func TestBrew_RejectionDoesNotStopBatch(t *testing.T) {
	svc := newTestService(t, nil)

	tickets := svc.Brew(context.Background(), []drink.Spec{
		{Kind: drink.KindLatte, Milk: drink.MilkNone},
		{Kind: drink.KindEspresso, Common: drink.Common{
			Additives: []drink.Additive{drink.AdditiveMarshmallow},
		}},
		{Kind: drink.KindEspresso, DoubleShot: true},
	})
	require.Len(t, tickets, 3)

	assert.False(t, tickets[0].OK())
	assert.Nil(t, tickets[0].Drink)
	assert.Empty(t, tickets[0].Description)
	require.ErrorIs(t, tickets[0].Err, drink.ErrInvalidDrink)
	assert.EqualError(t, tickets[0].Err, "latte requires milk")

	assert.EqualError(t, tickets[1].Err, "espresso forbids additives")

	require.True(t, tickets[2].OK())
	assert.Equal(t, "Espresso, double, 60ml", tickets[2].Description)
}

func TestBrew_Locale(t *testing.T) {
	svc := newTestService(t, drink.LocaleRussian)

	tickets := svc.Brew(context.Background(), Samples()[:1])
	require.Len(t, tickets, 1)
	assert.Equal(t, "Эспрессо, одинарный, 30мл", tickets[0].Description)
}

func TestBrew_TicketIDs(t *testing.T) {
	svc := newTestService(t, nil)
	ids := []uuid.UUID{
		uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		uuid.MustParse("00000000-0000-0000-0000-000000000002"),
	}
	next := 0
	svc.newID = func() uuid.UUID {
		id := ids[next]
		next++
		return id
	}

	tickets := svc.Brew(context.Background(), []drink.Spec{
		{Kind: drink.KindEspresso},
		{Kind: "mocha"},
	})

	assert.Equal(t, ids[0], tickets[0].ID)
	assert.Equal(t, ids[1], tickets[1].ID)
	assert.Equal(t, drink.Kind("mocha"), tickets[1].Spec.Kind)
	require.Error(t, tickets[1].Err)
}

func TestBrew_Empty(t *testing.T) {
	svc := newTestService(t, nil)
	assert.Empty(t, svc.Brew(context.Background(), nil))
}
