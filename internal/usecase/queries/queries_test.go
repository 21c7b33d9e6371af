package queries_test

import (
	"context"
	"testing"
	"time"

	"daycare-waitlist/internal/domain/account"
	"daycare-waitlist/internal/domain/offer"
	"daycare-waitlist/internal/infra/memstore"
	"daycare-waitlist/internal/pkg/clock"
	"daycare-waitlist/internal/pkg/errs"
	"daycare-waitlist/internal/pkg/metrics"
	"daycare-waitlist/internal/testutil"
	"daycare-waitlist/internal/usecase/commands"
	"daycare-waitlist/internal/usecase/queries"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	ctx      context.Context
	store    *memstore.Store
	seed     *testutil.Seeder
	offers   commands.OfferCommands
	matching queries.MatchingQueries
	waitlist queries.WaitlistQueries
}

func newEnv(t *testing.T) *env {
	store := memstore.New()
	m := metrics.New()
	return &env{
		ctx:      context.Background(),
		store:    store,
		seed:     testutil.NewSeeder(t, store),
		offers:   commands.NewOfferCommands(store, clock.NewSteppingClock(testutil.BaseTime, time.Second), m),
		matching: queries.NewMatchingQueries(store, m),
		waitlist: queries.NewWaitlistQueries(store),
	}
}

func (e *env) offerAndRespond(t *testing.T, childID, providerID, placementID uuid.UUID, d offer.Decision) uuid.UUID {
	t.Helper()
	v, err := e.offers.CreateOffer(e.ctx, commands.CreateOfferInput{ChildID: childID, ProviderID: providerID, PlacementID: placementID})
	require.NoError(t, err)
	if d != "" {
		_, err = e.offers.RespondToOffer(e.ctx, v.ID, d)
		require.NoError(t, err)
	}
	return v.ID
}

func childIDs(cs []queries.CandidateView) []uuid.UUID {
	ids := make([]uuid.UUID, len(cs))
	for i, c := range cs {
		ids[i] = c.ChildID
	}
	return ids
}

func TestRankCandidates_FIFOThenCapacity(t *testing.T) {
	e := newEnv(t)
	client := e.seed.Client("Pat")
	provider := e.seed.Provider("Sunny Days", "Springfield")
	pl := e.seed.Placement(provider.ID(), 2, 4, 1)
	a := e.seed.Entry(client.ID(), "A", 3, "Springfield")
	b := e.seed.Entry(client.ID(), "B", 3, "Springfield")

	got, err := e.matching.RankCandidates(e.ctx, provider.ID())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a.ID(), b.ID()}, childIDs(got))
	assert.Equal(t, pl.ID(), got[0].PlacementID)
	assert.Zero(t, got[0].Distance)

	e.offerAndRespond(t, a.ID(), provider.ID(), pl.ID(), offer.DecisionAccept)

	got, err = e.matching.RankCandidates(e.ctx, provider.ID())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRankCandidates_FiltersAndExistingOffer(t *testing.T) {
	e := newEnv(t)
	client := e.seed.Client("Pat")
	provider := e.seed.Provider("Sunny Days", "Springfield")
	pl := e.seed.Placement(provider.ID(), 2, 4, 3)
	near := e.seed.Entry(client.ID(), "Near", 3, "Springfield")
	far := e.seed.Entry(client.ID(), "Far", 2, "Shelbyville")
	tooOld := e.seed.Entry(client.ID(), "Old", 6, "Springfield")
	offered := e.seed.Entry(client.ID(), "Offered", 4, "Springfield")
	declined := e.seed.Entry(client.ID(), "Declined", 4, "Springfield")

	e.offerAndRespond(t, offered.ID(), provider.ID(), pl.ID(), "")
	e.offerAndRespond(t, declined.ID(), provider.ID(), pl.ID(), offer.DecisionDecline)

	got, err := e.matching.RankCandidates(e.ctx, provider.ID())
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{near.ID(), declined.ID(), far.ID()}, childIDs(got))
	assert.NotContains(t, childIDs(got), tooOld.ID())
	require.NotNil(t, got[1].ExistingOffer)
	assert.Equal(t, "declined", *got[1].ExistingOffer)
	assert.Nil(t, got[0].ExistingOffer)
	assert.Positive(t, got[2].Distance)
}

func TestRankCandidates_Errors(t *testing.T) {
	e := newEnv(t)

	_, err := e.matching.RankCandidates(e.ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrNotFound))

	provider := e.seed.Provider("Sunny Days", "Springfield")
	got, err := e.matching.RankCandidates(e.ctx, provider.ID())
	require.NoError(t, err)
	assert.Empty(t, got, "no placements is an empty result, not an error")
}

func TestRankCandidates_Deterministic(t *testing.T) {
	e := newEnv(t)
	client := e.seed.Client("Pat")
	provider := e.seed.Provider("Sunny Days", "12 Elm Road")
	e.seed.Placement(provider.ID(), 0, 5, 10)
	for _, loc := range []string{"12 Elm Rd", "12 Elm Road", "Elsewhere", "12 elm road", "99 Oak Ave"} {
		e.seed.Entry(client.ID(), "Kid "+loc, 3, loc)
	}

	first, err := e.matching.RankCandidates(e.ctx, provider.ID())
	require.NoError(t, err)
	for range 5 {
		again, err := e.matching.RankCandidates(e.ctx, provider.ID())
		require.NoError(t, err)
		assert.Equal(t, childIDs(first), childIDs(again))
	}
}

func TestPositionOf(t *testing.T) {
	e := newEnv(t)
	client := e.seed.Client("Pat")
	provider := e.seed.Provider("Sunny Days", "Springfield")
	pl := e.seed.Placement(provider.ID(), 0, 5, 1)
	a := e.seed.Entry(client.ID(), "A", 3, "Springfield")
	b := e.seed.Entry(client.ID(), "B", 3, "Springfield")
	c := e.seed.Entry(client.ID(), "C", 3, "Springfield")

	position := func(id uuid.UUID) *int {
		p, err := e.waitlist.PositionOf(e.ctx, id)
		require.NoError(t, err)
		return p
	}

	require.NotNil(t, position(c.ID()))
	assert.Equal(t, 3, *position(c.ID()))
	assert.Nil(t, position(uuid.New()))

	e.offerAndRespond(t, b.ID(), provider.ID(), pl.ID(), offer.DecisionAccept)

	assert.Equal(t, 1, *position(a.ID()))
	assert.Nil(t, position(b.ID()))
	assert.Equal(t, 2, *position(c.ID()), "later entries shift down with no gap")

	list, err := e.waitlist.List(e.ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.ID(), list[0].ID)
	assert.Equal(t, 2, *list[1].Position)
}

func TestAccountAndListingQueries(t *testing.T) {
	e := newEnv(t)
	pat := e.seed.Client("Pat")
	sam := e.seed.Client("Sam")
	provider := e.seed.Provider("Sunny Days", "Springfield")
	other := e.seed.Provider("Rainbow", "Shelbyville")
	pl := e.seed.Placement(provider.ID(), 0, 5, 2)
	e.seed.Placement(other.ID(), 0, 5, 1)
	e.seed.Entry(sam.ID(), "First", 3, "Springfield")
	mine := e.seed.Entry(pat.ID(), "Mine", 3, "Springfield")
	placed := e.seed.Entry(pat.ID(), "Placed", 3, "Springfield")
	e.offerAndRespond(t, placed.ID(), provider.ID(), pl.ID(), offer.DecisionAccept)
	e.offerAndRespond(t, mine.ID(), provider.ID(), pl.ID(), "")

	accounts := queries.NewAccountQueries(e.store)

	t.Run("client view lists waiting children with positions", func(t *testing.T) {
		v, err := accounts.GetClient(e.ctx, pat.ID())
		require.NoError(t, err)
		require.Len(t, v.Children, 1)
		assert.Equal(t, mine.ID(), v.Children[0].ID)
		assert.Equal(t, 2, *v.Children[0].Position)

		_, err = accounts.GetClient(e.ctx, provider.ID())
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("provider view lists placements", func(t *testing.T) {
		v, err := accounts.GetProvider(e.ctx, provider.ID())
		require.NoError(t, err)
		require.Len(t, v.Placements, 1)
		assert.Equal(t, 1, v.Placements[0].AvailableCount)
	})

	t.Run("account by kind", func(t *testing.T) {
		v, err := accounts.GetAccount(e.ctx, provider.ID(), account.KindProvider)
		require.NoError(t, err)
		assert.Equal(t, "provider", v.Kind)

		_, err = accounts.GetAccount(e.ctx, provider.ID(), account.KindClient)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("placements filtered by provider", func(t *testing.T) {
		q := queries.NewPlacementQueries(e.store)
		all, err := q.List(e.ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		id := other.ID()
		mineOnly, err := q.List(e.ctx, &id)
		require.NoError(t, err)
		require.Len(t, mineOnly, 1)
		assert.Equal(t, other.ID(), mineOnly[0].ProviderID)
	})

	t.Run("offers filtered by status", func(t *testing.T) {
		q := queries.NewOfferQueries(e.store)
		pending := offer.StatusPending
		list, err := q.List(e.ctx, shared.OfferFilter{Status: &pending})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, mine.ID(), list[0].ChildID)

		all, err := q.List(e.ctx, shared.OfferFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("accepted offer keeps the placed child's details", func(t *testing.T) {
		accepted := offer.StatusAccepted
		list, err := queries.NewOfferQueries(e.store).List(e.ctx, shared.OfferFilter{Status: &accepted})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, placed.ID(), list[0].ChildID)
		assert.Equal(t, "Placed", list[0].ChildName)
		assert.Equal(t, 3, list[0].ChildAge)
		assert.Equal(t, "Springfield", list[0].ChildLocation)
		assert.Equal(t, "Sunny Days", list[0].ProviderName)
		assert.Equal(t, "Springfield", list[0].ProviderLocation)
	})

	t.Run("stats", func(t *testing.T) {
		s, err := queries.NewStatsQueries(e.store).Stats(e.ctx)
		require.NoError(t, err)
		assert.Equal(t, queries.StatsView{
			Clients:        2,
			Providers:      2,
			WaitlistSize:   2,
			Placements:     2,
			PendingOffers:  1,
			AcceptedOffers: 1,
		}, *s)
	})
}
