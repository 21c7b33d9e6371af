package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"daycare-waitlist/internal/domain/offer"
	"daycare-waitlist/internal/domain/placement"
	"daycare-waitlist/internal/domain/waitlist"
	"daycare-waitlist/internal/infra"
	"daycare-waitlist/internal/infra/memstore"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func mustEntry(t *testing.T, name string) *waitlist.Entry {
	t.Helper()
	e, err := waitlist.NewEntry(uuid.New(), name, 3, "Springfield", now)
	require.NoError(t, err)
	return e
}

func mustPlacement(t *testing.T, providerID uuid.UUID, count int) *placement.Placement {
	t.Helper()
	ages, err := placement.NewAgeRange(2, 4)
	require.NoError(t, err)
	p, err := placement.NewPlacement(providerID, ages, count, now)
	require.NoError(t, err)
	return p
}

func TestStore_WithinCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	e := mustEntry(t, "Ada")

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Waitlist().Insert(ctx, e)
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.Seq())

	err = store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		got, err := tx.Waitlist().FindByID(ctx, e.ID())
		require.NoError(t, err)
		assert.Equal(t, "Ada", got.ChildName())
		assert.Equal(t, int64(1), got.Seq())
		return nil
	})
	require.NoError(t, err)
}

func TestStore_WithinRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	e := mustEntry(t, "Ada")
	boom := errors.New("boom")

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Waitlist().Insert(ctx, e))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Waitlist().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		_, err = tx.Waitlist().FindByID(ctx, e.ID())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		return nil
	})
	require.NoError(t, err)
}

func TestStore_ReadOnlyRejectsWrites(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	err := store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Waitlist().Insert(ctx, mustEntry(t, "Ada"))
	})
	assert.True(t, infra.IsKind(err, infra.KindReadOnly))
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := memstore.New()

	called := false
	err := store.Within(ctx, func(context.Context, shared.Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestWaitlistRepo_OrderAndRemove(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	a, b, c := mustEntry(t, "A"), mustEntry(t, "B"), mustEntry(t, "C")

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, e := range []*waitlist.Entry{a, b, c} {
			if err := tx.Waitlist().Insert(ctx, e); err != nil {
				return err
			}
		}
		return tx.Waitlist().Remove(ctx, b.ID())
	}))

	require.NoError(t, store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		list, err := tx.Waitlist().ListOrdered(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, a.ID(), list[0].ID())
		assert.Equal(t, c.ID(), list[1].ID())

		err = tx.Waitlist().Remove(ctx, b.ID())
		assert.True(t, infra.IsKind(err, infra.KindReadOnly))
		return nil
	}))

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Waitlist().Remove(ctx, b.ID())
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestPlacementRepo_ConsumeOne(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	providerID := uuid.New()
	p := mustPlacement(t, providerID, 1)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Placements().Insert(ctx, p)
	}))

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Placements().ConsumeOne(ctx, p.ID())
	}))

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Placements().ConsumeOne(ctx, p.ID())
	})
	assert.True(t, infra.IsKind(err, infra.KindConflict))

	require.NoError(t, store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		got, err := tx.Placements().FindByID(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, 0, got.AvailableCount())
		assert.Equal(t, 1, got.TotalCount())
		return nil
	}))
}

func TestPlacementRepo_ListByProviderInDeclarationOrder(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	providerID := uuid.New()
	first := mustPlacement(t, providerID, 1)
	other := mustPlacement(t, uuid.New(), 1)
	second := mustPlacement(t, providerID, 2)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, p := range []*placement.Placement{first, other, second} {
			if err := tx.Placements().Insert(ctx, p); err != nil {
				return err
			}
		}
		return nil
	}))

	require.NoError(t, store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		list, err := tx.Placements().ListByProvider(ctx, providerID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, first.ID(), list[0].ID())
		assert.Equal(t, second.ID(), list[1].ID())
		return nil
	}))
}

func TestOfferRepo_PendingUniqueness(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	childID, providerID, placementID := uuid.New(), uuid.New(), uuid.New()

	first, err := offer.NewOffer(childID, providerID, placementID, offer.Details{}, now)
	require.NoError(t, err)
	dup, err := offer.NewOffer(childID, providerID, placementID, offer.Details{}, now)
	require.NoError(t, err)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().Insert(ctx, first)
	}))

	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().Insert(ctx, dup)
	})
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))

	require.NoError(t, first.Respond(offer.DecisionDecline, now))
	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Offers().UpdateStatus(ctx, first); err != nil {
			return err
		}
		return tx.Offers().Insert(ctx, dup)
	}))

	require.NoError(t, store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		pending, err := tx.Offers().FindPending(ctx, childID, providerID)
		require.NoError(t, err)
		require.NotNil(t, pending)
		assert.Equal(t, dup.ID(), pending.ID())

		declined := offer.StatusDeclined
		list, err := tx.Offers().List(ctx, shared.OfferFilter{Status: &declined})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, first.ID(), list[0].ID())

		all, err := tx.Offers().List(ctx, shared.OfferFilter{ChildID: &childID})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, first.ID(), all[0].ID())
		return nil
	}))
}

func TestOfferRepo_CountPendingOnlyForWaitingChildren(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	providerID := uuid.New()
	p := mustPlacement(t, providerID, 3)
	waiting := mustEntry(t, "Ada")
	placed := mustEntry(t, "Bo")
	details := offer.Details{ChildName: "Ada", ChildAge: 3, ProviderName: "Sunny Days"}

	forWaiting, err := offer.NewOffer(waiting.ID(), providerID, p.ID(), details, now)
	require.NoError(t, err)
	forPlaced, err := offer.NewOffer(placed.ID(), providerID, p.ID(), offer.Details{}, now)
	require.NoError(t, err)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, e := range []*waitlist.Entry{waiting, placed} {
			if err := tx.Waitlist().Insert(ctx, e); err != nil {
				return err
			}
		}
		for _, o := range []*offer.Offer{forWaiting, forPlaced} {
			if err := tx.Offers().Insert(ctx, o); err != nil {
				return err
			}
		}
		return nil
	}))

	countPending := func() int {
		var n int
		require.NoError(t, store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			n, err = tx.Offers().CountPendingByPlacement(ctx, p.ID())
			return err
		}))
		return n
	}
	assert.Equal(t, 2, countPending())

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Waitlist().Remove(ctx, placed.ID())
	}))
	assert.Equal(t, 1, countPending(), "an offer whose child left the waitlist no longer counts")

	require.NoError(t, store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		got, err := tx.Offers().FindByID(ctx, forWaiting.ID())
		require.NoError(t, err)
		assert.Equal(t, details, got.Details())
		return nil
	}))
}

func TestOfferRepo_UpdateStatusRequiresPending(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	o, err := offer.NewOffer(uuid.New(), uuid.New(), uuid.New(), offer.Details{}, now)
	require.NoError(t, err)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().Insert(ctx, o)
	}))

	accepted := o.Clone()
	require.NoError(t, accepted.Respond(offer.DecisionAccept, now))
	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().UpdateStatus(ctx, accepted)
	}))

	declined := o.Clone()
	require.NoError(t, declined.Respond(offer.DecisionDecline, now))
	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().UpdateStatus(ctx, declined)
	})
	assert.True(t, infra.IsKind(err, infra.KindConflict))
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	o, err := offer.NewOffer(uuid.New(), uuid.New(), uuid.New(), offer.Details{}, now)
	require.NoError(t, err)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().Insert(ctx, o)
	}))
	require.NoError(t, o.Respond(offer.DecisionAccept, now))

	require.NoError(t, store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		got, err := tx.Offers().FindByID(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, offer.StatusPending, got.Status())
		return nil
	}))
}
