package queries

//go:generate mockgen -source=stats.go -destination=../mocks/queries/stats_mock.go -package=queriesmock

import (
	"context"

	"daycare-waitlist/internal/domain/offer"
	"daycare-waitlist/internal/usecase/shared"
)

type StatsQueries interface {
	Stats(ctx context.Context) (*StatsView, error)
}

type statsQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewStatsQueries(uow shared.UnitOfWork) StatsQueries {
	return &statsQueriesImpl{uow: uow}
}

func (q *statsQueriesImpl) Stats(ctx context.Context) (*StatsView, error) {
	var s StatsView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if s.Clients, err = tx.Accounts().CountClients(ctx); err != nil {
			return err
		}
		if s.Providers, err = tx.Accounts().CountProviders(ctx); err != nil {
			return err
		}
		if s.WaitlistSize, err = tx.Waitlist().Count(ctx); err != nil {
			return err
		}
		if s.Placements, err = tx.Placements().Count(ctx); err != nil {
			return err
		}
		if s.PendingOffers, err = tx.Offers().CountByStatus(ctx, offer.StatusPending); err != nil {
			return err
		}
		s.AcceptedOffers, err = tx.Offers().CountByStatus(ctx, offer.StatusAccepted)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}
