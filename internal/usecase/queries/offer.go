package queries

//go:generate mockgen -source=offer.go -destination=../mocks/queries/offer_mock.go -package=queriesmock

import (
	"context"

	"daycare-waitlist/internal/usecase/shared"
)

type OfferQueries interface {
	List(ctx context.Context, filter shared.OfferFilter) ([]OfferView, error)
}

type offerQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewOfferQueries(uow shared.UnitOfWork) OfferQueries {
	return &offerQueriesImpl{uow: uow}
}

func (q *offerQueriesImpl) List(ctx context.Context, filter shared.OfferFilter) ([]OfferView, error) {
	var views []OfferView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		offers, err := tx.Offers().List(ctx, filter)
		if err != nil {
			return err
		}
		views = make([]OfferView, len(offers))
		for i, o := range offers {
			views[i] = NewOfferView(o)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
