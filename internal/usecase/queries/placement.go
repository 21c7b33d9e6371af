package queries

//go:generate mockgen -source=placement.go -destination=../mocks/queries/placement_mock.go -package=queriesmock

import (
	"context"

	"daycare-waitlist/internal/domain/placement"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
)

type PlacementQueries interface {
	// List returns all placements, or only the provider's when providerID is set.
	List(ctx context.Context, providerID *uuid.UUID) ([]PlacementView, error)
}

type placementQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewPlacementQueries(uow shared.UnitOfWork) PlacementQueries {
	return &placementQueriesImpl{uow: uow}
}

func (q *placementQueriesImpl) List(ctx context.Context, providerID *uuid.UUID) ([]PlacementView, error) {
	var views []PlacementView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var (
			list []*placement.Placement
			err  error
		)
		if providerID != nil {
			list, err = tx.Placements().ListByProvider(ctx, *providerID)
		} else {
			list, err = tx.Placements().List(ctx)
		}
		if err != nil {
			return err
		}
		views = toPlacementViews(list)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func toPlacementViews(list []*placement.Placement) []PlacementView {
	views := make([]PlacementView, len(list))
	for i, p := range list {
		views[i] = NewPlacementView(p)
	}
	return views
}
