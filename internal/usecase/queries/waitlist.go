package queries

//go:generate mockgen -source=waitlist.go -destination=../mocks/queries/waitlist_mock.go -package=queriesmock

import (
	"context"

	"daycare-waitlist/internal/domain/waitlist"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
)

type WaitlistQueries interface {
	List(ctx context.Context) ([]EntryView, error)
	// PositionOf returns nil when the entry is not on the waitlist.
	PositionOf(ctx context.Context, childID uuid.UUID) (*int, error)
}

type waitlistQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewWaitlistQueries(uow shared.UnitOfWork) WaitlistQueries {
	return &waitlistQueriesImpl{uow: uow}
}

func (q *waitlistQueriesImpl) List(ctx context.Context) ([]EntryView, error) {
	var views []EntryView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		entries, err := tx.Waitlist().ListOrdered(ctx)
		if err != nil {
			return err
		}
		views = make([]EntryView, len(entries))
		for i, e := range entries {
			pos := i + 1
			views[i] = NewEntryView(e, &pos)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *waitlistQueriesImpl) PositionOf(ctx context.Context, childID uuid.UUID) (*int, error) {
	var position *int
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		entries, err := tx.Waitlist().ListOrdered(ctx)
		if err != nil {
			return err
		}
		if rank, ok := waitlist.Position(entries, childID); ok {
			position = &rank
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return position, nil
}
