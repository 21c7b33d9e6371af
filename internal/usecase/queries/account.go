package queries

//go:generate mockgen -source=account.go -destination=../mocks/queries/account_mock.go -package=queriesmock

import (
	"context"

	"daycare-waitlist/internal/domain/account"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
)

type AccountQueries interface {
	// GetClient returns the client with its children still on the waitlist and their positions.
	GetClient(ctx context.Context, id uuid.UUID) (*ClientView, error)
	GetProvider(ctx context.Context, id uuid.UUID) (*ProviderView, error)
	GetAccount(ctx context.Context, id uuid.UUID, kind account.Kind) (*AccountView, error)
}

type accountQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewAccountQueries(uow shared.UnitOfWork) AccountQueries {
	return &accountQueriesImpl{uow: uow}
}

func (q *accountQueriesImpl) GetClient(ctx context.Context, id uuid.UUID) (*ClientView, error) {
	var view *ClientView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Accounts().FindClientByID(ctx, id)
		if err != nil {
			return shared.TranslateNotFound(err, "client")
		}
		all, err := tx.Waitlist().ListOrdered(ctx)
		if err != nil {
			return err
		}

		children := make([]EntryView, 0)
		for i, e := range all {
			if e.ClientID() != id {
				continue
			}
			position := i + 1
			children = append(children, NewEntryView(e, &position))
		}

		view = &ClientView{
			ID:        c.ID(),
			Email:     c.Email().String(),
			Name:      c.Name(),
			CreatedAt: c.CreatedAt(),
			Children:  children,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *accountQueriesImpl) GetProvider(ctx context.Context, id uuid.UUID) (*ProviderView, error) {
	var view *ProviderView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Accounts().FindProviderByID(ctx, id)
		if err != nil {
			return shared.TranslateNotFound(err, "provider")
		}
		placements, err := tx.Placements().ListByProvider(ctx, id)
		if err != nil {
			return err
		}

		view = &ProviderView{
			ID:         p.ID(),
			Email:      p.Email().String(),
			Name:       p.Name(),
			Location:   p.Location(),
			CreatedAt:  p.CreatedAt(),
			Placements: toPlacementViews(placements),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *accountQueriesImpl) GetAccount(ctx context.Context, id uuid.UUID, kind account.Kind) (*AccountView, error) {
	var view AccountView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		switch kind {
		case account.KindClient:
			c, err := tx.Accounts().FindClientByID(ctx, id)
			if err != nil {
				return shared.TranslateNotFound(err, "client")
			}
			view = NewClientAccountView(c)
		case account.KindProvider:
			p, err := tx.Accounts().FindProviderByID(ctx, id)
			if err != nil {
				return shared.TranslateNotFound(err, "provider")
			}
			view = NewProviderAccountView(p)
		default:
			return account.ErrInvalidKind
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}
