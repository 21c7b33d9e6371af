package commands

//go:generate mockgen -source=waitlist.go -destination=../mocks/commands/waitlist_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"daycare-waitlist/internal/domain/waitlist"
	"daycare-waitlist/internal/infra"
	"daycare-waitlist/internal/pkg/clock"
	"daycare-waitlist/internal/pkg/errs"
	"daycare-waitlist/internal/usecase/queries"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
)

type EnrollInput struct {
	ClientID  uuid.UUID
	ChildName string
	Age       int
	Location  string
}

type WaitlistCommands interface {
	Enroll(ctx context.Context, in EnrollInput) (*queries.EntryView, error)
}

type waitlistCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewWaitlistCommands(uow shared.UnitOfWork, clk clock.Clock) WaitlistCommands {
	return &waitlistCommandsImpl{uow: uow, clock: clk}
}

func (c *waitlistCommandsImpl) Enroll(ctx context.Context, in EnrollInput) (*queries.EntryView, error) {
	entry, err := waitlist.NewEntry(in.ClientID, in.ChildName, in.Age, in.Location, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var position int
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Accounts().FindClientByID(ctx, in.ClientID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Markf(errs.ErrValidation, "client %s is not registered", in.ClientID)
			}
			return err
		}
		if err := tx.Waitlist().Insert(ctx, entry); err != nil {
			return err
		}
		// ranked by sequence: entries committed concurrently after this one do not count
		entries, err := tx.Waitlist().ListOrdered(ctx)
		if err != nil {
			return err
		}
		rank, ok := waitlist.Position(entries, entry.ID())
		if !ok {
			return errs.Newf("waitlist entry %s missing after insert", entry.ID())
		}
		position = rank
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "child enrolled",
		"entry_id", entry.ID(),
		"client_id", entry.ClientID(),
		"position", position)

	view := queries.NewEntryView(entry, &position)
	return &view, nil
}
