package commands

//go:generate mockgen -source=placement.go -destination=../mocks/commands/placement_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"daycare-waitlist/internal/domain/placement"
	"daycare-waitlist/internal/pkg/clock"
	"daycare-waitlist/internal/pkg/errs"
	"daycare-waitlist/internal/usecase/queries"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
)

type DeclareCapacityInput struct {
	ProviderID uuid.UUID
	MinAge     int
	MaxAge     int
	Count      int
}

type PlacementCommands interface {
	DeclareCapacity(ctx context.Context, in DeclareCapacityInput) (*queries.PlacementView, error)
}

type placementCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPlacementCommands(uow shared.UnitOfWork, clk clock.Clock) PlacementCommands {
	return &placementCommandsImpl{uow: uow, clock: clk}
}

func (c *placementCommandsImpl) DeclareCapacity(ctx context.Context, in DeclareCapacityInput) (*queries.PlacementView, error) {
	ages, err := placement.NewAgeRange(in.MinAge, in.MaxAge)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	p, err := placement.NewPlacement(in.ProviderID, ages, in.Count, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Accounts().FindProviderByID(ctx, in.ProviderID); err != nil {
			return shared.TranslateNotFound(err, "provider")
		}
		return tx.Placements().Insert(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "capacity declared",
		"placement_id", p.ID(),
		"provider_id", p.ProviderID(),
		"ages", p.Ages().String(),
		"count", p.TotalCount())

	view := queries.NewPlacementView(p)
	return &view, nil
}
