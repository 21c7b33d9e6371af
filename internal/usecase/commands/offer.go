package commands

//go:generate mockgen -source=offer.go -destination=../mocks/commands/offer_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"daycare-waitlist/internal/domain/offer"
	"daycare-waitlist/internal/domain/placement"
	"daycare-waitlist/internal/infra"
	"daycare-waitlist/internal/pkg/clock"
	"daycare-waitlist/internal/pkg/errs"
	"daycare-waitlist/internal/pkg/metrics"
	"daycare-waitlist/internal/usecase/queries"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
)

// Rejection reasons recorded in daycare_offer_rejections_total.
const (
	reasonNotFound          = "not_found"
	reasonCapacity          = "capacity_exhausted"
	reasonDuplicatePending  = "duplicate_pending"
	reasonInvalidTransition = "invalid_transition"
	reasonValidation        = "validation"
)

type CreateOfferInput struct {
	ChildID     uuid.UUID
	ProviderID  uuid.UUID
	PlacementID uuid.UUID
}

type OfferCommands interface {
	CreateOffer(ctx context.Context, in CreateOfferInput) (*queries.OfferView, error)
	// RespondToOffer settles a pending offer. Accepting also removes the child from the
	// waitlist and consumes one unit of the placement, all in one transaction.
	RespondToOffer(ctx context.Context, offerID uuid.UUID, decision offer.Decision) (*queries.OfferView, error)
}

type offerCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewOfferCommands(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics) OfferCommands {
	return &offerCommandsImpl{
		uow:     uow,
		clock:   clk,
		metrics: m,
	}
}

func (c *offerCommandsImpl) CreateOffer(ctx context.Context, in CreateOfferInput) (*queries.OfferView, error) {
	var created *offer.Offer

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entry, err := tx.Waitlist().FindByID(ctx, in.ChildID)
		if err != nil {
			return shared.TranslateNotFound(err, "waitlist entry")
		}
		p, err := tx.Placements().FindByIDForUpdate(ctx, in.PlacementID)
		if err != nil {
			return shared.TranslateNotFound(err, "placement")
		}
		provider, err := tx.Accounts().FindProviderByID(ctx, in.ProviderID)
		if err != nil {
			return shared.TranslateNotFound(err, "provider")
		}
		if p.ProviderID() != in.ProviderID {
			return errs.Markf(errs.ErrValidation, "placement %s does not belong to provider %s", p.ID(), in.ProviderID)
		}

		pending, err := tx.Offers().CountPendingByPlacement(ctx, p.ID())
		if err != nil {
			return err
		}
		if err := p.CheckOfferable(pending); err != nil {
			return errs.Markf(errs.ErrCapacityExhausted,
				"placement %s has %d available and %d pending offers", p.ID(), p.AvailableCount(), pending)
		}

		existing, err := tx.Offers().FindPending(ctx, in.ChildID, in.ProviderID)
		if err != nil {
			return err
		}
		if existing != nil {
			return errs.Markf(errs.ErrDuplicatePending, "offer %s is already pending for this child and provider", existing.ID())
		}

		details := offer.Details{
			ChildName:        entry.ChildName(),
			ChildAge:         entry.Age(),
			ChildLocation:    entry.Location(),
			ProviderName:     provider.Name(),
			ProviderLocation: provider.Location(),
		}
		o, err := offer.NewOffer(in.ChildID, in.ProviderID, p.ID(), details, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if err := tx.Offers().Insert(ctx, o); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDuplicatePending)
			}
			return err
		}
		created = o
		return nil
	})
	if err != nil {
		c.metrics.IncOfferRejected(rejectionReason(err))
		return nil, err
	}

	c.metrics.IncOfferCreated()
	slog.InfoContext(ctx, "offer created",
		"offer_id", created.ID(),
		"child_id", created.ChildID(),
		"provider_id", created.ProviderID(),
		"placement_id", created.PlacementID())

	view := queries.NewOfferView(created)
	return &view, nil
}

func (c *offerCommandsImpl) RespondToOffer(ctx context.Context, offerID uuid.UUID, decision offer.Decision) (*queries.OfferView, error) {
	var settled *offer.Offer

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Offers().FindByIDForUpdate(ctx, offerID)
		if err != nil {
			return shared.TranslateNotFound(err, "offer")
		}

		if err := o.Respond(decision, c.clock.Now()); err != nil {
			switch {
			case errs.Is(err, offer.ErrNotPending):
				return errs.Markf(errs.ErrInvalidTransition, "offer %s is already %s", o.ID(), o.Status())
			default:
				return errs.Mark(err, errs.ErrValidation)
			}
		}

		if decision == offer.DecisionAccept {
			if err := c.applyAcceptance(ctx, tx, o); err != nil {
				return err
			}
		}

		if err := tx.Offers().UpdateStatus(ctx, o); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrInvalidTransition)
			}
			return err
		}
		settled = o
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrConsistencyViolation) {
			c.metrics.IncConsistencyViolation()
			slog.ErrorContext(ctx, "offer settlement aborted on consistency violation",
				"offer_id", offerID,
				"error", err.Error(),
				"stack", errs.ExtractStackLines(err, 8))
		} else {
			c.metrics.IncOfferRejected(rejectionReason(err))
		}
		return nil, err
	}

	c.metrics.IncOfferSettled(decision.String())
	slog.InfoContext(ctx, "offer "+settled.Status().String(),
		"offer_id", settled.ID(),
		"child_id", settled.ChildID(),
		"placement_id", settled.PlacementID())

	view := queries.NewOfferView(settled)
	return &view, nil
}

// applyAcceptance removes the child from the waitlist and consumes one unit of the placement.
func (c *offerCommandsImpl) applyAcceptance(ctx context.Context, tx shared.Tx, o *offer.Offer) error {
	p, err := tx.Placements().FindByIDForUpdate(ctx, o.PlacementID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Markf(errs.ErrConsistencyViolation, "placement %s of offer %s is missing", o.PlacementID(), o.ID())
		}
		return err
	}

	if err := tx.Waitlist().Remove(ctx, o.ChildID()); err != nil {
		// the child was placed through another offer in the meantime
		return shared.TranslateNotFound(err, "waitlist entry")
	}

	if err := p.Consume(); err != nil {
		return consistencyViolation(err, p)
	}
	if err := tx.Placements().ConsumeOne(ctx, p.ID()); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return consistencyViolation(err, p)
		}
		return err
	}
	return nil
}

func consistencyViolation(err error, p *placement.Placement) error {
	return errs.Mark(
		errs.Wrap(err, "consume placement "+p.ID().String()),
		errs.ErrConsistencyViolation,
	)
}

func rejectionReason(err error) string {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		return reasonNotFound
	case errs.Is(err, errs.ErrCapacityExhausted):
		return reasonCapacity
	case errs.Is(err, errs.ErrDuplicatePending):
		return reasonDuplicatePending
	case errs.Is(err, errs.ErrInvalidTransition):
		return reasonInvalidTransition
	case errs.Is(err, errs.ErrValidation):
		return reasonValidation
	default:
		return "error"
	}
}
