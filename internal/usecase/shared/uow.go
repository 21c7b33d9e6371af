package shared

import (
	"context"

	"daycare-waitlist/internal/domain/account"
	"daycare-waitlist/internal/domain/offer"
	"daycare-waitlist/internal/domain/placement"
	"daycare-waitlist/internal/domain/waitlist"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: every write made through tx commits together or not at all
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: one consistent snapshot for multi-collection reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Waitlist() WaitlistRepository
	Placements() PlacementRepository
	Offers() OfferRepository
	Accounts() AccountRepository
}

// Repositories return infra.RepositoryError; KindNotFound when a single lookup misses.

type WaitlistRepository interface {
	// Insert assigns the entry's FIFO sequence.
	Insert(ctx context.Context, e *waitlist.Entry) error
	FindByID(ctx context.Context, id uuid.UUID) (*waitlist.Entry, error)
	// ListOrdered returns all current entries in FIFO order.
	ListOrdered(ctx context.Context) ([]*waitlist.Entry, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*waitlist.Entry, error)
	Remove(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

type PlacementRepository interface {
	Insert(ctx context.Context, p *placement.Placement) error
	FindByID(ctx context.Context, id uuid.UUID) (*placement.Placement, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*placement.Placement, error)
	// ListByProvider returns the provider's placements in declaration order.
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*placement.Placement, error)
	List(ctx context.Context) ([]*placement.Placement, error)
	// ConsumeOne decrements available_count by exactly one; KindConflict when it is already zero.
	ConsumeOne(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

type OfferFilter struct {
	ProviderID *uuid.UUID
	ChildID    *uuid.UUID
	Status     *offer.Status
}

type OfferRepository interface {
	// Insert fails with KindDuplicateKey when the (child, provider) pair already has a pending offer.
	Insert(ctx context.Context, o *offer.Offer) error
	FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	// FindPending returns nil without error when there is none.
	FindPending(ctx context.Context, childID, providerID uuid.UUID) (*offer.Offer, error)
	// CountPendingByPlacement counts pending offers that can still be accepted: offers whose
	// child already left the waitlist through another provider hold no claim on capacity.
	CountPendingByPlacement(ctx context.Context, placementID uuid.UUID) (int, error)
	List(ctx context.Context, filter OfferFilter) ([]*offer.Offer, error)
	// UpdateStatus persists a settlement; KindConflict when the stored offer is no longer pending.
	UpdateStatus(ctx context.Context, o *offer.Offer) error
	CountByStatus(ctx context.Context, status offer.Status) (int, error)
}

type AccountRepository interface {
	// Insert* fail with KindDuplicateKey on an email already registered for the kind.
	InsertClient(ctx context.Context, c *account.Client) error
	InsertProvider(ctx context.Context, p *account.Provider) error
	FindClientByID(ctx context.Context, id uuid.UUID) (*account.Client, error)
	FindClientByEmail(ctx context.Context, email account.Email) (*account.Client, error)
	FindProviderByID(ctx context.Context, id uuid.UUID) (*account.Provider, error)
	FindProviderByEmail(ctx context.Context, email account.Email) (*account.Provider, error)
	CountClients(ctx context.Context) (int, error)
	CountProviders(ctx context.Context) (int, error)
}
