// Package memstore is the default in-process store. It keeps all collections in maps guarded by
// one RWMutex; write transactions run against a copy of the maps that replaces the live state only
// when the callback succeeds.
package memstore

import (
	"context"
	"sync"

	"daycare-waitlist/internal/domain/account"
	"daycare-waitlist/internal/domain/offer"
	"daycare-waitlist/internal/domain/placement"
	"daycare-waitlist/internal/domain/waitlist"
	"daycare-waitlist/internal/infra"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
)

type offerRow struct {
	seq   int64
	offer *offer.Offer
}

type state struct {
	entries    map[uuid.UUID]*waitlist.Entry
	placements map[uuid.UUID]*placement.Placement
	offers     map[uuid.UUID]offerRow
	clients    map[uuid.UUID]*account.Client
	providers  map[uuid.UUID]*account.Provider

	entrySeq     int64
	placementSeq int64
	offerSeq     int64
}

func newState() *state {
	return &state{
		entries:    make(map[uuid.UUID]*waitlist.Entry),
		placements: make(map[uuid.UUID]*placement.Placement),
		offers:     make(map[uuid.UUID]offerRow),
		clients:    make(map[uuid.UUID]*account.Client),
		providers:  make(map[uuid.UUID]*account.Provider),
	}
}

// clone copies the maps. Stored values are never mutated in place, so sharing them is safe.
func (s *state) clone() *state {
	c := &state{
		entries:      make(map[uuid.UUID]*waitlist.Entry, len(s.entries)),
		placements:   make(map[uuid.UUID]*placement.Placement, len(s.placements)),
		offers:       make(map[uuid.UUID]offerRow, len(s.offers)),
		clients:      make(map[uuid.UUID]*account.Client, len(s.clients)),
		providers:    make(map[uuid.UUID]*account.Provider, len(s.providers)),
		entrySeq:     s.entrySeq,
		placementSeq: s.placementSeq,
		offerSeq:     s.offerSeq,
	}
	for k, v := range s.entries {
		c.entries[k] = v
	}
	for k, v := range s.placements {
		c.placements[k] = v
	}
	for k, v := range s.offers {
		c.offers[k] = v
	}
	for k, v := range s.clients {
		c.clients[k] = v
	}
	for k, v := range s.providers {
		c.providers[k] = v
	}
	return c
}

type Store struct {
	mu    sync.RWMutex
	state *state
}

func New() *Store {
	return &Store{state: newState()}
}

var _ shared.UnitOfWork = (*Store)(nil)

// Within serializes writers. The callback sees its own writes; other callers see none of them
// until it returns nil.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(ctx, &memTx{st: work, writable: true}); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(ctx, &memTx{st: s.state})
}

type memTx struct {
	st       *state
	writable bool
}

func (t *memTx) Waitlist() shared.WaitlistRepository    { return &waitlistRepo{tx: t} }
func (t *memTx) Placements() shared.PlacementRepository { return &placementRepo{tx: t} }
func (t *memTx) Offers() shared.OfferRepository         { return &offerRepo{tx: t} }
func (t *memTx) Accounts() shared.AccountRepository     { return &accountRepo{tx: t} }

func (t *memTx) checkWritable() error {
	if !t.writable {
		return infra.NewRepoErr(infra.KindReadOnly, "write attempted in read-only transaction")
	}
	return nil
}
