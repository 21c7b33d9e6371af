package memstore

import (
	"context"
	"slices"

	"daycare-waitlist/internal/domain/placement"
	"daycare-waitlist/internal/infra"

	"github.com/google/uuid"
)

type placementRepo struct {
	tx *memTx
}

func (r *placementRepo) Insert(_ context.Context, p *placement.Placement) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.tx.st.placements[p.ID()]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "placement already exists")
	}

	r.tx.st.placementSeq++
	p.AssignSequence(r.tx.st.placementSeq)
	r.tx.st.placements[p.ID()] = copyPlacement(p)
	return nil
}

func (r *placementRepo) FindByID(_ context.Context, id uuid.UUID) (*placement.Placement, error) {
	p, ok := r.tx.st.placements[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "placement not found")
	}
	return copyPlacement(p), nil
}

// FindByIDForUpdate needs no extra locking: writers already hold the store mutex.
func (r *placementRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*placement.Placement, error) {
	return r.FindByID(ctx, id)
}

func (r *placementRepo) ListByProvider(_ context.Context, providerID uuid.UUID) ([]*placement.Placement, error) {
	out := make([]*placement.Placement, 0)
	for _, p := range r.tx.st.placements {
		if p.ProviderID() == providerID {
			out = append(out, copyPlacement(p))
		}
	}
	sortBySeq(out)
	return out, nil
}

func (r *placementRepo) List(_ context.Context) ([]*placement.Placement, error) {
	out := make([]*placement.Placement, 0, len(r.tx.st.placements))
	for _, p := range r.tx.st.placements {
		out = append(out, copyPlacement(p))
	}
	sortBySeq(out)
	return out, nil
}

func (r *placementRepo) ConsumeOne(_ context.Context, id uuid.UUID) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	stored, ok := r.tx.st.placements[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "placement not found")
	}

	next := copyPlacement(stored)
	if err := next.Consume(); err != nil {
		return infra.NewRepoErr(infra.KindConflict, "placement has no available capacity")
	}
	r.tx.st.placements[id] = next
	return nil
}

func (r *placementRepo) Count(_ context.Context) (int, error) {
	return len(r.tx.st.placements), nil
}

func sortBySeq(ps []*placement.Placement) {
	slices.SortFunc(ps, func(a, b *placement.Placement) int {
		switch {
		case a.Seq() < b.Seq():
			return -1
		case a.Seq() > b.Seq():
			return 1
		default:
			return 0
		}
	})
}
