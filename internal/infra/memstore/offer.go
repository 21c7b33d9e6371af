package memstore

import (
	"context"
	"slices"

	"daycare-waitlist/internal/domain/offer"
	"daycare-waitlist/internal/infra"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
)

type offerRepo struct {
	tx *memTx
}

func (r *offerRepo) Insert(_ context.Context, o *offer.Offer) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.tx.st.offers[o.ID()]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "offer already exists")
	}
	if o.IsPending() && r.findPending(o.ChildID(), o.ProviderID()) != nil {
		return infra.NewRepoErr(infra.KindDuplicateKey, "pending offer already exists for child and provider")
	}

	r.tx.st.offerSeq++
	r.tx.st.offers[o.ID()] = offerRow{seq: r.tx.st.offerSeq, offer: o.Clone()}
	return nil
}

func (r *offerRepo) FindByID(_ context.Context, id uuid.UUID) (*offer.Offer, error) {
	row, ok := r.tx.st.offers[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "offer not found")
	}
	return row.offer.Clone(), nil
}

func (r *offerRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	return r.FindByID(ctx, id)
}

func (r *offerRepo) FindPending(_ context.Context, childID, providerID uuid.UUID) (*offer.Offer, error) {
	if o := r.findPending(childID, providerID); o != nil {
		return o.Clone(), nil
	}
	return nil, nil
}

func (r *offerRepo) findPending(childID, providerID uuid.UUID) *offer.Offer {
	for _, row := range r.tx.st.offers {
		o := row.offer
		if o.IsPending() && o.ChildID() == childID && o.ProviderID() == providerID {
			return o
		}
	}
	return nil
}

func (r *offerRepo) CountPendingByPlacement(_ context.Context, placementID uuid.UUID) (int, error) {
	n := 0
	for _, row := range r.tx.st.offers {
		o := row.offer
		if !o.IsPending() || o.PlacementID() != placementID {
			continue
		}
		if _, waiting := r.tx.st.entries[o.ChildID()]; waiting {
			n++
		}
	}
	return n, nil
}

// List returns matching offers in creation order.
func (r *offerRepo) List(_ context.Context, filter shared.OfferFilter) ([]*offer.Offer, error) {
	rows := make([]offerRow, 0, len(r.tx.st.offers))
	for _, row := range r.tx.st.offers {
		if matches(row.offer, filter) {
			rows = append(rows, row)
		}
	}
	slices.SortFunc(rows, func(a, b offerRow) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		default:
			return 0
		}
	})

	out := make([]*offer.Offer, len(rows))
	for i, row := range rows {
		out[i] = row.offer.Clone()
	}
	return out, nil
}

func matches(o *offer.Offer, f shared.OfferFilter) bool {
	if f.ProviderID != nil && o.ProviderID() != *f.ProviderID {
		return false
	}
	if f.ChildID != nil && o.ChildID() != *f.ChildID {
		return false
	}
	if f.Status != nil && o.Status() != *f.Status {
		return false
	}
	return true
}

func (r *offerRepo) UpdateStatus(_ context.Context, o *offer.Offer) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	row, ok := r.tx.st.offers[o.ID()]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "offer not found")
	}
	if !row.offer.IsPending() {
		return infra.NewRepoErr(infra.KindConflict, "offer is no longer pending")
	}

	r.tx.st.offers[o.ID()] = offerRow{seq: row.seq, offer: o.Clone()}
	return nil
}

func (r *offerRepo) CountByStatus(_ context.Context, status offer.Status) (int, error) {
	n := 0
	for _, row := range r.tx.st.offers {
		if row.offer.Status() == status {
			n++
		}
	}
	return n, nil
}
