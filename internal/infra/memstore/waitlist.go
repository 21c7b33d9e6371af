package memstore

import (
	"context"

	"daycare-waitlist/internal/domain/waitlist"
	"daycare-waitlist/internal/infra"

	"github.com/google/uuid"
)

type waitlistRepo struct {
	tx *memTx
}

func (r *waitlistRepo) Insert(_ context.Context, e *waitlist.Entry) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.tx.st.entries[e.ID()]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "waitlist entry already exists")
	}

	r.tx.st.entrySeq++
	e.AssignSequence(r.tx.st.entrySeq)
	r.tx.st.entries[e.ID()] = copyEntry(e)
	return nil
}

func (r *waitlistRepo) FindByID(_ context.Context, id uuid.UUID) (*waitlist.Entry, error) {
	e, ok := r.tx.st.entries[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "waitlist entry not found")
	}
	return copyEntry(e), nil
}

func (r *waitlistRepo) ListOrdered(_ context.Context) ([]*waitlist.Entry, error) {
	out := make([]*waitlist.Entry, 0, len(r.tx.st.entries))
	for _, e := range r.tx.st.entries {
		out = append(out, copyEntry(e))
	}
	waitlist.SortFIFO(out)
	return out, nil
}

func (r *waitlistRepo) ListByClient(_ context.Context, clientID uuid.UUID) ([]*waitlist.Entry, error) {
	out := make([]*waitlist.Entry, 0)
	for _, e := range r.tx.st.entries {
		if e.ClientID() == clientID {
			out = append(out, copyEntry(e))
		}
	}
	waitlist.SortFIFO(out)
	return out, nil
}

func (r *waitlistRepo) Remove(_ context.Context, id uuid.UUID) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.tx.st.entries[id]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "waitlist entry not found")
	}
	delete(r.tx.st.entries, id)
	return nil
}

func (r *waitlistRepo) Count(_ context.Context) (int, error) {
	return len(r.tx.st.entries), nil
}
