package memstore

import (
	"context"

	"daycare-waitlist/internal/domain/account"
	"daycare-waitlist/internal/infra"

	"github.com/google/uuid"
)

type accountRepo struct {
	tx *memTx
}

func (r *accountRepo) InsertClient(_ context.Context, c *account.Client) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	for _, existing := range r.tx.st.clients {
		if existing.Email() == c.Email() {
			return infra.NewRepoErr(infra.KindDuplicateKey, "client email already registered")
		}
	}
	r.tx.st.clients[c.ID()] = copyClient(c)
	return nil
}

func (r *accountRepo) InsertProvider(_ context.Context, p *account.Provider) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	for _, existing := range r.tx.st.providers {
		if existing.Email() == p.Email() {
			return infra.NewRepoErr(infra.KindDuplicateKey, "provider email already registered")
		}
	}
	r.tx.st.providers[p.ID()] = copyProvider(p)
	return nil
}

func (r *accountRepo) FindClientByID(_ context.Context, id uuid.UUID) (*account.Client, error) {
	c, ok := r.tx.st.clients[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "client not found")
	}
	return copyClient(c), nil
}

func (r *accountRepo) FindClientByEmail(_ context.Context, email account.Email) (*account.Client, error) {
	for _, c := range r.tx.st.clients {
		if c.Email() == email {
			return copyClient(c), nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "client not found")
}

func (r *accountRepo) FindProviderByID(_ context.Context, id uuid.UUID) (*account.Provider, error) {
	p, ok := r.tx.st.providers[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "provider not found")
	}
	return copyProvider(p), nil
}

func (r *accountRepo) FindProviderByEmail(_ context.Context, email account.Email) (*account.Provider, error) {
	for _, p := range r.tx.st.providers {
		if p.Email() == email {
			return copyProvider(p), nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "provider not found")
}

func (r *accountRepo) CountClients(_ context.Context) (int, error) {
	return len(r.tx.st.clients), nil
}

func (r *accountRepo) CountProviders(_ context.Context) (int, error) {
	return len(r.tx.st.providers), nil
}
