package memstore_test

import (
	"context"
	"testing"

	"daycare-waitlist/internal/domain/account"
	"daycare-waitlist/internal/infra"
	"daycare-waitlist/internal/infra/memstore"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepo(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	email, err := account.NewEmail("Parent@Example.com")
	require.NoError(t, err)
	client, err := account.NewClient(email, "Pat", "hash", now)
	require.NoError(t, err)
	provider, err := account.NewProvider(email, "Sunny Days", "Springfield", "hash", now)
	require.NoError(t, err)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Accounts().InsertClient(ctx, client); err != nil {
			return err
		}
		// the same email may register once per kind
		return tx.Accounts().InsertProvider(ctx, provider)
	}))

	t.Run("duplicate client email", func(t *testing.T) {
		again, err := account.NewClient(email, "Other", "hash", now)
		require.NoError(t, err)
		err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Accounts().InsertClient(ctx, again)
		})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("lookups", func(t *testing.T) {
		require.NoError(t, store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			c, err := tx.Accounts().FindClientByEmail(ctx, email)
			require.NoError(t, err)
			assert.Equal(t, client.ID(), c.ID())

			p, err := tx.Accounts().FindProviderByID(ctx, provider.ID())
			require.NoError(t, err)
			assert.Equal(t, "Springfield", p.Location())

			_, err = tx.Accounts().FindProviderByID(ctx, client.ID())
			assert.True(t, infra.IsKind(err, infra.KindNotFound))

			nc, err := tx.Accounts().CountClients(ctx)
			require.NoError(t, err)
			np, err := tx.Accounts().CountProviders(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, nc)
			assert.Equal(t, 1, np)
			return nil
		}))
	})
}
