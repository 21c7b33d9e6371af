package commands_test

import (
	"context"
	"testing"

	"daycare-waitlist/internal/domain/waitlist"
	"daycare-waitlist/internal/infra/memstore"
	"daycare-waitlist/internal/pkg/clock"
	"daycare-waitlist/internal/pkg/errs"
	"daycare-waitlist/internal/testutil"
	"daycare-waitlist/internal/usecase/commands"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	client := testutil.NewSeeder(t, store).Client("Pat")
	cmds := commands.NewWaitlistCommands(store, clock.NewMockClock(testutil.BaseTime))

	t.Run("positions follow insertion order", func(t *testing.T) {
		for i, name := range []string{"Ada", "Ben", "Cy"} {
			v, err := cmds.Enroll(ctx, commands.EnrollInput{
				ClientID: client.ID(), ChildName: name, Age: 3, Location: "Springfield",
			})
			require.NoError(t, err)
			require.NotNil(t, v.Position)
			assert.Equal(t, i+1, *v.Position)
			assert.Equal(t, testutil.BaseTime, v.AddedAt)
		}
	})

	tests := []struct {
		name    string
		in      commands.EnrollInput
		wantErr error
	}{
		{
			name:    "negative age",
			in:      commands.EnrollInput{ClientID: client.ID(), ChildName: "Ada", Age: -1, Location: "Springfield"},
			wantErr: errs.ErrValidation,
		},
		{
			name:    "blank name",
			in:      commands.EnrollInput{ClientID: client.ID(), ChildName: "  ", Age: 2, Location: "Springfield"},
			wantErr: errs.ErrValidation,
		},
		{
			name:    "blank location",
			in:      commands.EnrollInput{ClientID: client.ID(), ChildName: "Ada", Age: 2},
			wantErr: errs.ErrValidation,
		},
		{
			name:    "unknown client",
			in:      commands.EnrollInput{ClientID: uuid.New(), ChildName: "Ada", Age: 2, Location: "Springfield"},
			wantErr: errs.ErrValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cmds.Enroll(ctx, tt.in)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

// concurrentEnrollUoW makes a later-sequenced entry visible inside the transaction, as a
// concurrent commit would be under read committed.
type concurrentEnrollUoW struct {
	*memstore.Store
}

func (u concurrentEnrollUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.Store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, laterEntryTx{Tx: tx})
	})
}

type laterEntryTx struct {
	shared.Tx
}

func (t laterEntryTx) Waitlist() shared.WaitlistRepository {
	return laterEntryRepo{WaitlistRepository: t.Tx.Waitlist()}
}

type laterEntryRepo struct {
	shared.WaitlistRepository
}

func (r laterEntryRepo) ListOrdered(ctx context.Context) ([]*waitlist.Entry, error) {
	entries, err := r.WaitlistRepository.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	later := waitlist.ReconstructEntry(uuid.New(), uuid.New(), "Later", 2, "Springfield", 1<<40, testutil.BaseTime)
	return append(entries, later), nil
}

func TestEnroll_PositionIgnoresLaterEntries(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seed := testutil.NewSeeder(t, store)
	client := seed.Client("Pat")
	seed.Entry(client.ID(), "First", 3, "Springfield")
	cmds := commands.NewWaitlistCommands(concurrentEnrollUoW{Store: store}, clock.NewMockClock(testutil.BaseTime))

	v, err := cmds.Enroll(ctx, commands.EnrollInput{
		ClientID: client.ID(), ChildName: "Ada", Age: 3, Location: "Springfield",
	})
	require.NoError(t, err)
	require.NotNil(t, v.Position)
	assert.Equal(t, 2, *v.Position)
}
