package postgres

import (
	"context"

	"daycare-waitlist/internal/domain/account"
	"daycare-waitlist/internal/infra"
	"daycare-waitlist/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type accountRepo struct {
	db DBTX
}

func (r *accountRepo) InsertClient(ctx context.Context, c *account.Client) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO clients (id, email, name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		pgconv.UUIDToPgtype(c.ID()), c.Email().String(), c.Name(), c.PasswordHash(), pgconv.TimeToPgtype(c.CreatedAt()),
	)
	if err != nil {
		return mapErr("insert client", err)
	}
	return nil
}

func (r *accountRepo) InsertProvider(ctx context.Context, p *account.Provider) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO providers (id, email, name, location, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		pgconv.UUIDToPgtype(p.ID()), p.Email().String(), p.Name(), p.Location(), p.PasswordHash(),
		pgconv.TimeToPgtype(p.CreatedAt()),
	)
	if err != nil {
		return mapErr("insert provider", err)
	}
	return nil
}

func (r *accountRepo) FindClientByID(ctx context.Context, id uuid.UUID) (*account.Client, error) {
	return r.findClient(ctx, `WHERE id = $1`, pgconv.UUIDToPgtype(id))
}

func (r *accountRepo) FindClientByEmail(ctx context.Context, email account.Email) (*account.Client, error) {
	return r.findClient(ctx, `WHERE email = $1`, email.String())
}

func (r *accountRepo) FindProviderByID(ctx context.Context, id uuid.UUID) (*account.Provider, error) {
	return r.findProvider(ctx, `WHERE id = $1`, pgconv.UUIDToPgtype(id))
}

func (r *accountRepo) FindProviderByEmail(ctx context.Context, email account.Email) (*account.Provider, error) {
	return r.findProvider(ctx, `WHERE email = $1`, email.String())
}

func (r *accountRepo) CountClients(ctx context.Context) (int, error) {
	return count(ctx, r.db, `SELECT count(*) FROM clients`)
}

func (r *accountRepo) CountProviders(ctx context.Context) (int, error) {
	return count(ctx, r.db, `SELECT count(*) FROM providers`)
}

func (r *accountRepo) findClient(ctx context.Context, where string, arg any) (*account.Client, error) {
	var (
		id                  pgtype.UUID
		email, name, pwHash string
		createdAt           pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `SELECT id, email, name, password_hash, created_at FROM clients `+where, arg).
		Scan(&id, &email, &name, &pwHash, &createdAt)
	if err != nil {
		return nil, notFoundOr(err, "client")
	}
	e, err := account.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return account.ReconstructClient(pgconv.UUIDFromPgtype(id), e, name, pwHash, createdAt.Time.UTC()), nil
}

func (r *accountRepo) findProvider(ctx context.Context, where string, arg any) (*account.Provider, error) {
	var (
		id                            pgtype.UUID
		email, name, location, pwHash string
		createdAt                     pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `SELECT id, email, name, location, password_hash, created_at FROM providers `+where, arg).
		Scan(&id, &email, &name, &location, &pwHash, &createdAt)
	if err != nil {
		return nil, notFoundOr(err, "provider")
	}
	e, err := account.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return account.ReconstructProvider(pgconv.UUIDFromPgtype(id), e, name, location, pwHash, createdAt.Time.UTC()), nil
}

func notFoundOr(err error, what string) error {
	if pgconv.IsNoRows(err) {
		return infra.NewRepoErr(infra.KindNotFound, what+" not found")
	}
	return mapErr("find "+what, err)
}
