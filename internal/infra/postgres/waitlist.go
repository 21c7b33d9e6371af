package postgres

import (
	"context"

	"daycare-waitlist/internal/domain/waitlist"
	"daycare-waitlist/internal/infra"
	"daycare-waitlist/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const entryColumns = `id, client_id, child_name, age, location, seq, added_at`

type waitlistRepo struct {
	db DBTX
}

func (r *waitlistRepo) Insert(ctx context.Context, e *waitlist.Entry) error {
	var seq int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO waitlist_entries (id, client_id, child_name, age, location, added_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING seq`,
		pgconv.UUIDToPgtype(e.ID()),
		pgconv.UUIDToPgtype(e.ClientID()),
		e.ChildName(),
		e.Age(),
		e.Location(),
		pgconv.TimeToPgtype(e.AddedAt()),
	).Scan(&seq)
	if err != nil {
		return mapErr("insert waitlist entry", err)
	}
	e.AssignSequence(seq)
	return nil
}

func (r *waitlistRepo) FindByID(ctx context.Context, id uuid.UUID) (*waitlist.Entry, error) {
	row := r.db.QueryRow(ctx, `SELECT `+entryColumns+` FROM waitlist_entries WHERE id = $1`, pgconv.UUIDToPgtype(id))
	e, err := scanEntry(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "waitlist entry not found")
		}
		return nil, mapErr("find waitlist entry", err)
	}
	return e, nil
}

func (r *waitlistRepo) ListOrdered(ctx context.Context) ([]*waitlist.Entry, error) {
	return r.list(ctx, `SELECT `+entryColumns+` FROM waitlist_entries ORDER BY seq`)
}

func (r *waitlistRepo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*waitlist.Entry, error) {
	return r.list(ctx, `SELECT `+entryColumns+` FROM waitlist_entries WHERE client_id = $1 ORDER BY seq`,
		pgconv.UUIDToPgtype(clientID))
}

func (r *waitlistRepo) list(ctx context.Context, sql string, args ...any) ([]*waitlist.Entry, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapErr("list waitlist entries", err)
	}
	defer rows.Close()

	out := make([]*waitlist.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, mapErr("scan waitlist entry", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr("list waitlist entries", err)
	}
	return out, nil
}

func (r *waitlistRepo) Remove(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM waitlist_entries WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return mapErr("remove waitlist entry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "waitlist entry not found")
	}
	return nil
}

func (r *waitlistRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, `SELECT count(*) FROM waitlist_entries`)
}

func scanEntry(row pgx.Row) (*waitlist.Entry, error) {
	var (
		id, clientID pgtype.UUID
		name, loc    string
		age          int
		seq          int64
		addedAt      pgtype.Timestamptz
	)
	if err := row.Scan(&id, &clientID, &name, &age, &loc, &seq, &addedAt); err != nil {
		return nil, err
	}
	return waitlist.ReconstructEntry(
		pgconv.UUIDFromPgtype(id), pgconv.UUIDFromPgtype(clientID), name, age, loc, seq, addedAt.Time.UTC(),
	), nil
}

func count(ctx context.Context, db DBTX, sql string, args ...any) (int, error) {
	var n int
	if err := db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, mapErr("count rows", err)
	}
	return n, nil
}
