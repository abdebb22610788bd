package summary

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wardscribe/wardscribe/internal/platform/apperror"
	"github.com/wardscribe/wardscribe/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const summaryCols = `id, patient_id, summary_text, reviewed, generated_at, updated_at`

func scanSummary(row pgx.Row) (*Summary, error) {
	var s Summary
	err := row.Scan(&s.ID, &s.PatientID, &s.Text, &s.Reviewed, &s.GeneratedAt, &s.UpdatedAt)
	return &s, err
}

func (r *repoPG) Create(ctx context.Context, s *Summary) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO summary (patient_id, summary_text)
		VALUES ($1, $2)
		RETURNING id, reviewed, generated_at`,
		s.PatientID, s.Text).
		Scan(&s.ID, &s.Reviewed, &s.GeneratedAt)
}

func (r *repoPG) LatestByPatient(ctx context.Context, patientID int64) (*Summary, error) {
	s, err := scanSummary(r.conn(ctx).QueryRow(ctx,
		`SELECT `+summaryCols+` FROM summary
		 WHERE patient_id = $1 ORDER BY generated_at DESC, id DESC LIMIT 1`, patientID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound("summary")
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repoPG) UpdateLatest(ctx context.Context, patientID int64, text string) (*Summary, error) {
	s, err := scanSummary(r.conn(ctx).QueryRow(ctx, `
		UPDATE summary SET summary_text = $2, reviewed = TRUE, updated_at = NOW()
		WHERE id = (
			SELECT id FROM summary
			WHERE patient_id = $1 ORDER BY generated_at DESC, id DESC LIMIT 1
		)
		RETURNING `+summaryCols, patientID, text))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound("summary")
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*Summary, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM summary WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+summaryCols+` FROM summary
		 WHERE patient_id = $1 ORDER BY generated_at DESC, id DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Summary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	return items, total, rows.Err()
}
