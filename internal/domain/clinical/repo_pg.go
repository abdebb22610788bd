package clinical

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

const dataCols = `id, patient_id, final_diagnosis, chief_complaints, past_history,
	exam_findings, hospital_course, investigations, created_at`

func scanData(row pgx.Row) (*Data, error) {
	var d Data
	err := row.Scan(&d.ID, &d.PatientID, &d.FinalDiagnosis, &d.ChiefComplaints,
		&d.PastHistory, &d.ExamFindings, &d.HospitalCourse, &d.Investigations,
		&d.CreatedAt)
	return &d, err
}

const fkViolation = "23503"

func (r *repoPG) Create(ctx context.Context, d *Data) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO clinical_data (patient_id, final_diagnosis, chief_complaints,
			past_history, exam_findings, hospital_course, investigations)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at`,
		d.PatientID, d.FinalDiagnosis, d.ChiefComplaints, d.PastHistory,
		d.ExamFindings, d.HospitalCourse, d.Investigations).
		Scan(&d.ID, &d.CreatedAt)

	// The patient reference is enforced by the foreign key.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
		return apperror.NotFound("patient")
	}
	return err
}

func (r *repoPG) LatestByPatient(ctx context.Context, patientID int64) (*Data, error) {
	d, err := scanData(r.conn(ctx).QueryRow(ctx,
		`SELECT `+dataCols+` FROM clinical_data
		 WHERE patient_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`, patientID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound("clinical data")
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*Data, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM clinical_data WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+dataCols+` FROM clinical_data
		 WHERE patient_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Data
	for rows.Next() {
		d, err := scanData(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, rows.Err()
}
