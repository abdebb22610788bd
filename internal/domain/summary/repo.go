package summary

import "context"

type Repository interface {
	Create(ctx context.Context, s *Summary) error
	// LatestByPatient returns the row with the newest generated_at, or a
	// not-found error when the patient has no summaries.
	LatestByPatient(ctx context.Context, patientID int64) (*Summary, error)
	// UpdateLatest overwrites the latest row's text, marks it reviewed and
	// stamps updated_at. It never inserts.
	UpdateLatest(ctx context.Context, patientID int64, text string) (*Summary, error)
	ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*Summary, int, error)
}
