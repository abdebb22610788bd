package clinical

import "context"

type Repository interface {
	Create(ctx context.Context, d *Data) error
	// LatestByPatient returns the most recently created row for the patient,
	// or a not-found error when none exists.
	LatestByPatient(ctx context.Context, patientID int64) (*Data, error)
	ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*Data, int, error)
}
