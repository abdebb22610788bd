package summary

import "time"

// Summary maps to the summary table. Generation appends a new row per call;
// review rewrites the latest row in place. The current summary for a patient
// is the row with the newest generated_at.
type Summary struct {
	ID          int64      `db:"id" json:"id"`
	PatientID   int64      `db:"patient_id" json:"patient_id"`
	Text        string     `db:"summary_text" json:"summary_text"`
	Reviewed    bool       `db:"reviewed" json:"reviewed"`
	GeneratedAt time.Time  `db:"generated_at" json:"generated_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// ReviewInput carries the human-edited text applied over the latest version.
type ReviewInput struct {
	Text string `json:"summary_text"`
}
