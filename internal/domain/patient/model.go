package patient

import "time"

// Patient maps to the patient table. One row per care episode; rows are
// created once at intake and never updated in place.
type Patient struct {
	ID                int64      `db:"id" json:"id"`
	Name              string     `db:"name" json:"name"`
	Age               int        `db:"age" json:"age"`
	Gender            string     `db:"gender" json:"gender"`
	RegNo             *string    `db:"reg_no" json:"reg_no,omitempty"`
	IPNo              *string    `db:"ip_no" json:"ip_no,omitempty"`
	Department        string     `db:"department" json:"department"`
	Ward              string     `db:"ward" json:"ward"`
	DateOfAdmission   time.Time  `db:"date_of_admission" json:"date_of_admission"`
	DateOfDeath       *time.Time `db:"date_of_death" json:"date_of_death,omitempty"`
	PrimaryConsultant string     `db:"primary_consultant" json:"primary_consultant"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
}

// CreateInput is the intake payload. Dates arrive as ISO strings and are
// validated before any row is written.
type CreateInput struct {
	Name              string  `json:"name"`
	Age               *int    `json:"age"`
	Gender            string  `json:"gender"`
	RegNo             *string `json:"reg_no"`
	IPNo              *string `json:"ip_no"`
	Department        string  `json:"department"`
	Ward              string  `json:"ward"`
	DateOfAdmission   string  `json:"date_of_admission"`
	DateOfDeath       *string `json:"date_of_death"`
	PrimaryConsultant string  `json:"primary_consultant"`
}
