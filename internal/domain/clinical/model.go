package clinical

import "time"

// Data maps to the clinical_data table. Rows belong to exactly one patient
// and are deleted with it. The schema permits several rows per patient;
// readers take the most recently created one.
type Data struct {
	ID              int64     `db:"id" json:"id"`
	PatientID       int64     `db:"patient_id" json:"patient_id"`
	FinalDiagnosis  string    `db:"final_diagnosis" json:"final_diagnosis"`
	ChiefComplaints string    `db:"chief_complaints" json:"chief_complaints"`
	PastHistory     *string   `db:"past_history" json:"past_history,omitempty"`
	ExamFindings    *string   `db:"exam_findings" json:"exam_findings,omitempty"`
	HospitalCourse  string    `db:"hospital_course" json:"hospital_course"`
	Investigations  string    `db:"investigations" json:"investigations"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// CreateInput is the clinical findings payload for one patient.
type CreateInput struct {
	FinalDiagnosis  string  `json:"final_diagnosis"`
	ChiefComplaints string  `json:"chief_complaints"`
	PastHistory     *string `json:"past_history"`
	ExamFindings    *string `json:"exam_findings"`
	HospitalCourse  string  `json:"hospital_course"`
	Investigations  string  `json:"investigations"`
}
