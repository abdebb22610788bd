package summary

import (
	"strconv"
	"strings"
	"time"

	"github.com/wardscribe/wardscribe/internal/domain/clinical"
	"github.com/wardscribe/wardscribe/internal/domain/patient"
)

// Sentinels substituted for absent fields. The template never invents data;
// a missing value always renders as one of these literals.
const (
	sentinelNA              = "N/A"
	sentinelNil             = "NIL"
	sentinelReportsEnclosed = "REPORTS ENCLOSED"
)

const displayDate = "02 Jan 2006"

func orSentinel(v, sentinel string) string {
	if strings.TrimSpace(v) == "" {
		return sentinel
	}
	return v
}

func ptrOrSentinel(v *string, sentinel string) string {
	if v == nil {
		return sentinel
	}
	return orSentinel(*v, sentinel)
}

func dateOrNA(t *time.Time) string {
	if t == nil {
		return sentinelNA
	}
	return t.Format(displayDate)
}

// BuildPrompt renders the structured case notes sent to the text-generation
// service. It is a pure template fill: the same patient and clinical data
// always produce byte-identical output. d may be nil, in which case every
// clinical field renders as its sentinel.
func BuildPrompt(p *patient.Patient, d *clinical.Data) string {
	title := "DISCHARGE SUMMARY"
	if p.DateOfDeath != nil {
		title = "DEATH SUMMARY"
	}

	var b strings.Builder
	b.WriteString("Draft a " + strings.ToLower(title) + " from the following case notes.\n\n")
	b.WriteString(title + "\n")
	b.WriteString("===============\n\n")

	b.WriteString("PATIENT DETAILS\n")
	writeField(&b, "Name", strings.ToUpper(p.Name))
	writeField(&b, "Age", strconv.Itoa(p.Age)+" YEARS")
	writeField(&b, "Sex", strings.ToUpper(p.Gender))
	writeField(&b, "Registration No", ptrOrSentinel(p.RegNo, sentinelNA))
	writeField(&b, "IP No", ptrOrSentinel(p.IPNo, sentinelNA))
	writeField(&b, "Department", strings.ToUpper(p.Department))
	writeField(&b, "Ward", strings.ToUpper(p.Ward))
	writeField(&b, "Date of Admission", p.DateOfAdmission.Format(displayDate))
	writeField(&b, "Date of Death", dateOrNA(p.DateOfDeath))
	writeField(&b, "Consultant in Charge", strings.ToUpper(p.PrimaryConsultant))

	b.WriteString("\nCLINICAL DETAILS\n")
	var (
		finalDiagnosis  = sentinelNA
		chiefComplaints = sentinelNA
		pastHistory     = sentinelNil
		examFindings    = sentinelNA
		hospitalCourse  = sentinelNA
		investigations  = sentinelReportsEnclosed
	)
	if d != nil {
		finalDiagnosis = orSentinel(d.FinalDiagnosis, sentinelNA)
		chiefComplaints = orSentinel(d.ChiefComplaints, sentinelNA)
		pastHistory = ptrOrSentinel(d.PastHistory, sentinelNil)
		examFindings = ptrOrSentinel(d.ExamFindings, sentinelNA)
		hospitalCourse = orSentinel(d.HospitalCourse, sentinelNA)
		investigations = orSentinel(d.Investigations, sentinelReportsEnclosed)
	}
	writeField(&b, "Final Diagnosis", finalDiagnosis)
	writeField(&b, "Chief Complaints", chiefComplaints)
	writeField(&b, "Past Medical History", pastHistory)
	writeField(&b, "Examination at Admission", examFindings)
	writeField(&b, "Hospital Course", hospitalCourse)
	writeField(&b, "Investigations", investigations)

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
