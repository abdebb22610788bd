package summary

import (
	"strings"
	"testing"
	"time"

	"github.com/wardscribe/wardscribe/internal/domain/clinical"
	"github.com/wardscribe/wardscribe/internal/domain/patient"
)

func strPtr(s string) *string { return &s }

func promptPatient() *patient.Patient {
	return &patient.Patient{
		ID:                1,
		Name:              "Jane Smith",
		Age:               72,
		Gender:            "Female",
		RegNo:             strPtr("REG-1001"),
		IPNo:              strPtr("IP-2002"),
		Department:        "Cardiology",
		Ward:              "CCU",
		DateOfAdmission:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		PrimaryConsultant: "Dr. Rao",
	}
}

func promptClinical() *clinical.Data {
	return &clinical.Data{
		PatientID:       1,
		FinalDiagnosis:  "Acute myocardial infarction",
		ChiefComplaints: "Chest pain for 2 hours",
		PastHistory:     strPtr("Hypertension on amlodipine"),
		ExamFindings:    strPtr("BP 90/60, S3 gallop"),
		HospitalCourse:  "Thrombolysed, monitored in CCU",
		Investigations:  "Troponin elevated, ECG ST elevation",
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	p := promptPatient()
	d := promptClinical()

	first := BuildPrompt(p, d)
	second := BuildPrompt(p, d)
	if first != second {
		t.Error("same inputs must produce byte-identical prompts")
	}
}

func TestBuildPrompt_DischargeTitle(t *testing.T) {
	got := BuildPrompt(promptPatient(), promptClinical())
	if !strings.Contains(got, "DISCHARGE SUMMARY") {
		t.Error("expected DISCHARGE SUMMARY title for a living patient")
	}
	if strings.Contains(got, "DEATH SUMMARY") {
		t.Error("must not render DEATH SUMMARY for a living patient")
	}
}

func TestBuildPrompt_DeathTitle(t *testing.T) {
	p := promptPatient()
	dod := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	p.DateOfDeath = &dod

	got := BuildPrompt(p, promptClinical())
	if !strings.Contains(got, "DEATH SUMMARY") {
		t.Error("expected DEATH SUMMARY title when date of death is set")
	}
	if !strings.Contains(got, "Date of Death: 09 Mar 2024") {
		t.Errorf("expected formatted date of death, got:\n%s", got)
	}
}

func TestBuildPrompt_UpperCasesIdentity(t *testing.T) {
	got := BuildPrompt(promptPatient(), promptClinical())

	for _, want := range []string{
		"Name: JANE SMITH",
		"Age: 72 YEARS",
		"Sex: FEMALE",
		"Department: CARDIOLOGY",
		"Ward: CCU",
		"Consultant in Charge: DR. RAO",
		"Date of Admission: 05 Mar 2024",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q, got:\n%s", want, got)
		}
	}
}

func TestBuildPrompt_Sentinels(t *testing.T) {
	p := promptPatient()
	p.RegNo = nil
	p.IPNo = nil

	d := promptClinical()
	d.PastHistory = nil
	d.ExamFindings = nil
	d.Investigations = ""

	got := BuildPrompt(p, d)
	for _, want := range []string{
		"Registration No: N/A",
		"IP No: N/A",
		"Date of Death: N/A",
		"Past Medical History: NIL",
		"Examination at Admission: N/A",
		"Investigations: REPORTS ENCLOSED",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q, got:\n%s", want, got)
		}
	}
}

func TestBuildPrompt_NilClinicalData(t *testing.T) {
	got := BuildPrompt(promptPatient(), nil)
	for _, want := range []string{
		"Final Diagnosis: N/A",
		"Chief Complaints: N/A",
		"Past Medical History: NIL",
		"Examination at Admission: N/A",
		"Hospital Course: N/A",
		"Investigations: REPORTS ENCLOSED",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q, got:\n%s", want, got)
		}
	}
}

func TestBuildPrompt_BlankRequiredFieldFallsBack(t *testing.T) {
	d := promptClinical()
	d.FinalDiagnosis = "   "

	got := BuildPrompt(promptPatient(), d)
	if !strings.Contains(got, "Final Diagnosis: N/A") {
		t.Errorf("blank diagnosis must render as N/A, got:\n%s", got)
	}
}
