package summary

import (
	"context"
	"strings"

	"github.com/wardscribe/wardscribe/internal/domain/clinical"
	"github.com/wardscribe/wardscribe/internal/domain/patient"
	"github.com/wardscribe/wardscribe/internal/platform/apperror"
	"github.com/wardscribe/wardscribe/internal/platform/genai"
)

type Service struct {
	summaries Repository
	patients  patient.Repository
	clinical  clinical.Repository
	gen       genai.Generator
}

func NewService(summaries Repository, patients patient.Repository, data clinical.Repository, gen genai.Generator) *Service {
	return &Service{summaries: summaries, patients: patients, clinical: data, gen: gen}
}

// Generate drafts a new summary version for the patient. Both record lookups
// run before the upstream call so a missing patient or missing clinical data
// never triggers a generation request. Every successful call appends exactly
// one row; concurrent calls for the same patient each append independently.
func (s *Service) Generate(ctx context.Context, patientID int64) (*Summary, error) {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	d, err := s.clinical.LatestByPatient(ctx, patientID)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.Precondition("clinical data not available")
		}
		return nil, err
	}

	text, err := s.gen.Generate(ctx, BuildPrompt(p, d))
	if err != nil {
		return nil, err
	}

	sum := &Summary{PatientID: patientID, Text: text}
	if err := s.summaries.Create(ctx, sum); err != nil {
		return nil, err
	}
	return sum, nil
}

// Review applies the human-edited text over the latest version in place.
// It is a single state transition: the row becomes reviewed with the new
// text and an update timestamp, and the version count never changes.
func (s *Service) Review(ctx context.Context, patientID int64, in ReviewInput) (*Summary, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, apperror.Validation([]apperror.FieldViolation{
			{Field: "summary_text", Message: "is required"},
		})
	}
	return s.summaries.UpdateLatest(ctx, patientID, in.Text)
}

func (s *Service) Latest(ctx context.Context, patientID int64) (*Summary, error) {
	return s.summaries.LatestByPatient(ctx, patientID)
}

func (s *Service) Versions(ctx context.Context, patientID int64, limit, offset int) ([]*Summary, int, error) {
	return s.summaries.ListByPatient(ctx, patientID, limit, offset)
}
