package clinical

import (
	"context"

	"github.com/wardscribe/wardscribe/internal/platform/apperror"
)

type Service struct {
	data Repository
}

func NewService(data Repository) *Service {
	return &Service{data: data}
}

func validate(in CreateInput) error {
	var c apperror.Collector
	if in.FinalDiagnosis == "" {
		c.Add("final_diagnosis", "is required")
	}
	if in.ChiefComplaints == "" {
		c.Add("chief_complaints", "is required")
	}
	if in.HospitalCourse == "" {
		c.Add("hospital_course", "is required")
	}
	if in.Investigations == "" {
		c.Add("investigations", "is required")
	}
	return c.Err()
}

func (s *Service) Create(ctx context.Context, patientID int64, in CreateInput) (*Data, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	d := &Data{
		PatientID:       patientID,
		FinalDiagnosis:  in.FinalDiagnosis,
		ChiefComplaints: in.ChiefComplaints,
		PastHistory:     in.PastHistory,
		ExamFindings:    in.ExamFindings,
		HospitalCourse:  in.HospitalCourse,
		Investigations:  in.Investigations,
	}
	if err := s.data.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) LatestForPatient(ctx context.Context, patientID int64) (*Data, error) {
	return s.data.LatestByPatient(ctx, patientID)
}

func (s *Service) ListForPatient(ctx context.Context, patientID int64, limit, offset int) ([]*Data, int, error) {
	return s.data.ListByPatient(ctx, patientID, limit, offset)
}
