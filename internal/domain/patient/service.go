package patient

import (
	"context"
	"time"

	"github.com/wardscribe/wardscribe/internal/platform/apperror"
)

// ISODate is the wire format for all incoming dates.
const ISODate = "2006-01-02"

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

// validate collects every violation in the intake payload rather than
// stopping at the first, so the caller can fix the whole form in one pass.
func validate(in CreateInput) (doa time.Time, dod *time.Time, err error) {
	var c apperror.Collector

	if in.Name == "" {
		c.Add("name", "is required")
	}
	switch {
	case in.Age == nil:
		c.Add("age", "is required")
	case *in.Age < 0:
		c.Add("age", "must be a non-negative integer")
	}
	if in.Gender == "" {
		c.Add("gender", "is required")
	}
	if in.Department == "" {
		c.Add("department", "is required")
	}
	if in.Ward == "" {
		c.Add("ward", "is required")
	}
	if in.PrimaryConsultant == "" {
		c.Add("primary_consultant", "is required")
	}

	if in.DateOfAdmission == "" {
		c.Add("date_of_admission", "is required")
	} else if t, perr := time.Parse(ISODate, in.DateOfAdmission); perr != nil {
		c.Addf("date_of_admission", "must be a valid date in %s format", ISODate)
	} else {
		doa = t
	}

	if in.DateOfDeath != nil && *in.DateOfDeath != "" {
		if t, perr := time.Parse(ISODate, *in.DateOfDeath); perr != nil {
			c.Addf("date_of_death", "must be a valid date in %s format", ISODate)
		} else {
			dod = &t
		}
	}

	return doa, dod, c.Err()
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Patient, error) {
	doa, dod, err := validate(in)
	if err != nil {
		return nil, err
	}

	p := &Patient{
		Name:              in.Name,
		Age:               *in.Age,
		Gender:            in.Gender,
		RegNo:             in.RegNo,
		IPNo:              in.IPNo,
		Department:        in.Department,
		Ward:              in.Ward,
		DateOfAdmission:   doa,
		DateOfDeath:       dod,
		PrimaryConsultant: in.PrimaryConsultant,
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}

// Delete removes a patient record; clinical data and summaries cascade at
// the storage layer.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.patients.Delete(ctx, id)
}
