package patient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wardscribe/wardscribe/internal/platform/apperror"
)

type mockRepo struct {
	patients map[int64]*Patient
	nextID   int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[int64]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	m.nextID++
	p.ID = m.nextID
	p.CreatedAt = time.Now()
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, apperror.NotFound("patient")
	}
	return p, nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var result []*Patient
	for _, p := range m.patients {
		result = append(result, p)
	}
	return result, len(result), nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.patients[id]; !ok {
		return apperror.NotFound("patient")
	}
	delete(m.patients, id)
	return nil
}

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func validInput() CreateInput {
	return CreateInput{
		Name:              "John Doe",
		Age:               intPtr(60),
		Gender:            "Male",
		RegNo:             strPtr("REG-1"),
		Department:        "General Medicine",
		Ward:              "Ward 4",
		DateOfAdmission:   "2024-01-15",
		PrimaryConsultant: "Dr. X",
	}
}

func TestCreate(t *testing.T) {
	svc := NewService(newMockRepo())

	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == 0 {
		t.Error("expected ID to be set")
	}
	if p.Age != 60 {
		t.Errorf("expected age 60, got %d", p.Age)
	}
	if !p.DateOfAdmission.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected admission date: %v", p.DateOfAdmission)
	}
	if p.DateOfDeath != nil {
		t.Error("date of death must be nil when not supplied")
	}
}

func TestCreate_WithDateOfDeath(t *testing.T) {
	svc := NewService(newMockRepo())
	in := validInput()
	in.DateOfDeath = strPtr("2024-02-01")

	p, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.DateOfDeath == nil {
		t.Fatal("expected date of death to be set")
	}
	if !p.DateOfDeath.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date of death: %v", p.DateOfDeath)
	}
}

func TestCreate_CollectsAllViolations(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		Age:             intPtr(-1),
		DateOfAdmission: "15/01/2024",
	})
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.Error, got %T", err)
	}

	fields := make(map[string]bool)
	for _, v := range appErr.Violations {
		fields[v.Field] = true
	}
	for _, want := range []string{"name", "age", "gender", "department", "ward", "primary_consultant", "date_of_admission"} {
		if !fields[want] {
			t.Errorf("missing violation for %q, got %v", want, appErr.Violations)
		}
	}
}

func TestCreate_BadDateOfDeath(t *testing.T) {
	svc := NewService(newMockRepo())
	in := validInput()
	in.DateOfDeath = strPtr("not-a-date")

	_, err := svc.Create(context.Background(), in)
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.Get(context.Background(), 99)
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not_found error, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(context.Background(), p.ID); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("expected not_found after delete, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())

	err := svc.Delete(context.Background(), 99)
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not_found error, got %v", err)
	}
}
