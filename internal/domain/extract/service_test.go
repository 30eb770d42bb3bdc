package extract

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

type fakeGenerator struct {
	resp   string
	err    error
	prompt string
	system string
	calls  int
}

func (f *fakeGenerator) Name() string { return "fake" }

func (f *fakeGenerator) Generate(_ context.Context, system, prompt string) (string, error) {
	f.calls++
	f.system = system
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.resp, nil
}

func newTestService(t *testing.T, gen Generator) Service {
	t.Helper()
	svc, err := NewService(
		WithGenerator(gen),
		WithClock(func() time.Time { return frozenNow }),
	)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestServiceRequiresGenerator(t *testing.T) {
	if _, err := NewService(); err == nil {
		t.Fatal("expected an error when no generator is configured")
	}
}

func TestServiceExtract(t *testing.T) {
	gen := &fakeGenerator{resp: `{
		"job_data": {"position_title": "Platform Engineer", "company": "Acme", "created_date": "2023-01-01"},
		"company_data": {"name": "Acme", "url": "https://acme.io"}
	}`}
	svc := newTestService(t, gen)

	res, err := svc.Extract(context.Background(), acceptablePosting, true)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("backend called %d times, want exactly 1", gen.calls)
	}
	if gen.system != SystemInstruction {
		t.Fatal("backend must receive the fixed system instruction")
	}
	if res.Job.PositionTitle != "Platform Engineer" {
		t.Fatalf("position_title = %q", res.Job.PositionTitle)
	}
	// the processing date always wins over a backend-claimed created_date
	if res.Job.CreatedDate != "2025-06-15" {
		t.Fatalf("created_date = %q, want 2025-06-15", res.Job.CreatedDate)
	}
	if res.Company == nil || res.Company.Name != "Acme" {
		t.Fatalf("company = %+v", res.Company)
	}
	if res.CompanySynthesized {
		t.Fatal("nested payload must not be flagged as synthesized")
	}
	if res.RawResponse != gen.resp {
		t.Fatal("raw backend response must be surfaced on the result")
	}
}

func TestServiceExtractJobOnly(t *testing.T) {
	gen := &fakeGenerator{resp: `{"position_title": "Engineer", "company": "Acme"}`}
	svc := newTestService(t, gen)

	res, err := svc.Extract(context.Background(), acceptablePosting, false)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Company != nil {
		t.Fatal("company record must be omitted when not requested")
	}
	if res.CompanySynthesized {
		t.Fatal("synthesis flag must stay false when the company is not requested")
	}
}

func TestServiceExtractRejectsInvalidInput(t *testing.T) {
	gen := &fakeGenerator{resp: `{}`}
	svc := newTestService(t, gen)

	_, err := svc.Extract(context.Background(), "too short", true)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if gen.calls != 0 {
		t.Fatal("backend must not be called for rejected input")
	}
}

func TestServiceExtractBackendFailure(t *testing.T) {
	cause := errors.New("quota exceeded")
	svc := newTestService(t, &fakeGenerator{err: cause})

	_, err := svc.Extract(context.Background(), acceptablePosting, true)

	var berr *BackendError
	if !errors.As(err, &berr) {
		t.Fatalf("err = %v, want *BackendError", err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("backend error must wrap the underlying cause")
	}
}

func TestServiceExtractUnusableResponse(t *testing.T) {
	svc := newTestService(t, &fakeGenerator{resp: `{"weather": "sunny"}`})

	_, err := svc.Extract(context.Background(), acceptablePosting, true)
	if !errors.Is(err, ErrNoUsableData) {
		t.Fatalf("err = %v, want ErrNoUsableData", err)
	}
}

func TestServiceExtractResolvesRelativeDate(t *testing.T) {
	gen := &fakeGenerator{resp: `{"position_title": "Engineer", "application_posted": "2019-01-01"}`}
	svc := newTestService(t, gen)

	res, err := svc.Extract(context.Background(), acceptablePosting+"\nPosted 4 weeks ago", true)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Job.ApplicationPosted != "2025-05-18" {
		t.Fatalf("application_posted = %q, want 2025-05-18", res.Job.ApplicationPosted)
	}
}

func TestServiceExtractIsDeterministic(t *testing.T) {
	gen := &fakeGenerator{resp: `{"position_title": "Engineer", "company": "Acme"}`}
	svc := newTestService(t, gen)

	first, err := svc.Extract(context.Background(), acceptablePosting, true)
	if err != nil {
		t.Fatalf("first Extract: %v", err)
	}
	second, err := svc.Extract(context.Background(), acceptablePosting, true)
	if err != nil {
		t.Fatalf("second Extract: %v", err)
	}
	if !reflect.DeepEqual(first.Job, second.Job) {
		t.Fatal("same input and frozen clock must yield identical job records")
	}
}
