package mongo

import (
	"context"

	"github.com/kinnective/jobextractor/internal/domain"
)

// InsertJob validates schema completeness, stamps inserted_at and writes the
// record to the jobs collection.
func (s *Store) InsertJob(ctx context.Context, rec *domain.JobRecord) (string, error) {
	if rec == nil {
		return "", &ValidationError{Missing: domain.JobFieldNames}
	}

	doc, err := toDocument(rec)
	if err != nil {
		return "", &StoreError{Op: "encode job record", Err: err}
	}

	if missing := missingFields(doc, domain.JobFieldNames); len(missing) > 0 {
		return "", &ValidationError{Missing: missing}
	}

	now := s.clock().UTC()

	// created_date backstop: the normalizer always sets it, but records
	// handed in directly by a caller may not.
	if v, _ := doc["created_date"].(string); v == "" {
		doc["created_date"] = now.Format(domain.DateLayout)
	}

	doc["inserted_at"] = now

	id, err := s.insert(ctx, JobsCollection, doc)
	if err != nil {
		return "", err
	}
	return id, nil
}

// InsertCompany validates schema completeness, stamps inserted_at and writes
// the record to the companies collection.
func (s *Store) InsertCompany(ctx context.Context, rec *domain.CompanyRecord) (string, error) {
	if rec == nil {
		return "", &ValidationError{Missing: domain.CompanyFieldNames}
	}

	doc, err := toDocument(rec)
	if err != nil {
		return "", &StoreError{Op: "encode company record", Err: err}
	}

	if missing := missingFields(doc, domain.CompanyFieldNames); len(missing) > 0 {
		return "", &ValidationError{Missing: missing}
	}

	doc["inserted_at"] = s.clock().UTC()

	id, err := s.insert(ctx, CompaniesCollection, doc)
	if err != nil {
		return "", err
	}
	return id, nil
}
