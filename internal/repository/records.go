package repository

import (
	"context"

	"github.com/kinnective/jobextractor/internal/domain"
)

// JobRepository persists job records to the document store
type JobRepository interface {
	// InsertJob writes one record and returns the store-generated identifier
	InsertJob(ctx context.Context, rec *domain.JobRecord) (string, error)
}

// CompanyRepository persists company records to the document store
type CompanyRepository interface {
	// InsertCompany writes one record and returns the store-generated identifier
	InsertCompany(ctx context.Context, rec *domain.CompanyRecord) (string, error)
}

// CollectionStatus reports one collection's existence and size.
type CollectionStatus struct {
	Exists    bool
	Documents int64
}

// HealthReport describes store reachability without mutating data.
type HealthReport struct {
	Database    string
	Collections map[string]CollectionStatus
}

// HealthChecker probes the document store for status display
type HealthChecker interface {
	Check(ctx context.Context) (HealthReport, error)
}
