package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/kinnective/jobextractor/internal/repository"
)

// Check probes the store and reports collection existence and document
// counts without mutating data. Used for status display only.
func (s *Store) Check(ctx context.Context) (repository.HealthReport, error) {
	report := repository.HealthReport{
		Database:    s.factory.Database(),
		Collections: make(map[string]repository.CollectionStatus, 2),
	}

	client, err := s.factory.Connect(ctx)
	if err != nil {
		return report, &StoreError{Op: "connect", Err: err}
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(s.factory.Database())

	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return report, &StoreError{Op: "list collections", Err: err}
	}

	existing := make(map[string]bool, len(names))
	for _, name := range names {
		existing[name] = true
	}

	for _, name := range []string{JobsCollection, CompaniesCollection} {
		status := repository.CollectionStatus{}
		if existing[name] {
			status.Exists = true
			count, err := db.Collection(name).CountDocuments(ctx, bson.M{})
			if err != nil {
				return report, &StoreError{Op: "count documents in " + name, Err: err}
			}
			status.Documents = count
		}
		report.Collections[name] = status
	}

	return report, nil
}
