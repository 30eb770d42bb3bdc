package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/kinnective/jobextractor/internal/repository"
	"github.com/kinnective/jobextractor/pkg/logging"
	"github.com/kinnective/jobextractor/pkg/mongodb"
)

const (
	// JobsCollection holds persisted job records.
	JobsCollection = "linkedin_jobs"
	// CompaniesCollection holds persisted company records.
	CompaniesCollection = "companies"
)

// Ensure Store implements the repository interfaces
var (
	_ repository.JobRepository     = (*Store)(nil)
	_ repository.CompanyRepository = (*Store)(nil)
	_ repository.HealthChecker     = (*Store)(nil)
)

// Store implements the persistence gateway against MongoDB. Every operation
// acquires a fresh connection and releases it unconditionally.
type Store struct {
	factory *mongodb.Factory
	logger  *logging.Logger
	clock   func() time.Time
}

// NewStore creates a Store over a connection factory
func NewStore(factory *mongodb.Factory, logger *logging.Logger) (*Store, error) {
	if factory == nil {
		return nil, fmt.Errorf("mongo.Store: connection factory is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Store{
		factory: factory,
		logger:  logger,
		clock:   time.Now,
	}, nil
}

// insert writes one document, re-reads it by its generated identifier to
// confirm durability, and returns the identifier as an opaque string.
func (s *Store) insert(ctx context.Context, collection string, doc bson.M) (string, error) {
	client, err := s.factory.Connect(ctx)
	if err != nil {
		return "", &StoreError{Op: "connect", Err: err}
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	coll := client.Database(s.factory.Database()).Collection(collection)

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return "", &StoreError{Op: "insert into " + collection, Err: err}
	}
	if res.InsertedID == nil {
		return "", &StoreError{Op: "insert into " + collection, Err: fmt.Errorf("no document identifier returned")}
	}

	if err := coll.FindOne(ctx, bson.M{"_id": res.InsertedID}).Err(); err != nil {
		return "", &StoreError{Op: "verify insert into " + collection, Err: err}
	}

	id := formatID(res.InsertedID)
	s.logger.Info("document inserted",
		"collection", collection,
		"id", id,
	)
	return id, nil
}

func formatID(id any) string {
	if oid, ok := id.(bson.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}

// toDocument flattens a record into a bson document for structural
// validation and insertion.
func toDocument(rec any) (bson.M, error) {
	data, err := bson.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func missingFields(doc bson.M, required []string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := doc[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
