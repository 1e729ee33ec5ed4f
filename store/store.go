package store

import (
	"context"
	"os"

	"github.com/Wheremykidsat/WMK-API/shared"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	ErrRequestNotFound  = errors.New("request not found")
	ErrInvalidRequestId = errors.New("malformed identifier")
)

// Collection names, one per entity kind (lowercased entity name).
const (
	KindParent          = "parent"
	KindTeacher         = "teacher"
	KindChild           = "child"
	KindMessage         = "message"
	KindDailyLog        = "dailylog"
	KindLeaveRequest    = "leaverequest"
	KindMedicineRequest = "medicinerequest"
	KindAlbumItem       = "albumitem"
	KindNotification    = "notification"
	KindPickupCode      = "pickupcode"
)

// Filter maps field names to required exact values for a list query. An
// empty or nil filter matches every document in the collection.
type Filter map[string]interface{}

type Store struct {
	Db     *mongo.Database `inject:""`
	Logger *shared.Logger  `inject:""`
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}
	return client.Database(dbName), nil
}

// CreateDocument inserts payload into the collection named by kind and
// returns the store-assigned identifier as a hex string.
func (s *Store) CreateDocument(ctx context.Context, kind string, payload interface{}) (string, error) {
	res, err := s.Db.Collection(kind).InsertOne(ctx, payload)
	if err != nil {
		return "", errors.Wrapf(err, "failed to insert %s", kind)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.Errorf("unexpected identifier type for %s", kind)
	}
	return oid.Hex(), nil
}

// getDocuments returns up to limit documents of the collection named by kind
// matching the equality filter. Results are sorted by _id ascending so list
// order is insertion order regardless of store defaults.
func getDocuments[T any](ctx context.Context, s *Store, kind string, filter Filter, limit int64) ([]T, error) {
	if filter == nil {
		filter = Filter{}
	}
	opts := options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cur, err := s.Db.Collection(kind).Find(ctx, bson.M(filter), opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s", kind)
	}

	docs := []T{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s documents", kind)
	}
	return docs, nil
}

// updateByID applies a $set to the document with the given identifier.
// Concurrent updates on the same document are last write wins.
func (s *Store) updateByID(ctx context.Context, kind, id string, set bson.M) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	res, err := s.Db.Collection(kind).UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return errors.Wrapf(err, "failed to update %s", kind)
	}
	if res.MatchedCount == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidRequestId
	}
	return oid, nil
}

type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseUrl      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnose reports store connectivity best-effort. Every failure mode is
// converted into a descriptive status string, never an error.
func (s *Store) Diagnose(ctx context.Context) Diagnostics {
	diag := Diagnostics{
		Backend:          "running",
		Database:         "not available",
		DatabaseUrl:      "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if os.Getenv("WMK_MONGO_URI") != "" {
		diag.DatabaseUrl = "set"
	}
	if s.Db == nil {
		return diag
	}

	diag.Database = "available"
	diag.DatabaseName = s.Db.Name()
	diag.ConnectionStatus = "connected"

	names, err := s.Db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		s.Logger.Warn(ctx, "failed to list collections", "error", err.Error())
		diag.Database = "connected but error: " + err.Error()
		return diag
	}
	diag.Collections = names
	diag.Database = "connected and working"
	return diag
}
