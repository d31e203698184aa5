package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	pkgerrors "github.com/xyz-asif/cleancity/pkg/errors"
)

// opTimeout bounds every store call so a slow database surfaces as an
// upstream failure instead of a hang.
const opTimeout = 5 * time.Second

// Repository is the Mongo-backed report store.
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes.
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("reports")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})

	return &Repository{collection: collection}
}

func opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

func translate(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: report store", pkgerrors.ErrTimeout)
	}
	return err
}

// Create persists a new report with generated id and timestamps. Status and
// verification always start at their defaults regardless of input.
func (r *Repository) Create(ctx context.Context, report *Report) error {
	ctx, cancel := opContext(ctx)
	defer cancel()

	report.CreatedAt = time.Now()
	report.UpdatedAt = time.Now()
	report.Status = StatusPending
	report.Verified = false
	if report.Images == nil {
		report.Images = []string{}
	}
	if report.Urgency == "" {
		report.Urgency = UrgencyNormal
	}

	result, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return translate(err)
	}

	report.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID returns a report by id, or nil when the id is unknown or malformed.
func (r *Repository) GetByID(ctx context.Context, id string) (*Report, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	var report Report
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, translate(err)
	}

	return &report, nil
}

// ListByUser returns the owner's reports, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Report, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []Report{}, nil
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": objectID}, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var results []Report
	if err := cursor.All(ctx, &results); err != nil {
		return nil, translate(err)
	}

	if results == nil {
		results = []Report{}
	}
	return results, nil
}

// ListAll returns every report newest first, with the owner's name, email,
// and phone joined from the users collection for the administrator view.
func (r *Repository) ListAll(ctx context.Context) ([]AdminReport, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "userId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "reporter"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$reporter"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "reporter.password", Value: 0},
			{Key: "reporter.createdAt", Value: 0},
			{Key: "reporter.updatedAt", Value: 0},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var results []AdminReport
	if err := cursor.All(ctx, &results); err != nil {
		return nil, translate(err)
	}

	if results == nil {
		results = []AdminReport{}
	}
	return results, nil
}

// UpdateFields applies a $set merge to one report and returns the updated
// document. The write is atomic per record; concurrent updates resolve as
// last-write-wins at the field level.
func (r *Repository) UpdateFields(ctx context.Context, id string, update bson.M) (*Report, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	update["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var report Report
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": update}, opts).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, translate(err)
	}

	return &report, nil
}

// Delete hard-deletes a report.
func (r *Repository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return pkgerrors.ErrNotFound
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return translate(err)
	}

	if result.DeletedCount == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}
