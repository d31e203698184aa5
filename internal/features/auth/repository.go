package auth

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database interactions for both account collections.
// Users and admins live in separate collections; the role decides which
// one a lookup goes to.
type Repository struct {
	users  *mongo.Collection
	admins *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes.
func NewRepository(db *mongo.Database) *Repository {
	users := db.Collection("users")
	admins := db.Collection("admins")

	_, _ = users.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	_, _ = admins.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &Repository{users: users, admins: admins}
}

// CreateUser inserts a new user account.
func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	result, err := r.users.InsertOne(ctx, user)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// CreateAdmin inserts a new administrator account.
func (r *Repository) CreateAdmin(ctx context.Context, admin *Admin) error {
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = time.Now()

	result, err := r.admins.InsertOne(ctx, admin)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		admin.ID = oid
	}
	return nil
}

// FindUserByEmail returns the user with the given email, or nil when absent.
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindAdminByEmail returns the admin with the given email, or nil when absent.
func (r *Repository) FindAdminByEmail(ctx context.Context, email string) (*Admin, error) {
	var admin Admin
	err := r.admins.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// FindSubject resolves an authenticated caller by id within the collection
// the role points at. A deleted account resolves to nil, which callers must
// treat like any other credential failure.
func (r *Repository) FindSubject(ctx context.Context, id string, role Role) (*Subject, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	if role == RoleAdmin {
		var admin Admin
		err := r.admins.FindOne(ctx, bson.M{"_id": oid}).Decode(&admin)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, nil
			}
			return nil, err
		}
		return &Subject{
			ID:    admin.ID.Hex(),
			Role:  RoleAdmin,
			Name:  admin.Name,
			Email: admin.Email,
		}, nil
	}

	var user User
	err = r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &Subject{
		ID:    user.ID.Hex(),
		Role:  RoleUser,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}, nil
}
