package infra_mongo_user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/humanbelnik/moviehub/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

const collection = "users"

type Repository struct {
	users *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{users: db.Collection(collection)}
}

// EnsureIndexes creates the unique username index the duplicate check
// relies on. Call once at startup.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}

	return nil
}

func (r *Repository) Store(ctx context.Context, u model.User) error {
	userDB := FromDomain(u)
	userDB.ID = bson.NewObjectID()

	_, err := r.users.InsertOne(ctx, userDB)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to store user: %w", err)
	}

	return nil
}

func (r *Repository) LoadByUsername(ctx context.Context, username string) (model.User, error) {
	var userDB UserDB
	err := r.users.FindOne(ctx, bson.M{"username": username}).Decode(&userDB)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("failed to load user by username: %w", err)
	}

	return userDB.ToDomain(), nil
}
