package infra_mongo_review

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/humanbelnik/moviehub/internal/model"
)

var ErrReviewNotFound = errors.New("review not found")

const collection = "reviews"

type Repository struct {
	reviews *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{reviews: db.Collection(collection)}
}

func (r *Repository) Store(ctx context.Context, review model.Review) (model.Review, error) {
	reviewDB := FromDomain(review)
	reviewDB.ID = bson.NewObjectID()

	_, err := r.reviews.InsertOne(ctx, reviewDB)
	if err != nil {
		return model.Review{}, fmt.Errorf("failed to store review: %w", err)
	}

	return reviewDB.ToDomain(), nil
}

func (r *Repository) LoadAll(ctx context.Context) ([]model.Review, error) {
	return r.load(ctx, bson.M{})
}

func (r *Repository) LoadByMovieID(ctx context.Context, movieID bson.ObjectID) ([]model.Review, error) {
	return r.load(ctx, bson.M{"movieId": movieID})
}

func (r *Repository) load(ctx context.Context, filter bson.M) ([]model.Review, error) {
	cursor, err := r.reviews.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}

	var reviewsDB []ReviewDB
	if err := cursor.All(ctx, &reviewsDB); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	reviews := make([]model.Review, len(reviewsDB))
	for i, reviewDB := range reviewsDB {
		reviews[i] = reviewDB.ToDomain()
	}

	return reviews, nil
}

func (r *Repository) DeleteByID(ctx context.Context, id bson.ObjectID) error {
	var deletedDB ReviewDB
	err := r.reviews.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deletedDB)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}
