package infra_mongo_movie

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/humanbelnik/moviehub/internal/model"
)

var ErrMovieNotFound = errors.New("movie not found")

const collection = "movies"

type Repository struct {
	movies *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{movies: db.Collection(collection)}
}

func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.movies.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "title", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create title index: %w", err)
	}

	return nil
}

func (r *Repository) Store(ctx context.Context, m model.Movie) (model.Movie, error) {
	movieDB := FromDomain(m)
	movieDB.ID = bson.NewObjectID()

	_, err := r.movies.InsertOne(ctx, movieDB)
	if err != nil {
		return model.Movie{}, fmt.Errorf("failed to store movie: %w", err)
	}

	return movieDB.ToDomain(), nil
}

func (r *Repository) LoadAll(ctx context.Context) ([]model.Movie, error) {
	cursor, err := r.movies.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}

	var moviesDB []MovieDB
	if err := cursor.All(ctx, &moviesDB); err != nil {
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}

	movies := make([]model.Movie, len(moviesDB))
	for i, movieDB := range moviesDB {
		movies[i] = movieDB.ToDomain()
	}

	return movies, nil
}

// LoadAllWithReviews joins every movie with the ratings of its reviews in a
// single aggregation round trip. Mean and ordering are computed by the caller.
func (r *Repository) LoadAllWithReviews(ctx context.Context) ([]model.MovieReviews, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "reviews"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "movieId"},
			{Key: "as", Value: "reviews"},
		}}},
	}

	cursor, err := r.movies.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to join movies with reviews: %w", err)
	}

	var joinedDB []MovieReviewsDB
	if err := cursor.All(ctx, &joinedDB); err != nil {
		return nil, fmt.Errorf("failed to decode joined movies: %w", err)
	}

	joined := make([]model.MovieReviews, len(joinedDB))
	for i, movieDB := range joinedDB {
		joined[i] = movieDB.ToDomain()
	}

	return joined, nil
}

func (r *Repository) LoadByID(ctx context.Context, id bson.ObjectID) (model.Movie, error) {
	var movieDB MovieDB
	err := r.movies.FindOne(ctx, bson.M{"_id": id}).Decode(&movieDB)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Movie{}, ErrMovieNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to load movie by id: %w", err)
	}

	return movieDB.ToDomain(), nil
}

func (r *Repository) LoadByTitle(ctx context.Context, title string) (model.Movie, error) {
	var movieDB MovieDB
	err := r.movies.FindOne(ctx, bson.M{"title": title}).Decode(&movieDB)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Movie{}, ErrMovieNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to load movie by title: %w", err)
	}

	return movieDB.ToDomain(), nil
}

// ReplaceByTitle swaps out the whole document of the first movie matching
// title and returns the post-update state.
func (r *Repository) ReplaceByTitle(ctx context.Context, title string, m model.Movie) (model.Movie, error) {
	movieDB := FromDomain(m)
	movieDB.ID = bson.NilObjectID // keep the stored identity

	var updatedDB MovieDB
	err := r.movies.FindOneAndReplace(
		ctx,
		bson.M{"title": title},
		movieDB,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&updatedDB)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Movie{}, ErrMovieNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to replace movie: %w", err)
	}

	return updatedDB.ToDomain(), nil
}

func (r *Repository) DeleteByTitle(ctx context.Context, title string) error {
	var deletedDB MovieDB
	err := r.movies.FindOneAndDelete(ctx, bson.M{"title": title}).Decode(&deletedDB)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrMovieNotFound
		}
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	return nil
}
