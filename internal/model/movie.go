package model

import "go.mongodb.org/mongo-driver/v2/bson"

const (
	MinReleaseDate = 1900
	MaxReleaseDate = 2100

	MinActors = 3
)

var Genres = []string{
	"Action",
	"Adventure",
	"Comedy",
	"Drama",
	"Fantasy",
	"Horror",
	"Mystery",
	"Thriller",
	"Western",
	"Science Fiction",
}

func IsKnownGenre(genre string) bool {
	for _, g := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}

type Actor struct {
	ActorName     string
	CharacterName string
}

type Movie struct {
	ID          bson.ObjectID
	Title       string
	ReleaseDate int
	Genre       string
	ImageURL    string
	Actors      []Actor
}

// MovieReviews is a movie joined with the ratings of its reviews.
type MovieReviews struct {
	Movie   Movie
	Ratings []float64
}

// RatedMovie carries the mean rating of a movie.
// AvgRating is nil when the movie has no reviews.
type RatedMovie struct {
	Movie     Movie
	AvgRating *float64
}
