package infra_mongo_movie

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/humanbelnik/moviehub/internal/model"
)

type ActorDB struct {
	ActorName     string `bson:"actorName"`
	CharacterName string `bson:"characterName"`
}

type MovieDB struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Title       string        `bson:"title"`
	ReleaseDate int           `bson:"releaseDate"`
	Genre       string        `bson:"genre"`
	ImageURL    string        `bson:"imageUrl,omitempty"`
	Actors      []ActorDB     `bson:"actors"`
}

// MovieReviewsDB is the $lookup output: a movie plus its joined reviews.
type MovieReviewsDB struct {
	MovieDB `bson:",inline"`
	Reviews []struct {
		Rating float64 `bson:"rating"`
	} `bson:"reviews"`
}

func (m *MovieDB) ToDomain() model.Movie {
	actors := make([]model.Actor, len(m.Actors))
	for i, a := range m.Actors {
		actors[i] = model.Actor{
			ActorName:     a.ActorName,
			CharacterName: a.CharacterName,
		}
	}

	return model.Movie{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseDate: m.ReleaseDate,
		Genre:       m.Genre,
		ImageURL:    m.ImageURL,
		Actors:      actors,
	}
}

func (m *MovieReviewsDB) ToDomain() model.MovieReviews {
	ratings := make([]float64, len(m.Reviews))
	for i, r := range m.Reviews {
		ratings[i] = r.Rating
	}

	return model.MovieReviews{
		Movie:   m.MovieDB.ToDomain(),
		Ratings: ratings,
	}
}

func FromDomain(m model.Movie) MovieDB {
	actors := make([]ActorDB, len(m.Actors))
	for i, a := range m.Actors {
		actors[i] = ActorDB{
			ActorName:     a.ActorName,
			CharacterName: a.CharacterName,
		}
	}

	return MovieDB{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseDate: m.ReleaseDate,
		Genre:       m.Genre,
		ImageURL:    m.ImageURL,
		Actors:      actors,
	}
}
