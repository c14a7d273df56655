package infra_mongo_review

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/humanbelnik/moviehub/internal/model"
)

type ReviewDB struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	MovieID  bson.ObjectID `bson:"movieId"`
	Username string        `bson:"username"`
	Review   string        `bson:"review"`
	Rating   float64       `bson:"rating"`
}

func (r *ReviewDB) ToDomain() model.Review {
	return model.Review{
		ID:       r.ID,
		MovieID:  r.MovieID,
		Username: r.Username,
		Text:     r.Review,
		Rating:   r.Rating,
	}
}

func FromDomain(r model.Review) ReviewDB {
	return ReviewDB{
		ID:       r.ID,
		MovieID:  r.MovieID,
		Username: r.Username,
		Review:   r.Text,
		Rating:   r.Rating,
	}
}
