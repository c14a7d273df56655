//go:build !integration
// +build !integration

package usecase_review

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	infra_mongo_movie "github.com/humanbelnik/moviehub/internal/infra/mongo/movie"
	infra_mongo_review "github.com/humanbelnik/moviehub/internal/infra/mongo/review"
	"github.com/humanbelnik/moviehub/internal/model"
	mocks "github.com/humanbelnik/moviehub/internal/usecase/review/mocks"
)

type UsecaseReviewUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase         *Usecase
	repository      *mocks.Repository
	movieRepository *mocks.MovieRepository
	reporter        *mocks.Reporter
	ctx             context.Context
	wg              sync.WaitGroup
}

func initResources(t provider.T) *resources {
	repository := mocks.NewRepository(t)
	movieRepository := mocks.NewMovieRepository(t)
	reporter := mocks.NewReporter(t)
	usecase := New(repository, movieRepository, reporter)

	return &resources{
		usecase:         usecase,
		repository:      repository,
		movieRepository: movieRepository,
		reporter:        reporter,
		ctx:             context.Background(),
	}
}

func validMovie() model.Movie {
	return model.Movie{
		ID:          bson.NewObjectID(),
		Title:       "Test Movie",
		ReleaseDate: 2020,
		Genre:       "Drama",
		Actors: []model.Actor{
			{ActorName: "A1", CharacterName: "C1"},
			{ActorName: "A2", CharacterName: "C2"},
			{ActorName: "A3", CharacterName: "C3"},
		},
	}
}

func validReview(movieID bson.ObjectID) model.Review {
	return model.Review{
		MovieID:  movieID,
		Username: "u1",
		Text:     "Great movie",
		Rating:   4.5,
	}
}

func (suite *UsecaseReviewUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	t.Run("Should store review and dispatch usage event", func(t provider.T) {
		r := initResources(t)
		movie := validMovie()
		review := validReview(movie.ID)
		stored := review
		stored.ID = bson.NewObjectID()

		r.movieRepository.On("LoadByID", r.ctx, movie.ID).Return(movie, nil).Once()
		r.repository.On("Store", r.ctx, review).Return(stored, nil).Once()

		r.wg.Add(1)
		r.reporter.On("Report", mock.Anything, model.UsageEvent{
			Category:  movie.Genre,
			Action:    "POST /reviews",
			Label:     "API Request for Movie Review",
			Value:     1,
			Dimension: movie.Title,
			Metric:    1,
		}).Return(nil).Once().Run(func(args mock.Arguments) {
			r.wg.Done()
		})

		got, err := r.usecase.Create(r.ctx, review)
		r.wg.Wait()

		assert.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("Should succeed even when the reporter fails", func(t provider.T) {
		r := initResources(t)
		movie := validMovie()
		review := validReview(movie.ID)
		stored := review
		stored.ID = bson.NewObjectID()

		r.movieRepository.On("LoadByID", r.ctx, movie.ID).Return(movie, nil).Once()
		r.repository.On("Store", r.ctx, review).Return(stored, nil).Once()

		r.wg.Add(1)
		r.reporter.On("Report", mock.Anything, mock.AnythingOfType("model.UsageEvent")).
			Return(errors.New("analytics down")).Once().Run(func(args mock.Arguments) {
			r.wg.Done()
		})

		_, err := r.usecase.Create(r.ctx, review)
		r.wg.Wait()

		assert.NoError(t, err)
	})

	t.Run("Should reject review for unknown movie and store nothing", func(t provider.T) {
		r := initResources(t)
		movieID := bson.NewObjectID()
		review := validReview(movieID)

		r.movieRepository.On("LoadByID", r.ctx, movieID).
			Return(model.Movie{}, infra_mongo_movie.ErrMovieNotFound).Once()

		_, err := r.usecase.Create(r.ctx, review)

		assert.ErrorIs(t, err, ErrMovieNotFound)
		r.repository.AssertNotCalled(t, "Store")
		r.reporter.AssertNotCalled(t, "Report")
	})

	t.Run("Should reject incomplete review", func(t provider.T) {
		r := initResources(t)

		testCases := []model.Review{
			{MovieID: bson.NewObjectID(), Username: "", Text: "t", Rating: 1},
			{MovieID: bson.NewObjectID(), Username: "u1", Text: "", Rating: 1},
			{Username: "u1", Text: "t", Rating: 1},
		}

		for _, review := range testCases {
			_, err := r.usecase.Create(r.ctx, review)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
		r.movieRepository.AssertNotCalled(t, "LoadByID")
	})
}

func (suite *UsecaseReviewUnitSuite) TestList(t provider.T) {
	t.Parallel()

	t.Run("Should return all reviews", func(t provider.T) {
		r := initResources(t)
		expected := []model.Review{
			validReview(bson.NewObjectID()),
			validReview(bson.NewObjectID()),
		}

		r.repository.On("LoadAll", r.ctx).Return(expected, nil).Once()

		got, err := r.usecase.List(r.ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("Should filter by movie id", func(t provider.T) {
		r := initResources(t)
		movieID := bson.NewObjectID()
		expected := []model.Review{validReview(movieID)}

		r.repository.On("LoadByMovieID", r.ctx, movieID).Return(expected, nil).Once()

		got, err := r.usecase.ListByMovieID(r.ctx, movieID)

		assert.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("Should wrap store failures", func(t provider.T) {
		r := initResources(t)

		r.repository.On("LoadAll", r.ctx).Return(nil, errors.New("load error")).Once()

		_, err := r.usecase.List(r.ctx)

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func (suite *UsecaseReviewUnitSuite) TestDeleteByID(t provider.T) {
	t.Parallel()

	t.Run("Should delete existing review", func(t provider.T) {
		r := initResources(t)
		id := bson.NewObjectID()

		r.repository.On("DeleteByID", r.ctx, id).Return(nil).Once()

		assert.NoError(t, r.usecase.DeleteByID(r.ctx, id))
	})

	t.Run("Should map missing review to ErrReviewNotFound", func(t provider.T) {
		r := initResources(t)
		id := bson.NewObjectID()

		r.repository.On("DeleteByID", r.ctx, id).
			Return(infra_mongo_review.ErrReviewNotFound).Once()

		assert.ErrorIs(t, r.usecase.DeleteByID(r.ctx, id), ErrReviewNotFound)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseReviewUnitSuite))
}
