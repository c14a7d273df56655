package usecase_movie

import (
	"context"
	"errors"
	"fmt"
	"sort"

	infra_mongo_movie "github.com/humanbelnik/moviehub/internal/infra/mongo/movie"
	"github.com/humanbelnik/moviehub/internal/model"
)

var (
	ErrInvalidInput  = errors.New("invalid movie")
	ErrMovieNotFound = errors.New("movie not found")
	ErrInternal      = errors.New("internal error")
)

type Repository interface {
	Store(ctx context.Context, m model.Movie) (model.Movie, error)
	LoadAll(ctx context.Context) ([]model.Movie, error)
	LoadAllWithReviews(ctx context.Context) ([]model.MovieReviews, error)
	LoadByTitle(ctx context.Context, title string) (model.Movie, error)
	ReplaceByTitle(ctx context.Context, title string, m model.Movie) (model.Movie, error)
	DeleteByTitle(ctx context.Context, title string) error
}

type Usecase struct {
	repository Repository
}

func New(repository Repository) *Usecase {
	return &Usecase{repository: repository}
}

func (u *Usecase) Create(ctx context.Context, m model.Movie) (model.Movie, error) {
	if problems := Validate(m); len(problems) > 0 {
		return model.Movie{}, fmt.Errorf("%w: %v", ErrInvalidInput, problems)
	}

	stored, err := u.repository.Store(ctx, m)
	if err != nil {
		return model.Movie{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return stored, nil
}

func (u *Usecase) List(ctx context.Context) ([]model.Movie, error) {
	movies, err := u.repository.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return movies, nil
}

// ListWithRatings produces the ranked rating view: every movie with the mean
// of its review ratings, ordered by mean descending. Movies without reviews
// carry a nil mean and sort after every rated movie; ties break on title
// ascending.
func (u *Usecase) ListWithRatings(ctx context.Context) ([]model.RatedMovie, error) {
	joined, err := u.repository.LoadAllWithReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return Rank(joined), nil
}

func (u *Usecase) GetByTitle(ctx context.Context, title string) (model.Movie, error) {
	movie, err := u.repository.LoadByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, infra_mongo_movie.ErrMovieNotFound) {
			return model.Movie{}, fmt.Errorf("%w: %s", ErrMovieNotFound, title)
		}
		return model.Movie{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return movie, nil
}

func (u *Usecase) ReplaceByTitle(ctx context.Context, title string, m model.Movie) (model.Movie, error) {
	updated, err := u.repository.ReplaceByTitle(ctx, title, m)
	if err != nil {
		if errors.Is(err, infra_mongo_movie.ErrMovieNotFound) {
			return model.Movie{}, fmt.Errorf("%w: %s", ErrMovieNotFound, title)
		}
		return model.Movie{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return updated, nil
}

func (u *Usecase) DeleteByTitle(ctx context.Context, title string) error {
	if err := u.repository.DeleteByTitle(ctx, title); err != nil {
		if errors.Is(err, infra_mongo_movie.ErrMovieNotFound) {
			return fmt.Errorf("%w: %s", ErrMovieNotFound, title)
		}
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return nil
}

// Rank computes the mean rating per movie and orders the view:
// rated movies by mean descending, unrated movies after them,
// title ascending on equal means.
func Rank(joined []model.MovieReviews) []model.RatedMovie {
	rated := make([]model.RatedMovie, len(joined))
	for i, mr := range joined {
		rated[i] = model.RatedMovie{Movie: mr.Movie, AvgRating: mean(mr.Ratings)}
	}

	sort.SliceStable(rated, func(i, j int) bool {
		a, b := rated[i].AvgRating, rated[j].AvgRating
		switch {
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		case a != nil && b != nil && *a != *b:
			return *a > *b
		default:
			return rated[i].Movie.Title < rated[j].Movie.Title
		}
	})

	return rated
}

func mean(ratings []float64) *float64 {
	if len(ratings) == 0 {
		return nil
	}

	var sum float64
	for _, r := range ratings {
		sum += r
	}
	avg := sum / float64(len(ratings))

	return &avg
}
