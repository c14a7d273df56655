package usecase_review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	infra_mongo_movie "github.com/humanbelnik/moviehub/internal/infra/mongo/movie"
	infra_mongo_review "github.com/humanbelnik/moviehub/internal/infra/mongo/review"
	"github.com/humanbelnik/moviehub/internal/model"
)

var (
	ErrInvalidInput   = errors.New("invalid review")
	ErrMovieNotFound  = errors.New("movie not found")
	ErrReviewNotFound = errors.New("review not found")
	ErrInternal       = errors.New("internal error")
)

const reportTimeout = 10 * time.Second

type Repository interface {
	Store(ctx context.Context, r model.Review) (model.Review, error)
	LoadAll(ctx context.Context) ([]model.Review, error)
	LoadByMovieID(ctx context.Context, movieID bson.ObjectID) ([]model.Review, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) error
}

type MovieRepository interface {
	LoadByID(ctx context.Context, id bson.ObjectID) (model.Movie, error)
}

// Reporter receives best-effort usage events. Its failures never reach callers.
type Reporter interface {
	Report(ctx context.Context, e model.UsageEvent) error
}

type Usecase struct {
	repository      Repository
	movieRepository MovieRepository
	reporter        Reporter

	logger *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	repository Repository,
	movieRepository MovieRepository,
	reporter Reporter,
	opts ...UsecaseOption,
) *Usecase {
	u := &Usecase{
		repository:      repository,
		movieRepository: movieRepository,
		reporter:        reporter,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Create validates the review, requires the referenced movie to exist, stores
// the review, then dispatches a usage event in the background. The dispatch
// runs on a detached context so it survives the request, and its outcome only
// matters to the log.
func (u *Usecase) Create(ctx context.Context, r model.Review) (model.Review, error) {
	if r.Username == "" || r.Text == "" {
		return model.Review{}, fmt.Errorf("%w: username and review are required", ErrInvalidInput)
	}
	if r.MovieID.IsZero() {
		return model.Review{}, fmt.Errorf("%w: movieId is required", ErrInvalidInput)
	}

	movie, err := u.movieRepository.LoadByID(ctx, r.MovieID)
	if err != nil {
		if errors.Is(err, infra_mongo_movie.ErrMovieNotFound) {
			return model.Review{}, fmt.Errorf("%w: %s", ErrMovieNotFound, r.MovieID.Hex())
		}
		return model.Review{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	stored, err := u.repository.Store(ctx, r)
	if err != nil {
		return model.Review{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	go u.report(movie)

	return stored, nil
}

func (u *Usecase) report(movie model.Movie) {
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	event := model.UsageEvent{
		Category:  movie.Genre,
		Action:    "POST /reviews",
		Label:     "API Request for Movie Review",
		Value:     1,
		Dimension: movie.Title,
		Metric:    1,
	}

	if err := u.reporter.Report(ctx, event); err != nil {
		u.logger.Warn("analytics dispatch failed",
			slog.String("error", err.Error()),
			slog.String("title", movie.Title),
		)
	}
}

func (u *Usecase) List(ctx context.Context) ([]model.Review, error) {
	reviews, err := u.repository.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return reviews, nil
}

func (u *Usecase) ListByMovieID(ctx context.Context, movieID bson.ObjectID) ([]model.Review, error) {
	reviews, err := u.repository.LoadByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return reviews, nil
}

func (u *Usecase) DeleteByID(ctx context.Context, id bson.ObjectID) error {
	if err := u.repository.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, infra_mongo_review.ErrReviewNotFound) {
			return fmt.Errorf("%w: %s", ErrReviewNotFound, id.Hex())
		}
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return nil
}
