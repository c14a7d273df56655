package app

import (
	"context"
	"log"
	"time"

	"github.com/humanbelnik/moviehub/internal/config"
	http_auth "github.com/humanbelnik/moviehub/internal/delivery/http/auth"
	http_init "github.com/humanbelnik/moviehub/internal/delivery/http/init"
	http_auth_middleware "github.com/humanbelnik/moviehub/internal/delivery/http/middleware/auth"
	http_movie "github.com/humanbelnik/moviehub/internal/delivery/http/movie"
	http_review "github.com/humanbelnik/moviehub/internal/delivery/http/review"
	infra_analytics "github.com/humanbelnik/moviehub/internal/infra/analytics"
	infra_mongo_init "github.com/humanbelnik/moviehub/internal/infra/mongo/init"
	infra_mongo_movie "github.com/humanbelnik/moviehub/internal/infra/mongo/movie"
	infra_mongo_review "github.com/humanbelnik/moviehub/internal/infra/mongo/review"
	infra_mongo_user "github.com/humanbelnik/moviehub/internal/infra/mongo/user"
	auth_service "github.com/humanbelnik/moviehub/internal/service/auth"
	usecase_movie "github.com/humanbelnik/moviehub/internal/usecase/movie"
	usecase_review "github.com/humanbelnik/moviehub/internal/usecase/review"
	usecase_user "github.com/humanbelnik/moviehub/internal/usecase/user"
)

func Go(cfg *config.Config) {
	client := infra_mongo_init.MustEstablishConn(cfg.Mongo)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	db := client.Database(cfg.Mongo.DBName)

	userRepository := infra_mongo_user.New(db)
	movieRepository := infra_mongo_movie.New(db)
	reviewRepository := infra_mongo_review.New(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := userRepository.EnsureIndexes(ctx); err != nil {
		log.Fatalf("failed to ensure user indexes: %v", err)
	}
	if err := movieRepository.EnsureIndexes(ctx); err != nil {
		log.Fatalf("failed to ensure movie indexes: %v", err)
	}

	authService, err := auth_service.New(cfg.Auth.SecretKey)
	if err != nil {
		log.Fatalf("failed to init auth service: %v", err)
	}

	var reporter usecase_review.Reporter
	if cfg.Analytics.TrackingID != "" {
		reporter = infra_analytics.New(cfg.Analytics.TrackingID)
	} else {
		reporter = infra_analytics.NewNoop()
	}

	userUC := usecase_user.New(userRepository, authService)
	movieUC := usecase_movie.New(movieRepository)
	reviewUC := usecase_review.New(reviewRepository, movieRepository, reporter)

	authMiddleware := http_auth_middleware.New(authService)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_auth.New(userUC))
	controllerPool.Add(http_movie.New(movieUC, authMiddleware))
	controllerPool.Add(http_review.New(reviewUC, authMiddleware))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
