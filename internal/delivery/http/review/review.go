package http_review

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	http_common "github.com/humanbelnik/moviehub/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/moviehub/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/moviehub/internal/model"
	usecase_review "github.com/humanbelnik/moviehub/internal/usecase/review"
)

type CreateReviewRequestDTO struct {
	MovieID  string   `json:"movieId" binding:"required"`
	Username string   `json:"username" binding:"required"`
	Review   string   `json:"review" binding:"required"`
	Rating   *float64 `json:"rating" binding:"required"`
}

type ReviewResponseDTO struct {
	ID       string  `json:"_id"`
	MovieID  string  `json:"movieId"`
	Username string  `json:"username"`
	Review   string  `json:"review"`
	Rating   float64 `json:"rating"`
}

func ConvertFromReview(r model.Review) ReviewResponseDTO {
	return ReviewResponseDTO{
		ID:       r.ID.Hex(),
		MovieID:  r.MovieID.Hex(),
		Username: r.Username,
		Review:   r.Text,
		Rating:   r.Rating,
	}
}

func ConvertFromReviewList(reviews []model.Review) []ReviewResponseDTO {
	dtos := make([]ReviewResponseDTO, len(reviews))
	for i, r := range reviews {
		dtos[i] = ConvertFromReview(r)
	}
	return dtos
}

type Controller struct {
	uc         *usecase_review.Usecase
	middleware *http_auth_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_review.Usecase,
	middleware *http_auth_middleware.Middleware,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:         uc,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterRoutes keeps listing public; creation and deletion need a token.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/reviews", c.listReviews)
	router.POST("/reviews", c.middleware.AuthRequired(), c.createReview)
	router.DELETE("/reviews/:id", c.middleware.AuthRequired(), c.deleteReview)
}

func (c *Controller) listReviews(ctx *gin.Context) {
	var (
		reviews []model.Review
		err     error
	)

	if movieIDParam := ctx.Query("movieId"); movieIDParam != "" {
		movieID, parseErr := bson.ObjectIDFromHex(movieIDParam)
		if parseErr != nil {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "Invalid movieId.",
			})
			return
		}
		reviews, err = c.uc.ListByMovieID(ctx.Request.Context(), movieID)
	} else {
		reviews, err = c.uc.List(ctx.Request.Context())
	}

	if err != nil {
		c.logger.Error("failed to load reviews", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "Error fetching reviews.",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"reviews": ConvertFromReviewList(reviews),
	})
}

func (c *Controller) createReview(ctx *gin.Context) {
	var req CreateReviewRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Missing required fields (movieId, username, review, rating).",
		})
		return
	}

	// An unparseable id cannot resolve to a movie.
	movieID, err := bson.ObjectIDFromHex(req.MovieID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "Movie not found in DB.",
		})
		return
	}

	review := model.Review{
		MovieID:  movieID,
		Username: req.Username,
		Text:     req.Review,
		Rating:   *req.Rating,
	}

	if _, err := c.uc.Create(ctx.Request.Context(), review); err != nil {
		switch {
		case errors.Is(err, usecase_review.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "Missing required fields (movieId, username, review, rating).",
			})
		case errors.Is(err, usecase_review.ErrMovieNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "Movie not found in DB.",
			})
		default:
			c.logger.Error("failed to create review", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "Error creating review.",
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Review created!"})
}

func (c *Controller) deleteReview(ctx *gin.Context) {
	id, err := bson.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "Review not found.",
		})
		return
	}

	if err := c.uc.DeleteByID(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, usecase_review.ErrReviewNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "Review not found.",
			})
			return
		}
		c.logger.Error("failed to delete review",
			slog.String("error", err.Error()),
			slog.String("id", ctx.Param("id")),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "Error deleting review.",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Review deleted.",
	})
}
