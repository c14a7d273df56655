package http_movie

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/humanbelnik/moviehub/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/moviehub/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/moviehub/internal/model"
	usecase_movie "github.com/humanbelnik/moviehub/internal/usecase/movie"
)

type ActorDTO struct {
	ActorName     string `json:"actorName"`
	CharacterName string `json:"characterName"`
}

type MovieRequestDTO struct {
	Title       string     `json:"title"`
	ReleaseDate int        `json:"releaseDate"`
	Genre       string     `json:"genre"`
	ImageURL    string     `json:"imageUrl"`
	Actors      []ActorDTO `json:"actors"`
}

type MovieResponseDTO struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	ReleaseDate int        `json:"releaseDate"`
	Genre       string     `json:"genre"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Actors      []ActorDTO `json:"actors"`
}

// RatedMovieResponseDTO is a movie plus its mean review rating.
// AvgRating serializes to null for movies without reviews.
type RatedMovieResponseDTO struct {
	MovieResponseDTO
	AvgRating *float64 `json:"avgRating"`
}

func (r *MovieRequestDTO) ConvertToMovie() model.Movie {
	actors := make([]model.Actor, len(r.Actors))
	for i, a := range r.Actors {
		actors[i] = model.Actor{
			ActorName:     a.ActorName,
			CharacterName: a.CharacterName,
		}
	}

	return model.Movie{
		Title:       r.Title,
		ReleaseDate: r.ReleaseDate,
		Genre:       r.Genre,
		ImageURL:    r.ImageURL,
		Actors:      actors,
	}
}

func ConvertFromMovie(m model.Movie) MovieResponseDTO {
	actors := make([]ActorDTO, len(m.Actors))
	for i, a := range m.Actors {
		actors[i] = ActorDTO{
			ActorName:     a.ActorName,
			CharacterName: a.CharacterName,
		}
	}

	return MovieResponseDTO{
		ID:          m.ID.Hex(),
		Title:       m.Title,
		ReleaseDate: m.ReleaseDate,
		Genre:       m.Genre,
		ImageURL:    m.ImageURL,
		Actors:      actors,
	}
}

func ConvertFromMovieList(movies []model.Movie) []MovieResponseDTO {
	dtos := make([]MovieResponseDTO, len(movies))
	for i, m := range movies {
		dtos[i] = ConvertFromMovie(m)
	}
	return dtos
}

func ConvertFromRatedMovieList(movies []model.RatedMovie) []RatedMovieResponseDTO {
	dtos := make([]RatedMovieResponseDTO, len(movies))
	for i, m := range movies {
		dtos[i] = RatedMovieResponseDTO{
			MovieResponseDTO: ConvertFromMovie(m.Movie),
			AvgRating:        m.AvgRating,
		}
	}
	return dtos
}

type Controller struct {
	uc         *usecase_movie.Usecase
	middleware *http_auth_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_movie.Usecase,
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

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	movies.Use(c.middleware.AuthRequired())

	movies.GET("", c.listMovies)
	movies.POST("", c.createMovie)
	movies.GET("/:title", c.getMovie)
	movies.PUT("/:title", c.updateMovie)
	movies.DELETE("/:title", c.deleteMovie)
}

// listMovies returns the plain catalog, or the ranked rating view when the
// request carries ?reviews=true.
func (c *Controller) listMovies(ctx *gin.Context) {
	if ctx.Query("reviews") == "true" {
		rated, err := c.uc.ListWithRatings(ctx.Request.Context())
		if err != nil {
			c.logger.Error("failed to load rated movies", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "Error fetching movies.",
			})
			return
		}
		ctx.JSON(http.StatusOK, ConvertFromRatedMovieList(rated))
		return
	}

	movies, err := c.uc.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load movies", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "Error fetching movies.",
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromMovieList(movies))
}

func (c *Controller) createMovie(ctx *gin.Context) {
	var req MovieRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Msg: "Invalid request body.",
		})
		return
	}

	movie, err := c.uc.Create(ctx.Request.Context(), req.ConvertToMovie())
	if err != nil {
		if errors.Is(err, usecase_movie.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Msg: "Missing required movie fields or less than 3 actors.",
			})
			return
		}
		c.logger.Error("failed to create movie",
			slog.String("error", err.Error()),
			slog.String("title", req.Title),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "Error saving movie.",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Movie added successfully.",
		"movie":   ConvertFromMovie(movie),
	})
}

func (c *Controller) getMovie(ctx *gin.Context) {
	title := ctx.Param("title")

	movie, err := c.uc.GetByTitle(ctx.Request.Context(), title)
	if err != nil {
		if errors.Is(err, usecase_movie.ErrMovieNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Msg: "Movie not found.",
			})
			return
		}
		c.logger.Error("failed to get movie",
			slog.String("error", err.Error()),
			slog.String("title", title),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "Error retrieving movie.",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"movie":   ConvertFromMovie(movie),
	})
}

func (c *Controller) updateMovie(ctx *gin.Context) {
	title := ctx.Param("title")

	var req MovieRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Msg: "Invalid request body.",
		})
		return
	}

	movie, err := c.uc.ReplaceByTitle(ctx.Request.Context(), title, req.ConvertToMovie())
	if err != nil {
		if errors.Is(err, usecase_movie.ErrMovieNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Msg: "Movie not found.",
			})
			return
		}
		c.logger.Error("failed to update movie",
			slog.String("error", err.Error()),
			slog.String("title", title),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "Error updating movie.",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Movie updated successfully.",
		"movie":   ConvertFromMovie(movie),
	})
}

func (c *Controller) deleteMovie(ctx *gin.Context) {
	title := ctx.Param("title")

	if err := c.uc.DeleteByTitle(ctx.Request.Context(), title); err != nil {
		if errors.Is(err, usecase_movie.ErrMovieNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Msg: "Movie not found.",
			})
			return
		}
		c.logger.Error("failed to delete movie",
			slog.String("error", err.Error()),
			slog.String("title", title),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "Error deleting movie.",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Movie deleted successfully.",
	})
}
