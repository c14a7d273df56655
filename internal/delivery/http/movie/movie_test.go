package http_movie

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	http_auth "github.com/humanbelnik/moviehub/internal/delivery/http/auth"
	http_auth_middleware "github.com/humanbelnik/moviehub/internal/delivery/http/middleware/auth"
	infra_mongo_movie "github.com/humanbelnik/moviehub/internal/infra/mongo/movie"
	"github.com/humanbelnik/moviehub/internal/model"
	auth_service "github.com/humanbelnik/moviehub/internal/service/auth"
	usecase_movie "github.com/humanbelnik/moviehub/internal/usecase/movie"
	movie_mocks "github.com/humanbelnik/moviehub/internal/usecase/movie/mocks"
	usecase_user "github.com/humanbelnik/moviehub/internal/usecase/user"
	user_mocks "github.com/humanbelnik/moviehub/internal/usecase/user/mocks"
)

type env struct {
	router          *gin.Engine
	userRepository  *user_mocks.Repository
	movieRepository *movie_mocks.Repository
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepository := user_mocks.NewRepository(t)
	movieRepository := movie_mocks.NewRepository(t)

	credentials, err := auth_service.New("flow-test-secret")
	require.NoError(t, err)

	router := gin.New()
	rg := router.Group("/")
	http_auth.New(usecase_user.New(userRepository, credentials)).RegisterRoutes(rg)
	New(usecase_movie.New(movieRepository), http_auth_middleware.New(credentials)).RegisterRoutes(rg)

	return &env{
		router:          router,
		userRepository:  userRepository,
		movieRepository: movieRepository,
	}
}

func (e *env) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

const movieBody = `{
	"title": "Test Movie",
	"releaseDate": 2020,
	"genre": "Drama",
	"imageUrl": "http://example.com/poster.jpg",
	"actors": [
		{"actorName": "A1", "characterName": "C1"},
		{"actorName": "A2", "characterName": "C2"},
		{"actorName": "A3", "characterName": "C3"}
	]
}`

// TestSignUpSignInMovieFlow walks the whole happy path: a fresh user signs up,
// signs in, then creates, reads, and deletes a movie with the issued token.
// A repeated read after the delete answers 404.
func TestSignUpSignInMovieFlow(t *testing.T) {
	e := newEnv(t)

	var stored model.User
	e.userRepository.On("Store", mock.Anything, mock.AnythingOfType("model.User")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(model.User)
			stored.ID = bson.NewObjectID()
		}).Return(nil).Once()
	e.userRepository.On("LoadByUsername", mock.Anything, "u1").
		Return(func(context.Context, string) (model.User, error) {
			return stored, nil
		}).Once()

	w := e.do(http.MethodPost, "/signup", "", `{"name":"n","username":"u1","password":"p1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)

	w = e.do(http.MethodPost, "/signin", "", `{"username":"u1","password":"p1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var signin struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signin))
	require.True(t, strings.HasPrefix(signin.Token, "JWT "))
	token := signin.Token

	w = e.do(http.MethodGet, "/movies/Test%20Movie", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	movie := model.Movie{
		ID:          bson.NewObjectID(),
		Title:       "Test Movie",
		ReleaseDate: 2020,
		Genre:       "Drama",
		ImageURL:    "http://example.com/poster.jpg",
		Actors: []model.Actor{
			{ActorName: "A1", CharacterName: "C1"},
			{ActorName: "A2", CharacterName: "C2"},
			{ActorName: "A3", CharacterName: "C3"},
		},
	}

	e.movieRepository.On("Store", mock.Anything, mock.AnythingOfType("model.Movie")).
		Return(movie, nil).Once()

	w = e.do(http.MethodPost, "/movies", token, movieBody)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Movie added successfully.")

	e.movieRepository.On("LoadByTitle", mock.Anything, "Test Movie").
		Return(movie, nil).Once()

	w = e.do(http.MethodGet, "/movies/Test%20Movie", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Test Movie"`)

	e.movieRepository.On("DeleteByTitle", mock.Anything, "Test Movie").
		Return(nil).Once()

	w = e.do(http.MethodDelete, "/movies/Test%20Movie", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Movie deleted successfully.")

	e.movieRepository.On("LoadByTitle", mock.Anything, "Test Movie").
		Return(model.Movie{}, infra_mongo_movie.ErrMovieNotFound).Once()

	w = e.do(http.MethodGet, "/movies/Test%20Movie", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMovieRejectsInvalidBody(t *testing.T) {
	e := newEnv(t)
	token := issueToken(t)

	w := e.do(http.MethodPost, "/movies", token, `{"title":"X","releaseDate":2020,"genre":"Drama","actors":[]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "less than 3 actors")
	e.movieRepository.AssertNotCalled(t, "Store")
}

func TestListMoviesWithRatings(t *testing.T) {
	e := newEnv(t)
	token := issueToken(t)

	e.movieRepository.On("LoadAllWithReviews", mock.Anything).
		Return([]model.MovieReviews{
			{
				Movie:   model.Movie{ID: bson.NewObjectID(), Title: "Rated"},
				Ratings: []float64{3, 5},
			},
			{
				Movie: model.Movie{ID: bson.NewObjectID(), Title: "Unrated"},
			},
		}, nil).Once()

	w := e.do(http.MethodGet, "/movies?reviews=true", token, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var rated []RatedMovieResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rated))
	require.Len(t, rated, 2)
	assert.Equal(t, "Rated", rated[0].Title)
	require.NotNil(t, rated[0].AvgRating)
	assert.Equal(t, 4.0, *rated[0].AvgRating)
	assert.Nil(t, rated[1].AvgRating)
	assert.Contains(t, w.Body.String(), `"avgRating":null`)
}

func issueToken(t *testing.T) string {
	t.Helper()
	credentials, err := auth_service.New("flow-test-secret")
	require.NoError(t, err)
	token, err := credentials.Issue(model.Identity{ID: "abc123", Username: "u1"})
	require.NoError(t, err)
	return "JWT " + token
}
