package http_auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	infra_mongo_user "github.com/humanbelnik/moviehub/internal/infra/mongo/user"
	"github.com/humanbelnik/moviehub/internal/model"
	auth_service "github.com/humanbelnik/moviehub/internal/service/auth"
	usecase_user "github.com/humanbelnik/moviehub/internal/usecase/user"
	mocks "github.com/humanbelnik/moviehub/internal/usecase/user/mocks"
)

func modelUser(username string, hash []byte) model.User {
	return model.User{
		ID:       bson.NewObjectID(),
		Name:     "n",
		Username: username,
		Password: hash,
	}
}

func newRouter(t *testing.T) (*gin.Engine, *mocks.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repository := mocks.NewRepository(t)
	credentials, err := auth_service.New("handler-test-secret")
	require.NoError(t, err)

	router := gin.New()
	New(usecase_user.New(repository, credentials)).RegisterRoutes(router.Group("/"))

	return router, repository
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignUp(t *testing.T) {
	t.Run("returns success for fresh username", func(t *testing.T) {
		router, repository := newRouter(t)
		repository.On("Store", mock.Anything, mock.AnythingOfType("model.User")).
			Return(nil).Once()

		w := post(router, "/signup", `{"name":"n","username":"u1","password":"p1"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
	})

	t.Run("returns 200 with success false on duplicate", func(t *testing.T) {
		router, repository := newRouter(t)
		repository.On("Store", mock.Anything, mock.AnythingOfType("model.User")).
			Return(infra_mongo_user.ErrDuplicateUsername).Once()

		w := post(router, "/signup", `{"name":"n","username":"u1","password":"p1"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
		assert.Contains(t, w.Body.String(), "already exists")
	})

	t.Run("returns 200 with success false on missing fields", func(t *testing.T) {
		router, _ := newRouter(t)

		w := post(router, "/signup", `{"name":"n","username":"u1"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})
}

func TestSignIn(t *testing.T) {
	t.Run("returns prefixed token for valid credentials", func(t *testing.T) {
		router, repository := newRouter(t)

		credentials, err := auth_service.New("handler-test-secret")
		require.NoError(t, err)
		hash, err := credentials.Hash("p1")
		require.NoError(t, err)

		repository.On("LoadByUsername", mock.Anything, "u1").
			Return(modelUser("u1", hash), nil).Once()

		w := post(router, "/signin", `{"username":"u1","password":"p1"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"JWT `)
	})

	t.Run("returns 401 for bad credentials", func(t *testing.T) {
		router, repository := newRouter(t)

		repository.On("LoadByUsername", mock.Anything, "ghost").
			Return(modelUser("", nil), infra_mongo_user.ErrUserNotFound).Once()

		w := post(router, "/signin", `{"username":"ghost","password":"p1"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
