package http_auth_middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	http_common "github.com/humanbelnik/moviehub/internal/delivery/http/common"
	"github.com/humanbelnik/moviehub/internal/model"
)

// IdentityKey is where the verified identity lands in the gin context.
const IdentityKey = "identity"

const (
	header = "Authorization"
	scheme = "JWT "
)

type TokenVerifier interface {
	Verify(token string) (model.Identity, error)
}

type Middleware struct {
	verifier TokenVerifier
	logger   *slog.Logger
}

type MiddlewareOption func(*Middleware)

func WithLogger(logger *slog.Logger) MiddlewareOption {
	return func(m *Middleware) {
		m.logger = logger
	}
}

func New(verifier TokenVerifier, opts ...MiddlewareOption) *Middleware {
	m := &Middleware{
		verifier: verifier,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AuthRequired expects "Authorization: JWT <token>" and aborts with 401 when
// the header is missing, carries another scheme, or fails verification.
func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value := ctx.GetHeader(header)
		if value == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Msg: "No token provided.",
			})
			return
		}

		token, ok := strings.CutPrefix(value, scheme)
		if !ok || token == "" {
			m.logger.Warn("malformed authorization header")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Msg: "Malformed token.",
			})
			return
		}

		identity, err := m.verifier.Verify(token)
		if err != nil {
			m.logger.Warn("token verification failed", slog.String("error", err.Error()))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Msg: "Invalid token.",
			})
			return
		}

		ctx.Set(IdentityKey, identity)
		ctx.Next()
	}
}
