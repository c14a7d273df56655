package http_auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/humanbelnik/moviehub/internal/delivery/http/common"
	usecase_user "github.com/humanbelnik/moviehub/internal/usecase/user"
)

type SignUpRequestDTO struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignInRequestDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignInResponseDTO struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type Controller struct {
	uc     *usecase_user.Usecase
	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_user.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/signup", c.signUp)
	router.POST("/signin", c.signIn)
}

// signUp answers 200 on every outcome; failures carry success:false.
// Duplicate usernames are deliberately not an HTTP error.
func (c *Controller) signUp(ctx *gin.Context) {
	var req SignUpRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusOK, http_common.ErrorResponse{
			Msg: "Please include both username and password to signup.",
		})
		return
	}

	err := c.uc.SignUp(ctx.Request.Context(), req.Name, req.Username, req.Password)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"msg":     "Successfully created new user.",
		})
	case errors.Is(err, usecase_user.ErrInvalidInput):
		ctx.JSON(http.StatusOK, http_common.ErrorResponse{
			Msg: "Please include both username and password to signup.",
		})
	case errors.Is(err, usecase_user.ErrDuplicateUsername):
		ctx.JSON(http.StatusOK, http_common.ErrorResponse{
			Message: "A user with that username already exists.",
		})
	default:
		c.logger.Error("signup failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "Error creating user.",
		})
	}
}

func (c *Controller) signIn(ctx *gin.Context) {
	var req SignInRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Msg: "Authentication failed.",
		})
		return
	}

	token, err := c.uc.SignIn(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase_user.ErrAuthenticationFailed) {
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Msg: "Authentication failed.",
			})
			return
		}
		c.logger.Error("signin failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "Error signing in.",
		})
		return
	}

	ctx.JSON(http.StatusOK, SignInResponseDTO{
		Success: true,
		Token:   "JWT " + token,
	})
}
