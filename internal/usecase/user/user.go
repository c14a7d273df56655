package usecase_user

import (
	"context"
	"errors"
	"fmt"

	infra_mongo_user "github.com/humanbelnik/moviehub/internal/infra/mongo/user"
	"github.com/humanbelnik/moviehub/internal/model"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrDuplicateUsername    = errors.New("username already taken")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInternal             = errors.New("internal error")
)

type Repository interface {
	Store(ctx context.Context, u model.User) error
	LoadByUsername(ctx context.Context, username string) (model.User, error)
}

// Credentials abstracts password hashing and token issuance.
type Credentials interface {
	Hash(password string) ([]byte, error)
	Compare(hash []byte, password string) error
	Issue(identity model.Identity) (string, error)
}

type Usecase struct {
	repository  Repository
	credentials Credentials
}

func New(
	repository Repository,
	credentials Credentials,
) *Usecase {
	return &Usecase{
		repository:  repository,
		credentials: credentials,
	}
}

func (u *Usecase) SignUp(ctx context.Context, name, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	hash, err := u.credentials.Hash(password)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	user := model.User{
		Name:     name,
		Username: username,
		Password: hash,
	}

	if err := u.repository.Store(ctx, user); err != nil {
		if errors.Is(err, infra_mongo_user.ErrDuplicateUsername) {
			return fmt.Errorf("%w: %s", ErrDuplicateUsername, username)
		}
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return nil
}

// SignIn authenticates the credentials and returns a signed identity token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (u *Usecase) SignIn(ctx context.Context, username, password string) (string, error) {
	user, err := u.repository.LoadByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, infra_mongo_user.ErrUserNotFound) {
			return "", fmt.Errorf("%w: unknown username", ErrAuthenticationFailed)
		}
		return "", fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if err := u.credentials.Compare(user.Password, password); err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	token, err := u.credentials.Issue(model.Identity{
		ID:       user.ID.Hex(),
		Username: user.Username,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return token, nil
}
