package auth_service

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/humanbelnik/moviehub/internal/model"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrWrongPassword = errors.New("wrong password")
	ErrFailedToHash  = errors.New("failed to hash password")
	ErrFailedToIssue = errors.New("failed to issue token")
	ErrEmptySecret   = errors.New("signing secret is empty")
	ErrUnexpectedAlg = errors.New("unexpected signing method")
)

// Claims carry the identity descriptor inside the token. Tokens are issued
// without an expiry: verification detects tampering, not staleness.
// TODO: add exp once clients are ready to refresh tokens.
type Claims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
}

func New(secret string) (*Service, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	return &Service{secret: []byte(secret)}, nil
}

func (s *Service) Hash(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToHash, err)
	}

	return hash, nil
}

func (s *Service) Compare(hash []byte, password string) error {
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return ErrWrongPassword
	}

	return nil
}

func (s *Service) Issue(identity model.Identity) (string, error) {
	claims := Claims{
		ID:       identity.ID,
		Username: identity.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToIssue, err)
	}

	return signed, nil
}

func (s *Service) Verify(tokenStr string) (model.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedAlg
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return model.Identity{}, ErrInvalidToken
	}

	return model.Identity{
		ID:       claims.ID,
		Username: claims.Username,
	}, nil
}
