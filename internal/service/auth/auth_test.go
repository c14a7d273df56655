package auth_service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humanbelnik/moviehub/internal/model"
)

func TestNewRequiresSecret(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestHashAndCompare(t *testing.T) {
	s, err := New("test-secret")
	require.NoError(t, err)

	hash, err := s.Hash("p1")
	require.NoError(t, err)
	assert.NotEqual(t, []byte("p1"), hash)

	assert.NoError(t, s.Compare(hash, "p1"))
	assert.ErrorIs(t, s.Compare(hash, "p2"), ErrWrongPassword)
	assert.ErrorIs(t, s.Compare(hash, ""), ErrWrongPassword)
}

func TestIssueAndVerify(t *testing.T) {
	s, err := New("test-secret")
	require.NoError(t, err)

	identity := model.Identity{ID: "abc123", Username: "u1"}

	token, err := s.Issue(identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	s, err := New("test-secret")
	require.NoError(t, err)

	token, err := s.Issue(model.Identity{ID: "abc123", Username: "u1"})
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = s.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	issuer, err := New("secret-a")
	require.NoError(t, err)
	verifier, err := New("secret-b")
	require.NoError(t, err)

	token, err := issuer.Issue(model.Identity{ID: "abc123", Username: "u1"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	s, err := New("test-secret")
	require.NoError(t, err)

	_, err = s.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
