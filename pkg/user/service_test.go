package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions struct{}

func (stubSessions) CreateToken(u *User) (string, error) {
	return "token-for-" + u.ID, nil
}

func TestRegisterAndLogin(t *testing.T) {
	s := NewService(NewUserRepo(), stubSessions{})
	ctx := context.Background()

	u, token, err := s.RegUser(ctx, "A", "a@b.com", "correctpw")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)
	assert.Equal(t, "token-for-1", token)
	assert.NotEqual(t, []byte("correctpw"), u.Password)

	_, _, err = s.RegUser(ctx, "A2", " A@B.com ", "x")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, _, err = s.LoginUser(ctx, "a@b.com", "wrongpw")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, _, err = s.LoginUser(ctx, "nobody@b.com", "correctpw")
	assert.ErrorIs(t, err, ErrBadCredentials)

	got, token, err := s.LoginUser(ctx, "a@b.com", "correctpw")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "token-for-1", token)
}

func TestRegisterRequiresFields(t *testing.T) {
	s := NewService(NewUserRepo(), stubSessions{})
	_, _, err := s.RegUser(context.Background(), "", "a@b.com", "pw")
	assert.ErrorIs(t, err, errFieldsRequired)
}
