package server

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hiremind/internal/config"
	"github.com/jonathan/hiremind/internal/store"
	"github.com/jonathan/hiremind/internal/types"
)

func newTestUserService() *UserService {
	return NewUserService(store.NewMemory(), &config.PasswordConfig{BcryptCost: 10})
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.RegisterRequest{
		Name:     "Alex",
		Email:    "Alex@Example.COM",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "Alex", user.Name)
	// Email is normalized on the way in.
	assert.Equal(t, "alex@example.com", user.Email)

	// Login works with any casing of the same address.
	logged, err := svc.Login(ctx, &types.LoginRequest{
		Email:    "alex@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	req := &types.RegisterRequest{Name: "Alex", Email: "alex@example.com", Password: "password123"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	var dup *ErrEmailAlreadyExists
	assert.ErrorAs(t, err, &dup)

	// Case variations collide too.
	_, err = svc.Register(ctx, &types.RegisterRequest{
		Name: "Other", Email: "ALEX@example.com", Password: "password456",
	})
	assert.ErrorAs(t, err, &dup)
}

func TestUserService_LoginFailuresAreGeneric(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.RegisterRequest{
		Name: "Alex", Email: "alex@example.com", Password: "password123",
	})
	require.NoError(t, err)

	// Unknown email and wrong password yield the identical error.
	var invalid *ErrInvalidCredentials

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorAs(t, err, &invalid)

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "alex@example.com", Password: "wrong"})
	assert.ErrorAs(t, err, &invalid)
}

func TestUserService_GetUser(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.RegisterRequest{
		Name: "Alex", Email: "alex@example.com", Password: "password123",
	})
	require.NoError(t, err)

	got, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "alex@example.com", got.Email)

	_, err = svc.GetUser(ctx, uuid.New())
	var notFound *ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}
