package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/hiremind/internal/config"
	"github.com/jonathan/hiremind/internal/store"
	"github.com/jonathan/hiremind/internal/types"
)

// userRecord is the persisted user shape. It lives in the key-value store
// under two keys: by normalized email (primary) and by id (lookup for
// token-authenticated requests). User records never expire.
type userRecord struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserService provides user registration and authentication over the
// key-value store.
type UserService struct {
	store          store.Store
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(st store.Store, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          st,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new user with password authentication.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.loadByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: email}
	}

	hash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	record := &userRecord{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.save(ctx, record); err != nil {
		return nil, err
	}

	return record.toUser(), nil
}

// Login authenticates a user by email and password. Any failure mode yields
// the same generic credentials error.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	record, err := s.loadByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, record.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}
	return record.toUser(), nil
}

// GetUser loads a user by id, as resolved from a validated token.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*types.User, error) {
	data, ok, err := s.store.Get(ctx, store.UserIDKey(id.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !ok {
		return nil, &ErrNotFound{Resource: "user", ID: id.String()}
	}

	var record userRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return record.toUser(), nil
}

func (s *UserService) loadByEmail(ctx context.Context, email string) (*userRecord, error) {
	data, ok, err := s.store.Get(ctx, store.UserKey(email))
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var record userRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &record, nil
}

// save writes the record under both its email and id keys with no expiry.
func (s *UserService) save(ctx context.Context, record *userRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	if err := s.store.SetWithExpiry(ctx, store.UserKey(record.Email), data, 0); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	if err := s.store.SetWithExpiry(ctx, store.UserIDKey(record.ID.String()), data, 0); err != nil {
		return fmt.Errorf("failed to index user: %w", err)
	}
	return nil
}

func (r *userRecord) toUser() *types.User {
	return &types.User{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
