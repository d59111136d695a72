package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/models"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/models/dto"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/storage"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/validate"
)

const msgInvalidCredentials = "Invalid credentials"

// PasswordHasher is the one-way password primitive.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer signs bearer credentials for a user.
type TokenIssuer interface {
	Generate(user models.User) (string, error)
}

// Identity registers and authenticates café customers.
type Identity struct {
	users     storage.UserStore
	hasher    PasswordHasher
	tokens    TokenIssuer
	validator *validate.Validator
}

// NewIdentity constructs the identity service.
func NewIdentity(users storage.UserStore, hasher PasswordHasher, tokens TokenIssuer, v *validate.Validator) *Identity {
	return &Identity{users: users, hasher: hasher, tokens: tokens, validator: v}
}

// Register creates an account and returns it with a fresh token.
func (s *Identity) Register(ctx context.Context, req dto.SignupRequest) (dto.AuthResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Mobile = strings.TrimSpace(req.Mobile)
	if err := s.validator.Struct(req); err != nil {
		return dto.AuthResponse{}, validationError(err.Error())
	}

	if _, err := s.users.FindUserByEmail(ctx, req.Email); err == nil {
		return dto.AuthResponse{}, conflictError("Email already exists")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return dto.AuthResponse{}, internalError("find user", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return dto.AuthResponse{}, internalError("hash password", err)
	}

	created, err := s.users.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		Mobile:       req.Mobile,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return dto.AuthResponse{}, conflictError("Email already exists")
		}
		return dto.AuthResponse{}, internalError("create user", err)
	}
	zerolog.Ctx(ctx).Info().Int64("user_id", created.ID).Msg("user registered")

	return s.issue(created, "User created successfully")
}

// Authenticate checks credentials and returns the user with a fresh token.
// Unknown emails and wrong passwords produce the same error.
func (s *Identity) Authenticate(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return dto.AuthResponse{}, validationError(err.Error())
	}

	user, err := s.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return dto.AuthResponse{}, authError(msgInvalidCredentials)
		}
		return dto.AuthResponse{}, internalError("find user", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		zerolog.Ctx(ctx).Debug().Int64("user_id", user.ID).Msg("login rejected")
		return dto.AuthResponse{}, authError(msgInvalidCredentials)
	}

	return s.issue(user, "Login successful")
}

func (s *Identity) issue(user models.User, message string) (dto.AuthResponse, error) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		return dto.AuthResponse{}, internalError("generate token", err)
	}
	return dto.AuthResponse{Message: message, Token: token, User: user.Public()}, nil
}
