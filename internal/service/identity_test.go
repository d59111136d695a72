package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/models/dto"
)

func signup(email string) dto.SignupRequest {
	return dto.SignupRequest{Name: "Ada Lovelace", Email: email, Mobile: "9876543210", Password: "analytical"}
}

func TestRegisterDistinctEmailsThenConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.identity.Register(ctx, signup("ada@example.com"))
	require.NoError(t, err)
	second, err := f.identity.Register(ctx, signup("bo@example.com"))
	require.NoError(t, err)

	assert.NotEqual(t, first.User.ID, second.User.ID)
	assert.Equal(t, "User created successfully", first.Message)
	assert.NotEmpty(t, first.Token)

	_, err = f.identity.Register(ctx, signup("ada@example.com"))
	requireKind(t, err, KindConflict)
	assert.Equal(t, "Email already exists", MessageOf(err))
}

func TestRegisterHashesPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.identity.Register(ctx, signup("ada@example.com"))
	require.NoError(t, err)

	stored, err := f.store.FindUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "analytical", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		mut  func(*dto.SignupRequest)
		want string
	}{
		{"short name", func(r *dto.SignupRequest) { r.Name = " A " }, "Name must be at least 2 characters"},
		{"bad email", func(r *dto.SignupRequest) { r.Email = "ada-at-example" }, "Invalid email"},
		{"mobile with letters", func(r *dto.SignupRequest) { r.Mobile = "98765x3210" }, "Mobile must be 10 digits"},
		{"mobile too long", func(r *dto.SignupRequest) { r.Mobile = "98765432100" }, "Mobile must be 10 digits"},
		{"short password", func(r *dto.SignupRequest) { r.Password = "12345" }, "Password must be at least 6 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := signup("ada@example.com")
			tc.mut(&req)
			_, err := f.identity.Register(ctx, req)
			requireKind(t, err, KindValidation)
			assert.Equal(t, tc.want, MessageOf(err))
		})
	}
	assert.Zero(t, f.store.UserCount())
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	registered, err := f.identity.Register(ctx, signup("ada@example.com"))
	require.NoError(t, err)

	resp, err := f.identity.Authenticate(ctx, dto.LoginRequest{Email: "ada@example.com", Password: "analytical"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, registered.User, resp.User)

	claims, err := f.tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.identity.Register(ctx, signup("ada@example.com"))
	require.NoError(t, err)

	_, wrongPassword := f.identity.Authenticate(ctx, dto.LoginRequest{Email: "ada@example.com", Password: "wrong-password"})
	_, unknownEmail := f.identity.Authenticate(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "analytical"})

	requireKind(t, wrongPassword, KindAuth)
	requireKind(t, unknownEmail, KindAuth)
	assert.Equal(t, MessageOf(wrongPassword), MessageOf(unknownEmail))
	assert.Equal(t, "Invalid credentials", MessageOf(unknownEmail))
}

func TestAuthenticateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.identity.Authenticate(ctx, dto.LoginRequest{Email: "nope", Password: "x"})
	requireKind(t, err, KindValidation)
	assert.Equal(t, "Invalid email", MessageOf(err))

	_, err = f.identity.Authenticate(ctx, dto.LoginRequest{Email: "ada@example.com"})
	requireKind(t, err, KindValidation)
	assert.Equal(t, "Password is required", MessageOf(err))
}

func TestGuestAccountCannotLogIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.bookings.Create(ctx, guestBooking("guest@example.com"))
	require.NoError(t, err)

	_, err = f.identity.Authenticate(ctx, dto.LoginRequest{Email: "guest@example.com", Password: "booking-user"})
	requireKind(t, err, KindAuth)

	_, err = f.identity.Register(ctx, signup("guest@example.com"))
	requireKind(t, err, KindConflict)
}

func TestRegisterAndLoginWithLongPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := signup("ada@example.com")
	req.Password = strings.Repeat("p", 80)
	_, err := f.identity.Register(ctx, req)
	require.NoError(t, err)

	resp, err := f.identity.Authenticate(ctx, dto.LoginRequest{Email: req.Email, Password: req.Password})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", resp.Message)

	_, err = f.identity.Authenticate(ctx, dto.LoginRequest{Email: req.Email, Password: req.Password[:72]})
	requireKind(t, err, KindAuth)
}
