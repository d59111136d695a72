package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/models"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/models/dto"
)

func guestBooking(email string) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Name:           "Guest",
		Email:          email,
		Phone:          "9876543210",
		Date:           "2024-12-25",
		Time:           "19:30",
		NumberOfPeople: intPtr(2),
	}
}

func TestCreateBookingPartySizeBounds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, n := range []int{0, 11, -1} {
		req := guestBooking("ada@example.com")
		req.NumberOfPeople = intPtr(n)
		_, err := f.bookings.Create(ctx, req)
		requireKind(t, err, KindValidation)
	}
	for _, n := range []int{1, 10} {
		req := guestBooking("ada@example.com")
		req.NumberOfPeople = intPtr(n)
		b, err := f.bookings.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, n, b.NumberOfPeople)
	}
}

func TestCreateBookingDateAndTimeFormat(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := guestBooking("ada@example.com")
	req.Date = "2024-13-40"
	_, err := f.bookings.Create(ctx, req)
	requireKind(t, err, KindValidation)
	assert.Equal(t, "Date must be YYYY-MM-DD", MessageOf(err))

	req = guestBooking("ada@example.com")
	req.Time = "7pm"
	_, err = f.bookings.Create(ctx, req)
	requireKind(t, err, KindValidation)
	assert.Equal(t, "Time must be HH:MM", MessageOf(err))

	b, err := f.bookings.Create(ctx, guestBooking("ada@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "2024-12-25", b.Date)
	assert.Equal(t, models.StatusPending, b.Status)
}

func TestCreateBookingMissingFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.bookings.Create(context.Background(), dto.CreateBookingRequest{Name: "Guest", Email: "g@example.com", Date: "2024-12-25"})
	requireKind(t, err, KindValidation)
	assert.Equal(t, "Missing required fields: phone, time, numberOfPeople", MessageOf(err))
	assert.Zero(t, f.store.UserCount())
}

func TestCreateBookingReusesGuestUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.bookings.Create(ctx, guestBooking("walkin@example.com"))
	require.NoError(t, err)
	second, err := f.bookings.Create(ctx, guestBooking("walkin@example.com"))
	require.NoError(t, err)

	assert.Equal(t, 1, f.store.UserCount())
	assert.Equal(t, first.UserID, second.UserID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, f.observer.created)
	assert.Equal(t, 1, f.observer.guests)

	user, err := f.store.FindUserByEmail(ctx, "walkin@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.GuestPassword, user.PasswordHash)
	assert.Equal(t, "9876543210", user.Mobile)
}

func TestCreateBookingStoresGuestContactAsGiven(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := guestBooking("front-desk")
	req.Phone = "ext. 42"
	_, err := f.bookings.Create(ctx, req)
	require.NoError(t, err)

	user, err := f.store.FindUserByEmail(ctx, "front-desk")
	require.NoError(t, err)
	assert.Equal(t, "ext. 42", user.Mobile)
}

func TestCreateBookingAttachesToRegisteredAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reg, err := f.identity.Register(ctx, signup("ada@example.com"))
	require.NoError(t, err)

	req := guestBooking("ada@example.com")
	req.Name = "Someone Else"
	b, err := f.bookings.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, b.UserID)

	user, err := f.store.FindUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", user.Name)
}

func TestCreateBookingEmptySpecialRequestStoredAsNull(t *testing.T) {
	f := newFixture(t)
	req := guestBooking("ada@example.com")
	req.SpecialRequest = strPtr("")

	b, err := f.bookings.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, b.SpecialRequest)
}

func TestOwnershipIsEnforced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owned, err := f.bookings.Create(ctx, guestBooking("owner@example.com"))
	require.NoError(t, err)
	intruder, err := f.identity.Register(ctx, signup("intruder@example.com"))
	require.NoError(t, err)

	_, err = f.bookings.Get(ctx, intruder.User.ID, owned.ID)
	requireKind(t, err, KindForbidden)
	assert.Equal(t, "Not authorized to view this booking", MessageOf(err))

	_, err = f.bookings.Update(ctx, intruder.User.ID, owned.ID, dto.UpdateBookingRequest{SpecialRequest: strPtr("mine now")})
	requireKind(t, err, KindForbidden)
	assert.Equal(t, "Not authorized to update this booking", MessageOf(err))

	err = f.bookings.Cancel(ctx, intruder.User.ID, owned.ID)
	requireKind(t, err, KindForbidden)
	assert.Equal(t, "Not authorized to cancel this booking", MessageOf(err))

	still, err := f.bookings.Get(ctx, owned.UserID, owned.ID)
	require.NoError(t, err)
	assert.Nil(t, still.SpecialRequest)
}

func TestMissingBookingIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.bookings.Get(ctx, 1, 404)
	requireKind(t, err, KindNotFound)
	_, err = f.bookings.Update(ctx, 1, 404, dto.UpdateBookingRequest{Time: strPtr("10:00")})
	requireKind(t, err, KindNotFound)
	requireKind(t, f.bookings.Cancel(ctx, 1, 404), KindNotFound)
}

func TestCancelThenGetIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.bookings.Create(ctx, guestBooking("ada@example.com"))
	require.NoError(t, err)

	require.NoError(t, f.bookings.Cancel(ctx, b.UserID, b.ID))
	assert.Equal(t, 1, f.observer.cancelled)

	_, err = f.bookings.Get(ctx, b.UserID, b.ID)
	requireKind(t, err, KindNotFound)
	assert.Equal(t, "Booking not found", MessageOf(err))
}

func TestUpdateOnlySpecialRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.bookings.Create(ctx, guestBooking("ada@example.com"))
	require.NoError(t, err)

	updated, err := f.bookings.Update(ctx, b.UserID, b.ID, dto.UpdateBookingRequest{SpecialRequest: strPtr("window seat")})
	require.NoError(t, err)

	assert.Equal(t, b.Date, updated.Date)
	assert.Equal(t, b.Time, updated.Time)
	assert.Equal(t, b.NumberOfPeople, updated.NumberOfPeople)
	require.NotNil(t, updated.SpecialRequest)
	assert.Equal(t, "window seat", *updated.SpecialRequest)
	assert.Equal(t, b.CreatedAt, updated.CreatedAt)
	assert.Equal(t, 1, f.observer.updated)
}

func TestUpdateValidatesPresentFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.bookings.Create(ctx, guestBooking("ada@example.com"))
	require.NoError(t, err)

	_, err = f.bookings.Update(ctx, b.UserID, b.ID, dto.UpdateBookingRequest{NumberOfPeople: intPtr(11)})
	requireKind(t, err, KindValidation)
	assert.Equal(t, "Maximum 10 people", MessageOf(err))

	_, err = f.bookings.Update(ctx, b.UserID, b.ID, dto.UpdateBookingRequest{Date: strPtr("2024-02-30")})
	requireKind(t, err, KindValidation)

	updated, err := f.bookings.Update(ctx, b.UserID, b.ID, dto.UpdateBookingRequest{Date: strPtr("2025-01-02"), Time: strPtr("08:15"), NumberOfPeople: intPtr(4)})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02", updated.Date)
	assert.Equal(t, "08:15", updated.Time)
	assert.Equal(t, 4, updated.NumberOfPeople)
}

func TestUpdateWithNoFieldsReturnsCurrent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.bookings.Create(ctx, guestBooking("ada@example.com"))
	require.NoError(t, err)

	same, err := f.bookings.Update(ctx, b.UserID, b.ID, dto.UpdateBookingRequest{})
	require.NoError(t, err)
	assert.Equal(t, b, same)
	assert.Zero(t, f.observer.updated)
}

func TestListMineNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var ids []int64
	for _, day := range []string{"2024-12-01", "2024-11-15", "2024-12-20"} {
		req := guestBooking("ada@example.com")
		req.Date = day
		b, err := f.bookings.Create(ctx, req)
		require.NoError(t, err)
		ids = append(ids, b.ID)
	}
	other, err := f.bookings.Create(ctx, guestBooking("bo@example.com"))
	require.NoError(t, err)

	owner, err := f.store.FindUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)

	list, err := f.bookings.ListMine(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{ids[2], ids[1], ids[0]}, []int64{list[0].ID, list[1].ID, list[2].ID})
	for i := 1; i < len(list); i++ {
		assert.True(t, list[i-1].CreatedAt.After(list[i].CreatedAt))
	}
	for _, b := range list {
		assert.NotEqual(t, other.ID, b.ID)
	}
}
