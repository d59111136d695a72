package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Name     string `validate:"min=2"`
	Email    string `validate:"email"`
	Mobile   string `validate:"len=10,number"`
	Password string `validate:"min=6"`
}

func TestStructReportsFirstViolation(t *testing.T) {
	v := New()

	valid := signup{Name: "Ada", Email: "ada@example.com", Mobile: "9876543210", Password: "secret1"}
	assert.NoError(t, v.Struct(valid))

	cases := []struct {
		name string
		in   signup
		want string
	}{
		{"short name wins over everything", signup{Name: "A", Email: "bad", Mobile: "1", Password: "x"}, "Name must be at least 2 characters"},
		{"bad email", signup{Name: "Ada", Email: "nope", Mobile: "9876543210", Password: "secret1"}, "Invalid email"},
		{"short mobile", signup{Name: "Ada", Email: "ada@example.com", Mobile: "98765", Password: "secret1"}, "Mobile must be 10 digits"},
		{"non-digit mobile", signup{Name: "Ada", Email: "ada@example.com", Mobile: "98765abcde", Password: "secret1"}, "Mobile must be 10 digits"},
		{"short password", signup{Name: "Ada", Email: "ada@example.com", Mobile: "9876543210", Password: "12345"}, "Password must be at least 6 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualError(t, v.Struct(tc.in), tc.want)
		})
	}
}

func TestVarBookingRules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Var("Date", "2024-12-25", "isodate"))
	assert.EqualError(t, v.Var("Date", "2024-13-40", "isodate"), "Date must be YYYY-MM-DD")
	assert.EqualError(t, v.Var("Date", "25/12/2024", "isodate"), "Date must be YYYY-MM-DD")

	assert.NoError(t, v.Var("Time", "19:30", "clock"))
	assert.EqualError(t, v.Var("Time", "7:30", "clock"), "Time must be HH:MM")
	assert.EqualError(t, v.Var("Time", "25:00", "clock"), "Time must be HH:MM")

	assert.NoError(t, v.Var("NumberOfPeople", 1, "min=1,max=10"))
	assert.NoError(t, v.Var("NumberOfPeople", 10, "min=1,max=10"))
	assert.EqualError(t, v.Var("NumberOfPeople", 0, "min=1,max=10"), "At least 1 person required")
	assert.EqualError(t, v.Var("NumberOfPeople", 11, "min=1,max=10"), "Maximum 10 people")
}

func TestIsDateAndClock(t *testing.T) {
	assert.True(t, IsDate("2024-02-29"))
	assert.False(t, IsDate("2023-02-29"))
	assert.False(t, IsDate("2024-1-05"))
	assert.True(t, IsClock("00:00"))
	assert.True(t, IsClock("23:59"))
	assert.False(t, IsClock("23:60"))
	assert.False(t, IsClock("12:30:00"))
}
