package validation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)

func validInput() Input {
	return Input{
		Name:     "John Doe",
		Email:    "john@example.com",
		Guests:   GuestsFromString("4"),
		DateTime: "2025-01-15T18:00:00.000Z",
	}
}

func TestValidateAcceptsValidBooking(t *testing.T) {
	result, errs := Validate(validInput(), testNow)
	require.Empty(t, errs)
	require.NotNil(t, result)

	assert.Equal(t, "John Doe", result.Name)
	assert.Equal(t, "john@example.com", result.Email)
	assert.Equal(t, 4, result.Guests)
	assert.Equal(t, time.Date(2025, time.January, 15, 18, 0, 0, 0, time.UTC), result.DateTime)
}

func TestValidateReportsAllViolations(t *testing.T) {
	in := Input{
		Name:     "",
		Email:    "not-an-email",
		Guests:   GuestsFromString("0"),
		DateTime: "invalid-date",
	}

	result, errs := Validate(in, testNow)
	assert.Nil(t, result)
	require.Len(t, errs, 4)

	codes := map[string]string{}
	for _, e := range errs {
		codes[e.Field] = e.Code
	}
	assert.Equal(t, CodeRequired, codes["name"])
	assert.Equal(t, CodeFormat, codes["email"])
	assert.Equal(t, CodeRange, codes["guests"])
	assert.Equal(t, CodeFuture, codes["dateTime"])
}

func TestValidateSingleFieldRules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Input)
		field    string
		wantCode string
	}{
		{"whitespace name", func(in *Input) { in.Name = "   " }, "name", CodeRequired},
		{"empty email", func(in *Input) { in.Email = "" }, "email", CodeRequired},
		{"email without at", func(in *Input) { in.Email = "john.example.com" }, "email", CodeFormat},
		{"email without dot in domain", func(in *Input) { in.Email = "john@example" }, "email", CodeFormat},
		{"zero guests", func(in *Input) { in.Guests = GuestsFromString("0") }, "guests", CodeRange},
		{"nine guests", func(in *Input) { in.Guests = GuestsFromString("9") }, "guests", CodeRange},
		{"non-numeric guests", func(in *Input) { in.Guests = GuestsFromString("many") }, "guests", CodeRange},
		{"fractional guests", func(in *Input) { in.Guests = GuestsFromString("4.5") }, "guests", CodeRange},
		{"empty dateTime", func(in *Input) { in.DateTime = "" }, "dateTime", CodeRequired},
		{"unparseable dateTime", func(in *Input) { in.DateTime = "next tuesday" }, "dateTime", CodeFuture},
		{"past dateTime", func(in *Input) { in.DateTime = "2024-12-31T18:00:00Z" }, "dateTime", CodeFuture},
		{"dateTime equal to now", func(in *Input) { in.DateTime = "2025-01-01T12:00:00Z" }, "dateTime", CodeFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			result, errs := Validate(in, testNow)
			assert.Nil(t, result)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.wantCode, errs[0].Code)
			assert.NotEmpty(t, errs[0].Message)
		})
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	in := Input{Email: "broken", Guests: GuestsFromString("42")}

	_, first := Validate(in, testNow)
	_, second := Validate(in, testNow)
	assert.Equal(t, first, second)
}

func TestValidateAcceptsDatetimeLocalLayout(t *testing.T) {
	in := validInput()
	in.DateTime = "2025-06-01T19:30"

	result, errs := Validate(in, testNow)
	require.Empty(t, errs)
	assert.Equal(t, time.Date(2025, time.June, 1, 19, 30, 0, 0, time.UTC), result.DateTime)
}

func TestGuestCountCoercion(t *testing.T) {
	var in Input

	// Number and numeric string both decode.
	require.NoError(t, json.Unmarshal([]byte(`{"guests": 4}`), &in))
	n, ok := in.Guests.Int()
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	require.NoError(t, json.Unmarshal([]byte(`{"guests": "6"}`), &in))
	n, ok = in.Guests.Int()
	assert.True(t, ok)
	assert.Equal(t, 6, n)

	for _, raw := range []string{`{"guests": null}`, `{"guests": true}`, `{"guests": 4.5}`, `{"guests": "lots"}`} {
		require.NoError(t, json.Unmarshal([]byte(raw), &in))
		_, ok = in.Guests.Int()
		assert.False(t, ok, "expected %s to fail coercion", raw)
	}
}
