package webui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johanna-sandberg/restaurant-booking/internal/models"
	"github.com/johanna-sandberg/restaurant-booking/internal/validation"
)

var formNow = time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return formNow }

func fillValid(f *Form) {
	f.SetField("name", "John Doe")
	f.SetField("email", "john@example.com")
	f.SetField("guests", "4")
	f.SetField("dateTime", "2025-01-15T18:00")
}

func TestFormSubmitBeforeMountIsIgnored(t *testing.T) {
	called := false
	f := NewForm(func(validation.Result) (*models.Booking, error) {
		called = true
		return &models.Booking{}, nil
	}).WithClock(fixedClock)

	assert.False(t, f.Submit())
	assert.False(t, called)
	// No validation ran either, so an untouched form carries no errors.
	assert.Empty(t, f.FieldError("name"))
}

func TestFormSubmitWithErrorsStaysIdle(t *testing.T) {
	called := false
	f := NewForm(func(validation.Result) (*models.Booking, error) {
		called = true
		return &models.Booking{}, nil
	}).WithClock(fixedClock)
	f.Mount()
	f.SetField("guests", "0")
	f.SetField("email", "invalid-email")

	assert.False(t, f.Submit())
	assert.False(t, called)

	assert.Equal(t, "Name is required", f.FieldError("name"))
	assert.Equal(t, "Invalid email format", f.FieldError("email"))
	assert.Equal(t, "Number of guests must be between 1 and 8", f.FieldError("guests"))
	assert.Equal(t, "Date and time is required", f.FieldError("dateTime"))
	assert.False(t, f.Busy())
}

func TestFormSubmitSuccessClearsFields(t *testing.T) {
	var got validation.Result
	f := NewForm(func(r validation.Result) (*models.Booking, error) {
		got = r
		return &models.Booking{ID: 1}, nil
	}).WithClock(fixedClock)
	f.Mount()
	fillValid(f)

	require.True(t, f.Submit())

	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, 4, got.Guests)

	assert.Equal(t, FormValues{Guests: "1"}, f.Values())
	assert.Equal(t, SuccessMessage, f.Alert())
	assert.Empty(t, f.FieldError("name"))
}

func TestFormSubmitFailureKeepsFieldsEditable(t *testing.T) {
	f := NewForm(func(validation.Result) (*models.Booking, error) {
		return nil, errors.New("store down")
	}).WithClock(fixedClock)
	f.Mount()
	fillValid(f)

	assert.False(t, f.Submit())
	assert.Equal(t, FailureMessage, f.Alert())
	// Input is preserved so the user can retry.
	assert.Equal(t, "John Doe", f.Values().Name)
	assert.False(t, f.Busy())
}

func TestFormSubmitIsSingleFlight(t *testing.T) {
	calls := 0
	var f *Form
	f = NewForm(func(validation.Result) (*models.Booking, error) {
		calls++
		// A submit arriving while one is pending must be ignored.
		assert.True(t, f.Busy())
		assert.False(t, f.Submit())
		return &models.Booking{ID: 1}, nil
	}).WithClock(fixedClock)
	f.Mount()
	fillValid(f)

	assert.True(t, f.Submit())
	assert.Equal(t, 1, calls)
}

func TestFormErrorsClearOnValidResubmit(t *testing.T) {
	f := NewForm(func(validation.Result) (*models.Booking, error) {
		return &models.Booking{ID: 1}, nil
	}).WithClock(fixedClock)
	f.Mount()

	assert.False(t, f.Submit())
	assert.NotEmpty(t, f.FieldError("name"))

	fillValid(f)
	assert.True(t, f.Submit())
	assert.Empty(t, f.FieldError("name"))
}
