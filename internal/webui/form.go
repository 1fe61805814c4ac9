// Package webui holds the view-state for the server-rendered pages: the
// booking form's finite-state record and the admin list's filter/paginate
// projection. Both are plain structs with no transport concerns so the
// handlers stay thin and the behavior stays testable.
package webui

import (
	"time"

	"github.com/johanna-sandberg/restaurant-booking/internal/models"
	"github.com/johanna-sandberg/restaurant-booking/internal/validation"
)

// Messages surfaced by the form after a submission attempt.
const (
	SuccessMessage = "Booking created successfully!"
	FailureMessage = "Failed to create booking. Please try again."
)

// FormValues mirrors the form inputs as entered, before any coercion.
type FormValues struct {
	Name     string
	Email    string
	Guests   string
	DateTime string
}

// SubmitFunc sends a validated booking to the creation endpoint.
type SubmitFunc func(validation.Result) (*models.Booking, error)

// Form is the booking form's state record. It moves through
// unmounted → idle → validating → {idle-with-errors | submitting → idle};
// every transition happens inside Submit, SetField, or Mount, so the state
// is always consistent between updates.
type Form struct {
	values  FormValues
	errors  map[string]string
	alert   string
	mounted bool
	busy    bool
	now     func() time.Time
	submit  SubmitFunc
}

// NewForm builds an unmounted form with the default guest count.
func NewForm(submit SubmitFunc) *Form {
	return &Form{
		values: FormValues{Guests: "1"},
		errors: map[string]string{},
		now:    time.Now,
		submit: submit,
	}
}

// WithClock replaces the clock the future-date rule reads.
func (f *Form) WithClock(now func() time.Time) *Form {
	f.now = now
	return f
}

// Mount marks the form interactive. Validation is a no-op before this, so
// the time-sensitive future rule never runs against a form nobody has
// touched yet.
func (f *Form) Mount() { f.mounted = true }

func (f *Form) Mounted() bool { return f.mounted }

// Busy reports whether a submission is in flight; the submit control is
// disabled while it is true.
func (f *Form) Busy() bool { return f.busy }

func (f *Form) Values() FormValues { return f.values }

// FieldError returns the current message for a field, or "".
func (f *Form) FieldError(field string) string { return f.errors[field] }

// Alert is the generic banner shown after a submission attempt.
func (f *Form) Alert() string { return f.alert }

// SetField records user input. Unknown field names are ignored.
func (f *Form) SetField(field, value string) {
	switch field {
	case "name":
		f.values.Name = value
	case "email":
		f.values.Email = value
	case "guests":
		f.values.Guests = value
	case "dateTime":
		f.values.DateTime = value
	}
}

// Submit runs the local validation mirror and, when it passes, sends the
// booking. It reports whether a booking was created. Before Mount, and
// while a submission is already pending, it does nothing.
func (f *Form) Submit() bool {
	if !f.mounted || f.busy {
		return false
	}

	result, errs := validation.Validate(validation.Input{
		Name:     f.values.Name,
		Email:    f.values.Email,
		Guests:   validation.GuestsFromString(f.values.Guests),
		DateTime: f.values.DateTime,
	}, f.now())
	if len(errs) > 0 {
		f.errors = map[string]string{}
		for _, e := range errs {
			f.errors[e.Field] = e.Message
		}
		return false
	}
	f.errors = map[string]string{}

	f.busy = true
	_, err := f.submit(*result)
	f.busy = false

	if err != nil {
		// The form stays editable; store failures are opaque to the user.
		f.alert = FailureMessage
		return false
	}

	f.values = FormValues{Guests: "1"}
	f.alert = SuccessMessage
	return true
}
