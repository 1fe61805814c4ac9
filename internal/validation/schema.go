// Package validation holds the booking submission schema. It is the
// authoritative copy of the rules; the web form mirrors it for early
// feedback but the create endpoint always re-runs it.
package validation

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Error codes reported per field. A field carries at most one code per
// validation pass.
const (
	CodeRequired = "required"
	CodeFormat   = "format"
	CodeRange    = "range"
	CodeFuture   = "future"
)

const (
	MinGuests = 1
	MaxGuests = 8
)

// datetimeLocalLayout is what an HTML datetime-local input submits.
const datetimeLocalLayout = "2006-01-02T15:04"

// emailPattern requires local@domain with at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError describes a single rule violation on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Input is a candidate booking as submitted. Guests tolerates both a JSON
// number and a numeric string; dateTime stays a string until validated.
type Input struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Guests   GuestCount `json:"guests"`
	DateTime string     `json:"dateTime"`
}

// GuestCount keeps the raw guest value so range checking can distinguish
// "not a number" from "out of range" input without losing either.
type GuestCount struct {
	raw string
}

// GuestsFromString builds a GuestCount from form input.
func GuestsFromString(s string) GuestCount {
	return GuestCount{raw: strings.TrimSpace(s)}
}

func (g *GuestCount) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		g.raw = strings.TrimSpace(s)
		return nil
	}
	g.raw = string(b)
	return nil
}

func (g GuestCount) MarshalJSON() ([]byte, error) {
	if n, ok := g.Int(); ok {
		return json.Marshal(n)
	}
	return json.Marshal(g.raw)
}

// Int coerces the raw value to an integer. Fractions, booleans, null and
// free text all report !ok.
func (g GuestCount) Int() (int, bool) {
	n, err := strconv.Atoi(g.raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (g GuestCount) String() string { return g.raw }

// Result is a normalized, valid booking payload ready to persist.
type Result struct {
	Name     string
	Email    string
	Guests   int
	DateTime time.Time
}

// Validate checks every rule independently and reports all violations, not
// just the first. It is pure: the caller supplies the clock, so the same
// input and instant always produce the same outcome. On success the
// returned Result carries the trimmed and parsed values; on failure it is
// nil and the error slice is ordered name, email, guests, dateTime.
func Validate(in Input, now time.Time) (*Result, []FieldError) {
	var errs []FieldError

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Code: CodeRequired, Message: "Name is required"})
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		errs = append(errs, FieldError{Field: "email", Code: CodeRequired, Message: "Email is required"})
	case !emailPattern.MatchString(email):
		errs = append(errs, FieldError{Field: "email", Code: CodeFormat, Message: "Invalid email format"})
	}

	guests, ok := in.Guests.Int()
	if !ok || guests < MinGuests || guests > MaxGuests {
		errs = append(errs, FieldError{Field: "guests", Code: CodeRange, Message: "Number of guests must be between 1 and 8"})
	}

	var dateTime time.Time
	if strings.TrimSpace(in.DateTime) == "" {
		errs = append(errs, FieldError{Field: "dateTime", Code: CodeRequired, Message: "Date and time is required"})
	} else {
		t, err := ParseDateTime(in.DateTime)
		if err != nil || !t.After(now) {
			errs = append(errs, FieldError{Field: "dateTime", Code: CodeFuture, Message: "Date and time must be in the future"})
		} else {
			dateTime = t
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &Result{Name: name, Email: email, Guests: guests, DateTime: dateTime}, nil
}

// ParseDateTime accepts RFC 3339 (fractional seconds included) and the
// datetime-local form layout.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(datetimeLocalLayout, s)
}
