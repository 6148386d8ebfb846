package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Wire layouts for date fields. Values must match exactly: no zone,
// no fractional seconds, zero-padded components.
const (
	TimestampLayout = "2006-01-02T15:04:05"
	DateLayout      = "2006-01-02"
)

// Timestamp is a wall-clock date and time encoded as YYYY-MM-DDTHH:MM:SS.
type Timestamp struct {
	time.Time
}

// Date is a calendar date encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

// ParseTimestamp parses s using TimestampLayout.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := parseExact(s, TimestampLayout, "YYYY-MM-DDTHH:MM:SS")
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{t}, nil
}

// ParseDate parses s using DateLayout.
func ParseDate(s string) (Date, error) {
	t, err := parseExact(s, DateLayout, "YYYY-MM-DD")
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// MustTimestamp is ParseTimestamp for literals known to be valid.
func MustTimestamp(s string) Timestamp {
	ts, err := ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// MustDate is ParseDate for literals known to be valid.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// time.Parse tolerates single-digit hours and trailing fractional seconds,
// so the result is re-formatted and compared against the input.
func parseExact(s, layout, human string) (time.Time, error) {
	t, err := time.Parse(layout, s)
	if err != nil || t.Format(layout) != s {
		return time.Time{}, NewDomainError(ErrCodeInvalidDate,
			fmt.Sprintf("time data %q does not match format %s", s, human))
	}
	return t, nil
}

func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

// Std returns the underlying time value.
func (t Timestamp) Std() time.Time {
	return t.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s, err := unquote(data, "YYYY-MM-DDTHH:MM:SS")
	if err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// Std returns the underlying time value.
func (d Date) Std() time.Time {
	return d.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s, err := unquote(data, "YYYY-MM-DD")
	if err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func unquote(data []byte, human string) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", NewDomainError(ErrCodeInvalidDate,
			fmt.Sprintf("expected a string in format %s, got %s", human, string(data)))
	}
	return s, nil
}
