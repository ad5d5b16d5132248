package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// NotBlankTag rejects strings that are empty once surrounding whitespace is removed
	NotBlankTag = "notblank"

	// DateTag accepts a calendar date, alone or as the date part of an ISO 8601 timestamp
	DateTag = "isodate"
)

// dateLayouts are tried in order; the calendar date is taken as written, ignoring any zone
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ErrInvalidDate is returned by ParseDate for input in none of the accepted layouts
var ErrInvalidDate = errors.New("invalid date")

// Register adds the custom rules to v and makes errors report JSON field names.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation(NotBlankTag, notBlank); err != nil {
		return err
	}
	return v.RegisterValidation(DateTag, isoDate)
}

// ParseDate returns the calendar date of value at midnight UTC
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// jsonFieldName returns the json tag name of a struct field, or its Go name
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

func isoDate(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	_, err := ParseDate(field.String())
	return err == nil
}
