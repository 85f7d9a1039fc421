package binder

import (
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
)

// DatetimeLayouts are the accepted submitted formats for show start times.
// The first is what the listing forms post, the second is the browser
// datetime-local format, and the third covers API clients.
var DatetimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// ParseDatetime parses a submitted start-time string using the accepted
// layouts.
func ParseDatetime(value string) (time.Time, bool) {
	for _, layout := range DatetimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// datetimeValidator ensures the value parses as one of the accepted
// start-time formats. The empty string is allowed so the validator can be
// combined with omitempty on optional fields; add required to the tag when
// the field must be present.
func datetimeValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := ParseDatetime(value)
	return ok
}

// linkValidator ensures the value is an absolute http(s) URL or the empty
// string. Website, image, and Facebook links are all optional fields that
// forms submit as empty strings when unfilled.
func linkValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
