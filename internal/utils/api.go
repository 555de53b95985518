package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseIntParam retrieves an int value from the provided URL query parameters.
// A missing key returns def. An unparsable value returns def and records a
// field error under key.
func ParseIntParam(params url.Values, key string, def int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := strings.TrimSpace(params.Get(key))
	if val == "" {
		return def, fieldErrors
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return def, fieldErrors
	}
	return i, fieldErrors
}

// ParseYearParam is ParseIntParam restricted to plausible calendar years.
func ParseYearParam(params url.Values, key string, def int, fieldErrors map[string][]string) (int, map[string][]string) {
	year, fieldErrors := ParseIntParam(params, key, def, fieldErrors)
	if len(fieldErrors[key]) == 0 && params.Get(key) != "" {
		if err := ValidateYear(year); err != nil {
			fieldErrors[key] = append(fieldErrors[key], err.Error())
		}
	}
	return year, fieldErrors
}

// RequiredParam returns the trimmed value of key, recording a field error
// when it is missing.
func RequiredParam(params url.Values, key string, fieldErrors map[string][]string) (string, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := strings.TrimSpace(params.Get(key))
	if val == "" {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Missing required field %q.", key))
	}
	return val, fieldErrors
}
