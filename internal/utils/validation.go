package utils

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	// Workbook sheet names: DTP1, HEPBB, MCV2 and the like
	validIndicatorPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

const (
	MinYear = 1900
	MaxYear = 2100
)

// ValidateIndicator checks an indicator code taken from a URL.
func ValidateIndicator(code string) error {
	if code == "" {
		return errors.New("indicator cannot be empty")
	}
	if len(code) > 31 {
		return errors.New("indicator too long (max 31 characters)")
	}
	if !validIndicatorPattern.MatchString(code) {
		return errors.New("indicator contains invalid characters")
	}
	return nil
}

// ValidateCountry checks a country name. Names contain letters in any
// script plus spaces and the punctuation found in official names, as in
// "Côte d'Ivoire" or "Bolivia (Plurinational State of)".
func ValidateCountry(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("country cannot be empty")
	}
	if len(name) > 100 {
		return errors.New("country too long (max 100 characters)")
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsSpace(r) || unicode.IsDigit(r) {
			continue
		}
		if !strings.ContainsRune("'’.,()-&", r) {
			return errors.New("country contains invalid characters")
		}
	}
	return nil
}

// ValidateYear checks that year is a plausible reporting year.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return errors.New("year must be between 1900 and 2100")
	}
	return nil
}

// SanitizeInput removes HTML tags and surrounding whitespace.
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}
