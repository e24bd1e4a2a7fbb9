package types

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ------------------------------
// Input Validation
// ------------------------------
// Validators run before any HTTP request so malformed input fails locally
// with ErrValidation instead of surfacing as a transport or API error.

var (
	// fileIDRegex validates file IDs: letters, digits, dot, underscore, hyphen.
	fileIDRegex = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

	// languageRegex validates two-letter ISO 639-1 codes.
	languageRegex = regexp.MustCompile(`^[a-z]{2}$`)
)

// ValidateVideoURL checks that raw is an absolute http(s) URL.
func ValidateVideoURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: video_url is required", ErrValidation)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: video_url is not a valid URL: %v", ErrValidation, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: video_url must use http or https, got %q", ErrValidation, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: video_url is missing a host", ErrValidation)
	}
	return nil
}

// ValidateFileID checks a server-issued file identifier.
func ValidateFileID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: file_id is required", ErrValidation)
	}
	if len(id) > 128 {
		return fmt.Errorf("%w: file_id exceeds 128 characters", ErrValidation)
	}
	if !fileIDRegex.MatchString(id) {
		return fmt.Errorf("%w: file_id contains invalid characters; allowed: letters, digits, dot, underscore, hyphen", ErrValidation)
	}
	return nil
}

// ValidateQuery checks a search or analysis query.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: query is required", ErrValidation)
	}
	return nil
}

// ValidateLanguage checks an optional two-letter ISO 639-1 code.
func ValidateLanguage(lang string) error {
	if lang == "" {
		return nil
	}
	if !languageRegex.MatchString(lang) {
		return fmt.Errorf("%w: language must be a two-letter ISO 639-1 code, got %q", ErrValidation, lang)
	}
	return nil
}

// ValidateYearRange checks an optional publication window. Zero means unset.
func ValidateYearRange(start, end int) error {
	if start < 0 || end < 0 {
		return fmt.Errorf("%w: years must not be negative", ErrValidation)
	}
	if start != 0 && end != 0 && start > end {
		return fmt.Errorf("%w: start_year %d is after end_year %d", ErrValidation, start, end)
	}
	return nil
}

// ValidateListFiles checks pagination and the optional status filter.
func ValidateListFiles(limit, offset int, status string) error {
	if limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", ErrValidation)
	}
	if offset < 0 {
		return fmt.Errorf("%w: offset must not be negative", ErrValidation)
	}
	if status != "" && !KnownFileStatus(status) {
		return fmt.Errorf("%w: unknown status filter %q", ErrValidation, status)
	}
	return nil
}
