package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidateSite checks the fields shared by add-site, edit-site and link applications.
func ValidateSite(s Site) error {
	if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.URL) == "" || strings.TrimSpace(s.Icon) == "" {
		return ErrMissingField
	}
	if !IsAbsoluteURL(s.URL) {
		return fmt.Errorf("%w: %q", ErrInvalidURL, s.URL)
	}
	return nil
}

// Schemes that execute in the browser are never accepted as links.
var scriptSchemes = map[string]bool{
	"javascript": true,
	"vbscript":   true,
	"data":       true,
}

// IsAbsoluteURL reports whether raw parses as a URL with a scheme and,
// for hierarchical schemes, a host. "mailto:x@y" is accepted, "/path" is not.
func IsAbsoluteURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" {
		return false
	}
	if scriptSchemes[strings.ToLower(u.Scheme)] {
		return false
	}
	if u.Opaque != "" {
		return true
	}
	return u.Host != ""
}

// ValidateColor accepts CSS hex colors (#rgb, #rrggbb, #rrggbbaa).
func ValidateColor(color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	return nil
}
