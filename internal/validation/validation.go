// Package validation holds input format rules shared by services and handlers.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	maxDenNameLen   = 120
	maxPostTitleLen = 300
	minPasswordLen  = 8
)

// ValidateUsername validates username format.
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must be 3-32 characters and contain only letters, numbers, and underscores")
	}
	return nil
}

// ValidatePassword validates password strength.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}

// ValidateDenName validates a den's display name.
func ValidateDenName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxDenNameLen {
		return fmt.Errorf("name too long (max %d characters)", maxDenNameLen)
	}
	return nil
}

// ValidatePostTitle validates a post title.
func ValidatePostTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxPostTitleLen {
		return fmt.Errorf("title too long (max %d characters)", maxPostTitleLen)
	}
	return nil
}
