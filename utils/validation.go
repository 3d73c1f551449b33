package utils

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AllowedImagePrefixes is the set of accepted data-URL prefixes for inline
// profile images.
var AllowedImagePrefixes = []string{
	"data:image/jpeg;base64,",
	"data:image/png;base64,",
	"data:image/webp;base64,",
	"data:image/gif;base64,",
}

// MaxProfileImageSize is the maximum decoded size for an inline profile
// image (5MB).
const MaxProfileImageSize = 5 << 20

// ValidateProfileImage checks that an inline profile image is a base64 data
// URL of an allowed image type and does not exceed the maximum size.
func ValidateProfileImage(dataURL string) error {
	var encoded string
	matched := false
	for _, prefix := range AllowedImagePrefixes {
		if strings.HasPrefix(dataURL, prefix) {
			encoded = strings.TrimPrefix(dataURL, prefix)
			matched = true
			break
		}
	}
	if !matched {
		return fmt.Errorf("profile image must be a base64 data URL of type jpeg, png, webp or gif")
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("invalid profile image data: %w", err)
	}
	if len(decoded) > MaxProfileImageSize {
		return fmt.Errorf("profile image size %d bytes exceeds maximum allowed size of 5MB", len(decoded))
	}

	return nil
}

// SanitizeValidationError takes a validator error and returns a user-friendly message
// without leaking internal Go struct names.
func SanitizeValidationError(err error) string {
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request body"
	}

	// Build user-friendly error messages from field-level errors
	var messages []string
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email address", field))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}

	if len(messages) == 0 {
		return "Invalid request body"
	}

	return strings.Join(messages, "; ")
}
