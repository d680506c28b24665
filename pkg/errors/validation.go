package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateDescription validates a user-supplied card description before it
// is embedded into a generative prompt.
//
// The validation rules are intentionally conservative:
//   - No empty descriptions
//   - No control characters (newlines are allowed)
//   - No null bytes
//   - Maximum length of 2000 characters
func ValidateDescription(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeInvalidInput, "description cannot be empty")
	}

	const maxDescriptionLength = 2000
	if len(text) > maxDescriptionLength {
		return New(ErrCodeInvalidInput, "description too long (max %d characters)", maxDescriptionLength)
	}

	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "description contains invalid control characters")
		}
	}

	return nil
}

// ValidateMessageText validates the inside message of a card.
// Empty text is valid (the layout falls back to writing guides); the rules
// here only reject text that cannot be printed.
//
// Validation rules:
//   - Maximum length of 4000 characters
//   - No control characters other than whitespace
func ValidateMessageText(text string) error {
	const maxMessageLength = 4000
	if len(text) > maxMessageLength {
		return New(ErrCodeInvalidMessageSpec, "message too long (max %d characters)", maxMessageLength)
	}

	for _, r := range text {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return New(ErrCodeInvalidMessageSpec, "message contains invalid control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
// It prevents path traversal out of the working tree and rejects
// characters that cannot appear in portable filenames.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidInput, "output path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidInput, "output path cannot contain backslashes")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// cardIDRegex matches the canonical UUID form used for card identifiers.
var cardIDRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ValidateCardID validates a card identifier as produced by the compose
// pipeline. IDs are lowercase UUIDs; anything else is rejected before it
// can reach a storage backend.
func ValidateCardID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "card id cannot be empty")
	}

	if !cardIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid card id: %q", id)
	}

	return nil
}
