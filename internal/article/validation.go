package article

import "unicode/utf8"

// MinTitleLength is the minimum number of characters accepted for a title.
const MinTitleLength = 2

// Validate checks the shape of a candidate article payload. It is used
// identically for create and update: both fields must be present, so a
// partial update payload is rejected. No mutation, no side effects.
func Validate(title, content string) error {
	if title == "" {
		return &ValidationError{Reason: "title is required"}
	}
	if utf8.RuneCountInString(title) < MinTitleLength {
		return &ValidationError{Reason: "title must be at least 2 characters long"}
	}
	if content == "" {
		return &ValidationError{Reason: "content is required"}
	}
	return nil
}
