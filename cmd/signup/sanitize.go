package main

import "github.com/dmitrymomot/formcheck/pkg/sanitizer"

// cleanText runs after markup is stripped. Pasted form input often carries
// invisible control bytes, decomposed accents and doubled spaces.
var cleanText = sanitizer.Compose(
	sanitizer.RemoveControlChars,
	sanitizer.NormalizeUnicode,
	sanitizer.NormalizeWhitespace,
)

// formSanitizer backs Validator.Sanitize for the signup form.
func formSanitizer(s string, allowed ...string) string {
	return cleanText(sanitizer.Clean(s, allowed...))
}
