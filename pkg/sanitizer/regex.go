package sanitizer

import "regexp"

var (
	commentRegex = regexp.MustCompile(`(?s)<!--.*?(-->|$)`)

	// doctype, CDATA and processing instructions
	declarationRegex = regexp.MustCompile(`(?s)<[!?][^>]*(>|$)`)

	// Attribute values may contain '>' when quoted.
	tagRegex = regexp.MustCompile(`<(/?)([a-zA-Z][a-zA-Z0-9:-]*)((?:[^>"']|"[^"]*"|'[^']*')*)>`)

	// A tag opened but never closed swallows the rest of the input.
	unclosedTagRegex = regexp.MustCompile(`</?[a-zA-Z][^>]*$`)

	allowedTagRegex = regexp.MustCompile(`<\s*/?\s*([a-zA-Z][a-zA-Z0-9:-]*)[^>]*>`)

	whitespaceRegex = regexp.MustCompile(`\s+`)
)
