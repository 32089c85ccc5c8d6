package sanitizer

import (
	"strings"
)

// StripTags removes every tag whose name is not listed in allowed.
// Each allowed entry is either a tag list in "<p><a>" form or bare names
// ("p", "a", or "p,a"). Matching is case-insensitive.
func StripTags(s string, allowed ...string) string {
	if !strings.ContainsAny(s, "<") {
		return s
	}

	keep := ParseAllowedTags(allowed...)

	s = commentRegex.ReplaceAllString(s, "")
	s = declarationRegex.ReplaceAllString(s, "")
	s = tagRegex.ReplaceAllStringFunc(s, func(tag string) string {
		m := tagRegex.FindStringSubmatch(tag)
		if _, ok := keep[strings.ToLower(m[2])]; ok {
			return tag
		}
		return ""
	})
	return unclosedTagRegex.ReplaceAllString(s, "")
}

// ParseAllowedTags turns allow-list arguments into a set of lower-case tag names.
func ParseAllowedTags(allowed ...string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, item := range allowed {
		if strings.Contains(item, "<") {
			for _, m := range allowedTagRegex.FindAllStringSubmatch(item, -1) {
				set[strings.ToLower(m[1])] = struct{}{}
			}
			continue
		}
		for name := range strings.FieldsFuncSeq(item, func(r rune) bool { return r == ',' || r == ' ' }) {
			set[strings.ToLower(name)] = struct{}{}
		}
	}
	return set
}

// Clean trims s and strips every tag not listed in allowed.
func Clean(s string, allowed ...string) string {
	return StripTags(Trim(s), allowed...)
}
