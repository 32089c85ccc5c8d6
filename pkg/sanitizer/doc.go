// Package sanitizer cleans untrusted text before it is validated or stored.
//
// The central helper is StripTags, which removes markup from a string while
// keeping an allow-list of tags, the way form input is usually cleaned before
// it reaches a validator:
//
//	sanitizer.StripTags("<p>Hi <script>x</script></p>")          // "Hi x"
//	sanitizer.StripTags("<p>Hi <b>there</b></p>", "<p>")          // "<p>Hi there</p>"
//	sanitizer.StripTags("<p>Hi <b>there</b></p>", "p", "b")       // unchanged
//
// Comments, doctype declarations and processing instructions are always
// removed. Text between tags is kept; StripTags does not decode entities and
// does not make HTML safe for rendering on its own.
//
// Clean combines Trim and StripTags. NormalizeUnicode and RemoveControlChars
// are available for callers that want canonical text before comparing or
// measuring it.
//
// All functions are pure and safe for concurrent use.
package sanitizer
