// Package frontmatter implements the minimal page metadata dialect used by
// content pages: a block delimited by `---` lines at the very start of the
// file, containing single-level `key: value` pairs, followed by the markdown
// body.
//
// This is deliberately not YAML. The dialect is: split each line on the
// first `:`, trim the key, trim the value and strip one pair of surrounding
// double quotes. Lines without a `:` are ignored. Nothing is escaped.
package frontmatter

import (
	"fmt"
	"strings"
)

// Document is the result of parsing a page.
type Document struct {
	// Attributes holds the key/value pairs from the frontmatter block.
	// Empty (never nil) when the page has no frontmatter.
	Attributes map[string]string

	// Body is the page content after the frontmatter block, trimmed of
	// surrounding whitespace. Equal to the trimmed input when no
	// frontmatter block is present.
	Body string

	// RawContent is the full original text, untouched.
	RawContent string
}

// Parse splits a page into frontmatter attributes and body.
//
// A frontmatter block is recognized only when the text starts at byte 0
// with a `---` line and a closing `---` line follows. Any other shape means
// "no frontmatter": attributes are empty and the body is the whole text.
func Parse(text string) Document {
	doc := Document{
		Attributes: map[string]string{},
		Body:       strings.TrimSpace(text),
		RawContent: text,
	}

	block, body, ok := splitBlock(text)
	if !ok {
		return doc
	}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			// Not key: value — ignored, not an error.
			continue
		}
		doc.Attributes[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}

	doc.Body = strings.TrimSpace(body)
	return doc
}

// Serialize produces a page with a single-key frontmatter block:
//
//	---
//	title: <title>
//	---
//
//	<body>
//
// Known limitation: a body whose first line is itself `---` will be
// re-parsed as a new frontmatter delimiter on round-trip. Values are not
// escaped either; this is the documented behavior of the dialect.
func Serialize(title, body string) string {
	return fmt.Sprintf("---\ntitle: %s\n---\n\n%s", title, body)
}

// splitBlock extracts the raw frontmatter block and the remaining body.
// ok is false when the text does not open with a well-formed block.
func splitBlock(text string) (block, body string, ok bool) {
	const delim = "---"

	if !strings.HasPrefix(text, delim+"\n") {
		return "", "", false
	}

	rest := text[len(delim)+1:]

	// Closing delimiter immediately after the opener: empty block.
	if strings.HasPrefix(rest, delim+"\n") {
		return "", rest[len(delim)+1:], true
	}

	end := strings.Index(rest, "\n"+delim+"\n")
	if end < 0 {
		return "", "", false
	}

	return rest[:end], rest[end+len(delim)+2:], true
}

// unquote strips exactly one pair of surrounding double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
