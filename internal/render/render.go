// Package render converts a page's markdown body to HTML and applies a
// decoration template by literal placeholder substitution.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// md is the shared markdown converter: GFM tables/strikethrough/autolinks,
// stable heading IDs, raw HTML passed through so component markup survives.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		gmhtml.WithUnsafe(),
	),
)

// Markdown converts markdown text to an HTML fragment.
func Markdown(body string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

// Page renders a full HTML document: the markdown body is converted, then
// substituted into the template. Substitution is strictly literal — the
// placeholders `{{ content }}` and `{{ title }}` (and their unspaced forms)
// are replaced, everything else in the template is emitted verbatim.
//
// An empty template falls back to a minimal HTML5 shell.
func Page(template, title, body string) (string, error) {
	content, err := Markdown(body)
	if err != nil {
		return "", err
	}

	if template == "" {
		template = fallbackShell
	}

	out := template
	for _, placeholder := range []string{"{{ content }}", "{{content}}"} {
		out = strings.ReplaceAll(out, placeholder, content)
	}
	for _, placeholder := range []string{"{{ title }}", "{{title}}"} {
		out = strings.ReplaceAll(out, placeholder, title)
	}
	return out, nil
}

const fallbackShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ title }}</title>
</head>
<body>
{{ content }}
</body>
</html>
`
