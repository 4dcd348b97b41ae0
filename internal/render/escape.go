package render

import (
	"strings"

	"golang.org/x/net/html"
)

// Context names the markup position a value is interpolated into.
type Context int

const (
	TextNode Context = iota
	Attribute
	URLAttribute
	StyleValue
)

// Escape makes s safe for interpolation at ctx. Every user-supplied field
// passes through exactly one context before it reaches the document.
func Escape(ctx Context, s string) string {
	switch ctx {
	case URLAttribute:
		return escapeURL(s)
	case StyleValue:
		return escapeStyle(s)
	default:
		// text nodes and double-quoted attributes share the same entity set
		return html.EscapeString(s)
	}
}

func escapeText(s string) string { return Escape(TextNode, s) }
func escapeAttr(s string) string { return Escape(Attribute, s) }

// escapeURL keeps the URL verbatim (data URIs included) apart from entity
// escaping. Script schemes are replaced with an inert fragment.
func escapeURL(s string) string {
	if hasScriptScheme(s) {
		return "#"
	}
	return html.EscapeString(s)
}

func hasScriptScheme(s string) bool {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return false
	}
	// browsers ignore leading controls/spaces and embedded tabs/newlines
	scheme := strings.Map(func(r rune) rune {
		if r <= ' ' {
			return -1
		}
		return r
	}, s[:i])
	scheme = strings.ToLower(scheme)
	return scheme == "javascript" || scheme == "vbscript"
}

// escapeStyle keeps only characters that can appear in a CSS colour value
// (hex, named, rgb()/hsl() forms). Anything that could end the declaration
// or the attribute is dropped.
func escapeStyle(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case strings.ContainsRune("#%.,()- ", r):
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
