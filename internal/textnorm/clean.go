// Package textnorm turns raw engine strings into clean speakable text.
// Rich-text markup, icon tags and decorative tags are stripped; gamepad glyph
// references can be translated into spoken phrases.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	colorTag      = regexp.MustCompile(`\[c/[0-9A-Fa-f]{3,8}:([^\]]*)\]`)
	nameTag       = regexp.MustCompile(`\[(?:n|a):([^\]]*)\]`)
	iconTag       = regexp.MustCompile(`\[(?:i|g)(?:/[^:\]]*)?:[^\]]*\]`)
	decorativeTag = regexp.MustCompile(`\[/?(?:rb|wave)(?:=[^\]]*)?\]`)
	genericTag    = regexp.MustCompile(`\[[A-Za-z]+(?:/[^:\]]*)?:[^\]]*\]`)
	angleTag      = regexp.MustCompile(`</?[A-Za-z][A-Za-z0-9]*(?:=[^>]*)?>`)
	spaceRun      = regexp.MustCompile(`\s+`)
)

// Clean strips engine rich-text tags and collapses whitespace.
// Color spans and name references keep their inner text; icon, glyph and
// unknown tags are dropped. Clean never fails.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}
	s := colorTag.ReplaceAllString(raw, "$1")
	s = nameTag.ReplaceAllString(s, "$1")
	s = iconTag.ReplaceAllString(s, "")
	s = decorativeTag.ReplaceAllString(s, "")
	s = genericTag.ReplaceAllString(s, "")
	s = angleTag.ReplaceAllString(s, "")
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// JoinWithComma cleans each part, drops the ones that end up empty and joins
// the rest with ", ".
func JoinWithComma(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := Clean(p); c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, ", ")
}
