package textnorm

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// glyphsByIndex is the engine's numeric glyph order.
var glyphsByIndex = []string{
	"A button",
	"B button",
	"X button",
	"Y button",
	"left bumper",
	"right bumper",
	"left trigger",
	"right trigger",
	"left stick",
	"right stick",
	"back button",
	"start button",
	"D-pad up",
	"D-pad down",
	"D-pad left",
	"D-pad right",
}

// glyphsByName is keyed by the lowercased token with separators removed.
var glyphsByName = map[string]string{
	"a":             "A button",
	"b":             "B button",
	"x":             "X button",
	"y":             "Y button",
	"lb":            "left bumper",
	"leftshoulder":  "left bumper",
	"rb":            "right bumper",
	"rightshoulder": "right bumper",
	"lt":            "left trigger",
	"lefttrigger":   "left trigger",
	"rt":            "right trigger",
	"righttrigger":  "right trigger",
	"ls":            "left stick",
	"leftstick":     "left stick",
	"rs":            "right stick",
	"rightstick":    "right stick",
	"back":          "back button",
	"select":        "back button",
	"start":         "start button",
	"dpadup":        "D-pad up",
	"dpaddown":      "D-pad down",
	"dpadleft":      "D-pad left",
	"dpadright":     "D-pad right",
	"mouseleft":     "left click",
	"mouseright":    "right click",
	"mousemiddle":   "middle click",
}

var (
	glyphTag       = regexp.MustCompile(`\[g(?:/[^:\]]*)?:([^\]]*)\]`)
	pressNumber    = regexp.MustCompile(`(Press |: )(\d+)\b`)
	numberAndNoun  = regexp.MustCompile(`\b(\d+) (button|trigger|stick)\b`)
	tokenSeparator = strings.NewReplacer("_", " ", "-", " ", ".", " ")
)

// Normalize cleans raw text and translates glyph references into spoken
// phrases. Unrecognized glyph tokens are humanized ("RadialHotbar" becomes
// "Radial Hotbar"). Bare numbers are only treated as glyphs when preceded by
// "Press " or ": ", or followed by "button", "trigger" or "stick".
func Normalize(raw string) string {
	s := glyphTag.ReplaceAllStringFunc(raw, func(m string) string {
		sub := glyphTag.FindStringSubmatch(m)
		return " " + GlyphPhrase(sub[1]) + " "
	})
	s = Clean(s)

	s = numberAndNoun.ReplaceAllStringFunc(s, func(m string) string {
		sub := numberAndNoun.FindStringSubmatch(m)
		if phrase, ok := glyphForNumber(sub[1]); ok {
			return phrase
		}
		return m
	})
	s = pressNumber.ReplaceAllStringFunc(s, func(m string) string {
		sub := pressNumber.FindStringSubmatch(m)
		if phrase, ok := glyphForNumber(sub[2]); ok {
			return sub[1] + phrase
		}
		return m
	})
	return s
}

// GlyphPhrase returns the spoken phrase for a single glyph token.
func GlyphPhrase(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	if phrase, ok := glyphForNumber(token); ok {
		return phrase
	}
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(token))
	if phrase, ok := glyphsByName[key]; ok {
		return phrase
	}
	return Humanize(token)
}

func glyphForNumber(s string) (string, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= len(glyphsByIndex) {
		return "", false
	}
	return glyphsByIndex[n], true
}

// Humanize splits an identifier-like token on separators and case changes
// and title-cases the words.
func Humanize(token string) string {
	spaced := tokenSeparator.Replace(token)

	var b strings.Builder
	runes := []rune(spaced)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}

	words := strings.Fields(b.String())
	// a Caser keeps state between calls, so each call gets its own
	return cases.Title(language.English).String(strings.ToLower(strings.Join(words, " ")))
}
