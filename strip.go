package pinyin

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// toneMarks are the combining marks that carry a tone: macron, acute,
// caron, grave, and the breve some fonts use for the third tone.
var toneMarks = runes.Predicate(func(r rune) bool {
	switch r {
	case '\u0304', '\u0301', '\u030C', '\u0300', '\u0306':
		return true
	}
	return false
})

// StripTones removes tone marks from s, keeping ü:
//
//	StripTones("nǚhái") // "nühai"
//
// Unlike ToNumbers it works on every letter, not only on syllables, and the
// result is in NFC.
func StripTones(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(toneMarks), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
