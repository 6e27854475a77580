// Package pinyin converts Hanyu Pinyin between tone numbers ("pin1yin1")
// and tone marks ("pīnyīn").
//
// Syllables are found anywhere in the input by matching an initial and a
// final against the standard syllable table; text that does not form an
// attested syllable passes through. All functions are safe for concurrent use.
package pinyin

//go:generate sh -c "cd internal/gen && go run ."

import "strings"

// umlauts are the spellings of ü rewritten to v before tone numbers are read.
// U: is not one of them; in upper-case text it is too often just a colon.
var umlauts = strings.NewReplacer("ü", "v", "u:", "v", "Ü", "V")

// ToAccents converts numbered syllables to marked ones:
//
//	ToAccents("huan1ying2 guan1lin2!") // "huānyíng guānlín!"
//
// ü may be written as ü, u: or v, and Ü as Ü or V. A trailing 1 to 4 is a
// tone; other digits are left in place. A tone digit after a pair that is
// not an attested syllable is dropped and the letters are left as they are.
func ToAccents(s string) string {
	s = umlauts.Replace(s)

	var b strings.Builder
	b.Grow(len(s) + len(s)/2)

	for pos := 0; pos < len(s); {
		w := readWindow(s[pos:], false)
		m, ok := w.find()
		if !ok {
			_, width := decodeRune(s[pos:])
			b.WriteString(s[pos : pos+width])
			pos += width
			continue
		}

		end := pos + w.width(m.n)
		tone := 0
		if end < len(s) && '1' <= s[end] && s[end] <= '4' {
			tone = int(s[end] - '0')
			end++
		}

		if m.valid {
			split := len(initials[m.initial])
			b.WriteString(accentSyllable(w.bare(0, split), w.bare(split, m.n), tone))
		} else {
			b.WriteString(s[pos : pos+w.width(m.n)])
		}
		pos = end
	}

	return b.String()
}

// ToNumbers converts marked syllables to numbered ones:
//
//	ToNumbers("huānyíng guānlín!") // "huan1ying2 guan1lin2!"
//
// ü is written as v in converted syllables. Unmarked syllables, and marked
// vowels that are not part of an attested syllable, are left as they are.
func ToNumbers(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for pos := 0; pos < len(s); {
		w := readWindow(s[pos:], true)
		m, ok := w.find()
		if !ok {
			_, width := decodeRune(s[pos:])
			b.WriteString(s[pos : pos+width])
			pos += width
			continue
		}

		end := pos + w.width(m.n)
		if tone := w.tone(m.n); m.valid && tone > 0 {
			b.WriteString(w.bare(0, m.n))
			b.WriteByte(byte('0' + tone))
		} else {
			b.WriteString(s[pos:end])
		}
		pos = end
	}

	return b.String()
}

// accentSyllable marks the main vowel of final with tone and joins it to
// initial. The main vowel is the first of the final's vowel run, or the
// second when the run starts with the glide i, u or v. Every v is written ü.
func accentSyllable(initial, final string, tone int) string {
	start := strings.IndexFunc(final, isVowel)
	if start < 0 {
		panic("pinyin: final " + final + " has no vowel")
	}
	end := start + 1
	for end < len(final) && isVowel(rune(final[end])) {
		end++
	}

	mark := start
	if end-start > 1 && isGlide(final[start]) {
		mark++
	}

	var b strings.Builder
	b.Grow(len(initial) + len(final) + 4)
	b.WriteString(initial)
	for i := 0; i < len(final); i++ {
		c := rune(final[i])
		switch {
		case i == mark:
			b.WriteRune(AccentedGlyph(c, tone))
		case c == 'v' || c == 'V':
			b.WriteRune(AccentedGlyph(c, 0))
		default:
			b.WriteByte(final[i])
		}
	}
	return b.String()
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'v', 'A', 'E', 'I', 'O', 'U', 'V':
		return true
	}
	return false
}

func isGlide(c byte) bool {
	switch c {
	case 'i', 'u', 'v', 'I', 'U', 'V':
		return true
	}
	return false
}
