package pinyin

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	initialIndex = indexOf(initials[:])
	finalIndex   = indexOf(finals[:])

	// Match candidates, longest first.
	initialsByLength = byLength(initials[:])
	finalsByLength   = byLength(finals[:])

	// Finals no initial other than the zero initial takes, like er. The
	// matcher does not try them after a consonant, so gèrén reads as gè+rén.
	standalone = standaloneFinals()
)

// IsValidSyllable reports whether initial+final is an attested Hanyu Pinyin
// syllable. Case is ignored; v stands for ü, and the empty initial is allowed.
func IsValidSyllable(initial, final string) bool {
	i, ok := initialIndex[strings.ToLower(initial)]
	if !ok {
		return false
	}
	f, ok := finalIndex[strings.ToLower(final)]
	if !ok {
		return false
	}
	return validity[i][f]
}

func indexOf(list []string) map[string]int {
	m := make(map[string]int, len(list))
	for i, s := range list {
		m[s] = i
	}
	return m
}

func byLength(list []string) []int {
	order := make([]int, len(list))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(len(list[b]), len(list[a]))
	})
	return order
}

func standaloneFinals() [len(finals)]bool {
	zero := initialIndex[""]
	var out [len(finals)]bool
	for f := range finals {
		out[f] = validity[zero][f]
		for i := range initials {
			if i != zero && validity[i][f] {
				out[f] = false
				break
			}
		}
	}
	return out
}

// maxCluster bounds the bytes read when composing a base letter with its
// combining marks.
const maxCluster = 16

func decodeRune[T ~string | ~[]byte](data T) (rune, int) {
	var buf [utf8.UTFMax]byte
	n := copy(buf[:], data)
	return utf8.DecodeRune(buf[:n])
}

// decodeCluster decodes the rune at the start of data together with any
// combining marks that follow it, composed to NFC. A cluster that does not
// compose to a single rune decodes as utf8.RuneError.
func decodeCluster[T ~string | ~[]byte](data T) (rune, int) {
	r, w := decodeRune(data)
	if w >= len(data) || data[w] < utf8.RuneSelf {
		return r, w
	}

	head := data
	if len(head) > maxCluster {
		head = head[:maxCluster]
	}
	s := string(head)
	n := norm.NFC.NextBoundaryInString(s, len(head) == len(data))
	if n <= w {
		return r, w
	}

	c := norm.NFC.String(s[:n])
	cr, cw := utf8.DecodeRuneInString(c)
	if cw != len(c) {
		return utf8.RuneError, n
	}
	return cr, n
}
