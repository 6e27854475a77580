package pinyin

import "bufio"

// SplitFunc splits pinyin text into syllables and the text between them,
// for use with bufio.Scanner. See NextToken.
var SplitFunc bufio.SplitFunc = splitFunc

// Kind classifies a token returned by NextToken.
type Kind uint8

const (
	// Text is a run of anything that is not an attested syllable.
	Text Kind = iota + 1
	// Syllable is one attested syllable, marked or numbered.
	Syllable
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Syllable:
		return "Syllable"
	}
	return "Kind(?)"
}

// lookahead is how far past a token the scanner must see before the token
// is final: one window of composed letters and a tone digit.
const lookahead = maxLetters*maxCluster + 1

// NextToken returns the byte length and kind of the first token in data.
// A Syllable token includes its tone digit, if one follows. Marked and
// numbered syllables are both recognized, and ü may be written as ü or v.
func NextToken[T ~string | ~[]byte](data T) (advance int, kind Kind) {
	pos := 0
	for pos < len(data) {
		w := readWindow(data[pos:], true)
		m, ok := w.find()
		switch {
		case !ok:
			_, width := decodeRune(data[pos:])
			pos += width
		case !m.valid:
			pos += w.width(m.n)
		case pos > 0:
			return pos, Text
		default:
			end := w.width(m.n)
			if end < len(data) && '1' <= data[end] && data[end] <= '4' {
				end++
			}
			return end, Syllable
		}
	}
	return pos, Text
}

func splitFunc(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil
	}

	advance, _ = NextToken(data)
	if !atEOF && len(data)-advance < lookahead {
		// More input could extend or re-split the token.
		return 0, nil, nil
	}
	return advance, data[:advance], nil
}
