package pinyin

// maxLetters is the longest initial plus the longest final, as in "zhuang".
const maxLetters = 6

func init() {
	if len(initials[initialsByLength[0]])+len(finals[finalsByLength[0]]) > maxLetters {
		panic("pinyin: maxLetters is shorter than the longest syllable")
	}
}

// letter is one source glyph seen through the matcher.
type letter struct {
	lower byte  // lowercase bare letter; ü is v
	bare  byte  // bare letter in the source's case
	tone  uint8 // tone of a marked glyph, 0 otherwise
	end   int   // byte offset just past the glyph
}

// window is the run of letters at a scan position, up to maxLetters long.
type window struct {
	letters [maxLetters]letter
	n       int
}

// match is an (initial, final) pair found at the start of a window.
type match struct {
	initial int // index into initials
	final   int // index into finals
	n       int // letters consumed
	valid   bool
}

// readWindow reads the letters at the start of data. Marked glyphs count
// as letters only when marked is true; ü always counts, as v.
func readWindow[T ~string | ~[]byte](data T, marked bool) window {
	var w window
	pos := 0
	for w.n < maxLetters && pos < len(data) {
		l, width, ok := readLetter(data[pos:], marked)
		if !ok {
			break
		}
		pos += width
		l.end = pos
		w.letters[w.n] = l
		w.n++
	}
	return w
}

func readLetter[T ~string | ~[]byte](data T, marked bool) (letter, int, bool) {
	r, width := decodeCluster(data)
	switch {
	case 'a' <= r && r <= 'z':
		return letter{lower: byte(r), bare: byte(r)}, width, true
	case 'A' <= r && r <= 'Z':
		return letter{lower: byte(r) + 'a' - 'A', bare: byte(r)}, width, true
	}

	f, ok := folds[r]
	if !ok || (f.tone > 0 && !marked) {
		return letter{}, 0, false
	}
	lower := f.bare
	if 'A' <= lower && lower <= 'Z' {
		lower += 'a' - 'A'
	}
	return letter{lower: lower, bare: f.bare, tone: f.tone}, width, true
}

func (w *window) hasPrefix(at int, s string) bool {
	if at+len(s) > w.n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if w.letters[at+i].lower != s[i] {
			return false
		}
	}
	return true
}

// find finds the syllable at the start of the window: the longest initial
// that is followed by some final, then the longest such final. valid reports
// whether the pair is attested; an unattested pair is still the match.
func (w *window) find() (match, bool) {
	for _, i := range initialsByLength {
		initial := initials[i]
		if !w.hasPrefix(0, initial) {
			continue
		}
		for _, f := range finalsByLength {
			if initial != "" && standalone[f] {
				continue
			}
			if !w.hasPrefix(len(initial), finals[f]) {
				continue
			}
			return match{
				initial: i,
				final:   f,
				n:       len(initial) + len(finals[f]),
				valid:   validity[i][f],
			}, true
		}
	}
	return match{}, false
}

// width is the byte length of the first n letters.
func (w *window) width(n int) int {
	if n == 0 {
		return 0
	}
	return w.letters[n-1].end
}

// bare spells letters [from, to) without marks, ü as v.
func (w *window) bare(from, to int) string {
	b := make([]byte, 0, to-from)
	for i := from; i < to; i++ {
		b = append(b, w.letters[i].bare)
	}
	return string(b)
}

// tone returns the tone of the first marked letter among the first n.
func (w *window) tone(n int) int {
	for i := 0; i < n; i++ {
		if t := w.letters[i].tone; t > 0 {
			return int(t)
		}
	}
	return 0
}
