package pinyin

// accents maps a bare vowel to its glyph for each tone. Index 0 is the
// unmarked glyph; v stands for ü.
var accents = map[rune][5]rune{
	'a': {'a', 'ā', 'á', 'ǎ', 'à'},
	'e': {'e', 'ē', 'é', 'ě', 'è'},
	'i': {'i', 'ī', 'í', 'ǐ', 'ì'},
	'o': {'o', 'ō', 'ó', 'ǒ', 'ò'},
	'u': {'u', 'ū', 'ú', 'ǔ', 'ù'},
	'v': {'ü', 'ǖ', 'ǘ', 'ǚ', 'ǜ'},
	'A': {'A', 'Ā', 'Á', 'Ǎ', 'À'},
	'E': {'E', 'Ē', 'É', 'Ě', 'È'},
	'I': {'I', 'Ī', 'Í', 'Ǐ', 'Ì'},
	'O': {'O', 'Ō', 'Ó', 'Ǒ', 'Ò'},
	'U': {'U', 'Ū', 'Ú', 'Ǔ', 'Ù'},
	'V': {'Ü', 'Ǖ', 'Ǘ', 'Ǚ', 'Ǜ'},
}

// accentGlyphs holds every marked glyph, grouped by tone 1 through 4.
// Each group has the same length and the same vowel order.
const accentGlyphs = "āēīōūǖĀĒĪŌŪǕ" +
	"áéíóúǘÁÉÍÓÚǗ" +
	"ǎěǐǒǔǚǍĚǏǑǓǙ" +
	"àèìòùǜÀÈÌÒÙǛ"

// breves are third-tone glyphs written with a breve instead of a caron.
var breves = map[rune]byte{
	'ă': 'a', 'ĕ': 'e', 'ĭ': 'i', 'ŏ': 'o', 'ŭ': 'u',
	'Ă': 'A', 'Ĕ': 'E', 'Ĭ': 'I', 'Ŏ': 'O', 'Ŭ': 'U',
}

var (
	glyphIndex = []rune(accentGlyphs)
	perTone    = len(glyphIndex) / 4
)

// fold is the bare letter and tone behind a non-ASCII glyph.
type fold struct {
	bare byte
	tone uint8
}

// folds maps ü and every marked glyph to its bare letter.
var folds = buildFolds()

func buildFolds() map[rune]fold {
	if len(glyphIndex)%4 != 0 {
		panic("pinyin: accent glyph index is not divisible into four tones")
	}

	m := make(map[rune]fold, len(glyphIndex)+len(breves)+2)
	for vowel, glyphs := range accents {
		for tone := 1; tone < len(glyphs); tone++ {
			g := glyphs[tone]
			if toneOf(g) != tone {
				panic("pinyin: accent glyph " + string(g) + " is in the wrong tone group")
			}
			m[g] = fold{bare: byte(vowel), tone: uint8(tone)}
		}
	}
	m['ü'] = fold{bare: 'v'}
	m['Ü'] = fold{bare: 'V'}
	for g, bare := range breves {
		m[g] = fold{bare: bare, tone: 3}
	}

	if len(m) != len(glyphIndex)+len(breves)+2 {
		panic("pinyin: accent glyph index does not match the accent table")
	}
	return m
}

// toneOf returns the tone carried by a marked glyph, or 0 if g is not one.
func toneOf(g rune) int {
	for i, r := range glyphIndex {
		if r == g {
			return i/perTone + 1
		}
	}
	return 0
}

// AccentedGlyph returns vowel marked with tone. Vowels are a, e, i, o, u and
// v (for ü), in either case; tone 0 is unmarked, so AccentedGlyph('v', 0) is
// 'ü'. Any other vowel or tone returns vowel unchanged.
func AccentedGlyph(vowel rune, tone int) rune {
	glyphs, ok := accents[vowel]
	if !ok || tone < 0 || tone >= len(glyphs) {
		return vowel
	}
	return glyphs[tone]
}
