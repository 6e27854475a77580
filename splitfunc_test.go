package pinyin

import (
	"bufio"
	"strings"
	"testing"
	"testing/iotest"
)

func TestNextToken_Marked(t *testing.T) {
	got := collectTokens("huānyíng guānlín!")
	want := []token{
		{text: "huān", kind: Syllable},
		{text: "yíng", kind: Syllable},
		{text: " ", kind: Text},
		{text: "guān", kind: Syllable},
		{text: "lín", kind: Syllable},
		{text: "!", kind: Text},
	}
	assertTokens(t, got, want)
}

func TestNextToken_Numbered(t *testing.T) {
	got := collectTokens("ni3hao3, shi4jie4")
	want := []token{
		{text: "ni3", kind: Syllable},
		{text: "hao3", kind: Syllable},
		{text: ", ", kind: Text},
		{text: "shi4", kind: Syllable},
		{text: "jie4", kind: Syllable},
	}
	assertTokens(t, got, want)
}

func TestNextToken_InvalidPairsAreText(t *testing.T) {
	got := collectTokens("fi2 nǚ")
	want := []token{
		{text: "fi2 ", kind: Text},
		{text: "nǚ", kind: Syllable},
	}
	assertTokens(t, got, want)

	// Unmarked letters still form syllables.
	got = collectTokens("hello")
	want = []token{
		{text: "he", kind: Syllable},
		{text: "l", kind: Text},
		{text: "lo", kind: Syllable},
	}
	assertTokens(t, got, want)
}

func TestNextToken_StringAndBytesParity(t *testing.T) {
	for _, in := range []string{"", "zhuang4", "你好 nǐhǎo", "fí", "xi\u0304an"} {
		as, ks := NextToken(in)
		ab, kb := NextToken([]byte(in))
		if as != ab || ks != kb {
			t.Fatalf("NextToken parity mismatch for %q: string=(%d, %v) bytes=(%d, %v)", in, as, ks, ab, kb)
		}
	}

	if advance, _ := NextToken(""); advance != 0 {
		t.Fatalf("NextToken(\"\") advance = %d, want 0", advance)
	}
}

func TestSplitFunc(t *testing.T) {
	const in = "Wǒ xuéxí Zhōngwén. nv3hai2 hé nan2hai2"
	want := []string{"Wǒ", " ", "xué", "xí", " ", "Zhōng", "wén", ". ", "nv3", "hai2", " ", "hé", " ", "nan2", "hai2"}

	// One byte per read forces SplitFunc to ask for more data mid-syllable.
	sc := bufio.NewScanner(iotest.OneByteReader(strings.NewReader(in)))
	sc.Split(SplitFunc)

	var got []string
	for sc.Scan() {
		got = append(got, sc.Text())
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("tokens = %q, want %q", got, want)
	}
}

type token struct {
	text string
	kind Kind
}

func collectTokens(s string) []token {
	out := make([]token, 0, len(s))
	remaining := s

	for len(remaining) > 0 {
		advance, kind := NextToken(remaining)
		if advance <= 0 || advance > len(remaining) {
			panic("invalid token advance")
		}
		out = append(out, token{
			text: remaining[:advance],
			kind: kind,
		})
		remaining = remaining[advance:]
	}

	return out
}

func assertTokens(t *testing.T, got, want []token) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("token%d = %#v, want %#v", i, got[i], want[i])
		}
	}
}
