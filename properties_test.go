package pinyin_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipperhouse/pinyin"
)

// syllables lists every attested initial+final pair by probing the public
// validity check with the spellings below.
func syllables(t *testing.T) [][2]string {
	t.Helper()

	initials := strings.Fields("b p m f d t n l g k h z c s zh ch sh r j q x w y")
	initials = append(initials, "")
	finals := strings.Fields("a o e ai ei ao ou an en ang eng ong er i ia ie iao iu ian in iang ing iong u ua uo uai ui uan un uang v ve ue")

	var out [][2]string
	for _, i := range initials {
		for _, f := range finals {
			if pinyin.IsValidSyllable(i, f) {
				out = append(out, [2]string{i, f})
			}
		}
	}
	require.Greater(t, len(out), 350, "too few attested syllables")
	return out
}

func TestRoundTrip_AllSyllables(t *testing.T) {
	for _, s := range syllables(t) {
		for tone := '1'; tone <= '4'; tone++ {
			for _, numbered := range []string{
				s[0] + s[1] + string(tone),
				strings.ToUpper(s[0]+s[1]) + string(tone),
				capitalize(s[0]+s[1]) + string(tone),
			} {
				marked := pinyin.ToAccents(numbered)
				require.NotEqual(t, numbered, marked, "ToAccents left %q unchanged", numbered)
				require.Equal(t, numbered, pinyin.ToNumbers(marked), "round trip through %q", marked)
			}
		}
	}
}

func TestRoundTrip_Sentences(t *testing.T) {
	for _, numbered := range []string{
		"huan1ying2 guan1lin2!",
		"Wo3 xue2xi2 Zhong1wen2.",
		"nv3hai2 he2 nan2hai2",
		"lve4duo2, jue2ding4, yue4liang4",
		"Bei3jing1 2008",
	} {
		assert.Equal(t, numbered, pinyin.ToNumbers(pinyin.ToAccents(numbered)))
	}
}

func TestToNumbers_Idempotent(t *testing.T) {
	for _, s := range []string{
		"huānyíng guānlín!",
		"nǚhái, lǜsè",
		"fí ì ǖ",
		"plain text",
		"",
		"Zhōngguó rén",
	} {
		once := pinyin.ToNumbers(s)
		assert.Equal(t, once, pinyin.ToNumbers(once), "ToNumbers(%q)", s)
	}
}

func TestPassThrough(t *testing.T) {
	for _, s := range []string{
		"",
		"hello!",
		"1234 5678",
		"— ... ?",
		"你好世界",
		"ng hm",
		"YOU: hi",
	} {
		assert.Equal(t, s, pinyin.ToAccents(s), "ToAccents(%q)", s)
		assert.Equal(t, s, pinyin.ToNumbers(s), "ToNumbers(%q)", s)
	}
}

func TestInvalidPairsNotAccepted(t *testing.T) {
	require.False(t, pinyin.IsValidSyllable("b", "ong"))
	require.False(t, pinyin.IsValidSyllable("f", "i"))

	assert.Equal(t, "bong", pinyin.ToAccents("bong1"))
	assert.Equal(t, "bōng", pinyin.ToNumbers("bōng"))
	assert.Equal(t, "fi", pinyin.ToAccents("fi2"))
	assert.Equal(t, "fí", pinyin.ToNumbers("fí"))
}

func TestConcurrentUse(t *testing.T) {
	const workers = 8
	done := make(chan string, workers)
	for i := 0; i < workers; i++ {
		go func() {
			done <- pinyin.ToNumbers(pinyin.ToAccents("pin1yin1 zhu4yin1"))
		}()
	}
	for i := 0; i < workers; i++ {
		assert.Equal(t, "pin1yin1 zhu4yin1", <-done)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
