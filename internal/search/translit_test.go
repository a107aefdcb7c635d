package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransliterate_WordMap(t *testing.T) {
	// every curated entry maps exactly, bypassing the pattern scan
	for in, want := range wordMap {
		assert.Equal(t, want, Transliterate(in), "query %q", in)
	}
}

func TestTransliterate_LongestPatternWins(t *testing.T) {
	// "cha" must consume as one syllable, not "ch" + "a".
	assert.Equal(t, "चा", Transliterate("cha"))
	// "chh" must beat "ch".
	assert.Equal(t, "छ", Transliterate("chh"))
	// aspirate followed by a syllable
	assert.Equal(t, "भजन", Transliterate("bhjn"))
}

func TestTransliterate_ScanIsPositional(t *testing.T) {
	// Each position consumes exactly one longest match and moves on.
	assert.Equal(t, "तोबा", Transliterate("toba"))
	assert.Equal(t, "हरी", Transliterate("hri"))
}

func TestTransliterate_UnmatchedBytesPassThrough(t *testing.T) {
	assert.Equal(t, "x7", Transliterate("x7"))
	assert.Equal(t, " x ", Transliterate(" x "))
	assert.Equal(t, "", Transliterate(""))
}
