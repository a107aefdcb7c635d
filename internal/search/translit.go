package search

import "strings"

// wordMap holds exact whole-query mappings for common devotional terms.
// These win over character transliteration because they are curated.
var wordMap = map[string]string{
	"rup": "रूप", "roop": "रूप", "lochani": "लोचनी",
	"pahata": "पाहाता", "sundar": "सुंदर", "sundarte": "सुंदरते",
	"vitthala": "विठ्ठल", "vitthal": "विठ्ठल", "vithoba": "विठोबा",
	"tukaram": "तुकाराम", "sant": "संत",
	"panduranga": "पांडुरंग", "pandurang": "पांडुरंग",
	"namdev": "नामदेव", "dnyaneshwar": "ज्ञानेश्वर",
	"gyaneshwar": "ज्ञानेश्वर", "eknath": "एकनाथ",
}

// patterns maps Latin consonant/vowel clusters to Devanagari syllables.
// Longest patterns must win, so the lookup scans lengths 3, 2, 1.
var patterns = map[string]string{
	// aspirates and clusters
	"chh": "छ", "ch": "च", "kh": "ख", "gh": "घ", "jh": "झ",
	"th": "थ", "dh": "ध", "ph": "फ", "bh": "भ", "sh": "श",
	// consonant + o
	"lo": "लो", "cho": "चो", "no": "नो", "po": "पो", "ro": "रो",
	"so": "सो", "to": "तो", "do": "दो", "mo": "मो", "ho": "हो",
	"ko": "को", "go": "गो", "jo": "जो", "bo": "बो", "vo": "वो",
	// consonant + a
	"la": "ला", "cha": "चा", "na": "ना", "pa": "पा", "ra": "रा",
	"sa": "सा", "ta": "ता", "da": "दा", "ma": "मा", "ha": "हा",
	"ka": "का", "ga": "गा", "ja": "जा", "ba": "बा", "va": "वा",
	// consonant + i
	"li": "ली", "chi": "ची", "ni": "नी", "pi": "पी", "ri": "री",
	"si": "सी", "ti": "ती", "di": "दी", "mi": "मी", "hi": "ही",
	"ki": "की", "gi": "गी", "ji": "जी", "bi": "बी", "vi": "वी",
	// consonant + u
	"lu": "लू", "chu": "चू", "nu": "नू", "pu": "पू", "ru": "रू",
	"su": "सू", "tu": "तू", "du": "दू", "mu": "मू", "hu": "हू",
	"ku": "कू", "gu": "गू", "ju": "जू", "bu": "बू", "vu": "वू",
	// bare consonants
	"l": "ल", "c": "च", "n": "न", "p": "प", "r": "र",
	"s": "स", "t": "त", "d": "द", "m": "म", "h": "ह",
	"k": "क", "g": "ग", "j": "ज", "b": "ब", "v": "व", "w": "व",
	"y": "य",
	// vowels
	"aa": "आ", "ee": "ई", "oo": "ऊ", "ai": "ऐ", "au": "औ",
	"a": "अ", "i": "इ", "u": "उ", "e": "ए", "o": "ओ",
}

const maxPatternLen = 3

// Transliterate produces a best-effort Devanagari rendering of a lowercased
// Latin-script query. An exact word-map hit is returned directly; otherwise
// the query is scanned left to right, consuming the longest matching pattern
// at every position. Spans no pattern matches pass through untranslated;
// callers must treat the result as one extra candidate for substring
// matching, never as authoritative.
func Transliterate(query string) string {
	if d, ok := wordMap[query]; ok {
		return d
	}

	var b strings.Builder
	i := 0
	for i < len(query) {
		matched := false
		for l := maxPatternLen; l >= 1; l-- {
			if i+l > len(query) {
				continue
			}
			if d, ok := patterns[query[i:i+l]]; ok {
				b.WriteString(d)
				i += l
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(query[i])
			i++
		}
	}
	return b.String()
}
