package search

import (
	"strings"

	"github.com/AmitSalunkhe/jmbm-v2/internal/content/domain"
)

// phoneticMap is the suggestion dropdown's own whole-query dictionary. It is
// deliberately smaller and stricter than the transliteration tables: false
// positives are costlier in a live dropdown than missed matches.
var phoneticMap = map[string]string{
	"vi": "वि", "su": "सु", "pa": "पा", "tu": "तु",
	"vitthala": "विठ्ठल", "vitthal": "विठ्ठल", "vithoba": "विठोबा",
	"panduranga": "पांडुरंग", "pandurang": "पांडुरंग",
	"tukaram": "तुकाराम", "dnyaneshwar": "ज्ञानेश्वर",
	"gyaneshwar": "ज्ञानेश्वर", "jnaneshwar": "ज्ञानेश्वर",
	"namdev": "नामदेव", "eknath": "एकनाथ",
	"abhang": "अभंग", "sant": "संत", "bhajan": "भजन",
	"hari": "हरी", "rama": "राम", "krishna": "कृष्ण",
	"shiva": "शिव", "ganesh": "गणेश", "deva": "देव",
	"prabhu": "प्रभु", "swami": "स्वामी", "maharaj": "महाराज",
}

// minQueryLen is the shortest query worth searching; anything shorter is too
// noisy to scan for.
const minQueryLen = 2

const maxSuggestions = 5

func searchableText(b domain.Bhajan) string {
	parts := []string{b.Title, b.Lyrics, b.Sant, b.Category, strings.Join(b.Subcategory, " ")}
	return strings.ToLower(strings.Join(parts, " "))
}

// Suggest returns up to five bhajans matching the query, in collection
// order. An item matches when its searchable text contains either the raw
// lowercased query or its phonetic Devanagari equivalent. The result is
// never nil; short and unmatched queries yield an empty slice.
func Suggest(items []domain.Bhajan, query string) []domain.Bhajan {
	out := []domain.Bhajan{}
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLen {
		return out
	}
	q := strings.ToLower(query)
	alt := phoneticMap[q]

	for _, b := range items {
		text := searchableText(b)
		if strings.Contains(text, q) || (alt != "" && strings.Contains(text, alt)) {
			out = append(out, b)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

// Filter is the recall-oriented sibling of Suggest used by full list views.
// It runs the full transliterator on the query and returns every item whose
// searchable text contains either form. Queries below the minimum length
// return the input unfiltered.
func Filter(items []domain.Bhajan, query string) []domain.Bhajan {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLen {
		return items
	}
	q := strings.ToLower(query)
	alt := Transliterate(q)

	out := []domain.Bhajan{}
	for _, b := range items {
		text := searchableText(b)
		if strings.Contains(text, q) || strings.Contains(text, alt) {
			out = append(out, b)
		}
	}
	return out
}
