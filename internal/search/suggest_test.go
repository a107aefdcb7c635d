package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmitSalunkhe/jmbm-v2/internal/content/domain"
)

func bhajan(id, title, lyrics, sant string) domain.Bhajan {
	return domain.Bhajan{ID: id, Title: title, Lyrics: lyrics, Sant: sant}
}

func TestSuggest_PhoneticMatch(t *testing.T) {
	items := []domain.Bhajan{
		bhajan("1", "विठ्ठल विठ्ठल", "विठ्ठल विठ्ठल विठोबा", "संत तुकाराम"),
		bhajan("2", "Ram Dhun", "raghupati raghav", "—"),
	}

	// "vi" does not appear as Latin text anywhere, but its phonetic form
	// "वि" is in the first title.
	got := Suggest(items, "vi")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestSuggest_RawSubstringMatch(t *testing.T) {
	items := []domain.Bhajan{
		bhajan("1", "Sundar Te Dhyan", "sundar te dhyan ubhe vitevari", "tukaram"),
		bhajan("2", "विठू माउली", "", ""),
	}
	got := Suggest(items, "Sundar")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestSuggest_ShortQuery(t *testing.T) {
	items := []domain.Bhajan{bhajan("1", "abc", "", "")}
	for _, q := range []string{"a", " ", ""} {
		got := Suggest(items, q)
		assert.NotNil(t, got, "query %q", q)
		assert.Empty(t, got, "query %q", q)
	}
}

func TestSuggest_NoMatchIsEmptyNotNil(t *testing.T) {
	items := []domain.Bhajan{bhajan("1", "abc", "", "")}
	got := Suggest(items, "zzqq")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSuggest_CapsAtFive(t *testing.T) {
	var items []domain.Bhajan
	for i := 0; i < 8; i++ {
		items = append(items, bhajan(fmt.Sprint(i), fmt.Sprintf("Sant Bhajan %d", i), "", ""))
	}
	got := Suggest(items, "sant")
	require.Len(t, got, 5)
	// collection order is preserved
	for i, b := range got {
		assert.Equal(t, fmt.Sprint(i), b.ID)
	}
}

func TestFilter_ShortQueryReturnsAll(t *testing.T) {
	items := []domain.Bhajan{bhajan("1", "a", "", ""), bhajan("2", "b", "", "")}
	assert.Equal(t, items, Filter(items, "x"))
	assert.Equal(t, items, Filter(items, ""))
}

func TestFilter_Transliterated(t *testing.T) {
	items := []domain.Bhajan{
		bhajan("1", "रूप पाहता लोचनी", "", "संत ज्ञानेश्वर"),
		bhajan("2", "Other", "", ""),
	}
	got := Filter(items, "rup")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// no match yields an empty, non-nil slice
	got = Filter(items, "zzqq")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
