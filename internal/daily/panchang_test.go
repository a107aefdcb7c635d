package daily

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDevanagariNumber(t *testing.T) {
	assert.Equal(t, "०", DevanagariNumber(0))
	assert.Equal(t, "२६", DevanagariNumber(26))
	assert.Equal(t, "२०२५", DevanagariNumber(2025))
	assert.Equal(t, "-४", DevanagariNumber(-4))
}

func TestMarathiDate(t *testing.T) {
	d := time.Date(2025, time.November, 26, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "२६ नोव्हेंबर २०२५", MarathiDate(d))

	d = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "१ जानेवारी २०२४", MarathiDate(d))
}

func TestTithiAtEpoch(t *testing.T) {
	// the anchor new moon starts शुद्ध प्रतिपदा by construction
	assert.Equal(t, "पौष शुद्ध प्रतिपदा", Tithi(newMoonEpoch))

	// half a cycle later the dark fortnight has begun
	later := newMoonEpoch.Add(15 * 24 * time.Hour)
	assert.Equal(t, "माघ कृष्ण प्रतिपदा", Tithi(later))
}

func TestTithiAlwaysWellFormed(t *testing.T) {
	start := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 365; i++ {
		label := Tithi(start.AddDate(0, 0, i))
		assert.NotEmpty(t, label)
		assert.True(t,
			strings.Contains(label, " शुद्ध ") || strings.Contains(label, " कृष्ण "),
			"label %q must name a paksha", label)
	}
}

func TestHinduMonthBoundaries(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC), "पौष"},
		{time.Date(2025, time.January, 14, 0, 0, 0, 0, time.UTC), "माघ"},
		{time.Date(2025, time.November, 13, 0, 0, 0, 0, time.UTC), "कार्तिक"},
		{time.Date(2025, time.November, 26, 0, 0, 0, 0, time.UTC), "मार्गशीर्ष"},
		{time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC), "श्रावण"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HinduMonth(c.date), "date %s", c.date.Format("2006-01-02"))
	}
}

func TestFallbackRecord(t *testing.T) {
	at := time.Date(2025, time.November, 26, 0, 0, 0, 0, time.UTC)
	c := Fallback(at)
	assert.True(t, c.IsFallback)
	assert.Equal(t, "२६ नोव्हेंबर २०२५", c.GregorianDate)
	assert.Equal(t, Tithi(at), c.Tithi)
	assert.Equal(t, fallbackSant, c.Sant)
	assert.NotEmpty(t, c.Abhang)
	assert.NotEmpty(t, c.Meaning)
}
