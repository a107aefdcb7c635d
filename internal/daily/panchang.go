package daily

import (
	"math"
	"time"
)

// Lunar-day (tithi) approximation. The moon's phase is taken from the mean
// synodic month anchored at a known new moon; each tithi is 1/30 of the
// cycle. Good enough for a display label, not for almanac work.

const synodicMonth = 29.530588853 // days

// newMoonEpoch is the new moon of 2000-01-06 18:14 UTC.
var newMoonEpoch = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

var tithiNames = [...]string{
	"प्रतिपदा", "द्वितीया", "तृतीया", "चतुर्थी", "पंचमी",
	"षष्ठी", "सप्तमी", "अष्टमी", "नवमी", "दशमी",
	"एकादशी", "द्वादशी", "त्रयोदशी", "चतुर्दशी", "पौर्णिमा",
}

// hinduMonths maps the approximate start (Gregorian month, day) of each
// Hindu month; each entry runs until the next one begins.
var hinduMonths = [...]struct {
	month time.Month
	day   int
	name  string
}{
	{time.January, 14, "माघ"},
	{time.February, 13, "फाल्गुन"},
	{time.March, 14, "चैत्र"},
	{time.April, 13, "वैशाख"},
	{time.May, 14, "ज्येष्ठ"},
	{time.June, 14, "आषाढ"},
	{time.July, 15, "श्रावण"},
	{time.August, 15, "भाद्रपद"},
	{time.September, 15, "आश्विन"},
	{time.October, 15, "कार्तिक"},
	{time.November, 14, "मार्गशीर्ष"},
	{time.December, 14, "पौष"},
}

// moonPhase returns the phase in [0,1): 0 new moon, 0.5 full moon.
func moonPhase(t time.Time) float64 {
	days := t.Sub(newMoonEpoch).Hours() / 24
	phase := math.Mod(days/synodicMonth, 1)
	if phase < 0 {
		phase++
	}
	return phase
}

// Tithi returns the full Marathi tithi label for the date, e.g.
// "कार्तिक शुद्ध एकादशी".
func Tithi(t time.Time) string {
	phase := moonPhase(t)
	number := int(phase*30) + 1
	shukla := phase < 0.5

	paksha := "शुद्ध"
	index := number - 1
	if !shukla {
		paksha = "कृष्ण"
		index = number - 16
	}

	name := tithiNames[0]
	if index == 14 {
		if shukla {
			name = "पौर्णिमा"
		} else {
			name = "अमावस्या"
		}
	} else if index >= 0 && index < len(tithiNames) {
		name = tithiNames[index]
	}

	return HinduMonth(t) + " " + paksha + " " + name
}

// HinduMonth returns the approximate Hindu month name for the date.
func HinduMonth(t time.Time) string {
	month, day := t.Month(), t.Day()
	for i := range hinduMonths {
		cur := hinduMonths[i]
		next := hinduMonths[(i+1)%len(hinduMonths)]
		if month == cur.month && day >= cur.day {
			return cur.name
		}
		if month == next.month && day < next.day {
			return cur.name
		}
	}
	return "मार्गशीर्ष"
}
