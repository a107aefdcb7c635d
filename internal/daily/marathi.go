package daily

import (
	"strconv"
	"strings"
	"time"
)

var marathiMonths = [...]string{
	"जानेवारी", "फेब्रुवारी", "मार्च", "एप्रिल", "मे", "जून",
	"जुलै", "ऑगस्ट", "सप्टेंबर", "ऑक्टोबर", "नोव्हेंबर", "डिसेंबर",
}

var devanagariDigits = map[rune]rune{
	'0': '०', '1': '१', '2': '२', '3': '३', '4': '४',
	'5': '५', '6': '६', '7': '७', '8': '८', '9': '९',
}

// DevanagariNumber renders a decimal number with Devanagari digits.
func DevanagariNumber(n int) string {
	return strings.Map(func(r rune) rune {
		if d, ok := devanagariDigits[r]; ok {
			return d
		}
		return r
	}, strconv.Itoa(n))
}

// MarathiDate formats a date the way the app displays it, e.g.
// "२६ नोव्हेंबर २०२५".
func MarathiDate(t time.Time) string {
	return DevanagariNumber(t.Day()) + " " + marathiMonths[int(t.Month())-1] + " " + DevanagariNumber(t.Year())
}
