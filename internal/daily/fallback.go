package daily

import "time"

// fallbackAbhang is the fixed record served when generation is impossible.
// The verse and meaning never change; date and tithi are computed for the
// requested day.
const (
	fallbackAbhang = "विठ्ठल विठ्ठल विठोबा विठ्ठल\nपांडुरंगा पांडुरंगा विठोबा विठ्ठल\nतुका म्हणे माझा स्वामी पांडुरंग\nविठ्ठल विठ्ठल विठोबा विठ्ठल"

	fallbackMeaning = "या अभंगात संत तुकाराम महाराज विठ्ठलाचे नाम घेत आहेत. पांडुरंग म्हणजे विठ्ठल. संत तुकारामांनी विठ्ठलाला आपला स्वामी म्हणून स्वीकारले आहे. या अभंगातून भक्तीची तीव्रता दिसून येते."

	fallbackSant = "संत तुकाराम महाराज"
)

// Fallback builds the deterministic record for the given day.
func Fallback(t time.Time) *Content {
	return &Content{
		GregorianDate: MarathiDate(t),
		Tithi:         Tithi(t),
		Abhang:        fallbackAbhang,
		Meaning:       fallbackMeaning,
		Sant:          fallbackSant,
		IsFallback:    true,
	}
}
