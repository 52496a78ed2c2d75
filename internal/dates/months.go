package dates

import "time"

// polishMonths maps a normalized month token (lower-case, diacritics
// stripped) to its month number. Nominative, genitive and abbreviated forms
// are all listed; lookup happens per whole token, never per substring.
var polishMonths = map[string]time.Month{
	// styczeń
	"styczen":  time.January,
	"stycznia": time.January,
	"sty":      time.January,
	// luty
	"luty":   time.February,
	"lutego": time.February,
	"lut":    time.February,
	// marzec
	"marzec": time.March,
	"marca":  time.March,
	"mar":    time.March,
	// kwiecień
	"kwiecien": time.April,
	"kwietnia": time.April,
	"kwi":      time.April,
	// maj
	"maj":  time.May,
	"maja": time.May,
	// czerwiec
	"czerwiec": time.June,
	"czerwca":  time.June,
	"cze":      time.June,
	// lipiec
	"lipiec": time.July,
	"lipca":  time.July,
	"lip":    time.July,
	// sierpień
	"sierpien": time.August,
	"sierpnia": time.August,
	"sie":      time.August,
	// wrzesień
	"wrzesien": time.September,
	"wrzesnia": time.September,
	"wrz":      time.September,
	// październik
	"pazdziernik":  time.October,
	"pazdziernika": time.October,
	"paz":          time.October,
	// listopad
	"listopad":  time.November,
	"listopada": time.November,
	"lis":       time.November,
	// grudzień
	"grudzien": time.December,
	"grudnia":  time.December,
	"gru":      time.December,
}

// englishMonths restores the capitalization the time package expects after
// the whole input has been lower-cased.
var englishMonths = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// monthToken resolves a normalized token to a month, Polish forms first.
func monthToken(token string) (time.Month, bool) {
	if m, ok := polishMonths[token]; ok {
		return m, true
	}
	if m, ok := englishMonths[token]; ok {
		return m, true
	}
	return 0, false
}
