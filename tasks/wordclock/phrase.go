package wordclock

import "strings"

var hourNames = [13]string{
	"twelve", "one", "two", "three", "four", "five", "six",
	"seven", "eight", "nine", "ten", "eleven", "twelve",
}

// band is a five minute slice of the hour. Bands from half past onwards read "to" the next hour.
type band struct {
	from  int
	words string
	next  bool
}

var bands = []band{
	{5, "five minutes past", false},
	{10, "ten minutes past", false},
	{15, "quarter past", false},
	{20, "twenty minutes past", false},
	{25, "twenty five minutes past", false},
	{30, "half past", false},
	{35, "twenty five minutes to", true},
	{40, "twenty minutes to", true},
	{45, "quarter to", true},
	{50, "ten minutes to", true},
	{55, "five minutes to", true},
}

// ApproxTime spells out hour:minute to the nearest five minutes below, e.g. "it is quarter past
// three". Any hour is folded onto the 12-hour dial; minutes outside [0, 60) read as o'clock.
func ApproxTime(hour, minute int) string {
	h := ((hour % 12) + 12) % 12

	for _, b := range bands {
		if minute >= b.from && minute < b.from+5 {
			n := h
			if b.next {
				n++
			}
			return "it is " + b.words + " " + hourNames[n]
		}
	}
	return "it is " + hourNames[h] + " o'clock"
}

// PhraseWords splits ApproxTime into the words looked up on the grid.
func PhraseWords(hour, minute int) []string {
	return strings.Fields(ApproxTime(hour, minute))
}
