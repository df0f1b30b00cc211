package timeconv

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// nonZoneWords are words that may appear in a timestamp without naming a
// zone. Keys are upper case.
var nonZoneWords = map[string]bool{
	"AM": true, "PM": true,
	"MON": true, "TUE": true, "TUES": true, "WED": true, "THU": true, "THUR": true, "THURS": true,
	"FRI": true, "SAT": true, "SUN": true,
	"MONDAY": true, "TUESDAY": true, "WEDNESDAY": true, "THURSDAY": true,
	"FRIDAY": true, "SATURDAY": true, "SUNDAY": true,
	"JAN": true, "FEB": true, "MAR": true, "APR": true, "MAY": true, "JUN": true,
	"JUL": true, "AUG": true, "SEP": true, "SEPT": true, "OCT": true, "NOV": true, "DEC": true,
	"JANUARY": true, "FEBRUARY": true, "MARCH": true, "APRIL": true, "JUNE": true, "JULY": true,
	"AUGUST": true, "SEPTEMBER": true, "OCTOBER": true, "NOVEMBER": true, "DECEMBER": true,
}

// extractZone removes a recognised zone token from ts and returns the zone
// it names. Tokens match regardless of case. A nil location means ts named
// no zone.
func (c *Converter) extractZone(ts string) (string, *time.Location, error) {
	fields := strings.Fields(ts)
	kept := fields[:0]
	var (
		found     *time.Location
		foundName string
	)
	for _, f := range fields {
		word := strings.TrimRight(f, ",;")
		if loc, ok := c.zones[strings.ToUpper(word)]; ok {
			if found != nil && found != loc {
				return "", nil, fmt.Errorf("conflicting time zones %s and %s", foundName, word)
			}
			found, foundName = loc, word
			continue
		}
		if looksLikeZone(word) {
			return "", nil, fmt.Errorf("unrecognized time zone %q", word)
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " "), found, nil
}

// looksLikeZone reports words that can only be a zone: letters-only words
// other than months, weekdays and meridiems, and names like Europe/Paris.
func looksLikeZone(word string) bool {
	if word == "" {
		return false
	}
	letters, hasLetter := true, false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
		} else {
			letters = false
		}
	}
	if strings.Contains(word, "/") && hasLetter {
		return true
	}
	return letters && !nonZoneWords[strings.ToUpper(word)]
}
