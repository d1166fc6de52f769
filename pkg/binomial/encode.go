package binomial

import "time"

// Positional weights of the packed fields.
const (
	yearWeight  = 1_000_000
	monthWeight = 100_000
	dayWeight   = 1_000
)

// Encode packs a calendar date and a number into one integer:
//
//	(year-2000)*1_000_000 + month*100_000 + day*1_000 + number
//
// The date is read in its own location. Arithmetic wraps; callers are
// expected to keep inputs inside a validated Config.
//
// The month and year fields overlap, so the packing is not injective across
// year boundaries: November and December of one year share values with
// January and February of the next. Dates from January to October of the
// same year never collide.
func Encode(date time.Time, number uint32) uint64 {
	y, m, d := date.Date()
	return encodeCivil(civil{y, m, d}, number)
}

func encodeCivil(c civil, number uint32) uint64 {
	return uint64(c.year-Epoch)*yearWeight +
		uint64(c.month)*monthWeight +
		uint64(c.day)*dayWeight +
		uint64(number)
}

// civil is a calendar date without time or location.
type civil struct {
	year  int
	month time.Month
	day   int
}

func civilOf(t time.Time) civil {
	y, m, d := t.Date()
	return civil{y, m, d}
}

func (c civil) date() time.Time {
	return time.Date(c.year, c.month, c.day, 0, 0, 0, 0, time.UTC)
}

func (c civil) addDays(n int) civil {
	return civilOf(c.date().AddDate(0, 0, n))
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
