package domain

import "time"

// DateKeyLayout is the bank API's date format (also used as display label).
const DateKeyLayout = "02.01.2006"

// DateKeys returns days+1 date keys walking back from now, most recent
// first. Pure function of its inputs: same now and days, same output.
func DateKeys(now time.Time, days int) []string {
	if days < 0 {
		days = 0
	}
	keys := make([]string, 0, days+1)
	for i := 0; i <= days; i++ {
		keys = append(keys, now.AddDate(0, 0, -i).Format(DateKeyLayout))
	}
	return keys
}
