package domain

import (
	"strconv"
	"strings"
)

// commandName is the only recognized directive; anything else is chat.
const commandName = "exchange"

// Command is the parsed form of one inbound chat line. Exchange marks the
// line as a rate directive; Days and Currencies carry its parameters and
// fall back to (0, base set) for plain chat or malformed input.
type Command struct {
	Exchange   bool
	Days       int
	Currencies []string
}

// ParseCommand classifies one inbound line. The first whitespace token is
// matched case-insensitively against "exchange"; the remaining tokens are
// interpreted as in the original protocol:
//
//   - a digits-only first parameter is the archive day count
//   - otherwise a first parameter "all" selects the extended currency set
//   - a second parameter "all" also selects the extended set, independently
//     of how the first was read (so "exchange 5 all" gets both)
//
// Day counts are clamped into [0, maxDays]; unparseable values collapse to
// zero. Parsing never fails.
func ParseCommand(line string, maxDays int, base, extended []string) Command {
	tokens := strings.Fields(line)
	if len(tokens) == 0 || !strings.EqualFold(tokens[0], commandName) {
		return Command{Exchange: false, Days: 0, Currencies: base}
	}

	days := 0
	currencies := base
	params := tokens[1:]

	if len(params) > 0 {
		if isDigits(params[0]) {
			days, _ = strconv.Atoi(params[0])
		} else if strings.EqualFold(params[0], "all") {
			currencies = extended
		}
		if len(params) >= 2 && strings.EqualFold(params[1], "all") {
			currencies = extended
		}
	}

	return Command{Exchange: true, Days: clampDays(days, maxDays), Currencies: currencies}
}

// isDigits reports whether s is a non-empty run of ASCII digits. A leading
// sign disqualifies the token, so "-5" is not a day count.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func clampDays(days, maxDays int) int {
	if days < 0 {
		return 0
	}
	if days > maxDays {
		return maxDays
	}
	return days
}
