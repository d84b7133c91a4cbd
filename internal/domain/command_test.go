package domain

import (
	"testing"
)

var (
	testBase     = []string{"EUR", "USD"}
	testExtended = []string{"EUR", "USD", "CHF", "CZK", "GBP", "PLN"}
)

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseCommand(t *testing.T) {
	const maxDays = 10

	parse := func(line string) Command {
		return ParseCommand(line, maxDays, testBase, testExtended)
	}

	t.Run("Plain Chat", func(t *testing.T) {
		cmd := parse("hello world")
		if cmd.Exchange || cmd.Days != 0 || !sameSet(cmd.Currencies, testBase) {
			t.Errorf("expected (false, 0, base), got %+v", cmd)
		}
	})

	t.Run("Bare Directive", func(t *testing.T) {
		cmd := parse("exchange")
		if !cmd.Exchange || cmd.Days != 0 || !sameSet(cmd.Currencies, testBase) {
			t.Errorf("expected (true, 0, base), got %+v", cmd)
		}
	})

	t.Run("Case Insensitive Name", func(t *testing.T) {
		if cmd := parse("Exchange 2"); !cmd.Exchange || cmd.Days != 2 {
			t.Errorf("expected (true, 2), got %+v", cmd)
		}
	})

	t.Run("Days Only", func(t *testing.T) {
		cmd := parse("exchange 3")
		if !cmd.Exchange || cmd.Days != 3 || !sameSet(cmd.Currencies, testBase) {
			t.Errorf("expected (true, 3, base), got %+v", cmd)
		}
	})

	t.Run("All Only", func(t *testing.T) {
		cmd := parse("exchange all")
		if !cmd.Exchange || cmd.Days != 0 || !sameSet(cmd.Currencies, testExtended) {
			t.Errorf("expected (true, 0, extended), got %+v", cmd)
		}
	})

	t.Run("Days Then All", func(t *testing.T) {
		cmd := parse("exchange 3 all")
		if !cmd.Exchange || cmd.Days != 3 || !sameSet(cmd.Currencies, testExtended) {
			t.Errorf("expected (true, 3, extended), got %+v", cmd)
		}
	})

	t.Run("Double All", func(t *testing.T) {
		// First "all" selects the extended set, second is redundant.
		cmd := parse("exchange all all")
		if !cmd.Exchange || cmd.Days != 0 || !sameSet(cmd.Currencies, testExtended) {
			t.Errorf("expected (true, 0, extended), got %+v", cmd)
		}
	})

	t.Run("Clamp Above Max", func(t *testing.T) {
		if cmd := parse("exchange 999"); cmd.Days != maxDays {
			t.Errorf("expected clamp to %d, got %d", maxDays, cmd.Days)
		}
	})

	t.Run("Negative Is Not Numeric", func(t *testing.T) {
		// "-5" fails the digits-only test, so the day count stays 0.
		cmd := parse("exchange -5")
		if cmd.Days != 0 || !sameSet(cmd.Currencies, testBase) {
			t.Errorf("expected (0, base), got %+v", cmd)
		}
	})

	t.Run("Garbage Parameter", func(t *testing.T) {
		cmd := parse("exchange abc")
		if !cmd.Exchange || cmd.Days != 0 || !sameSet(cmd.Currencies, testBase) {
			t.Errorf("expected (true, 0, base), got %+v", cmd)
		}
	})

	t.Run("Empty Line", func(t *testing.T) {
		if cmd := parse("   "); cmd.Exchange {
			t.Error("whitespace-only line must not be a directive")
		}
	})
}
