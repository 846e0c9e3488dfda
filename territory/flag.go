package territory

import (
	"slices"
	"strings"
)

// regionalIndicatorOffset maps an ASCII letter to its Unicode Regional
// Indicator Symbol: 'A' (65) + 127397 = U+1F1E6.
const regionalIndicatorOffset = 127397

// flagDepth is how many containment levels below the root "001" still count
// as country-level for flag eligibility (continent → region → sub-region →
// country).
const flagDepth = 3

// ToUnicodeFlag derives the regional-indicator flag emoji for code. A code
// is flag-eligible iff it is reachable within three containment levels of
// the root "001", or is exactly EU or UN. Eligible-but-unflagged entities
// do not exist; valid territories outside that set (EZ, "001" itself,
// grouping heads) fail with *UnknownFlagError.
func ToUnicodeFlag(code string) (string, error) {
	c, err := Validate(code)
	if err != nil {
		return "", err
	}
	if !flagEligible(c) {
		return "", &UnknownFlagError{Code: string(c)}
	}
	var b strings.Builder
	for _, r := range c {
		b.WriteRune(r + regionalIndicatorOffset)
	}
	return b.String(), nil
}

func flagEligible(c Code) bool {
	if c == "EU" || c == "UN" {
		return true
	}
	level := []string{"001"}
	for i := 0; i < flagDepth; i++ {
		var next []string
		for _, parent := range level {
			children, _ := reg.Children(parent)
			next = append(next, children...)
		}
		if slices.Contains(next, string(c)) {
			return true
		}
		level = next
	}
	return false
}
