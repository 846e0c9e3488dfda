package territory

import (
	"sort"

	"github.com/minios-linux/terrkit/cldr"
)

// CurrencyCode is an ISO 4217 currency identifier from the territory-info
// table.
type CurrencyCode string

func (c CurrencyCode) String() string { return string(c) }

// Runes returns the character-sequence representation of c.
func (c CurrencyCode) Runes() []rune { return []rune(c) }

// CurrencyCodes is an ordered list of currency codes.
type CurrencyCodes []CurrencyCode

// Strings returns the codes as plain strings.
func (cs CurrencyCodes) Strings() []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}

// Info returns the metadata record of code: currency history, population,
// GDP, literacy, measurement system, and language population. A territory
// the registry knows but CLDR records no metadata for yields the zero
// record — field absence is not an error.
func Info(code string) (cldr.Info, error) {
	c, err := Validate(code)
	if err != nil {
		return cldr.Info{}, err
	}
	info, _ := reg.Info(string(c))
	return info, nil
}

// ToCurrencyCode returns the territory's current currency: the active
// tender entry with the earliest activation date. It fails with
// *NoActiveCurrencyError when the history holds no active tender entry.
func ToCurrencyCode(code string) (CurrencyCode, error) {
	currencies, err := ToCurrencyCodes(code)
	if err != nil {
		return "", err
	}
	return currencies[0], nil
}

// ToCurrencyCodes returns every currently-active tender currency of the
// territory, ascending by activation date. Entries marked non-tender or
// carrying an expiration date are dropped.
func ToCurrencyCodes(code string) (CurrencyCodes, error) {
	c, err := Validate(code)
	if err != nil {
		return nil, err
	}
	info, _ := reg.Info(string(c))

	var active []cldr.CurrencyPeriod
	for _, period := range info.Currencies {
		if period.Tender && period.To.IsZero() {
			active = append(active, period)
		}
	}
	if len(active) == 0 {
		return nil, &NoActiveCurrencyError{Code: string(c)}
	}
	// Stable sort keeps the table order for entries sharing an activation
	// date; an entry without a recorded date sorts first.
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].From.Before(active[j].From)
	})

	out := make(CurrencyCodes, len(active))
	for i, period := range active {
		out[i] = CurrencyCode(period.Code)
	}
	return out, nil
}
