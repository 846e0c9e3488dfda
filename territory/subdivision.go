package territory

import "strings"

// Subdivision codes follow the CLDR convention: the lowercase territory
// code followed by the region part, e.g. "gbsct" for Scotland.

// KnownSubdivisions returns the sorted subdivision codes of a territory,
// empty when the dataset names none for it.
func KnownSubdivisions(code string) ([]string, error) {
	c, err := Validate(code)
	if err != nil {
		return nil, err
	}
	prefix := strings.ToLower(string(c))
	var out []string
	for _, sub := range reg.SubdivisionCodes(locales.Default()) {
		if strings.HasPrefix(sub, prefix) {
			out = append(out, sub)
		}
	}
	return out, nil
}

// FromSubdivisionCode returns the display name of a subdivision code in the
// given locale (empty = ambient default). A code the dataset does not name
// fails with *UnknownSubdivisionError.
func FromSubdivisionCode(code, loc string) (string, error) {
	canonical, err := resolveLocale(loc)
	if err != nil {
		return "", err
	}
	name, ok := reg.Subdivision(canonical, strings.ToLower(strings.TrimSpace(code)))
	if !ok {
		return "", &UnknownSubdivisionError{Code: code}
	}
	return name, nil
}
