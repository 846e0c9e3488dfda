package territory

import (
	"strings"

	"golang.org/x/text/language"
)

// FromTerritoryCode returns the display name of code in the given locale
// and style. An empty locale means the ambient default locale; the zero
// Style means standard. Checks run in order: territory code, then locale,
// then style. A valid style for which the territory has no override in
// that locale fails with *UnknownStyleError.
func FromTerritoryCode(code, loc string, style Style) (string, error) {
	c, err := Validate(code)
	if err != nil {
		return "", err
	}
	canonical, err := resolveLocale(loc)
	if err != nil {
		return "", err
	}
	return lookupName(c, canonical, style)
}

// FromLanguageTag returns the display name of the tag's territory in the
// tag's own locale. The territory is the tag's region after likely-subtags
// resolution ("en" implies US), the locale is the tag matched against the
// shipped locales. Input that is not a structurally valid language tag
// fails with *UnknownLanguageTagError.
func FromLanguageTag(tag string, style Style) (string, error) {
	t, err := parseTag(tag)
	if err != nil {
		return "", err
	}
	loc, err := locales.Resolve(t)
	if err != nil {
		return "", err
	}
	region, _ := t.Region()
	c, err := Validate(region.String())
	if err != nil {
		return "", err
	}
	return lookupName(c, loc, style)
}

// AvailableTerritories returns every territory code named in loc, ascending.
func AvailableTerritories(loc string) (Codes, error) {
	canonical, err := resolveLocale(loc)
	if err != nil {
		return nil, err
	}
	return toCodes(reg.Codes(canonical)), nil
}

// KnownTerritories returns the full code→standard-name map for loc.
func KnownTerritories(loc string) (map[Code]string, error) {
	canonical, err := resolveLocale(loc)
	if err != nil {
		return nil, err
	}
	out := make(map[Code]string, len(reg.Codes(canonical)))
	for _, code := range reg.Codes(canonical) {
		names, _ := reg.Names(canonical, code)
		out[Code(code)] = names[string(StyleStandard)]
	}
	return out, nil
}

// lookupName indexes the name table. The locale must already be canonical;
// the style may still be the zero default.
func lookupName(c Code, canonical string, style Style) (string, error) {
	st, err := resolveStyle(style)
	if err != nil {
		return "", err
	}
	names, _ := reg.Names(canonical, string(c))
	name, ok := names[string(st)]
	if !ok {
		return "", &UnknownStyleError{Style: string(st)}
	}
	return name, nil
}

// parseTag parses a language tag, tolerating POSIX-style underscores. The
// returned error is always *UnknownLanguageTagError carrying the original
// input.
func parseTag(tag string) (language.Tag, error) {
	t, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
	if err != nil {
		return language.Tag{}, &UnknownLanguageTagError{Tag: tag}
	}
	return t, nil
}
