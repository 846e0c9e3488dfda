package territory

// styleScanOrder fixes the scan order within one territory's name set
// during reverse lookup. Together with the ascending code order this makes
// the "first match wins" tie-break deterministic when two territories share
// a display string.
var styleScanOrder = []Style{StyleStandard, StyleShort, StyleVariant}

// TranslateTerritory maps a localized territory name from one locale to
// another: it finds the first (code, style) pair in fromLocale whose name
// equals name exactly, then returns the toLocale name for that same code
// and style. The scan iterates codes ascending and styles in (standard,
// short, variant) order; the first match wins. A name matching no
// territory in fromLocale fails with *UnknownTerritoryError carrying the
// name. The target locale is validated even when the source-side match
// succeeded.
func TranslateTerritory(name, fromLocale, toLocale string) (string, error) {
	from, err := resolveLocale(fromLocale)
	if err != nil {
		return "", err
	}
	code, style, ok := findByName(from, name)
	if !ok {
		return "", &UnknownTerritoryError{Code: name}
	}
	to, err := resolveLocale(toLocale)
	if err != nil {
		return "", err
	}
	return lookupName(code, to, style)
}

// TranslateLanguageTag resolves fromTag to a display name in the tag's own
// locale, then translates that name into toLocale.
func TranslateLanguageTag(fromTag, toLocale string, style Style) (string, error) {
	t, err := parseTag(fromTag)
	if err != nil {
		return "", err
	}
	from, err := locales.Resolve(t)
	if err != nil {
		return "", err
	}
	name, err := FromLanguageTag(fromTag, style)
	if err != nil {
		return "", err
	}
	return TranslateTerritory(name, from, toLocale)
}

func findByName(loc, name string) (Code, Style, bool) {
	for _, code := range reg.Codes(loc) {
		names, _ := reg.Names(loc, code)
		for _, style := range styleScanOrder {
			if names[string(style)] == name {
				return Code(code), style, true
			}
		}
	}
	return "", "", false
}
