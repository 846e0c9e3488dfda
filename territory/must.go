package territory

import "github.com/minios-linux/terrkit/cldr"

// The Must* twins run the same computation as their error-returning
// counterparts but panic with the identical error value on failure. They
// are meant for static inputs known to be valid.

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// MustValidate is like Validate but panics on an unknown territory.
func MustValidate(input string) Code { return must(Validate(input)) }

// MustFromTerritoryCode is like FromTerritoryCode but panics on failure.
func MustFromTerritoryCode(code, loc string, style Style) string {
	return must(FromTerritoryCode(code, loc, style))
}

// MustFromLanguageTag is like FromLanguageTag but panics on failure.
func MustFromLanguageTag(tag string, style Style) string {
	return must(FromLanguageTag(tag, style))
}

// MustTranslateTerritory is like TranslateTerritory but panics on failure.
func MustTranslateTerritory(name, fromLocale, toLocale string) string {
	return must(TranslateTerritory(name, fromLocale, toLocale))
}

// MustTranslateLanguageTag is like TranslateLanguageTag but panics on
// failure.
func MustTranslateLanguageTag(fromTag, toLocale string, style Style) string {
	return must(TranslateLanguageTag(fromTag, toLocale, style))
}

// MustAvailableTerritories is like AvailableTerritories but panics on an
// unknown locale.
func MustAvailableTerritories(loc string) Codes { return must(AvailableTerritories(loc)) }

// MustKnownTerritories is like KnownTerritories but panics on an unknown
// locale.
func MustKnownTerritories(loc string) map[Code]string { return must(KnownTerritories(loc)) }

// MustInfo is like Info but panics on an unknown territory.
func MustInfo(code string) cldr.Info { return must(Info(code)) }

// MustParent is like Parent but panics on failure.
func MustParent(code string) Codes { return must(Parent(code)) }

// MustChildren is like Children but panics on failure.
func MustChildren(code string) Codes { return must(Children(code)) }

// MustToUnicodeFlag is like ToUnicodeFlag but panics on failure.
func MustToUnicodeFlag(code string) string { return must(ToUnicodeFlag(code)) }

// MustToCurrencyCode is like ToCurrencyCode but panics on failure.
func MustToCurrencyCode(code string) CurrencyCode {
	return must(ToCurrencyCode(code))
}

// MustToCurrencyCodes is like ToCurrencyCodes but panics on failure.
func MustToCurrencyCodes(code string) CurrencyCodes {
	return must(ToCurrencyCodes(code))
}

// MustKnownSubdivisions is like KnownSubdivisions but panics on an unknown
// territory.
func MustKnownSubdivisions(code string) []string { return must(KnownSubdivisions(code)) }

// MustFromSubdivisionCode is like FromSubdivisionCode but panics on failure.
func MustFromSubdivisionCode(code, loc string) string {
	return must(FromSubdivisionCode(code, loc))
}
