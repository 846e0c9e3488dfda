// Package territory answers localized lookup, translation, and relationship
// queries over the CLDR territory dataset.
//
// A territory is a country, a numeric UN region ("001", "154", ...), or one
// of CLDR's organizational pseudo-codes (EU, EZ, UN, QO). The package
// exposes the CLDR containment hierarchy (Parent, Children, Contains,
// CountryCodes), per-locale display names in three styles
// (FromTerritoryCode, TranslateTerritory, ...), territory metadata
// (Info, ToCurrencyCode), and regional-indicator flag derivation
// (ToUnicodeFlag).
//
// All operations are pure functions over the immutable registry loaded by
// the cldr package; they are safe for concurrent use. Every fallible
// operation returns an error value and has a Must* twin that panics with
// the same error.
package territory

import (
	"strings"

	"github.com/minios-linux/terrkit/cldr"
	"github.com/minios-linux/terrkit/locale"
)

var (
	reg     = cldr.Default()
	locales = locale.NewValidator(reg.Locales())
)

// ---------------------------------------------------------------------------
// Codes
// ---------------------------------------------------------------------------

// Code is a canonical CLDR territory identifier: a 2-letter uppercase
// alphabetic code ("GB"), a zero-padded 3-digit numeric region code
// ("154"), or a pseudo-code (EU, UN, EZ, QO).
type Code string

func (c Code) String() string { return string(c) }

// Runes returns the character-sequence representation of c.
func (c Code) Runes() []rune { return []rune(c) }

// Codes is a list of territory codes. Strings and Runes are uniform
// representation conversions; they never alter the underlying result.
type Codes []Code

// Strings returns the codes as plain strings.
func (cs Codes) Strings() []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}

// Runes returns the codes as character sequences.
func (cs Codes) Runes() [][]rune {
	out := make([][]rune, len(cs))
	for i, c := range cs {
		out[i] = c.Runes()
	}
	return out
}

// Validate normalizes input (case-insensitively) into a canonical territory
// code and verifies it against the registry. It fails with
// *UnknownTerritoryError carrying the caller's original spelling.
func Validate(input string) (Code, error) {
	code := strings.ToUpper(strings.TrimSpace(input))
	if code == "" || !reg.Known(code) {
		return "", &UnknownTerritoryError{Code: input}
	}
	return Code(code), nil
}

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

// Style selects a name variant. Every territory has a standard name in
// every shipped locale; short and variant names exist only where CLDR
// provides an override.
type Style string

const (
	StyleShort    Style = "short"
	StyleStandard Style = "standard"
	StyleVariant  Style = "variant"
)

// AvailableStyles returns the fixed style set.
func AvailableStyles() []Style {
	return []Style{StyleShort, StyleStandard, StyleVariant}
}

// ParseStyle validates input as a style. Unlike territory codes, styles are
// matched exactly: "Short" is not a style. The error echoes the input
// unchanged.
func ParseStyle(input string) (Style, error) {
	switch style := Style(input); style {
	case StyleShort, StyleStandard, StyleVariant:
		return style, nil
	}
	return "", &UnknownStyleError{Style: input}
}

// resolveStyle applies the default: the zero Style means standard.
func resolveStyle(style Style) (Style, error) {
	if style == "" {
		return StyleStandard, nil
	}
	return ParseStyle(string(style))
}

// ---------------------------------------------------------------------------
// Locales
// ---------------------------------------------------------------------------

// AvailableLocales returns the canonical identifiers of the locales the
// registry ships name tables for.
func AvailableLocales() []string {
	return locales.Supported()
}

// DefaultLocale returns the ambient default locale, detected from the
// environment (LANGUAGE, LC_ALL, LC_MESSAGES, LANG) and resolved against
// the shipped locales, falling back to "en".
func DefaultLocale() string {
	return locales.Default()
}

// resolveLocale applies the default: an empty locale means DefaultLocale.
func resolveLocale(loc string) (string, error) {
	if loc == "" {
		return locales.Default(), nil
	}
	return locales.Validate(loc)
}
