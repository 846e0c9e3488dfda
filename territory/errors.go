package territory

import "fmt"

// The error kinds below carry the offending input so callers can match on
// the condition with errors.As and still report the caller's spelling.
// Locale resolution failures surface as *locale.UnknownError from the
// locale package.

// UnknownTerritoryError reports a code that is not a recognized CLDR
// territory, or a display name that matches no territory during
// translation.
type UnknownTerritoryError struct {
	Code string
}

func (e *UnknownTerritoryError) Error() string {
	return fmt.Sprintf("unknown territory %q", e.Code)
}

// UnknownStyleError reports a style that is not one of short, standard,
// variant — or a valid style for which the territory has no name override
// in the requested locale.
type UnknownStyleError struct {
	Style string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown style %q", e.Style)
}

// UnknownChildrenError reports a valid territory with no parent in the
// containment graph (the root "001", and grouping heads like "003").
type UnknownChildrenError struct {
	Code string
}

func (e *UnknownChildrenError) Error() string {
	return fmt.Sprintf("territory %q has no parent(s)", e.Code)
}

// UnknownParentError reports a valid territory with no children (a
// country-level leaf).
type UnknownParentError struct {
	Code string
}

func (e *UnknownParentError) Error() string {
	return fmt.Sprintf("territory %q has no children", e.Code)
}

// UnknownFlagError reports a valid territory that is not eligible for a
// regional-indicator flag (e.g. EZ).
type UnknownFlagError struct {
	Code string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("territory %q has no flag", e.Code)
}

// UnknownLanguageTagError reports input that is not a structurally valid
// language tag. Distinct from a locale that parses but is not shipped.
type UnknownLanguageTagError struct {
	Tag string
}

func (e *UnknownLanguageTagError) Error() string {
	return fmt.Sprintf("malformed language tag %q", e.Tag)
}

// UnknownSubdivisionError reports a subdivision code the dataset does not
// name.
type UnknownSubdivisionError struct {
	Code string
}

func (e *UnknownSubdivisionError) Error() string {
	return fmt.Sprintf("unknown subdivision %q", e.Code)
}

// NoActiveCurrencyError reports a territory whose currency history holds no
// currently-active tender entry.
type NoActiveCurrencyError struct {
	Code string
}

func (e *NoActiveCurrencyError) Error() string {
	return fmt.Sprintf("territory %q has no active tender currency", e.Code)
}
