// Package locale resolves caller-supplied locale identifiers against the set
// of locales a registry ships name tables for.
//
// Resolution is deliberately forgiving on the input side: identifiers are
// parsed and canonicalized with golang.org/x/text/language, so "pt_BR",
// "pt-br" and "pt" all resolve to the shipped "pt" table. An identifier that
// is not a well-formed language tag, or that matches none of the shipped
// locales, fails with UnknownError.
package locale

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// UnknownError is returned when an identifier cannot be resolved to a
// shipped locale.
type UnknownError struct {
	Locale string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown locale %q", e.Locale)
}

// Validator resolves locale identifiers against a fixed supported set.
type Validator struct {
	supported []string
	matcher   language.Matcher
}

// NewValidator builds a Validator for the given canonical locale
// identifiers. The identifiers come from the shipped dataset and must be
// well-formed; a malformed one is a packaging bug and panics.
func NewValidator(supported []string) *Validator {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = language.MustParse(s)
	}
	return &Validator{
		supported: slices.Clone(supported),
		matcher:   language.NewMatcher(tags),
	}
}

// Supported returns the canonical identifiers the validator resolves to.
func (v *Validator) Supported() []string {
	return v.supported
}

// Validate resolves input to the canonical identifier of a supported
// locale.
func (v *Validator) Validate(input string) (string, error) {
	tag, err := language.Parse(normalize(input))
	if err != nil {
		return "", &UnknownError{Locale: input}
	}
	loc, err := v.Resolve(tag)
	if err != nil {
		// Report the caller's original spelling, not the parsed tag.
		return "", &UnknownError{Locale: input}
	}
	return loc, nil
}

// Resolve maps an already-parsed tag to a supported locale.
func (v *Validator) Resolve(tag language.Tag) (string, error) {
	_, idx, conf := v.matcher.Match(tag)
	if conf == language.No {
		return "", &UnknownError{Locale: tag.String()}
	}
	return v.supported[idx], nil
}

// Default returns the ambient default locale: the first environment locale
// (GNU gettext priority: LANGUAGE > LC_ALL > LC_MESSAGES > LANG) that
// resolves to a supported locale, falling back to "en" and then to the
// first supported locale.
func (v *Validator) Default() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		// LANGUAGE can be a colon-separated list; take the first entry.
		if env == "LANGUAGE" {
			val, _, _ = strings.Cut(val, ":")
		}
		// Strip encoding suffix (e.g. "pt_BR.UTF-8" -> "pt_BR").
		val, _, _ = strings.Cut(val, ".")
		// "C" and "POSIX" mean no locale preference.
		if val == "" || val == "C" || val == "POSIX" {
			continue
		}
		if loc, err := v.Validate(val); err == nil {
			return loc
		}
	}
	if loc, err := v.Validate("en"); err == nil {
		return loc
	}
	return v.supported[0]
}

// normalize prepares an identifier for language.Parse: POSIX-style
// underscores become BCP 47 hyphens and surrounding space is dropped.
func normalize(input string) string {
	return strings.ReplaceAll(strings.TrimSpace(input), "_", "-")
}
