package territory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		in   string
		want Code
	}{
		{in: "GB", want: "GB"},
		{in: "gb", want: "GB"},
		{in: " dk ", want: "DK"},
		{in: "154", want: "154"},
		{in: "eu", want: "EU"},
		{in: "un", want: "UN"},
		{in: "qo", want: "QO"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Validate(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("unknown echoes input", func(t *testing.T) {
		_, err := Validate("zz")
		var unknown *UnknownTerritoryError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "zz", unknown.Code)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Validate("   ")
		var unknown *UnknownTerritoryError
		require.ErrorAs(t, err, &unknown)
	})
}

func TestParseStyle(t *testing.T) {
	for _, style := range AvailableStyles() {
		got, err := ParseStyle(string(style))
		require.NoError(t, err)
		assert.Equal(t, style, got)
	}

	t.Run("case sensitive", func(t *testing.T) {
		_, err := ParseStyle("Short")
		var unknown *UnknownStyleError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "Short", unknown.Style)
	})
}

func TestAvailableStyles(t *testing.T) {
	assert.Equal(t, []Style{StyleShort, StyleStandard, StyleVariant}, AvailableStyles())
}

func TestAvailableLocales(t *testing.T) {
	locs := AvailableLocales()
	assert.Contains(t, locs, "en")
	assert.Contains(t, locs, "pt")
}

func TestDefaultLocale(t *testing.T) {
	t.Run("from environment", func(t *testing.T) {
		t.Setenv("LANGUAGE", "pt_BR:pt")
		assert.Equal(t, "pt", DefaultLocale())
	})

	t.Run("fallback", func(t *testing.T) {
		t.Setenv("LANGUAGE", "C")
		t.Setenv("LC_ALL", "")
		t.Setenv("LC_MESSAGES", "")
		t.Setenv("LANG", "")
		assert.Equal(t, "en", DefaultLocale())
	})
}

func TestCodeRepresentations(t *testing.T) {
	cs := Codes{"GB", "154"}
	assert.Equal(t, []string{"GB", "154"}, cs.Strings())
	assert.Equal(t, [][]rune{{'G', 'B'}, {'1', '5', '4'}}, cs.Runes())
}
