package territory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUnicodeFlag(t *testing.T) {
	t.Run("countries", func(t *testing.T) {
		cases := []struct {
			code string
			want string
		}{
			{code: "US", want: "\U0001F1FA\U0001F1F8"},
			{code: "gb", want: "\U0001F1EC\U0001F1E7"},
			{code: "BR", want: "\U0001F1E7\U0001F1F7"},
			{code: "AQ", want: "\U0001F1E6\U0001F1F6"}, // via Outlying Oceania
		}
		for _, tc := range cases {
			got, err := ToUnicodeFlag(tc.code)
			require.NoError(t, err, tc.code)
			assert.Equal(t, tc.want, got)
		}
	})

	t.Run("regional indicator codepoints", func(t *testing.T) {
		flag, err := ToUnicodeFlag("US")
		require.NoError(t, err)
		runes := []rune(flag)
		require.Len(t, runes, 2)
		assert.Equal(t, rune(127482), runes[0]) // 'U' + 127397
		assert.Equal(t, rune(127480), runes[1]) // 'S' + 127397
	})

	t.Run("EU and UN are flag-eligible", func(t *testing.T) {
		for _, code := range []string{"EU", "UN"} {
			flag, err := ToUnicodeFlag(code)
			require.NoError(t, err, code)
			assert.Len(t, []rune(flag), 2)
		}
	})

	t.Run("ineligible territories", func(t *testing.T) {
		for _, code := range []string{"EZ", "001", "003", "202", "419"} {
			_, err := ToUnicodeFlag(code)
			var noFlag *UnknownFlagError
			require.ErrorAs(t, err, &noFlag, code)
			assert.Equal(t, code, noFlag.Code)
		}
	})

	t.Run("unknown territory", func(t *testing.T) {
		_, err := ToUnicodeFlag("XZ")
		var unknown *UnknownTerritoryError
		require.ErrorAs(t, err, &unknown)
	})
}
