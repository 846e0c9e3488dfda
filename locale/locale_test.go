package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	return NewValidator([]string{"en", "pt"})
}

func TestValidate(t *testing.T) {
	v := newTestValidator(t)

	cases := []struct {
		in   string
		want string
	}{
		{in: "en", want: "en"},
		{in: "en-GB", want: "en"},
		{in: "pt", want: "pt"},
		{in: "pt-BR", want: "pt"},
		{in: "pt_BR", want: "pt"}, // POSIX spelling
		{in: "PT-br", want: "pt"},
		{in: " en ", want: "en"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := v.Validate(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("unsupported language", func(t *testing.T) {
		_, err := v.Validate("ja")
		var unknown *UnknownError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "ja", unknown.Locale)
	})

	t.Run("malformed identifier", func(t *testing.T) {
		_, err := v.Validate("not a locale!")
		var unknown *UnknownError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "not a locale!", unknown.Locale)
	})
}

func TestDefault(t *testing.T) {
	v := newTestValidator(t)

	t.Run("LANGUAGE wins", func(t *testing.T) {
		t.Setenv("LANGUAGE", "pt_BR:en")
		t.Setenv("LC_ALL", "")
		t.Setenv("LC_MESSAGES", "")
		t.Setenv("LANG", "en_US.UTF-8")
		assert.Equal(t, "pt", v.Default())
	})

	t.Run("encoding suffix stripped", func(t *testing.T) {
		t.Setenv("LANGUAGE", "")
		t.Setenv("LC_ALL", "pt_PT.UTF-8")
		t.Setenv("LC_MESSAGES", "")
		t.Setenv("LANG", "")
		assert.Equal(t, "pt", v.Default())
	})

	t.Run("C locale skipped", func(t *testing.T) {
		t.Setenv("LANGUAGE", "C")
		t.Setenv("LC_ALL", "C.UTF-8")
		t.Setenv("LC_MESSAGES", "POSIX")
		t.Setenv("LANG", "")
		assert.Equal(t, "en", v.Default())
	})

	t.Run("unsupported environment locale falls back", func(t *testing.T) {
		t.Setenv("LANGUAGE", "ja_JP")
		t.Setenv("LC_ALL", "")
		t.Setenv("LC_MESSAGES", "")
		t.Setenv("LANG", "")
		assert.Equal(t, "en", v.Default())
	})
}

func TestSupported(t *testing.T) {
	v := newTestValidator(t)
	assert.Equal(t, []string{"en", "pt"}, v.Supported())
}
