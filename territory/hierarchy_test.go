package territory

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParent(t *testing.T) {
	t.Run("country with organizational memberships", func(t *testing.T) {
		parents, err := Parent("GB")
		require.NoError(t, err)
		assert.Equal(t, Codes{"154", "UN"}, parents, "GB is no longer an EU member")

		parents, err = Parent("DK")
		require.NoError(t, err)
		assert.Equal(t, Codes{"154", "EU", "UN"}, parents)
	})

	t.Run("sorted ascending", func(t *testing.T) {
		parents, err := Parent("FR")
		require.NoError(t, err)
		assert.True(t, sort.SliceIsSorted(parents, func(i, j int) bool {
			return parents[i] < parents[j]
		}))
		assert.Equal(t, Codes{"155", "EU", "EZ", "UN"}, parents)
	})

	t.Run("organizational pseudo-codes resolve to the root", func(t *testing.T) {
		for _, code := range []string{"EU", "EZ", "UN"} {
			parents, err := Parent(code)
			require.NoError(t, err)
			assert.Equal(t, Codes{"001"}, parents, code)
		}
	})

	t.Run("root has no parent", func(t *testing.T) {
		_, err := Parent("001")
		var noParents *UnknownChildrenError
		require.ErrorAs(t, err, &noParents)
		assert.Equal(t, "001", noParents.Code)
	})

	t.Run("unknown territory", func(t *testing.T) {
		_, err := Parent("XZ")
		var unknown *UnknownTerritoryError
		require.ErrorAs(t, err, &unknown)
	})
}

func TestChildren(t *testing.T) {
	t.Run("EU members in source order", func(t *testing.T) {
		children, err := Children("EU")
		require.NoError(t, err)
		assert.Len(t, children, 27)
		assert.Equal(t, Code("AT"), children[0])
		assert.Contains(t, children, Code("DK"))
		assert.NotContains(t, children, Code("GB"))
	})

	t.Run("source order is preserved verbatim", func(t *testing.T) {
		children, err := Children("001")
		require.NoError(t, err)
		// CLDR lists the Americas first; a sorted result would start
		// with "002".
		assert.Equal(t, Codes{"019", "002", "150", "142", "009"}, children)
	})

	t.Run("leaf has no children", func(t *testing.T) {
		_, err := Children("GB")
		var noChildren *UnknownParentError
		require.ErrorAs(t, err, &noChildren)
		assert.Equal(t, "GB", noChildren.Code)
	})

	t.Run("unknown territory", func(t *testing.T) {
		_, err := Children("XZ")
		var unknown *UnknownTerritoryError
		require.ErrorAs(t, err, &unknown)
	})
}

func TestContains(t *testing.T) {
	cases := []struct {
		parent, child string
		want          bool
	}{
		{parent: "EU", child: "DK", want: true},
		{parent: "DK", child: "EU", want: false},
		{parent: "154", child: "GB", want: true},
		{parent: "001", child: "019", want: true},
		{parent: "001", child: "GB", want: false}, // not a *direct* child
		{parent: "eu", child: "dk", want: true},   // case-insensitive
		{parent: "XZ", child: "DK", want: false},  // never errors
		{parent: "", child: "", want: false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Contains(tc.parent, tc.child),
			"Contains(%q, %q)", tc.parent, tc.child)
	}
}

func TestCountryCodes(t *testing.T) {
	countries := CountryCodes()

	assert.True(t, sort.SliceIsSorted(countries, func(i, j int) bool {
		return countries[i] < countries[j]
	}))
	for _, code := range []Code{"BR", "GB", "JP", "US", "ZW"} {
		assert.Contains(t, countries, code)
	}
	for _, code := range []Code{"001", "150", "EU", "UN"} {
		assert.NotContains(t, countries, code)
	}

	seen := make(map[Code]bool)
	for _, code := range countries {
		assert.False(t, seen[code], "duplicate %s", code)
		seen[code] = true
	}
}

// Every parent returned by Parent must list the child in its Children —
// except the hard-coded organizational rule, which is not a graph edge.
func TestParentChildrenRoundTrip(t *testing.T) {
	for _, code := range []string{"GB", "FR", "DK", "BR", "154", "019", "QO"} {
		parents, err := Parent(code)
		require.NoError(t, err, code)
		for _, parent := range parents {
			children, err := Children(string(parent))
			require.NoError(t, err, parent)
			assert.Contains(t, children, MustValidate(code), "children(%s) should contain %s", parent, code)
		}
	}
}
