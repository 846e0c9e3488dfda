package territory

import (
	"slices"
	"sort"
	"strings"
)

// organizationalParents overrides the containment graph for codes that head
// organizational groupings. CLDR records no parent for them, and routing
// them through the graph would introduce a cycle with the root "001".
var organizationalParents = map[Code]Codes{
	"EU": {"001"},
	"EZ": {"001"},
	"UN": {"001"},
}

// macroRegions are the numeric sub-continental region codes whose children
// are country-level territories. CountryCodes flattens exactly this set.
var macroRegions = []string{
	"005", "011", "013", "014", "015", "017", "018", "021", "029", "030",
	"034", "035", "039", "053", "054", "057", "061", "143", "145", "151",
	"154", "155",
}

// Parent returns the parents of code, ascending by code. A territory can
// have several parents: a geographic one plus organizational memberships
// (EU, EZ, UN). EU, EZ, and UN themselves always resolve to ["001"].
// A valid code that appears as nobody's child (the root "001", grouping
// heads like "003") fails with *UnknownChildrenError.
func Parent(code string) (Codes, error) {
	c, err := Validate(code)
	if err != nil {
		return nil, err
	}
	if parents, ok := organizationalParents[c]; ok {
		return slices.Clone(parents), nil
	}
	parents, ok := reg.Parents(string(c))
	if !ok {
		return nil, &UnknownChildrenError{Code: string(c)}
	}
	return toCodes(parents), nil
}

// Children returns the children of code in CLDR source order; the list is
// not sorted. A country-level leaf fails with *UnknownParentError.
func Children(code string) (Codes, error) {
	c, err := Validate(code)
	if err != nil {
		return nil, err
	}
	children, ok := reg.Children(string(c))
	if !ok {
		return nil, &UnknownParentError{Code: string(c)}
	}
	return toCodes(children), nil
}

// Contains reports whether child is a direct child of parent. It is a total
// predicate: unknown or malformed input yields false, never an error.
func Contains(parent, child string) bool {
	children, ok := reg.Children(strings.ToUpper(strings.TrimSpace(parent)))
	if !ok {
		return false
	}
	return slices.Contains(children, strings.ToUpper(strings.TrimSpace(child)))
}

// CountryCodes returns the sorted, deduplicated union of the children of
// every macro-region. The macro-region list is a closed constant, so the
// operation cannot fail.
func CountryCodes() Codes {
	seen := make(map[string]struct{})
	var out Codes
	for _, region := range macroRegions {
		children, _ := reg.Children(region)
		for _, child := range children {
			if _, dup := seen[child]; dup {
				continue
			}
			seen[child] = struct{}{}
			out = append(out, Code(child))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func toCodes(codes []string) Codes {
	out := make(Codes, len(codes))
	for i, c := range codes {
		out[i] = Code(c)
	}
	return out
}
