// Package cldr holds the territory registry: the localized name tables, the
// territory metadata table, and the containment graph extracted from the
// Unicode CLDR dataset.
//
// The registry is loaded once from the compact JSON dataset embedded under
// data/ (regenerated by cmd/terrgen from a cldr-json checkout) and is
// immutable afterwards. All accessors are read-only and safe for concurrent
// use without locking.
package cldr

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// dataset embeds the compact CLDR extract shipped with the library.
//
// Layout:
//
//	data/containment.json    parent code → ordered child codes
//	data/info.json           territory code → metadata record
//	data/locales/<loc>.json  per-locale names and subdivision names
//
//go:embed data
var dataset embed.FS

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

// Names maps a name style ("standard", "short", "variant") to the localized
// display name. "standard" is always present.
type Names map[string]string

// CurrencyPeriod describes one entry of a territory's currency history.
type CurrencyPeriod struct {
	Code   string
	From   time.Time // zero when CLDR records no start date
	To     time.Time // zero while the currency is still current
	Tender bool      // false for non-tender currencies (e.g. funds codes)
}

// MeasurementSystem describes the measurement conventions of a territory.
type MeasurementSystem struct {
	Default     string
	PaperSize   string
	Temperature string
}

// LanguagePopulation describes the reach of one language in a territory.
type LanguagePopulation struct {
	PopulationPercent float64
	WritingPercent    float64
	Official          bool
}

// Info is the metadata record of a single territory. Every field is
// optional: CLDR does not record every fact for every territory, and a
// missing field is not an error.
type Info struct {
	Currencies         []CurrencyPeriod
	GDP                int64
	Population         int64
	LiteracyPercent    float64
	MeasurementSystem  *MeasurementSystem
	LanguagePopulation map[string]LanguagePopulation
}

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

// Registry is the loaded, immutable table set.
type Registry struct {
	locales []string // sorted canonical locale identifiers

	// names: locale → territory code → style → name.
	names map[string]map[string]Names
	// codes: locale → sorted territory codes, for deterministic iteration.
	codes map[string][]string
	// subdivisions: locale → subdivision code → name.
	subdivisions map[string]map[string]string

	// children: parent code → child codes in CLDR source order.
	children map[string][]string
	// parents: child code → sorted parent codes (reverse index, built once).
	parents map[string][]string

	info  map[string]Info
	known map[string]struct{}
}

var (
	defaultRegistry *Registry
	loadOnce        sync.Once
)

// Default returns the registry backed by the embedded dataset. The dataset
// is a build artifact, so a decode failure is a packaging bug and panics.
func Default() *Registry {
	loadOnce.Do(func() {
		r, err := Load(dataset, "data")
		if err != nil {
			panic(fmt.Sprintf("cldr: corrupt embedded dataset: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Load reads a dataset from fsys rooted at dir and builds the registry.
// It verifies the completeness invariant: every locale's name table must
// cover every territory code known to the registry.
func Load(fsys fs.FS, dir string) (*Registry, error) {
	r := &Registry{
		names:        make(map[string]map[string]Names),
		codes:        make(map[string][]string),
		subdivisions: make(map[string]map[string]string),
		known:        make(map[string]struct{}),
	}

	if err := readJSON(fsys, path.Join(dir, "containment.json"), &r.children); err != nil {
		return nil, err
	}
	var rawInfo map[string]infoRecord
	if err := readJSON(fsys, path.Join(dir, "info.json"), &rawInfo); err != nil {
		return nil, err
	}

	r.info = make(map[string]Info, len(rawInfo))
	for code, raw := range rawInfo {
		info, err := raw.decode()
		if err != nil {
			return nil, fmt.Errorf("info for %s: %w", code, err)
		}
		r.info[code] = info
		r.known[code] = struct{}{}
	}
	for parent, children := range r.children {
		r.known[parent] = struct{}{}
		for _, child := range children {
			r.known[child] = struct{}{}
		}
	}
	r.buildParentIndex()

	entries, err := fs.ReadDir(fsys, path.Join(dir, "locales"))
	if err != nil {
		return nil, fmt.Errorf("reading locales: %w", err)
	}
	for _, entry := range entries {
		loc := strings.TrimSuffix(entry.Name(), ".json")
		var lf localeFile
		if err := readJSON(fsys, path.Join(dir, "locales", entry.Name()), &lf); err != nil {
			return nil, err
		}
		if err := r.addLocale(loc, lf); err != nil {
			return nil, err
		}
	}
	if len(r.locales) == 0 {
		return nil, fmt.Errorf("dataset ships no locales")
	}
	sort.Strings(r.locales)
	return r, nil
}

func (r *Registry) addLocale(loc string, lf localeFile) error {
	table := make(map[string]Names, len(lf.Territories))
	codes := make([]string, 0, len(lf.Territories))
	for code, names := range lf.Territories {
		if names["standard"] == "" {
			return fmt.Errorf("locale %s: territory %s has no standard name", loc, code)
		}
		table[code] = names
		codes = append(codes, code)
	}
	// Completeness: a locale must name every known territory.
	for code := range r.known {
		if _, ok := table[code]; !ok {
			return fmt.Errorf("locale %s: missing name for territory %s", loc, code)
		}
	}
	sort.Strings(codes)

	r.locales = append(r.locales, loc)
	r.names[loc] = table
	r.codes[loc] = codes
	r.subdivisions[loc] = lf.Subdivisions
	return nil
}

// buildParentIndex inverts the containment graph once at load time, so
// parent lookups do not rescan every child list per call.
func (r *Registry) buildParentIndex() {
	r.parents = make(map[string][]string)
	for parent, children := range r.children {
		for _, child := range children {
			r.parents[child] = append(r.parents[child], parent)
		}
	}
	for _, parents := range r.parents {
		sort.Strings(parents)
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Locales returns the sorted locale identifiers the registry ships name
// tables for.
func (r *Registry) Locales() []string {
	return r.locales
}

// HasLocale reports whether the registry ships a name table for loc.
func (r *Registry) HasLocale(loc string) bool {
	_, ok := r.names[loc]
	return ok
}

// Known reports whether code is a recognized CLDR territory.
func (r *Registry) Known(code string) bool {
	_, ok := r.known[code]
	return ok
}

// Names returns the style→name map of code in loc. The boolean is false
// when either the locale or the code is unknown.
func (r *Registry) Names(loc, code string) (Names, bool) {
	names, ok := r.names[loc][code]
	return names, ok
}

// Codes returns the territory codes of loc's name table in ascending order.
// The slice is shared and must not be modified.
func (r *Registry) Codes(loc string) []string {
	return r.codes[loc]
}

// Children returns the stored child list of code in CLDR source order.
// The boolean is false when code has no children (a leaf territory).
func (r *Registry) Children(code string) ([]string, bool) {
	children, ok := r.children[code]
	return children, ok
}

// Parents returns the sorted parent codes of code from the precomputed
// reverse index. The boolean is false when code appears as nobody's child.
func (r *Registry) Parents(code string) ([]string, bool) {
	parents, ok := r.parents[code]
	return parents, ok
}

// Info returns the metadata record of code. The boolean is false when CLDR
// records no metadata for the territory.
func (r *Registry) Info(code string) (Info, bool) {
	info, ok := r.info[code]
	return info, ok
}

// Subdivision returns the localized name of a subdivision code (e.g.
// "gbsct") in loc.
func (r *Registry) Subdivision(loc, code string) (string, bool) {
	name, ok := r.subdivisions[loc][code]
	return name, ok
}

// SubdivisionCodes returns the sorted subdivision codes named in loc.
func (r *Registry) SubdivisionCodes(loc string) []string {
	codes := make([]string, 0, len(r.subdivisions[loc]))
	for code := range r.subdivisions[loc] {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ---------------------------------------------------------------------------
// Dataset decoding
// ---------------------------------------------------------------------------

// localeFile mirrors data/locales/<loc>.json.
type localeFile struct {
	Territories  map[string]Names  `json:"territories"`
	Subdivisions map[string]string `json:"subdivisions"`
}

// infoRecord mirrors one entry of data/info.json.
type infoRecord struct {
	Currencies []struct {
		Code   string `json:"code"`
		From   string `json:"from,omitempty"`
		To     string `json:"to,omitempty"`
		Tender *bool  `json:"tender,omitempty"`
	} `json:"currencies,omitempty"`
	GDP               int64   `json:"gdp,omitempty"`
	Population        int64   `json:"population,omitempty"`
	LiteracyPercent   float64 `json:"literacy_percent,omitempty"`
	MeasurementSystem *struct {
		Default     string `json:"default,omitempty"`
		PaperSize   string `json:"paper_size,omitempty"`
		Temperature string `json:"temperature,omitempty"`
	} `json:"measurement_system,omitempty"`
	Languages map[string]struct {
		PopulationPercent float64 `json:"population_percent,omitempty"`
		WritingPercent    float64 `json:"writing_percent,omitempty"`
		Official          bool    `json:"official,omitempty"`
	} `json:"languages,omitempty"`
}

func (raw infoRecord) decode() (Info, error) {
	info := Info{
		GDP:             raw.GDP,
		Population:      raw.Population,
		LiteracyPercent: raw.LiteracyPercent,
	}
	for _, c := range raw.Currencies {
		period := CurrencyPeriod{Code: c.Code, Tender: true}
		if c.Tender != nil {
			period.Tender = *c.Tender
		}
		var err error
		if period.From, err = parseDate(c.From); err != nil {
			return Info{}, fmt.Errorf("currency %s: %w", c.Code, err)
		}
		if period.To, err = parseDate(c.To); err != nil {
			return Info{}, fmt.Errorf("currency %s: %w", c.Code, err)
		}
		info.Currencies = append(info.Currencies, period)
	}
	if raw.MeasurementSystem != nil {
		info.MeasurementSystem = &MeasurementSystem{
			Default:     raw.MeasurementSystem.Default,
			PaperSize:   raw.MeasurementSystem.PaperSize,
			Temperature: raw.MeasurementSystem.Temperature,
		}
	}
	if len(raw.Languages) > 0 {
		info.LanguagePopulation = make(map[string]LanguagePopulation, len(raw.Languages))
		for lang, lp := range raw.Languages {
			info.LanguagePopulation[lang] = LanguagePopulation{
				PopulationPercent: lp.PopulationPercent,
				WritingPercent:    lp.WritingPercent,
				Official:          lp.Official,
			}
		}
	}
	return info, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}
