package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// generate converts the cldr-json checkout into the compact dataset. The
// output mirrors what the cldr package decodes: containment.json,
// info.json, and locales/<loc>.json.
func generate(cfg *Config) error {
	containment, err := readContainment(cfg.CLDR)
	if err != nil {
		return err
	}
	known := make(map[string]bool)
	for parent, children := range containment {
		known[parent] = true
		for _, child := range children {
			known[child] = true
		}
	}
	slog.Info("containment graph read", "parents", len(containment), "territories", len(known))

	info, err := buildInfo(cfg.CLDR, known)
	if err != nil {
		return err
	}
	slog.Info("territory info built", "records", len(info))

	if err := os.MkdirAll(filepath.Join(cfg.Out, "locales"), 0o755); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(cfg.Out, "containment.json"), containment); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(cfg.Out, "info.json"), info); err != nil {
		return err
	}

	for _, loc := range cfg.Locales {
		doc, err := buildLocale(cfg.CLDR, loc, known)
		if err != nil {
			return err
		}
		out := filepath.Join(cfg.Out, "locales", loc+".json")
		if err := writeJSON(out, doc); err != nil {
			return err
		}
		slog.Info("locale written", "locale", loc, "territories", len(doc.Territories), "subdivisions", len(doc.Subdivisions))
	}
	return nil
}

// ---------------------------------------------------------------------------
// Containment
// ---------------------------------------------------------------------------

func readContainment(cldrDir string) (map[string][]string, error) {
	var doc struct {
		Supplemental struct {
			TerritoryContainment map[string]struct {
				Contains []string `json:"_contains"`
			} `json:"territoryContainment"`
		} `json:"supplemental"`
	}
	path := filepath.Join(cldrDir, "cldr-core", "supplemental", "territoryContainment.json")
	if err := readJSON(path, &doc); err != nil {
		return nil, err
	}

	containment := make(map[string][]string)
	for key, entry := range doc.Supplemental.TerritoryContainment {
		// "001-status-grouping" and friends are alternate views of the
		// same parent; only the plain key belongs in the graph.
		if strings.Contains(key, "-status-") {
			continue
		}
		containment[key] = entry.Contains
	}
	return containment, nil
}

// ---------------------------------------------------------------------------
// Territory info
// ---------------------------------------------------------------------------

// Output shapes; kept in sync with the cldr package's dataset decoder.

type currencyOut struct {
	Code   string `json:"code"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
	Tender *bool  `json:"tender,omitempty"`
}

type measurementOut struct {
	Default     string `json:"default,omitempty"`
	PaperSize   string `json:"paper_size,omitempty"`
	Temperature string `json:"temperature,omitempty"`
}

type languageOut struct {
	PopulationPercent float64 `json:"population_percent,omitempty"`
	WritingPercent    float64 `json:"writing_percent,omitempty"`
	Official          bool    `json:"official,omitempty"`
}

type infoOut struct {
	Currencies      []currencyOut          `json:"currencies,omitempty"`
	GDP             int64                  `json:"gdp,omitempty"`
	Population      int64                  `json:"population,omitempty"`
	LiteracyPercent float64                `json:"literacy_percent,omitempty"`
	Measurement     *measurementOut        `json:"measurement_system,omitempty"`
	Languages       map[string]languageOut `json:"languages,omitempty"`
}

func buildInfo(cldrDir string, known map[string]bool) (map[string]infoOut, error) {
	var territoryInfo struct {
		Supplemental struct {
			TerritoryInfo map[string]struct {
				GDP             string `json:"_gdp"`
				Population      string `json:"_population"`
				LiteracyPercent string `json:"_literacyPercent"`
				Languages       map[string]struct {
					PopulationPercent string `json:"_populationPercent"`
					WritingPercent    string `json:"_writingPercent"`
					OfficialStatus    string `json:"_officialStatus"`
				} `json:"languagePopulation"`
			} `json:"territoryInfo"`
		} `json:"supplemental"`
	}
	if err := readJSON(filepath.Join(cldrDir, "cldr-core", "supplemental", "territoryInfo.json"), &territoryInfo); err != nil {
		return nil, err
	}

	var currencyData struct {
		Supplemental struct {
			CurrencyData struct {
				Region map[string][]map[string]struct {
					From   string `json:"_from"`
					To     string `json:"_to"`
					Tender string `json:"_tender"`
				} `json:"region"`
			} `json:"currencyData"`
		} `json:"supplemental"`
	}
	if err := readJSON(filepath.Join(cldrDir, "cldr-core", "supplemental", "currencyData.json"), &currencyData); err != nil {
		return nil, err
	}

	var measurementData struct {
		Supplemental struct {
			MeasurementData struct {
				System      map[string]string `json:"measurementSystem"`
				Temperature map[string]string `json:"measurementSystem-category-temperature"`
				PaperSize   map[string]string `json:"paperSize"`
			} `json:"measurementData"`
		} `json:"supplemental"`
	}
	if err := readJSON(filepath.Join(cldrDir, "cldr-core", "supplemental", "measurementData.json"), &measurementData); err != nil {
		return nil, err
	}
	md := measurementData.Supplemental.MeasurementData

	info := make(map[string]infoOut)
	for code, raw := range territoryInfo.Supplemental.TerritoryInfo {
		if !known[code] {
			// A name table only covers territories in the containment
			// graph; shipping info for anything else would break the
			// registry's completeness invariant.
			slog.Debug("skipping info outside containment graph", "territory", code)
			continue
		}
		out := infoOut{
			GDP:             parseInt(raw.GDP),
			Population:      parseInt(raw.Population),
			LiteracyPercent: parseFloat(raw.LiteracyPercent),
			Measurement: &measurementOut{
				Default:     systemName(lookupOrDefault(md.System, code)),
				PaperSize:   paperName(lookupOrDefault(md.PaperSize, code)),
				Temperature: systemName(lookupOrDefault(md.Temperature, code)),
			},
		}
		for lang, lp := range raw.Languages {
			if out.Languages == nil {
				out.Languages = make(map[string]languageOut)
			}
			out.Languages[lang] = languageOut{
				PopulationPercent: parseFloat(lp.PopulationPercent),
				WritingPercent:    parseFloat(lp.WritingPercent),
				Official:          strings.HasPrefix(lp.OfficialStatus, "official") || lp.OfficialStatus == "de_facto_official",
			}
		}
		for _, entry := range currencyData.Supplemental.CurrencyData.Region[code] {
			for currency, period := range entry {
				c := currencyOut{Code: currency, From: period.From, To: period.To}
				if period.Tender == "false" {
					tender := false
					c.Tender = &tender
				}
				out.Currencies = append(out.Currencies, c)
			}
		}
		info[code] = out
	}
	return info, nil
}

// lookupOrDefault resolves a measurement table entry, falling back to the
// world default "001".
func lookupOrDefault(table map[string]string, code string) string {
	if v, ok := table[code]; ok {
		return v
	}
	return table["001"]
}

func systemName(v string) string {
	switch v {
	case "US":
		return "ussystem"
	case "UK":
		return "uksystem"
	default:
		return "metric"
	}
}

func paperName(v string) string {
	if v == "US-Letter" {
		return "us-letter"
	}
	return "a4"
}

// ---------------------------------------------------------------------------
// Locale name tables
// ---------------------------------------------------------------------------

type localeOut struct {
	Territories  map[string]map[string]string `json:"territories"`
	Subdivisions map[string]string            `json:"subdivisions"`
}

func buildLocale(cldrDir, loc string, known map[string]bool) (*localeOut, error) {
	var doc struct {
		Main map[string]struct {
			LocaleDisplayNames struct {
				Territories map[string]string `json:"territories"`
			} `json:"localeDisplayNames"`
		} `json:"main"`
	}
	path := filepath.Join(cldrDir, "cldr-localenames-full", "main", loc, "territories.json")
	if err := readJSON(path, &doc); err != nil {
		return nil, err
	}
	raw := doc.Main[loc].LocaleDisplayNames.Territories
	if len(raw) == 0 {
		return nil, fmt.Errorf("locale %s: no territory names in %s", loc, path)
	}

	out := &localeOut{Territories: make(map[string]map[string]string)}
	styled := func(code, style, name string) {
		if !known[code] {
			return
		}
		if out.Territories[code] == nil {
			out.Territories[code] = make(map[string]string)
		}
		out.Territories[code][style] = name
	}
	for key, name := range raw {
		switch code, alt, found := strings.Cut(key, "-alt-"); {
		case !found:
			styled(key, "standard", name)
		case alt == "short":
			styled(code, "short", name)
		case alt == "variant":
			styled(code, "variant", name)
		}
	}
	for code := range known {
		if _, ok := out.Territories[code]; !ok {
			return nil, fmt.Errorf("locale %s: no name for territory %s", loc, code)
		}
	}

	subs, err := readSubdivisions(cldrDir, loc)
	if err != nil {
		return nil, err
	}
	out.Subdivisions = subs
	return out, nil
}

func readSubdivisions(cldrDir, loc string) (map[string]string, error) {
	var doc struct {
		Main map[string]struct {
			LocaleDisplayNames struct {
				Subdivisions map[string]string `json:"subdivisions"`
			} `json:"localeDisplayNames"`
		} `json:"main"`
	}
	path := filepath.Join(cldrDir, "cldr-subdivisions-full", "main", loc, "subdivisions.json")
	if err := readJSON(path, &doc); err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no subdivision names", "locale", loc)
			return nil, nil
		}
		return nil, err
	}
	return doc.Main[loc].LocaleDisplayNames.Subdivisions, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func parseInt(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	slog.Debug("wrote", "path", path, "bytes", len(data))
	return nil
}
