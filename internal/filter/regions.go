package filter

import "concurso-hunter/internal/extract"

// Regions maps each macro-region to its UF codes. "Nacional" is handled in
// ExpandRegions: it selects the unlocalized sentinel, not a code list.
var Regions = map[string][]string{
	"Norte":        {"AM", "RR", "AP", "PA", "TO", "RO", "AC"},
	"Nordeste":     {"MA", "PI", "CE", "RN", "PE", "PB", "SE", "AL", "BA"},
	"Centro-Oeste": {"MT", "MS", "GO", "DF"},
	"Sudeste":      {"SP", "RJ", "ES", "MG"},
	"Sul":          {"PR", "RS", "SC"},
}

// ExpandRegions merges individually selected UFs with whole macro-regions
// into one target set. Selecting "Nacional" opts into the records that
// could not be localized.
func ExpandRegions(ufs, regionNames []string) []string {
	seen := make(map[string]bool)
	targets := make([]string, 0, len(ufs))

	add := func(code string) {
		if code != "" && !seen[code] {
			seen[code] = true
			targets = append(targets, code)
		}
	}

	for _, uf := range ufs {
		add(uf)
	}
	for _, name := range regionNames {
		if name == "Nacional" {
			add(extract.RegionOther)
			continue
		}
		for _, code := range Regions[name] {
			add(code)
		}
	}

	return targets
}
