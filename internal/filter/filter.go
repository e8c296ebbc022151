// Package filter applies the caller's multi-criteria search over the
// cached record set and projects the survivors for display.
package filter

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"concurso-hunter/internal/extract"
	"concurso-hunter/internal/listing"
	"concurso-hunter/internal/textutil"
)

// Criteria is one request's filter, ephemeral. Missing fields mean
// "no filter on this dimension".
type Criteria struct {
	MinSalary             float64
	IncludeKeywords       []string
	ExcludeKeywords       []string
	TargetRegions         []string
	TargetEducationLevels []string
}

// Apply evaluates every record against the criteria, short-circuiting in a
// fixed order: exclusion keywords, salary floor, region, inclusion
// keywords, education level. The input is already salary-ordered by the
// cache and that order is preserved — no re-sort here.
//
// Two deliberate policies:
//   - a record with unstated salary (0) fails any positive floor;
//   - "Nacional/Outro" records pass a region filter only when the sentinel
//     itself was selected (callers add it via the "Nacional" region).
func Apply(records []*listing.Record, c Criteria) []listing.DisplayRecord {
	exclude := mapset.NewSet(textutil.NormalizeAll(c.ExcludeKeywords)...)
	include := textutil.NormalizeAll(c.IncludeKeywords)
	regions := mapset.NewSet(cleanUpper(c.TargetRegions)...)
	levels := mapset.NewSet(textutil.NormalizeAll(c.TargetEducationLevels)...)

	results := make([]listing.DisplayRecord, 0)

	for _, rec := range records {
		if exclude.Cardinality() > 0 && exclude.Intersect(rec.Tokens).Cardinality() > 0 {
			continue
		}
		if c.MinSalary > 0 && rec.Salary < c.MinSalary {
			continue
		}
		if regions.Cardinality() > 0 && !regionMatches(rec, regions) {
			continue
		}
		if len(include) > 0 && !containsAny(rec.NormalizedText, include) {
			continue
		}
		if levels.Cardinality() > 0 && levels.Intersect(rec.EducationLevels).Cardinality() == 0 {
			continue
		}
		results = append(results, rec.Display())
	}

	return results
}

// regionMatches accepts a record whose detected UF is in the target set.
// As a last resort a target code appearing verbatim in the original text
// also counts — the primary UF detection picks only one code per block.
func regionMatches(rec *listing.Record, regions mapset.Set[string]) bool {
	if regions.Contains(rec.Region) {
		return true
	}
	found := false
	regions.Each(func(region string) bool {
		if region != extract.RegionOther && strings.Contains(rec.Text, region) {
			found = true
		}
		return found
	})
	return found
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func cleanUpper(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if item != extract.RegionOther {
			item = strings.ToUpper(item)
		}
		out = append(out, item)
	}
	return out
}
