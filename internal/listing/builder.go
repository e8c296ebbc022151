package listing

import (
	"sort"
	"time"
	"unicode/utf8"

	"concurso-hunter/internal/extract"
	"concurso-hunter/internal/textutil"
)

// Blocks shorter than this are decorative markup, not announcements.
const minTextLen = 15

// Build assembles one Record from a raw block, or reports false when the
// block should be dropped: too short, missing link, or already expired.
// Sub-extractor ambiguity degrades to sentinel fields, never to a failure.
func Build(block RawBlock, referenceDate time.Time) (*Record, bool) {
	if utf8.RuneCountInString(block.Text) < minTextLen || block.Link == "" {
		return nil, false
	}

	today := time.Date(referenceDate.Year(), referenceDate.Month(), referenceDate.Day(), 0, 0, 0, 0, time.UTC)
	deadline, hasDeadline := extract.Deadline(block.Text, today)
	if hasDeadline && deadline.Before(today) {
		//expired listing, never enters the cache
		return nil, false
	}

	normalized := textutil.Normalize(block.Text)

	return &Record{
		Text:            block.Text,
		NormalizedText:  normalized,
		Tokens:          textutil.Tokenize(normalized),
		EducationLevels: extract.EducationLevels(normalized),
		Link:            block.Link,
		Salary:          extract.Salary(block.Text),
		Deadline:        deadline,
		HasDeadline:     hasDeadline,
		Region:          extract.Region(block.Text),
	}, true
}

// BuildAll builds every block, drops duplicates by link and orders the
// result by salary descending. That order is the cache order — queries
// never re-sort.
func BuildAll(blocks []RawBlock, referenceDate time.Time) []*Record {
	records := make([]*Record, 0, len(blocks))
	seenLinks := make(map[string]bool)

	for _, block := range blocks {
		rec, ok := Build(block, referenceDate)
		if !ok {
			continue
		}
		if seenLinks[rec.Link] {
			continue
		}
		seenLinks[rec.Link] = true
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Salary > records[j].Salary
	})

	return records
}
