// Package listing defines the canonical announcement record and the
// builder that turns raw scraped blocks into records.
package listing

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

// RawBlock is one scraped announcement fragment: its visible text and the
// first anchor link found inside it. Consumed once by Build, never retained.
type RawBlock struct {
	Text string
	Link string
}

// Record is the canonical unit of cached data for one announcement.
// Text keeps the original accents for display; NormalizedText and Tokens
// are the accent-stripped lowercase forms used for matching.
type Record struct {
	Text            string
	NormalizedText  string
	Tokens          mapset.Set[string]
	EducationLevels mapset.Set[string]
	Link            string
	Salary          float64 // 0 means "not stated", never a real zero salary
	Deadline        time.Time
	HasDeadline     bool
	Region          string
}

// DisplayRecord is the caller-facing projection, with the field names the
// original API always served.
type DisplayRecord struct {
	Salary   string `json:"Salário"`
	Region   string `json:"UF"`
	Deadline string `json:"Data Fim Inscrição"`
	Text     string `json:"Informações do Concurso"`
	Link     string `json:"Link"`
}
