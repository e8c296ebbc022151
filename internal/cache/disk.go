package cache

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"concurso-hunter/internal/listing"
)

func mapsetFrom(items []string) mapset.Set[string] {
	return mapset.NewSet(items...)
}

// Disk layout: one JSON document per snapshot, sets serialized as lists
// for portability and rehydrated on load.
type diskSnapshot struct {
	FetchedAt int64        `json:"fetchedAt"`
	Records   []diskRecord `json:"records"`
}

type diskRecord struct {
	Text            string   `json:"text"`
	NormalizedText  string   `json:"normalizedText"`
	Tokens          []string `json:"tokens"`
	EducationLevels []string `json:"educationLevels"`
	Link            string   `json:"link"`
	Salary          float64  `json:"salary"`
	Deadline        string   `json:"deadline,omitempty"`
	Region          string   `json:"region"`
}

const deadlineLayout = "2006-01-02"

// loadDisk reads the persisted snapshot, rehydrating token and education
// lists back into sets. Any read or parse problem just means "no disk
// snapshot" — the caller moves on to the next tier.
func (m *Manager) loadDisk() *Snapshot {
	data, err := os.ReadFile(m.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ failed to read cache file: %v", err)
		}
		return nil
	}

	var disk diskSnapshot
	if err := json.Unmarshal(data, &disk); err != nil {
		log.Printf("⚠️ failed to parse cache file: %v", err)
		return nil
	}
	if len(disk.Records) == 0 {
		return nil
	}

	records := make([]*listing.Record, 0, len(disk.Records))
	for _, dr := range disk.Records {
		rec := &listing.Record{
			Text:            dr.Text,
			NormalizedText:  dr.NormalizedText,
			Tokens:          mapsetFrom(dr.Tokens),
			EducationLevels: mapsetFrom(dr.EducationLevels),
			Link:            dr.Link,
			Salary:          dr.Salary,
			Region:          dr.Region,
		}
		if dr.Deadline != "" {
			if d, err := time.Parse(deadlineLayout, dr.Deadline); err == nil {
				rec.Deadline = d
				rec.HasDeadline = true
			}
		}
		records = append(records, rec)
	}

	return &Snapshot{
		FetchedAt: time.Unix(disk.FetchedAt, 0),
		Records:   records,
	}
}

// saveDisk persists a snapshot. Failures are logged and swallowed — the
// in-memory copy still serves queries.
func (m *Manager) saveDisk(snap *Snapshot) {
	disk := diskSnapshot{
		FetchedAt: snap.FetchedAt.Unix(),
		Records:   make([]diskRecord, 0, len(snap.Records)),
	}
	for _, rec := range snap.Records {
		dr := diskRecord{
			Text:            rec.Text,
			NormalizedText:  rec.NormalizedText,
			Tokens:          rec.Tokens.ToSlice(),
			EducationLevels: rec.EducationLevels.ToSlice(),
			Link:            rec.Link,
			Salary:          rec.Salary,
			Region:          rec.Region,
		}
		if rec.HasDeadline {
			dr.Deadline = rec.Deadline.Format(deadlineLayout)
		}
		disk.Records = append(disk.Records, dr)
	}

	data, err := json.Marshal(disk)
	if err != nil {
		log.Printf("⚠️ failed to marshal snapshot: %v", err)
		return
	}
	if dir := filepath.Dir(m.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("⚠️ failed to create cache directory: %v", err)
			return
		}
	}
	if err := os.WriteFile(m.filePath, data, 0644); err != nil {
		log.Printf("⚠️ failed to write cache file: %v", err)
		return
	}
	log.Printf("💾 saved %d records to %s", len(disk.Records), m.filePath)
}
