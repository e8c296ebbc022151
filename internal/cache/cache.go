// Package cache keeps the scraped record set behind a three-tier policy:
// fresh in-memory snapshot, fresh on-disk snapshot, live refresh — and
// falls back to the newest stale snapshot when a refresh fails. Bounded
// staleness buys near-zero query latency and survives upstream outages.
package cache

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"concurso-hunter/internal/listing"
)

// FetchFunc retrieves raw blocks from upstream. An empty result counts as
// a failed refresh: the aggregator never legitimately serves zero listings.
type FetchFunc func(ctx context.Context) ([]listing.RawBlock, error)

// Snapshot is one immutable fetch result. Readers share it; a refresh
// swaps in a whole new snapshot, it never mutates one in place.
type Snapshot struct {
	FetchedAt time.Time
	Records   []*listing.Record
}

// Manager owns the snapshot and the refresh lifecycle. Inject one instance
// into the query path; there is no package-level state.
type Manager struct {
	mu       sync.RWMutex
	snapshot *Snapshot

	filePath string
	ttl      time.Duration
	fetch    FetchFunc
	group    singleflight.Group
	now      func() time.Time
}

func NewManager(filePath string, ttl time.Duration, fetch FetchFunc) *Manager {
	return &Manager{
		filePath: filePath,
		ttl:      ttl,
		fetch:    fetch,
		now:      time.Now,
	}
}

// GetRecords returns the current record set, refreshing only when both the
// memory and disk snapshots are older than the TTL or when force is set.
// It never returns an error: a failed refresh falls back to the newest
// stale snapshot, and only a cache that has never been filled yields nil.
func (m *Manager) GetRecords(ctx context.Context, force bool) []*listing.Record {
	now := m.now()

	if !force {
		if snap := m.memory(); snap != nil && now.Sub(snap.FetchedAt) < m.ttl {
			return snap.Records
		}
		if snap := m.loadDisk(); snap != nil && now.Sub(snap.FetchedAt) < m.ttl {
			log.Printf("💾 using disk snapshot from %s", snap.FetchedAt.Format(time.RFC3339))
			m.promote(snap)
			return snap.Records
		}
	}

	records, err := m.refresh(ctx)
	if err == nil {
		return records
	}
	log.Printf("⚠️ refresh failed (%v), falling back to stale data", err)

	if snap := m.memory(); snap != nil {
		return snap.Records
	}
	if snap := m.loadDisk(); snap != nil {
		m.promote(snap)
		return snap.Records
	}

	//nothing has ever been cached
	return nil
}

// Stats reports the current snapshot's timestamp and size for health checks.
func (m *Manager) Stats() (fetchedAt time.Time, count int) {
	snap := m.memory()
	if snap == nil {
		return time.Time{}, 0
	}
	return snap.FetchedAt, len(snap.Records)
}

// refresh runs one fetch+build cycle. Concurrent callers share a single
// in-flight refresh — it is idempotent, so duplicates would only waste
// bandwidth.
func (m *Manager) refresh(ctx context.Context) ([]*listing.Record, error) {
	v, err, _ := m.group.Do("refresh", func() (interface{}, error) {
		blocks, err := m.fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch: %w", err)
		}
		if len(blocks) == 0 {
			return nil, fmt.Errorf("fetch returned no blocks")
		}

		now := m.now()
		records := listing.BuildAll(blocks, now)
		snap := &Snapshot{FetchedAt: now, Records: records}

		m.saveDisk(snap)
		m.promote(snap)
		log.Printf("✅ refreshed cache: %d records", len(records))
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*listing.Record), nil
}

func (m *Manager) memory() *Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

func (m *Manager) promote(snap *Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	//an older snapshot must never clobber a newer one
	if m.snapshot == nil || snap.FetchedAt.After(m.snapshot.FetchedAt) {
		m.snapshot = snap
	}
}
