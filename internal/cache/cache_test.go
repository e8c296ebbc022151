package cache

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concurso-hunter/internal/listing"
)

var sampleBlocks = []listing.RawBlock{
	{Text: "Concurso para médico, salário R$ 9.000,00, inscrições até 31/12/2099", Link: "https://example.com/a"},
	{Text: "Concurso para assistente, salário R$ 2.500,00", Link: "https://example.com/b"},
}

func fixedFetch(blocks []listing.RawBlock, err error) (FetchFunc, *int) {
	calls := new(int)
	return func(ctx context.Context) ([]listing.RawBlock, error) {
		*calls++
		return blocks, err
	}, calls
}

func newTestManager(t *testing.T, fetch FetchFunc) *Manager {
	t.Helper()
	return NewManager(filepath.Join(t.TempDir(), "concursos.json"), time.Hour, fetch)
}

func TestGetRecords_FetchesAndCaches(t *testing.T) {
	fetch, calls := fixedFetch(sampleBlocks, nil)
	m := newTestManager(t, fetch)

	records := m.GetRecords(context.Background(), false)
	require.Len(t, records, 2)
	assert.Equal(t, "https://example.com/a", records[0].Link, "salary descending order")

	//second call is served from memory
	m.GetRecords(context.Background(), false)
	assert.Equal(t, 1, *calls)

	fetchedAt, count := m.Stats()
	assert.False(t, fetchedAt.IsZero())
	assert.Equal(t, 2, count)
}

func TestGetRecords_ForceRefresh(t *testing.T) {
	fetch, calls := fixedFetch(sampleBlocks, nil)
	m := newTestManager(t, fetch)

	m.GetRecords(context.Background(), false)
	m.GetRecords(context.Background(), true)
	assert.Equal(t, 2, *calls)
}

func TestGetRecords_DiskTierRehydrates(t *testing.T) {
	fetch, _ := fixedFetch(sampleBlocks, nil)
	path := filepath.Join(t.TempDir(), "concursos.json")

	first := NewManager(path, time.Hour, fetch)
	first.GetRecords(context.Background(), false)

	//fresh manager, same file: must load from disk without fetching
	failing, calls := fixedFetch(nil, fmt.Errorf("upstream down"))
	second := NewManager(path, time.Hour, failing)
	records := second.GetRecords(context.Background(), false)

	require.Len(t, records, 2)
	assert.Equal(t, 0, *calls)
	//sets survive the list round trip
	assert.True(t, records[0].Tokens.Contains("medico"))
	assert.True(t, records[0].EducationLevels.Contains("superior"))
	assert.True(t, records[0].HasDeadline)
}

func TestGetRecords_StaleFallbackOnFailure(t *testing.T) {
	fetch, _ := fixedFetch(sampleBlocks, nil)
	m := newTestManager(t, fetch)

	fresh := m.GetRecords(context.Background(), false)
	require.Len(t, fresh, 2)

	//age the snapshot past the TTL, then break the fetch
	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	m.fetch = func(ctx context.Context) ([]listing.RawBlock, error) {
		return nil, fmt.Errorf("upstream down")
	}

	stale := m.GetRecords(context.Background(), false)
	require.Len(t, stale, len(fresh), "stale snapshot served unchanged")
	for i := range fresh {
		assert.Equal(t, fresh[i].Link, stale[i].Link)
	}
}

func TestGetRecords_EmptyFetchIsFailure(t *testing.T) {
	fetch, _ := fixedFetch(sampleBlocks, nil)
	m := newTestManager(t, fetch)
	m.GetRecords(context.Background(), false)

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	m.fetch = func(ctx context.Context) ([]listing.RawBlock, error) {
		return []listing.RawBlock{}, nil
	}

	assert.Len(t, m.GetRecords(context.Background(), false), 2)
}

func TestGetRecords_NothingEverCached(t *testing.T) {
	fetch, _ := fixedFetch(nil, fmt.Errorf("upstream down"))
	m := newTestManager(t, fetch)

	assert.Empty(t, m.GetRecords(context.Background(), false))
}
