package fetcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sourcegraph/conc"
	"golang.org/x/exp/slices"

	"github.com/railscope/railscope/pkg/ctrf"
)

type stubSource struct {
	results []SearchResult
	err     error
	calls   int
}

func (s *stubSource) Search(ctx context.Context, query string) ([]SearchResult, error) {
	s.calls++

	if s.err != nil {
		return nil, s.err
	}

	return s.results, nil
}

func testConfig() Config {
	config := DefaultConfig()
	config.RandSeed = 1
	config.SearchRetries = 0
	config.SearchTimeout = 100 * time.Millisecond

	return config
}

func testQuery(trainNumber string) ctrf.ValidatedQuery {
	return ctrf.ValidatedQuery{TrainNumber: trainNumber, Date: "2026-03-10"}
}

func TestFetchNoSourceFallsBackToMock(t *testing.T) {
	f := New(testConfig(), nil, nil)

	record := f.Fetch(context.Background(), testQuery("12622"))

	if record.DataSource != ctrf.DataSourceMock {
		t.Fatalf("expected mock data source, got %s", record.DataSource)
	}
	if record.TrainNumber != "12622" {
		t.Errorf("expected train number carried through, got %q", record.TrainNumber)
	}
	if !strings.Contains(record.Note, "live source not configured") {
		t.Errorf("expected explanatory note, got %q", record.Note)
	}
	if !slices.Contains(referenceStations, record.CurrentStation) {
		t.Errorf("station %q not from the reference list", record.CurrentStation)
	}
	if record.CurrentLat < 8 || record.CurrentLat > 37 || record.CurrentLon < 68 || record.CurrentLon > 97 {
		t.Errorf("coordinates (%f, %f) outside India's bounding box", record.CurrentLat, record.CurrentLon)
	}
	if len(record.UpcomingStations) != 3 {
		t.Fatalf("expected 3 upcoming stations, got %d", len(record.UpcomingStations))
	}
	seen := map[string]bool{}
	for _, station := range record.UpcomingStations {
		if seen[station] {
			t.Errorf("duplicate upcoming station %q", station)
		}
		seen[station] = true
	}
}

func TestFetchSourceErrorFallsBackToMock(t *testing.T) {
	source := &stubSource{err: errors.New("socket timeout")}
	f := New(testConfig(), source, nil)

	record := f.Fetch(context.Background(), testQuery("12622"))

	if record.DataSource != ctrf.DataSourceMock {
		t.Fatalf("expected mock data source, got %s", record.DataSource)
	}
	if !strings.Contains(record.Note, "Search failed") {
		t.Errorf("expected failure note, got %q", record.Note)
	}
}

func TestSearchRetriesBeforeGivingUp(t *testing.T) {
	source := &stubSource{err: errors.New("socket timeout")}

	config := testConfig()
	config.SearchRetries = 2
	f := New(config, source, nil)

	f.Fetch(context.Background(), testQuery("12622"))

	if source.calls != 3 {
		t.Errorf("expected 3 lookup attempts, got %d", source.calls)
	}
}

func TestFetchNothingActionableFallsBackToMock(t *testing.T) {
	source := &stubSource{results: []SearchResult{
		{Title: "Indian Railways", Snippet: "book tickets online"},
		{Title: "IRCTC", Snippet: "train enquiry services"},
	}}
	f := New(testConfig(), source, nil)

	record := f.Fetch(context.Background(), testQuery("12622"))

	if record.DataSource != ctrf.DataSourceMock {
		t.Fatalf("expected mock data source, got %s", record.DataSource)
	}
	if !strings.Contains(record.Note, "no actionable search results") {
		t.Errorf("expected note about unusable results, got %q", record.Note)
	}
}

func TestFetchLiveExtraction(t *testing.T) {
	source := &stubSource{results: []SearchResult{
		{
			Title:   "12622 Tamil Nadu Express train running status",
			Snippet: "The train departed Nagpur. Currently running 20 min late, delay expected to grow",
		},
	}}
	f := New(testConfig(), source, nil)

	record := f.Fetch(context.Background(), testQuery("12622"))

	if record.DataSource != ctrf.DataSourceLive {
		t.Fatalf("expected live data source, got %s", record.DataSource)
	}
	if record.CurrentStation != "Nagpur" {
		t.Errorf("expected station Nagpur, got %q", record.CurrentStation)
	}
	if !strings.Contains(record.TrainName, "Tamil Nadu Express") {
		t.Errorf("expected train name from the result title, got %q", record.TrainName)
	}

	scheduled, err := time.Parse(time.RFC3339, record.ScheduledArrival)
	if err != nil {
		t.Fatalf("unparseable scheduled arrival: %v", err)
	}
	actual, err := time.Parse(time.RFC3339, record.ActualArrival)
	if err != nil {
		t.Fatalf("unparseable actual arrival: %v", err)
	}
	if delta := actual.Sub(scheduled); delta != 20*time.Minute {
		t.Errorf("expected 20 minute delay encoded in timestamps, got %s", delta)
	}
}

func TestFetchCacheHit(t *testing.T) {
	f := New(testConfig(), nil, nil)
	query := testQuery("12622")

	first := f.Fetch(context.Background(), query)
	second := f.Fetch(context.Background(), query)

	if second.DataSource != ctrf.DataSourceCache {
		t.Fatalf("expected cache data source on second fetch, got %s", second.DataSource)
	}

	// Identical apart from the source annotation.
	second.DataSource = first.DataSource
	if first.CurrentStation != second.CurrentStation ||
		first.CurrentLat != second.CurrentLat ||
		first.ScheduledArrival != second.ScheduledArrival ||
		first.Note != second.Note {
		t.Error("cached record differs from the original beyond the source annotation")
	}
}

func TestFetchCacheKeysIncludeDate(t *testing.T) {
	f := New(testConfig(), nil, nil)

	f.Fetch(context.Background(), ctrf.ValidatedQuery{TrainNumber: "12622", Date: "2026-03-10"})
	f.Fetch(context.Background(), ctrf.ValidatedQuery{TrainNumber: "12622", Date: "2026-03-11"})

	if f.cache.Len() != 2 {
		t.Errorf("expected two distinct cache entries, got %d", f.cache.Len())
	}
}

func TestCacheKeyDefaultsToToday(t *testing.T) {
	f := New(testConfig(), nil, nil)

	if key := f.cacheKey(ctrf.ValidatedQuery{TrainNumber: "12622"}); key != "12622_today" {
		t.Errorf("expected 12622_today, got %q", key)
	}
	if key := f.cacheKey(testQuery("12622")); key != "12622_2026-03-10" {
		t.Errorf("expected 12622_2026-03-10, got %q", key)
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := NewRecordCache(8, 50*time.Millisecond)
	cache.Set("12622_today", ctrf.RawStatusRecord{TrainNumber: "12622"})

	if _, found := cache.Get("12622_today"); !found {
		t.Fatal("expected fresh entry to be readable")
	}

	time.Sleep(80 * time.Millisecond)

	if _, found := cache.Get("12622_today"); found {
		t.Error("expected entry to expire")
	}
}

func TestCacheCapacityBounded(t *testing.T) {
	cache := NewRecordCache(2, time.Minute)

	cache.Set("a", ctrf.RawStatusRecord{})
	cache.Set("b", ctrf.RawStatusRecord{})
	cache.Set("c", ctrf.RawStatusRecord{})

	if cache.Len() > 2 {
		t.Errorf("cache grew past its capacity: %d entries", cache.Len())
	}
	if _, found := cache.Get("a"); found {
		t.Error("expected oldest entry to be evicted")
	}
}

func TestFetchConcurrentMockSynthesis(t *testing.T) {
	config := testConfig()
	config.CacheCapacity = 2048

	f := New(config, nil, nil)

	var wg conc.WaitGroup
	for worker := 0; worker < 16; worker++ {
		wg.Go(func() {
			for i := 0; i < 200; i++ {
				trainNumber := fmt.Sprintf("1%02d%02d", worker, i%100)

				record := f.Fetch(context.Background(), ctrf.ValidatedQuery{
					TrainNumber: trainNumber,
					Date:        fmt.Sprintf("2026-03-%02d", 10+i/100),
				})

				if record.CurrentLat < 8 || record.CurrentLat > 37 ||
					record.CurrentLon < 68 || record.CurrentLon > 97 {
					t.Errorf("synthesised coordinates out of range: %f, %f", record.CurrentLat, record.CurrentLon)
				}
				if len(record.UpcomingStations) != 3 {
					t.Errorf("expected 3 upcoming stations, got %d", len(record.UpcomingStations))
				}
			}
		})
	}
	wg.Wait()
}
