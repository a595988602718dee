package fetcher

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/railscope/railscope/pkg/ctrf"
)

type Config struct {
	CacheCapacity int
	CacheTTL      time.Duration

	SearchTimeout time.Duration
	SearchRetries uint64

	// RandSeed fixes the mock generator, 0 seeds from the clock.
	RandSeed int64
}

func DefaultConfig() Config {
	return Config{
		CacheCapacity: 512,
		CacheTTL:      5 * time.Minute,
		SearchTimeout: 10 * time.Second,
		SearchRetries: 2,
	}
}

// Fetcher retrieves raw status records: cache first, then the live search
// source, then mock synthesis. It never fails - a dead or useless source
// degrades to mock data.
type Fetcher struct {
	source    SearchSource
	extractor Extractor
	cache     *RecordCache

	searchTimeout time.Duration
	searchRetries uint64

	// randMutex serialises mock synthesis - rand.Rand is not safe for the
	// concurrent cache misses the batch endpoint produces.
	randMutex sync.Mutex
	rand      *rand.Rand

	now func() time.Time
}

func New(config Config, source SearchSource, extractor Extractor) *Fetcher {
	if extractor == nil {
		extractor = SnippetExtractor{}
	}

	seed := config.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Fetcher{
		source:    source,
		extractor: extractor,
		cache:     NewRecordCache(config.CacheCapacity, config.CacheTTL),

		searchTimeout: config.SearchTimeout,
		searchRetries: config.SearchRetries,

		rand: rand.New(rand.NewSource(seed)),
		now:  time.Now,
	}
}

// Fetch returns the raw status record for a validated query. Successful
// lookups (live or mock) are written to the cache, so a failing live source
// sticks as mock data until the entry expires.
func (f *Fetcher) Fetch(ctx context.Context, query ctrf.ValidatedQuery) ctrf.RawStatusRecord {
	cacheKey := f.cacheKey(query)

	if cached, found := f.cache.Get(cacheKey); found {
		log.Debug().Str("train", query.TrainNumber).Str("key", cacheKey).Msg("Status cache hit")

		cached.DataSource = ctrf.DataSourceCache
		return cached
	}

	if f.source == nil {
		record := f.mockRecord(query.TrainNumber, "live source not configured")
		f.cache.Set(cacheKey, record)
		return record
	}

	results, err := f.search(ctx, query)
	if err != nil {
		log.Debug().Err(err).Str("train", query.TrainNumber).Msg("Live source lookup failed")

		record := f.mockRecord(query.TrainNumber, fmt.Sprintf("Search failed: %s", err))
		f.cache.Set(cacheKey, record)
		return record
	}

	partial, actionable := f.extractor.Extract(results, query.TrainNumber)
	if !actionable {
		record := f.mockRecord(query.TrainNumber, "no actionable search results")
		f.cache.Set(cacheKey, record)
		return record
	}

	record := f.liveRecord(query.TrainNumber, partial)
	f.cache.Set(cacheKey, record)

	return record
}

func (f *Fetcher) cacheKey(query ctrf.ValidatedQuery) string {
	date := query.Date
	if date == "" {
		date = "today"
	}

	return fmt.Sprintf("%s_%s", query.TrainNumber, date)
}

func (f *Fetcher) search(ctx context.Context, query ctrf.ValidatedQuery) ([]SearchResult, error) {
	searchQuery := fmt.Sprintf("train %s live status running status current location indian railway", query.TrainNumber)
	if query.Date != "" && query.Date != f.now().Format("2006-01-02") {
		searchQuery = fmt.Sprintf("%s %s", searchQuery, query.Date)
	}

	var results []SearchResult

	lookup := func() error {
		searchCtx, cancel := context.WithTimeout(ctx, f.searchTimeout)
		defer cancel()

		sourceResults, err := f.source.Search(searchCtx, searchQuery)
		if err != nil {
			return err
		}

		results = sourceResults
		return nil
	}

	retryBackoff := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), f.searchRetries)
	if err := backoff.Retry(lookup, backoff.WithContext(retryBackoff, ctx)); err != nil {
		return nil, err
	}

	return results, nil
}

func (f *Fetcher) liveRecord(trainNumber string, partial PartialRecord) ctrf.RawStatusRecord {
	now := f.now()

	record := ctrf.RawStatusRecord{
		TrainNumber:    trainNumber,
		TrainName:      fmt.Sprintf("Train %s", trainNumber),
		CurrentStation: ctrf.StationUnavailable,

		LastUpdated: now.Format(time.RFC3339),
		DataSource:  ctrf.DataSourceLive,
	}

	if partial.TrainName != "" {
		record.TrainName = partial.TrainName
	}

	if partial.CurrentStation != "" {
		record.CurrentStation = partial.CurrentStation
	}

	if partial.DelayMinutes != nil {
		record.ScheduledArrival = now.Format(time.RFC3339)
		record.ActualArrival = now.Add(time.Duration(*partial.DelayMinutes) * time.Minute).Format(time.RFC3339)
	}

	return record
}
