package fetcher

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/railscope/railscope/pkg/ctrf"
)

// RecordCache is a bounded cache of raw status records. Entries expire after
// the configured TTL and the oldest entries are evicted once the capacity is
// reached. Safe for concurrent use.
type RecordCache struct {
	records *expirable.LRU[string, ctrf.RawStatusRecord]
}

func NewRecordCache(capacity int, ttl time.Duration) *RecordCache {
	return &RecordCache{
		records: expirable.NewLRU[string, ctrf.RawStatusRecord](capacity, nil, ttl),
	}
}

func (c *RecordCache) Get(key string) (ctrf.RawStatusRecord, bool) {
	return c.records.Get(key)
}

func (c *RecordCache) Set(key string, record ctrf.RawStatusRecord) {
	c.records.Add(key, record)
}

func (c *RecordCache) Len() int {
	return c.records.Len()
}
