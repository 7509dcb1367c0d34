package ledger

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// SeriesCache memoizes contribution series per dataset generation.
// Building the series replays the whole stream, and the dashboard asks
// for the same series repeatedly with only the options varying, so the
// result is cached under the dataset's generation tag plus the
// options. A reloaded dataset carries a fresh generation and naturally
// misses.
type SeriesCache struct {
	c *gocache.Cache
}

// NewSeriesCache returns a cache whose entries expire after the given
// TTL. A zero ttl caches forever.
func NewSeriesCache(ttl time.Duration) *SeriesCache {
	if ttl == 0 {
		ttl = gocache.NoExpiration
	}
	return &SeriesCache{c: gocache.New(ttl, 10*time.Minute)}
}

func contributionKey(generation string, opts ContributionOptions) string {
	return fmt.Sprintf("contribution/%s/%t/%s/%s", generation, opts.IncludeSyntheticStart, opts.PadTo, opts.Currency)
}

// Contribution returns the cached series for the dataset generation and
// options, building and storing it on a miss.
func (sc *SeriesCache) Contribution(ds *Dataset, opts ContributionOptions) []ContributionPoint {
	key := contributionKey(ds.Generation, opts)
	if v, ok := sc.c.Get(key); ok {
		return v.([]ContributionPoint)
	}
	series := BuildContributionSeries(ds.Transactions, opts)
	sc.c.Set(key, series, gocache.DefaultExpiration)
	return series
}

// Balance returns the cached market-value series for the dataset
// generation, building and storing it on a miss.
func (sc *SeriesCache) Balance(ds *Dataset) []BalancePoint {
	key := "balance/" + ds.Generation
	if v, ok := sc.c.Get(key); ok {
		return v.([]BalancePoint)
	}
	series := BuildBalanceSeries(ds.Transactions, ds.Prices, ds.Splits)
	sc.c.Set(key, series, gocache.DefaultExpiration)
	return series
}

// Flush drops every cached series.
func (sc *SeriesCache) Flush() { sc.c.Flush() }
