// Package instrument resolves broker instrument identifiers into
// human-readable names and tickers, memoizing lookups so that a report
// touching the same bond dozens of times costs a single API call.
package instrument

import (
	"context"
	"log"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Finder looks an instrument up by its broker identifier (figi).
type Finder interface {
	FindInstrument(ctx context.Context, id string) (name, ticker string, err error)
}

const (
	cacheTTL        = 24 * time.Hour
	cleanupInterval = time.Hour
	lookupTimeout   = 10 * time.Second
)

type entry struct {
	name, ticker string
	ok           bool
}

// Cache is a memoizing resolver on top of a Finder. Failed lookups are
// cached too, so a delisted or unknown instrument does not trigger a
// round trip per operation.
type Cache struct {
	finder Finder
	memo   *gocache.Cache
}

func NewCache(finder Finder) *Cache {
	return &Cache{
		finder: finder,
		memo:   gocache.New(cacheTTL, cleanupInterval),
	}
}

// Resolve returns the instrument's name and ticker, or ok=false when the
// lookup fails. Errors are logged, not returned: a missing name degrades
// the report, it does not abort it.
func (c *Cache) Resolve(id string) (name, ticker string, ok bool) {
	if id == "" {
		return "", "", false
	}
	if cached, found := c.memo.Get(id); found {
		e := cached.(entry)
		return e.name, e.ticker, e.ok
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()
	name, ticker, err := c.finder.FindInstrument(ctx, id)
	if err != nil {
		log.Printf("instrument %s: %v", id, err)
		c.memo.Set(id, entry{}, gocache.DefaultExpiration)
		return "", "", false
	}
	c.memo.Set(id, entry{name: name, ticker: ticker, ok: true}, gocache.DefaultExpiration)
	return name, ticker, true
}
