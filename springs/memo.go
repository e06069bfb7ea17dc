package springs

import (
	"github.com/dgraph-io/ristretto"
	"github.com/pkg/errors"
)

// Memo remembers the counts of whole records so that repeated records are
// only counted once. It is safe for concurrent use.
type Memo struct {
	cache *ristretto.Cache
}

// NewMemo returns a Memo holding up to about maxRecords counts.
func NewMemo(maxRecords int64) (*Memo, error) {
	if maxRecords <= 0 {
		return nil, errors.Errorf("memo size must be positive, got %d", maxRecords)
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxRecords * 10,
		MaxCost:     maxRecords,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating memo cache")
	}
	return &Memo{cache: cache}, nil
}

// Count returns Count(r), from the memo when r was counted before.
func (m *Memo) Count(r Record) int64 {
	key := r.String()
	if v, ok := m.cache.Get(key); ok {
		return v.(int64)
	}
	n := Count(r)
	m.cache.Set(key, n, 1)
	return n
}

// Wait blocks until pending writes are visible to Count.
func (m *Memo) Wait() {
	m.cache.Wait()
}

// Close stops the memo's background goroutines. The memo must not be used
// afterwards.
func (m *Memo) Close() {
	m.cache.Close()
}
