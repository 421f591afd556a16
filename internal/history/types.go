package history

// #region imports
import (
	"time"

	"github.com/solsticedev/breakthrough/internal/catalog"
)

// #endregion

// #region entry

// Entry is one append-only row in the play ledger. Never edited after
// being written.
type Entry struct {
	VariantID   string              `json:"variantId"`
	Seed        uint32              `json:"seed"`
	Intensity   catalog.Intensity   `json:"intensity"`
	Timestamp   time.Time           `json:"timestamp"`
	QualityTier catalog.QualityTier `json:"qualityTier"`
	Completed   bool                `json:"completed"`
	WasFallback bool                `json:"wasFallback"`
}

// #endregion

// #region snapshot

// snapshot is the persisted ledger layout: one JSON record under a
// fixed key.
type snapshot struct {
	UserID      string    `json:"userId"`
	Entries     []Entry   `json:"entries"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// #endregion

// #region stats

// VariantStats are derived aggregates for one variant.
type VariantStats struct {
	PlayCount      int
	CompletionRate float64
	FallbackRate   float64
	AvgIntensity   float64
}

// OverallStats are derived aggregates across the whole ledger.
type OverallStats struct {
	TotalPlays       int
	CompletionRate   float64
	FallbackRate     float64
	AvgIntensity     float64
	DistinctVariants int
	SeedBuckets      int // distinct seed % 100 buckets seen
}

// VariantUse pairs a variant id with its play count, for novelty
// bookkeeping queries.
type VariantUse struct {
	VariantID string
	Count     int
}

// #endregion

// #region kv-store

// KVStore abstracts the backing key-value store so the same ledger
// logic runs against sqlite, a file, or an in-memory map.
type KVStore interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	// Set writes the value under key, replacing any previous value.
	Set(key string, value []byte) error
}

// #endregion
