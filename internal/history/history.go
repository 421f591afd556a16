package history

// #region imports
import (
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/solsticedev/breakthrough/internal/catalog"
)

// #endregion

// #region constants

const (
	// MaxEntries caps the ledger; oldest entries drop first.
	MaxEntries = 100

	historyKey = "breakthrough_history"
	installKey = "breakthrough_install_id"
)

// #endregion

// #region ledger

// Ledger is the durable record of past plays. Single writer; all
// persistence failures are logged and degraded to empty/no-op so the
// ledger never throws into its callers.
type Ledger struct {
	store  KVStore
	cache  *snapshot // nil until first load
	userID string
}

// NewLedger creates a ledger over the given store. Nothing is read
// until first access.
func NewLedger(store KVStore) *Ledger {
	return &Ledger{store: store}
}

// #endregion

// #region load

// load lazily populates the in-memory snapshot. Corrupt or missing
// storage yields an empty ledger rather than an error.
func (l *Ledger) load() *snapshot {
	if l.cache != nil {
		return l.cache
	}

	snap := &snapshot{}
	raw, ok, err := l.store.Get(historyKey)
	if err != nil {
		log.Printf("[HIST] read failed, starting empty: %v", err)
	} else if ok {
		if err := json.Unmarshal(raw, snap); err != nil {
			log.Printf("[HIST] corrupt snapshot, starting empty: %v", err)
			snap = &snapshot{}
		}
	}

	if snap.UserID == "" {
		snap.UserID = l.installID()
	}
	l.cache = snap
	return snap
}

// Refresh discards the in-memory snapshot and reloads from storage.
func (l *Ledger) Refresh() []Entry {
	l.cache = nil
	return l.Entries()
}

// Entries returns the cached ledger, loading it on first access.
// The slice is ordered oldest first.
func (l *Ledger) Entries() []Entry {
	return l.load().Entries
}

// UserID returns the anonymous per-installation identifier.
func (l *Ledger) UserID() string {
	return l.load().UserID
}

// #endregion

// #region install-id

// installID reads or mints the anonymous installation identifier,
// persisted under its own key.
func (l *Ledger) installID() string {
	if l.userID != "" {
		return l.userID
	}

	raw, ok, err := l.store.Get(installKey)
	if err == nil && ok && len(raw) > 0 {
		l.userID = string(raw)
		return l.userID
	}
	if err != nil {
		log.Printf("[HIST] install id read failed: %v", err)
	}

	l.userID = uuid.New().String()
	if err := l.store.Set(installKey, []byte(l.userID)); err != nil {
		log.Printf("[HIST] install id write failed: %v", err)
	}
	return l.userID
}

// #endregion

// #region record

// Record appends a play, trims to the cap, persists, and updates the
// cache. Persistence failure is logged; the in-memory ledger still
// advances so in-session novelty bookkeeping stays correct.
func (l *Ledger) Record(variantID string, seed uint32, intensity catalog.Intensity, tier catalog.QualityTier, completed, wasFallback bool) {
	snap := l.load()

	snap.Entries = append(snap.Entries, Entry{
		VariantID:   variantID,
		Seed:        seed,
		Intensity:   intensity,
		Timestamp:   time.Now().UTC(),
		QualityTier: tier,
		Completed:   completed,
		WasFallback: wasFallback,
	})
	if over := len(snap.Entries) - MaxEntries; over > 0 {
		snap.Entries = snap.Entries[over:]
	}
	snap.LastUpdated = time.Now().UTC()

	raw, err := json.Marshal(snap)
	if err != nil {
		log.Printf("[HIST] marshal failed: %v", err)
		return
	}
	if err := l.store.Set(historyKey, raw); err != nil {
		log.Printf("[HIST] write failed: %v", err)
	}
}

// #endregion

// #region recent-queries

// RecentVariantIDs returns up to n ids, most recent first.
func (l *Ledger) RecentVariantIDs(n int) []string {
	entries := l.Entries()
	out := make([]string, 0, n)
	for i := len(entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, entries[i].VariantID)
	}
	return out
}

// RecentIntensities returns up to n intensity bands, most recent first.
func (l *Ledger) RecentIntensities(n int) []catalog.Intensity {
	entries := l.Entries()
	out := make([]catalog.Intensity, 0, n)
	for i := len(entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, entries[i].Intensity)
	}
	return out
}

// WasUsedRecently reports whether the variant appears in the last n plays.
func (l *Ledger) WasUsedRecently(variantID string, n int) bool {
	for _, id := range l.RecentVariantIDs(n) {
		if id == variantID {
			return true
		}
	}
	return false
}

// #endregion

// #region stats

// VariantStats derives aggregates for one variant. Pure over the ledger.
func (l *Ledger) VariantStats(variantID string) VariantStats {
	var stats VariantStats
	var completed, fallbacks int
	var intensitySum float64

	for _, e := range l.Entries() {
		if e.VariantID != variantID {
			continue
		}
		stats.PlayCount++
		if e.Completed {
			completed++
		}
		if e.WasFallback {
			fallbacks++
		}
		intensitySum += e.Intensity.Level()
	}

	if stats.PlayCount > 0 {
		stats.CompletionRate = float64(completed) / float64(stats.PlayCount)
		stats.FallbackRate = float64(fallbacks) / float64(stats.PlayCount)
		stats.AvgIntensity = intensitySum / float64(stats.PlayCount)
	}
	return stats
}

// OverallStats derives aggregates across the whole ledger.
func (l *Ledger) OverallStats() OverallStats {
	entries := l.Entries()
	stats := OverallStats{TotalPlays: len(entries)}
	if len(entries) == 0 {
		return stats
	}

	var completed, fallbacks int
	var intensitySum float64
	variants := make(map[string]bool)
	buckets := make(map[uint32]bool)

	for _, e := range entries {
		if e.Completed {
			completed++
		}
		if e.WasFallback {
			fallbacks++
		}
		intensitySum += e.Intensity.Level()
		variants[e.VariantID] = true
		buckets[e.Seed%100] = true
	}

	stats.CompletionRate = float64(completed) / float64(len(entries))
	stats.FallbackRate = float64(fallbacks) / float64(len(entries))
	stats.AvgIntensity = intensitySum / float64(len(entries))
	stats.DistinctVariants = len(variants)
	stats.SeedBuckets = len(buckets)
	return stats
}

// SeedBuckets returns the count of distinct seed % 100 buckets seen,
// used by the selector's seed-diversity bonus.
func (l *Ledger) SeedBuckets() int {
	buckets := make(map[uint32]bool)
	for _, e := range l.Entries() {
		buckets[e.Seed%100] = true
	}
	return len(buckets)
}

// #endregion

// #region usage-queries

// MostUsed returns up to n variants ordered by descending play count.
func (l *Ledger) MostUsed(n int) []VariantUse {
	counts := l.useCounts()
	out := make([]VariantUse, 0, len(counts))
	for id, c := range counts {
		out = append(out, VariantUse{VariantID: id, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].VariantID < out[j].VariantID
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// LeastUsedIDs orders the given catalog ids by ascending play count,
// never-played ids first.
func (l *Ledger) LeastUsedIDs(catalogIDs []string) []string {
	counts := l.useCounts()
	out := make([]string, len(catalogIDs))
	copy(out, catalogIDs)
	sort.SliceStable(out, func(i, j int) bool {
		return counts[out[i]] < counts[out[j]]
	})
	return out
}

// UseCount returns the play count for one variant.
func (l *Ledger) UseCount(variantID string) int {
	return l.useCounts()[variantID]
}

func (l *Ledger) useCounts() map[string]int {
	counts := make(map[string]int)
	for _, e := range l.Entries() {
		counts[e.VariantID]++
	}
	return counts
}

// #endregion
