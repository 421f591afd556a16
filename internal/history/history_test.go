package history

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/solsticedev/breakthrough/internal/catalog"
)

func TestRecordAndQuery(t *testing.T) {
	l := NewLedger(NewMemStore())

	l.Record("prism-break", 11, catalog.IntensityMedium, catalog.TierMid, true, false)
	l.Record("ember-release", 22, catalog.IntensityHigh, catalog.TierHigh, false, false)
	l.Record("gentle-bloom", 33, catalog.IntensityLow, catalog.TierLow, true, true)

	ids := l.RecentVariantIDs(2)
	if len(ids) != 2 || ids[0] != "gentle-bloom" || ids[1] != "ember-release" {
		t.Errorf("unexpected recent ids: %v", ids)
	}

	bands := l.RecentIntensities(3)
	if len(bands) != 3 || bands[0] != catalog.IntensityLow {
		t.Errorf("unexpected recent intensities: %v", bands)
	}

	if !l.WasUsedRecently("ember-release", 3) {
		t.Error("ember-release should be recent")
	}
	if l.WasUsedRecently("ember-release", 1) {
		t.Error("ember-release is not the most recent play")
	}
}

func TestCapAt100(t *testing.T) {
	l := NewLedger(NewMemStore())

	for i := 0; i < 150; i++ {
		id := "a"
		if i >= 50 {
			id = "b"
		}
		l.Record(id, uint32(i), catalog.IntensityLow, catalog.TierMid, true, false)
	}

	entries := l.Entries()
	if len(entries) != MaxEntries {
		t.Fatalf("got %d entries, want %d", len(entries), MaxEntries)
	}
	// Oldest 50 dropped: everything left has seed >= 50 and id "b".
	if entries[0].Seed != 50 || entries[0].VariantID != "b" {
		t.Errorf("oldest surviving entry wrong: %+v", entries[0])
	}
	if entries[len(entries)-1].Seed != 149 {
		t.Errorf("newest entry wrong: %+v", entries[len(entries)-1])
	}
}

func TestPersistRoundTrip(t *testing.T) {
	store := NewMemStore()

	l1 := NewLedger(store)
	l1.Record("prism-break", 7, catalog.IntensityMedium, catalog.TierMid, true, false)
	user := l1.UserID()
	if user == "" {
		t.Fatal("expected generated user id")
	}

	// Fresh ledger over the same store sees the same data.
	l2 := NewLedger(store)
	if got := l2.UserID(); got != user {
		t.Errorf("user id not stable: %q vs %q", got, user)
	}
	entries := l2.Entries()
	if len(entries) != 1 || entries[0].VariantID != "prism-break" || entries[0].Seed != 7 {
		t.Errorf("round trip lost data: %+v", entries)
	}
}

func TestCorruptSnapshotDegrades(t *testing.T) {
	store := NewMemStore()
	if err := store.Set("breakthrough_history", []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	l := NewLedger(store)
	if got := len(l.Entries()); got != 0 {
		t.Errorf("corrupt snapshot should yield empty ledger, got %d entries", got)
	}

	// Ledger is usable after degradation.
	l.Record("keystone", 1, catalog.IntensityMedium, catalog.TierMid, true, false)
	if got := len(l.Entries()); got != 1 {
		t.Errorf("record after degradation failed, got %d entries", got)
	}
}

func TestStoreFailuresNeverPropagate(t *testing.T) {
	store := NewMemStore()
	store.FailGet = errors.New("disk on fire")
	store.FailSet = errors.New("disk still on fire")

	l := NewLedger(store)
	if got := len(l.Entries()); got != 0 {
		t.Errorf("expected empty ledger, got %d", got)
	}

	// Record degrades to in-memory only, no panic, no error surfaced.
	l.Record("keystone", 5, catalog.IntensityMedium, catalog.TierMid, true, false)
	if got := len(l.Entries()); got != 1 {
		t.Errorf("in-memory ledger should still advance, got %d", got)
	}
}

func TestStats(t *testing.T) {
	l := NewLedger(NewMemStore())

	l.Record("prism-break", 1, catalog.IntensityMedium, catalog.TierMid, true, false)
	l.Record("prism-break", 102, catalog.IntensityMedium, catalog.TierMid, false, false)
	l.Record("gentle-bloom", 3, catalog.IntensityLow, catalog.TierLow, true, true)

	vs := l.VariantStats("prism-break")
	if vs.PlayCount != 2 {
		t.Errorf("play count %d, want 2", vs.PlayCount)
	}
	if vs.CompletionRate != 0.5 {
		t.Errorf("completion rate %f, want 0.5", vs.CompletionRate)
	}
	if vs.FallbackRate != 0 {
		t.Errorf("fallback rate %f, want 0", vs.FallbackRate)
	}

	os := l.OverallStats()
	if os.TotalPlays != 3 {
		t.Errorf("total plays %d, want 3", os.TotalPlays)
	}
	if os.DistinctVariants != 2 {
		t.Errorf("distinct variants %d, want 2", os.DistinctVariants)
	}
	// seeds 1, 102, 3 → buckets 1, 2, 3
	if os.SeedBuckets != 3 {
		t.Errorf("seed buckets %d, want 3", os.SeedBuckets)
	}
	if os.FallbackRate < 0.33 || os.FallbackRate > 0.34 {
		t.Errorf("fallback rate %f, want 1/3", os.FallbackRate)
	}
}

func TestUsageQueries(t *testing.T) {
	l := NewLedger(NewMemStore())

	for i := 0; i < 3; i++ {
		l.Record("prism-break", uint32(i), catalog.IntensityMedium, catalog.TierMid, true, false)
	}
	l.Record("keystone", 10, catalog.IntensityMedium, catalog.TierMid, true, false)

	most := l.MostUsed(5)
	if len(most) != 2 || most[0].VariantID != "prism-break" || most[0].Count != 3 {
		t.Errorf("unexpected most used: %+v", most)
	}

	least := l.LeastUsedIDs([]string{"prism-break", "keystone", "gentle-bloom"})
	if least[0] != "gentle-bloom" {
		t.Errorf("never-played variant should sort first, got %v", least)
	}
	if least[2] != "prism-break" {
		t.Errorf("most-played variant should sort last, got %v", least)
	}

	if l.UseCount("prism-break") != 3 {
		t.Errorf("use count %d, want 3", l.UseCount("prism-break"))
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := store.Set("k", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set("k", []byte("v2")); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	got, ok, err := store.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(got) != "v2" {
		t.Errorf("got %q, want v2", got)
	}

	// Ledger over sqlite behaves identically to the mem store.
	l := NewLedger(store)
	l.Record("gentle-bloom", 9, catalog.IntensityLow, catalog.TierLow, true, false)
	l2 := NewLedger(store)
	if got := len(l2.Entries()); got != 1 {
		t.Errorf("sqlite-backed ledger round trip: %d entries", got)
	}
}
