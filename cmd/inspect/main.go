package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/solsticedev/breakthrough/internal/history"
)

// #endregion

// #region main

func main() {
	dbPath := flag.String("db", "", "path to breakthrough.db")
	last := flag.Int("last", 20, "show N most recent plays")
	variant := flag.String("variant", "", "show per-variant detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/breakthrough.db [--last N] [--variant id] [--json]")
		os.Exit(2)
	}

	store, err := history.NewSQLiteStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ledger := history.NewLedger(store)

	if *variant != "" {
		runVariantMode(ledger, *variant, *jsonOut)
	} else {
		runListMode(ledger, *last, *jsonOut)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	VariantID   string `json:"variant_id"`
	Seed        uint32 `json:"seed"`
	Intensity   string `json:"intensity"`
	QualityTier string `json:"quality_tier"`
	Completed   bool   `json:"completed"`
	WasFallback bool   `json:"was_fallback"`
	Timestamp   string `json:"timestamp"`
}

func runListMode(ledger *history.Ledger, last int, jsonOut bool) {
	entries := ledger.Entries()
	if len(entries) > last {
		entries = entries[len(entries)-last:]
	}

	rows := make([]listRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, listRow{
			VariantID:   e.VariantID,
			Seed:        e.Seed,
			Intensity:   string(e.Intensity),
			QualityTier: string(e.QualityTier),
			Completed:   e.Completed,
			WasFallback: e.WasFallback,
			Timestamp:   e.Timestamp.Format("2006-01-02 15:04:05"),
		})
	}

	if jsonOut {
		out, _ := json.MarshalIndent(rows, "", "  ")
		fmt.Println(string(out))
		return
	}

	overall := ledger.OverallStats()
	fmt.Printf("user=%s plays=%d completion=%.0f%% fallback=%.0f%% seed_buckets=%d\n\n",
		ledger.UserID(), overall.TotalPlays,
		overall.CompletionRate*100, overall.FallbackRate*100, overall.SeedBuckets)

	fmt.Printf("%-16s %-11s %-9s %-5s %-5s %-8s %s\n",
		"VARIANT", "SEED", "INTENSITY", "TIER", "DONE", "FALLBACK", "WHEN")
	for _, r := range rows {
		fmt.Printf("%-16s %-11d %-9s %-5s %-5v %-8v %s\n",
			r.VariantID, r.Seed, r.Intensity, r.QualityTier, r.Completed, r.WasFallback, r.Timestamp)
	}
}

// #endregion list-mode

// #region variant-mode

func runVariantMode(ledger *history.Ledger, variantID string, jsonOut bool) {
	stats := ledger.VariantStats(variantID)

	if jsonOut {
		out, _ := json.MarshalIndent(map[string]any{
			"variant_id":      variantID,
			"play_count":      stats.PlayCount,
			"completion_rate": stats.CompletionRate,
			"fallback_rate":   stats.FallbackRate,
			"avg_intensity":   stats.AvgIntensity,
		}, "", "  ")
		fmt.Println(string(out))
		return
	}

	fmt.Printf("%s: plays=%d completion=%.0f%% fallback=%.0f%% avg_intensity=%.2f\n",
		variantID, stats.PlayCount, stats.CompletionRate*100,
		stats.FallbackRate*100, stats.AvgIntensity)
}

// #endregion variant-mode
