package main

// #region imports
import (
	"flag"
	"fmt"
	"os"

	"github.com/solsticedev/breakthrough/internal/catalog"
	"github.com/solsticedev/breakthrough/internal/history"
)

// #endregion

// #region main

// replay re-runs the deterministic mutation step for every play in the
// ledger and verifies the resolved outputs are reproducible from the
// recorded (variant, seed) pair. Exit 1 on any drift.
func main() {
	dbPath := flag.String("db", "", "path to breakthrough.db")
	verbose := flag.Bool("v", false, "print every replayed mutation")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/breakthrough.db [-v]")
		os.Exit(2)
	}

	store, err := history.NewSQLiteStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ledger := history.NewLedger(store)
	entries := ledger.Entries()
	if len(entries) == 0 {
		fmt.Println("ledger empty, nothing to replay")
		return
	}

	var drifted, skipped int
	for _, e := range entries {
		base, ok := catalog.ByID(e.VariantID)
		if !ok {
			// Variant retired from the catalog since this play.
			skipped++
			continue
		}

		a := catalog.Mutate(base, e.Seed)
		b := catalog.Mutate(base, e.Seed)
		if !identical(a, b) {
			drifted++
			fmt.Printf("DRIFT %s seed=%d: mutation is not deterministic\n", e.VariantID, e.Seed)
			continue
		}

		if *verbose {
			fmt.Printf("ok %-16s seed=%-11d duration=%.2fs particles=%d\n",
				e.VariantID, e.Seed, a.FinalDuration, a.FinalParticleCount)
		}
	}

	fmt.Printf("replayed %d plays: %d ok, %d drifted, %d skipped\n",
		len(entries), len(entries)-drifted-skipped, drifted, skipped)
	if drifted > 0 {
		os.Exit(1)
	}
}

// #endregion main

// #region compare

func identical(a, b catalog.MutatedVariant) bool {
	if a.FinalDuration != b.FinalDuration ||
		a.FinalParticleCount != b.FinalParticleCount ||
		a.Knobs != b.Knobs ||
		len(a.FinalColors) != len(b.FinalColors) {
		return false
	}
	for i := range a.FinalColors {
		if a.FinalColors[i] != b.FinalColors[i] {
			return false
		}
	}
	return true
}

// #endregion compare
