package main

// #region imports
import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/solsticedev/breakthrough/internal/catalog"
	"github.com/solsticedev/breakthrough/internal/config"
	"github.com/solsticedev/breakthrough/internal/director"
	"github.com/solsticedev/breakthrough/internal/engine"
	"github.com/solsticedev/breakthrough/internal/history"
	"github.com/solsticedev/breakthrough/internal/selector"
)

// #endregion

// #region main

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Enabled {
		log.Fatal("breakthrough engine disabled (BREAKTHROUGH_ENABLED=false)")
	}

	store, err := history.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	eng := engine.New(cfg, store, nil)
	eng.Director.SetCallbacks(director.Callbacks{
		OnComplete: func() { fmt.Println("<< complete") },
		OnAbort:    func(reason string) { fmt.Printf("<< aborted: %s\n", reason) },
		OnPhaseChange: func(p director.Phase) {
			fmt.Printf("<< phase: %s\n", p)
		},
	})
	eng.Director.SetPhysicsHooks(director.PhysicsHooks{
		OnPause:  func() { fmt.Println("<< physics paused") },
		OnResume: func() { fmt.Println("<< physics resumed") },
	})

	tier := catalog.QualityTier(envOr("BREAKTHROUGH_TIER", "mid"))

	fmt.Println("Breakthrough engine ready.")
	fmt.Printf("  DB: %s | tier: %s\n", cfg.DBPath, tier)
	fmt.Println("Commands: entity <type> <label> [valence] | prewarm [hint] | play | fps <n> | complete | abort [reason] | stats | quit")

	var entities []selector.Entity
	var pending *catalog.MutatedVariant

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return

		case "entity":
			if len(fields) < 3 {
				fmt.Println("usage: entity <type> <label> [valence]")
				continue
			}
			e := selector.Entity{Type: selector.EntityType(fields[1]), Label: fields[2]}
			if len(fields) > 3 {
				if v, err := strconv.ParseFloat(fields[3], 64); err == nil {
					e.Valence = &v
				}
			}
			entities = append(entities, e)
			fmt.Printf("entities: %d\n", len(entities))

		case "prewarm":
			var hint catalog.VariantClass
			if len(fields) > 1 {
				hint = catalog.VariantClass(fields[1])
			}
			res := eng.Director.Prewarm(entities, hint, tier, false)
			pending = &res.Variant
			fmt.Printf("selected %s (class=%s intensity=%s) seed=%d duration=%.1fs particles=%d fallback=%v\n",
				res.Variant.Base.ID, res.Variant.Base.Class, res.Variant.Base.Intensity,
				res.Variant.Seed, res.Variant.FinalDuration, res.Variant.FinalParticleCount, res.WasFallback)

		case "play":
			if pending == nil {
				fmt.Println("nothing prewarmed")
				continue
			}
			if err := eng.Director.Play(*pending); err != nil {
				fmt.Printf("error: %v\n", err)
			}

		case "fps":
			if len(fields) < 2 {
				fmt.Println("usage: fps <n>")
				continue
			}
			if f, err := strconv.ParseFloat(fields[1], 64); err == nil {
				eng.Director.ReportFPS(f)
				fmt.Printf("safe mode: %v\n", eng.Director.SafeMode())
			}

		case "complete":
			if err := eng.Director.Complete(); err != nil {
				fmt.Printf("error: %v\n", err)
			}

		case "abort":
			reason := director.ReasonUserCancelled
			if len(fields) > 1 {
				reason = fields[1]
			}
			eng.Director.Abort(reason)

		case "stats":
			printStats(eng)

		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

// #endregion main

// #region stats

func printStats(eng *engine.Engine) {
	overall := eng.Ledger.OverallStats()
	fmt.Printf("plays=%d completion=%.0f%% fallback=%.0f%% avg_intensity=%.2f variants=%d seed_buckets=%d\n",
		overall.TotalPlays, overall.CompletionRate*100, overall.FallbackRate*100,
		overall.AvgIntensity, overall.DistinctVariants, overall.SeedBuckets)
	for _, use := range eng.Ledger.MostUsed(5) {
		vs := eng.Ledger.VariantStats(use.VariantID)
		fmt.Printf("  %-16s plays=%d completion=%.0f%%\n",
			use.VariantID, use.Count, vs.CompletionRate*100)
	}
}

// #endregion stats

// #region env

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion env
