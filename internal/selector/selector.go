package selector

// #region imports
import (
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/solsticedev/breakthrough/internal/catalog"
	"github.com/solsticedev/breakthrough/internal/history"
)

// #endregion

// #region selector-struct

// Selector scores catalog entries against a request context and picks
// one. The rng drives only the top-3 weighted draw and the emergency
// fallback pick; it is intentionally separate from the seeded mutation
// stream so mutation stays reproducible while output keeps variety.
type Selector struct {
	hist *history.Ledger
	rng  *rand.Rand
}

// New creates a selector over the given ledger. A nil rng gets a
// time-seeded source.
func New(hist *history.Ledger, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{hist: hist, rng: rng}
}

// #endregion

// #region build-context

// BuildContext assembles a selection context from raw session entities
// and the ledger. Sentiment is the mean of present valences; friction
// saturates at three friction entities.
func (s *Selector) BuildContext(entities []Entity, hint catalog.VariantClass, tier catalog.QualityTier, reducedMotion bool) Context {
	var valenceSum float64
	var valenceCount, frictionCount int
	for _, e := range entities {
		if e.Valence != nil {
			valenceSum += *e.Valence
			valenceCount++
		}
		if e.Type == EntityFriction {
			frictionCount++
		}
	}

	sentiment := 0.0
	if valenceCount > 0 {
		sentiment = valenceSum / float64(valenceCount)
	}
	friction := float64(frictionCount) * 0.3
	if friction > 1 {
		friction = 1
	}

	return Context{
		Entities:          entities,
		Sentiment:         sentiment,
		Friction:          friction,
		Hint:              hint,
		RecentIntensities: s.hist.RecentIntensities(5),
		RecentVariantIDs:  s.hist.RecentVariantIDs(10),
		QualityTier:       tier,
		ReducedMotion:     reducedMotion,
	}
}

// #endregion

// #region eligibility

// eligible applies the quality-tier and reduced-motion filters.
// Returns the surviving set and whether it had to reach for fallbacks.
func eligible(ctx Context) ([]catalog.BaseVariant, bool) {
	pool := catalog.All()
	if ctx.QualityTier == catalog.TierLow {
		pool = catalog.LowTier()
	}

	if ctx.ReducedMotion {
		var calm []catalog.BaseVariant
		for _, v := range pool {
			if v.Intensity == catalog.IntensityLow && v.CurveProfile == catalog.CurveEase {
				calm = append(calm, v)
			}
		}
		if len(calm) == 0 {
			return catalog.Fallbacks(), true
		}
		return calm, false
	}

	if len(pool) == 0 {
		return catalog.Fallbacks(), true
	}
	return pool, false
}

// #endregion

// #region select

// Select picks the best variant for a context, mutates it with a
// fresh seed, and returns it with the full score map. Selection never
// fails to produce a result.
func (s *Selector) Select(ctx Context) Result {
	pool, usedFallback := eligible(ctx)
	if len(pool) == 0 {
		// Filter chain emptied even the fallback set; take the
		// emergency path.
		mv := s.SelectFallback(ctx.QualityTier)
		log.Printf("[SEL] selection exhausted, fallback %s seed=%d", mv.Base.ID, mv.Seed)
		return Result{Variant: mv, Scores: map[string]Scores{}, WasFallback: true}
	}

	seedBuckets := s.hist.SeedBuckets()
	scores := make(map[string]Scores, len(pool))
	for _, v := range pool {
		scores[v.ID] = s.score(v, ctx, seedBuckets)
	}

	ranked := make([]catalog.BaseVariant, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i].ID].Total, scores[ranked[j].ID].Total
		if si != sj {
			return si > sj
		}
		return ranked[i].ID < ranked[j].ID
	})

	top := ranked
	if len(top) > 3 {
		top = top[:3]
	}
	chosen := s.weightedPick(top, scores)

	seed := catalog.GenerateSeed()
	mv := catalog.Mutate(chosen, seed)
	log.Printf("[SEL] picked %s score=%.3f seed=%d tier=%s reduced=%v",
		chosen.ID, scores[chosen.ID].Total, seed, ctx.QualityTier, ctx.ReducedMotion)

	return Result{Variant: mv, Scores: scores, WasFallback: usedFallback}
}

// weightedPick draws among the top candidates proportionally to score,
// a variety guard against always serving the single best match.
func (s *Selector) weightedPick(top []catalog.BaseVariant, scores map[string]Scores) catalog.BaseVariant {
	var sum float64
	for _, v := range top {
		sum += scores[v.ID].Total
	}
	if sum <= 0 {
		return top[s.rng.Intn(len(top))]
	}

	r := s.rng.Float64() * sum
	for _, v := range top {
		r -= scores[v.ID].Total
		if r <= 0 {
			return v
		}
	}
	return top[len(top)-1]
}

// #endregion

// #region scoring

func (s *Selector) score(v catalog.BaseVariant, ctx Context, seedBuckets int) Scores {
	recency := recencyPenalty(v.ID, ctx.RecentVariantIDs)
	novelty := s.noveltyScore(v.ID, seedBuckets)
	affinity := affinityScore(v, ctx)
	fatigue := fatigueAdjustment(v.Intensity, ctx.RecentIntensities)

	total := (1-recency)*weightRecency +
		novelty*weightNovelty +
		affinity*weightAffinity +
		(0.5+fatigue)*weightFatigue

	return Scores{
		Recency:  recency,
		Novelty:  novelty,
		Affinity: affinity,
		Fatigue:  fatigue,
		Total:    total,
	}
}

// recencyPenalty is 0 when the variant is absent from the last-10 ids,
// otherwise decreases linearly from 1.0 (most recent) to 0.1 (10th).
func recencyPenalty(id string, recent []string) float64 {
	for pos, rid := range recent {
		if rid == id {
			return 1.0 - 0.9*float64(pos)/9.0
		}
	}
	return 0
}

// noveltyScore rewards under-played variants and, while few seed
// buckets have been explored, adds a diversity bonus.
func (s *Selector) noveltyScore(id string, seedBuckets int) float64 {
	count := s.hist.UseCount(id)

	novelty := 1.0
	if count > 0 {
		novelty = 1.0 - float64(count)*0.1
		if novelty < 0.1 {
			novelty = 0.1
		}
	}
	if seedBuckets < 10 {
		novelty += 0.2
	}
	if novelty > 1.0 {
		novelty = 1.0
	}
	return novelty
}

// affinityScore matches a variant's theme against the request context.
func affinityScore(v catalog.BaseVariant, ctx Context) float64 {
	score := 0.5

	if ctx.Hint != "" && v.Class == ctx.Hint {
		score += 0.3
	}

	warmMood := v.ColorMood == catalog.MoodWarm || v.ColorMood == catalog.MoodDawn || v.ColorMood == catalog.MoodNature
	heavyClass := v.Class == catalog.ClassRelease || v.Class == catalog.ClassResolve || v.Class == catalog.ClassBoundary
	if (ctx.Sentiment > 0.3 && warmMood) || (ctx.Sentiment < -0.3 && heavyClass) {
		score += 0.15
	}

	if ctx.Friction > 0.7 &&
		(v.Class == catalog.ClassRelease || v.Class == catalog.ClassCourage || v.Class == catalog.ClassResolve) {
		score += 0.1
	}

	for _, e := range ctx.Entities {
		if e.Type == EntityFriction && v.Class == catalog.ClassRelease {
			score += 0.1
			break
		}
	}
	for _, e := range ctx.Entities {
		if e.Type == EntityValue && v.Class == catalog.ClassClarity {
			score += 0.1
			break
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// fatigueAdjustment biases toward calmer variants when at least 2 of
// the last 5 plays were high or extreme intensity.
func fatigueAdjustment(band catalog.Intensity, recent []catalog.Intensity) float64 {
	heavy := 0
	for _, r := range recent {
		if r == catalog.IntensityHigh || r == catalog.IntensityExtreme {
			heavy++
		}
	}
	if heavy < 2 {
		return 0
	}

	switch band {
	case catalog.IntensityLow:
		return 0.4
	case catalog.IntensityMedium:
		return 0.2
	case catalog.IntensityHigh:
		return -0.3
	case catalog.IntensityExtreme:
		return -0.5
	}
	return 0
}

// #endregion

// #region fallback

// SelectFallback mutates a fallback variant with a fresh seed,
// preferring the designated one. Used by safe-mode and emergency paths.
func (s *Selector) SelectFallback(tier catalog.QualityTier) catalog.MutatedVariant {
	fallbacks := catalog.Fallbacks()

	var chosen catalog.BaseVariant
	if v, ok := catalog.ByID(catalog.FallbackID); ok && v.IsFallback {
		chosen = v
	} else if len(fallbacks) > 0 {
		chosen = fallbacks[s.rng.Intn(len(fallbacks))]
	} else {
		// Catalog without fallbacks is a build-time defect; degrade to
		// the first entry rather than fail the caller.
		chosen = catalog.All()[0]
		log.Printf("[SEL] no fallback variants declared, using %s", chosen.ID)
	}

	return catalog.Mutate(chosen, catalog.GenerateSeed())
}

// #endregion
