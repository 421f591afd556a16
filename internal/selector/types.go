package selector

// #region imports
import (
	"github.com/solsticedev/breakthrough/internal/catalog"
)

// #endregion

// #region entity

// EntityType classifies a session entity fed into context building.
type EntityType string

const (
	EntityFriction EntityType = "friction"
	EntityValue    EntityType = "value"
	EntityPerson   EntityType = "person"
	EntityGoal     EntityType = "goal"
	EntityInsight  EntityType = "insight"
)

// Entity is one item from the host session. Valence is optional; nil
// means the session layer had no sentiment reading for it.
type Entity struct {
	Type    EntityType
	Label   string
	Valence *float64 // -1..1
}

// #endregion

// #region context

// Context is the per-request value object the selector scores against.
// Constructed, consumed, discarded.
type Context struct {
	Entities          []Entity
	Sentiment         float64              // -1..1, mean of entity valences
	Friction          float64              // 0..1
	Hint              catalog.VariantClass // empty = no hint
	RecentIntensities []catalog.Intensity
	RecentVariantIDs  []string
	QualityTier       catalog.QualityTier
	ReducedMotion     bool
}

// #endregion

// #region scores

// Scores is the per-variant scoring breakdown, exposed for
// diagnostics and tests.
type Scores struct {
	Recency  float64 // penalty, 0 = not recent
	Novelty  float64
	Affinity float64
	Fatigue  float64 // adjustment, may be negative
	Total    float64
}

// Result is a selection outcome: the mutated variant plus the full
// score map.
type Result struct {
	Variant     catalog.MutatedVariant
	Scores      map[string]Scores
	WasFallback bool
}

// #endregion

// #region weights

// Fixed scoring weights. Total = (1-recency)*0.35 + novelty*0.25 +
// affinity*0.25 + (0.5+fatigue)*0.15.
const (
	weightRecency  = 0.35
	weightNovelty  = 0.25
	weightAffinity = 0.25
	weightFatigue  = 0.15
)

// #endregion
