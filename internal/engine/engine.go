package engine

// #region imports
import (
	"math/rand"

	"github.com/solsticedev/breakthrough/internal/config"
	"github.com/solsticedev/breakthrough/internal/director"
	"github.com/solsticedev/breakthrough/internal/history"
	"github.com/solsticedev/breakthrough/internal/selector"
)

// #endregion

// #region engine

// Engine bundles one session's worth of breakthrough machinery:
// ledger, selector, director, all constructor-injected so tests and
// multi-instance hosts never share mutable state.
type Engine struct {
	Ledger   *history.Ledger
	Selector *selector.Selector
	Director *director.Director
}

// New wires an engine over the given store. A nil rng gives the
// selector a time-seeded source; tests pass a fixed seed.
func New(cfg config.EngineConfig, store history.KVStore, rng *rand.Rand) *Engine {
	ledger := history.NewLedger(store)
	sel := selector.New(ledger, rng)
	dir := director.New(cfg.DirectorConfig(), sel, ledger)

	return &Engine{
		Ledger:   ledger,
		Selector: sel,
		Director: dir,
	}
}

// #endregion
